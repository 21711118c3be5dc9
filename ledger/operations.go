// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/regnet/regnetd/compositekey"
	"github.com/regnet/regnetd/record"
	"github.com/regnet/regnetd/registry"
)

// RequestUser - create or replace a user registration request
func (l *Ledger) RequestUser(name string, aadharNumber string, email string, phoneNumber string) (*record.User, error) {
	var u *record.User
	err := l.invoke(OpRequestUser, func(state registry.State) (compositekey.Key, error) {
		var err error
		u, err = registry.RequestUser(state, name, aadharNumber, email, phoneNumber)
		if nil != err {
			return "", err
		}
		return u.Key(), nil
	})
	if nil != err {
		return nil, err
	}
	return u, nil
}

// ApproveUser - approve a requested user
func (l *Ledger) ApproveUser(name string, aadharNumber string) (*record.User, error) {
	var u *record.User
	err := l.invoke(OpApproveUser, func(state registry.State) (compositekey.Key, error) {
		var err error
		u, err = registry.ApproveUser(state, name, aadharNumber)
		if nil != err {
			return "", err
		}
		return u.Key(), nil
	})
	if nil != err {
		return nil, err
	}
	return u, nil
}

// RechargeAccount - set a user's balance from a bank transaction id
func (l *Ledger) RechargeAccount(name string, aadharNumber string, transactionID string) (*record.User, error) {
	var u *record.User
	err := l.invoke(OpRechargeAccount, func(state registry.State) (compositekey.Key, error) {
		var err error
		u, err = registry.RechargeAccount(state, name, aadharNumber, transactionID)
		if nil != err {
			return "", err
		}
		return u.Key(), nil
	})
	if nil != err {
		return nil, err
	}
	return u, nil
}

// ViewUser - read a user
func (l *Ledger) ViewUser(name string, aadharNumber string) (*record.User, error) {
	var u *record.User
	err := l.view(func(state registry.State) error {
		var err error
		u, err = registry.ViewUser(state, name, aadharNumber)
		return err
	})
	if nil != err {
		return nil, err
	}
	return u, nil
}

// RequestProperty - register a property for an existing owner
func (l *Ledger) RequestProperty(propertyID string, price uint64, status string, ownerName string, ownerAadharNumber string) (*record.Property, error) {
	var p *record.Property
	err := l.invoke(OpRequestProperty, func(state registry.State) (compositekey.Key, error) {
		var err error
		p, err = registry.RequestProperty(state, propertyID, price, status, ownerName, ownerAadharNumber)
		if nil != err {
			return "", err
		}
		return p.Key(), nil
	})
	if nil != err {
		return nil, err
	}
	return p, nil
}

// ApproveProperty - approve a property registration
func (l *Ledger) ApproveProperty(propertyID string) (*record.Property, error) {
	var p *record.Property
	err := l.invoke(OpApproveProperty, func(state registry.State) (compositekey.Key, error) {
		var err error
		p, err = registry.ApproveProperty(state, propertyID)
		if nil != err {
			return "", err
		}
		return p.Key(), nil
	})
	if nil != err {
		return nil, err
	}
	return p, nil
}

// ViewProperty - read a property
func (l *Ledger) ViewProperty(propertyID string) (*record.Property, error) {
	var p *record.Property
	err := l.view(func(state registry.State) error {
		var err error
		p, err = registry.ViewProperty(state, propertyID)
		return err
	})
	if nil != err {
		return nil, err
	}
	return p, nil
}

// UpdateProperty - owner changes a property's status
func (l *Ledger) UpdateProperty(propertyID string, ownerName string, ownerAadharNumber string, status string) (*record.Property, error) {
	var p *record.Property
	err := l.invoke(OpUpdateProperty, func(state registry.State) (compositekey.Key, error) {
		var err error
		p, err = registry.UpdateProperty(state, propertyID, ownerName, ownerAadharNumber, status)
		if nil != err {
			return "", err
		}
		return p.Key(), nil
	})
	if nil != err {
		return nil, err
	}
	return p, nil
}

// PurchaseProperty - transfer an on sale property to the buyer
func (l *Ledger) PurchaseProperty(propertyID string, buyerName string, buyerAadharNumber string) (*record.Property, error) {
	var p *record.Property
	err := l.invoke(OpPurchase, func(state registry.State) (compositekey.Key, error) {
		var err error
		p, err = registry.PurchaseProperty(state, propertyID, buyerName, buyerAadharNumber)
		if nil != err {
			return "", err
		}
		return p.Key(), nil
	})
	if nil != err {
		return nil, err
	}
	return p, nil
}
