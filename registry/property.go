// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"time"

	"github.com/regnet/regnetd/compositekey"
	"github.com/regnet/regnetd/fault"
	"github.com/regnet/regnetd/record"
)

// RequestProperty - store a property registration request for an
// existing user
func RequestProperty(state State, propertyID string, price uint64, status string, ownerName string, ownerAadharNumber string) (*record.Property, error) {
	if err := compositekey.Validate(propertyID, ownerName, ownerAadharNumber); nil != err {
		return nil, err
	}

	propertyStatus, err := record.ParsePropertyStatus(status)
	if nil != err {
		return nil, err
	}

	ownerKey := compositekey.UserKey(ownerName, ownerAadharNumber)
	owner, err := getUser(state, ownerKey)
	if nil != err {
		return nil, err
	}
	if nil == owner {
		return nil, fault.ErrOwnerNotRegistered
	}

	p := &record.Property{
		PropertyID: propertyID,
		Owner:      ownerKey,
		Price:      price,
		Status:     propertyStatus,
		CreatedAt:  time.Now().UTC(),
		State:      record.Requested,
	}

	if err := putProperty(state, p); nil != err {
		return nil, err
	}
	return p, nil
}

// ApproveProperty - activate a registration request
func ApproveProperty(state State, propertyID string) (*record.Property, error) {
	p, err := ViewProperty(state, propertyID)
	if nil != err {
		return nil, err
	}

	p.State = record.Approved

	if err := putProperty(state, p); nil != err {
		return nil, err
	}
	return p, nil
}

// ViewProperty - read a property
func ViewProperty(state State, propertyID string) (*record.Property, error) {
	if err := compositekey.Validate(propertyID); nil != err {
		return nil, err
	}

	p, err := getProperty(state, compositekey.PropertyKey(propertyID))
	if nil != err {
		return nil, err
	}
	if nil == p {
		return nil, fault.ErrPropertyNotFound
	}
	return p, nil
}

// UpdateProperty - change the status of a property, only its owner
// may do this
func UpdateProperty(state State, propertyID string, ownerName string, ownerAadharNumber string, status string) (*record.Property, error) {
	if err := compositekey.Validate(ownerName, ownerAadharNumber); nil != err {
		return nil, err
	}

	propertyStatus, err := record.ParsePropertyStatus(status)
	if nil != err {
		return nil, err
	}

	p, err := ViewProperty(state, propertyID)
	if nil != err {
		return nil, err
	}

	if compositekey.UserKey(ownerName, ownerAadharNumber) != p.Owner {
		return nil, fault.ErrNotOwner
	}

	owner, err := getUser(state, p.Owner)
	if nil != err {
		return nil, err
	}
	if nil == owner {
		return nil, fault.ErrOwnerNotFound
	}

	p.Status = propertyStatus

	if err := putProperty(state, p); nil != err {
		return nil, err
	}
	return p, nil
}
