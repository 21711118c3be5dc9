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

// bank transaction ids accepted by a recharge and the credit each one
// sets
var rechargeAmounts = map[string]uint64{
	"upg100":  100,
	"upg500":  500,
	"upg1000": 1000,
}

// RechargeAmount - the credit tied to a bank transaction id
func RechargeAmount(transactionID string) (uint64, bool) {
	amount, ok := rechargeAmounts[transactionID]
	return amount, ok
}

// RequestUser - store a new user request
//
// an existing record at the same key is replaced
func RequestUser(state State, name string, aadharNumber string, email string, phoneNumber string) (*record.User, error) {
	if err := compositekey.Validate(name, aadharNumber); nil != err {
		return nil, err
	}

	u := &record.User{
		Name:         name,
		Email:        email,
		PhoneNumber:  phoneNumber,
		AadharNumber: aadharNumber,
		CreatedAt:    time.Now().UTC(),
		State:        record.Requested,
	}

	if err := putUser(state, u); nil != err {
		return nil, err
	}
	return u, nil
}

// ApproveUser - activate a requested user with a zero balance
//
// an approved user is returned unchanged
func ApproveUser(state State, name string, aadharNumber string) (*record.User, error) {
	u, err := ViewUser(state, name, aadharNumber)
	if nil != err {
		return nil, err
	}

	if record.Approved == u.State {
		return u, nil
	}

	u.State = record.Approved
	u.SetBalance(0)

	if err := putUser(state, u); nil != err {
		return nil, err
	}
	return u, nil
}

// RechargeAccount - set the balance to the amount of a bank
// transaction
//
// the balance is replaced, not increased
func RechargeAccount(state State, name string, aadharNumber string, transactionID string) (*record.User, error) {
	amount, ok := RechargeAmount(transactionID)
	if !ok {
		return nil, fault.ErrInvalidTransaction
	}

	u, err := ViewUser(state, name, aadharNumber)
	if nil != err {
		return nil, err
	}

	u.SetBalance(amount)

	if err := putUser(state, u); nil != err {
		return nil, err
	}
	return u, nil
}

// ViewUser - read a user
func ViewUser(state State, name string, aadharNumber string) (*record.User, error) {
	if err := compositekey.Validate(name, aadharNumber); nil != err {
		return nil, err
	}

	u, err := getUser(state, compositekey.UserKey(name, aadharNumber))
	if nil != err {
		return nil, err
	}
	if nil == u {
		return nil, fault.ErrUserNotFound
	}
	return u, nil
}
