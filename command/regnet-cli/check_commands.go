// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/regnet/regnetd/command/regnet-cli/rpccalls"
	"github.com/regnet/regnetd/fault"
	"github.com/regnet/regnetd/record"
)

// common errors - keep in alphabetic order
const (
	ErrRequiredAadharNumber  = fault.InvalidError("aadhar number is required")
	ErrRequiredConnect       = fault.InvalidError("connect is required")
	ErrRequiredEmail         = fault.InvalidError("email is required")
	ErrRequiredName          = fault.InvalidError("name is required")
	ErrRequiredPhoneNumber   = fault.InvalidError("phone number is required")
	ErrRequiredPrice         = fault.InvalidError("price is required")
	ErrRequiredPropertyID    = fault.InvalidError("property id is required")
	ErrRequiredTransactionID = fault.InvalidError("bank transaction id is required")
)

// connect is required
func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", ErrRequiredConnect
	}
	return connect, nil
}

// name and aadhar number are both required
func checkUser(name string, aadharNumber string) (rpccalls.UserData, error) {
	if "" == name {
		return rpccalls.UserData{}, ErrRequiredName
	}
	if "" == aadharNumber {
		return rpccalls.UserData{}, ErrRequiredAadharNumber
	}
	return rpccalls.UserData{
		Name:         name,
		AadharNumber: aadharNumber,
	}, nil
}

// property id is required
func checkPropertyID(propertyID string) (string, error) {
	if "" == propertyID {
		return "", ErrRequiredPropertyID
	}
	return propertyID, nil
}

// only the two known statuses are accepted
func checkStatus(status string) (string, error) {
	s, err := record.ParsePropertyStatus(status)
	if nil != err {
		return "", err
	}
	return string(s), nil
}

// a required non-blank string
func checkRequired(value string, err error) (string, error) {
	if "" == value {
		return "", err
	}
	return value, nil
}
