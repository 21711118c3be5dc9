// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/regnet/regnetd/rpc/reply"
	"github.com/regnet/regnetd/rpc/user"
)

// UserData - identity of a participant
type UserData struct {
	Name         string
	AadharNumber string
}

func (d UserData) arguments() *reply.UserArguments {
	return &reply.UserArguments{
		Name:         d.Name,
		AadharNumber: d.AadharNumber,
	}
}

// RequestUser - ask to be registered
func (c *Client) RequestUser(identity UserData, email string, phoneNumber string) (*reply.UserReply, error) {
	arguments := user.RequestArguments{
		Name:         identity.Name,
		Email:        email,
		PhoneNumber:  phoneNumber,
		AadharNumber: identity.AadharNumber,
	}
	var r reply.UserReply
	if err := c.call("User.RequestNewUser", &arguments, &r); nil != err {
		return nil, err
	}
	return &r, nil
}

// ApproveUser - registrar approval of a requested user
func (c *Client) ApproveUser(identity UserData) (*reply.UserReply, error) {
	var r reply.UserReply
	if err := c.call("Registrar.ApproveNewUser", identity.arguments(), &r); nil != err {
		return nil, err
	}
	return &r, nil
}

// RechargeAccount - load coins from a bank transaction code
func (c *Client) RechargeAccount(identity UserData, transactionID string) (*reply.UserReply, error) {
	arguments := user.RechargeArguments{
		Name:          identity.Name,
		AadharNumber:  identity.AadharNumber,
		TransactionID: transactionID,
	}
	var r reply.UserReply
	if err := c.call("User.RechargeAccount", &arguments, &r); nil != err {
		return nil, err
	}
	return &r, nil
}

// ViewUser - read a user, asRegistrar selects the registrar service
func (c *Client) ViewUser(identity UserData, asRegistrar bool) (*reply.UserReply, error) {
	method := "User.ViewUser"
	if asRegistrar {
		method = "Registrar.ViewUser"
	}
	var r reply.UserReply
	if err := c.call(method, identity.arguments(), &r); nil != err {
		return nil, err
	}
	return &r, nil
}
