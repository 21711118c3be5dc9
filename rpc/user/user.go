// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package user

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/regnet/regnetd/ledger"
	"github.com/regnet/regnetd/rpc/ratelimit"
	"github.com/regnet/regnetd/rpc/reply"
)

const (
	rateLimitUser = 200
	rateBurstUser = 100
)

// User - type for the participant side RPC calls
type User struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  *ledger.Ledger
}

// New - create the User service
func New(log *logger.L, l *ledger.Ledger) *User {
	return &User{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitUser, rateBurstUser),
		Ledger:  l,
	}
}

// ---

// RequestArguments - arguments for a new user request
type RequestArguments struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	AadharNumber string `json:"aadharNumber"`
}

// RequestNewUser - ask the registrar to admit a user
func (user *User) RequestNewUser(arguments *RequestArguments, r *reply.UserReply) error {

	if err := ratelimit.Limit(user.Limiter); nil != err {
		return err
	}

	user.Log.Infof("request new user: %q", arguments.Name)

	u, err := user.Ledger.RequestUser(arguments.Name, arguments.AadharNumber, arguments.Email, arguments.PhoneNumber)
	if nil != err {
		return err
	}
	reply.User(u, r)
	return nil
}

// ---

// RechargeArguments - arguments to recharge an account
type RechargeArguments struct {
	Name          string `json:"name"`
	AadharNumber  string `json:"aadharNumber"`
	TransactionID string `json:"bankTransactionId"`
}

// RechargeAccount - set the balance from a bank transaction id
func (user *User) RechargeAccount(arguments *RechargeArguments, r *reply.UserReply) error {

	if err := ratelimit.Limit(user.Limiter); nil != err {
		return err
	}

	user.Log.Infof("recharge: %q  transaction: %q", arguments.Name, arguments.TransactionID)

	u, err := user.Ledger.RechargeAccount(arguments.Name, arguments.AadharNumber, arguments.TransactionID)
	if nil != err {
		return err
	}
	reply.User(u, r)
	return nil
}

// ViewUser - read a user
func (user *User) ViewUser(arguments *reply.UserArguments, r *reply.UserReply) error {

	if err := ratelimit.Limit(user.Limiter); nil != err {
		return err
	}

	u, err := user.Ledger.ViewUser(arguments.Name, arguments.AadharNumber)
	if nil != err {
		return err
	}
	reply.User(u, r)
	return nil
}

// ---

// PropertyRequestArguments - arguments to register a property
type PropertyRequestArguments struct {
	PropertyID   string `json:"propertyId"`
	Price        uint64 `json:"price"`
	Status       string `json:"status"`
	Name         string `json:"name"`
	AadharNumber string `json:"aadharNumber"`
}

// PropertyRegistrationRequest - ask the registrar to record a property
func (user *User) PropertyRegistrationRequest(arguments *PropertyRequestArguments, r *reply.PropertyReply) error {

	if err := ratelimit.Limit(user.Limiter); nil != err {
		return err
	}

	user.Log.Infof("property request: %q  owner: %q", arguments.PropertyID, arguments.Name)

	p, err := user.Ledger.RequestProperty(arguments.PropertyID, arguments.Price, arguments.Status, arguments.Name, arguments.AadharNumber)
	if nil != err {
		return err
	}
	return reply.Property(p, r)
}

// ViewProperty - read a property
func (user *User) ViewProperty(arguments *reply.PropertyArguments, r *reply.PropertyReply) error {

	if err := ratelimit.Limit(user.Limiter); nil != err {
		return err
	}

	p, err := user.Ledger.ViewProperty(arguments.PropertyID)
	if nil != err {
		return err
	}
	return reply.Property(p, r)
}

// ---

// UpdateArguments - arguments for an owner status change
type UpdateArguments struct {
	PropertyID   string `json:"propertyId"`
	Name         string `json:"name"`
	AadharNumber string `json:"aadharNumber"`
	Status       string `json:"status"`
}

// UpdateProperty - owner sets registered or onSale
func (user *User) UpdateProperty(arguments *UpdateArguments, r *reply.PropertyReply) error {

	if err := ratelimit.Limit(user.Limiter); nil != err {
		return err
	}

	user.Log.Infof("update property: %q  status: %q", arguments.PropertyID, arguments.Status)

	p, err := user.Ledger.UpdateProperty(arguments.PropertyID, arguments.Name, arguments.AadharNumber, arguments.Status)
	if nil != err {
		return err
	}
	return reply.Property(p, r)
}

// ---

// PurchaseArguments - arguments for a purchase
type PurchaseArguments struct {
	PropertyID   string `json:"propertyId"`
	Name         string `json:"name"`
	AadharNumber string `json:"aadharNumber"`
}

// PurchaseProperty - buy an on sale property
func (user *User) PurchaseProperty(arguments *PurchaseArguments, r *reply.PropertyReply) error {

	if err := ratelimit.Limit(user.Limiter); nil != err {
		return err
	}

	user.Log.Infof("purchase: %q  buyer: %q", arguments.PropertyID, arguments.Name)

	p, err := user.Ledger.PurchaseProperty(arguments.PropertyID, arguments.Name, arguments.AadharNumber)
	if nil != err {
		return err
	}
	return reply.Property(p, r)
}
