// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registrar - RPC calls made by the registrar
package registrar

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/regnet/regnetd/ledger"
	"github.com/regnet/regnetd/rpc/ratelimit"
	"github.com/regnet/regnetd/rpc/reply"
)

const (
	rateLimitRegistrar = 100
	rateBurstRegistrar = 50
)

// Registrar - type for approval RPC calls
type Registrar struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  *ledger.Ledger
}

// New - create the Registrar service
func New(log *logger.L, l *ledger.Ledger) *Registrar {
	return &Registrar{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitRegistrar, rateBurstRegistrar),
		Ledger:  l,
	}
}

// ApproveNewUser - admit a requested user with a zero balance
func (registrar *Registrar) ApproveNewUser(arguments *reply.UserArguments, r *reply.UserReply) error {

	if err := ratelimit.Limit(registrar.Limiter); nil != err {
		return err
	}

	registrar.Log.Infof("approve user: %q", arguments.Name)

	u, err := registrar.Ledger.ApproveUser(arguments.Name, arguments.AadharNumber)
	if nil != err {
		return err
	}
	reply.User(u, r)
	return nil
}

// ApprovePropertyRegistration - approve a property request
func (registrar *Registrar) ApprovePropertyRegistration(arguments *reply.PropertyArguments, r *reply.PropertyReply) error {

	if err := ratelimit.Limit(registrar.Limiter); nil != err {
		return err
	}

	registrar.Log.Infof("approve property: %q", arguments.PropertyID)

	p, err := registrar.Ledger.ApproveProperty(arguments.PropertyID)
	if nil != err {
		return err
	}
	return reply.Property(p, r)
}

// ViewUser - read a user
func (registrar *Registrar) ViewUser(arguments *reply.UserArguments, r *reply.UserReply) error {

	if err := ratelimit.Limit(registrar.Limiter); nil != err {
		return err
	}

	u, err := registrar.Ledger.ViewUser(arguments.Name, arguments.AadharNumber)
	if nil != err {
		return err
	}
	reply.User(u, r)
	return nil
}

// ViewProperty - read a property
func (registrar *Registrar) ViewProperty(arguments *reply.PropertyArguments, r *reply.PropertyReply) error {

	if err := ratelimit.Limit(registrar.Limiter); nil != err {
		return err
	}

	p, err := registrar.Ledger.ViewProperty(arguments.PropertyID)
	if nil != err {
		return err
	}
	return reply.Property(p, r)
}
