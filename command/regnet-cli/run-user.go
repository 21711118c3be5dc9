// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/regnet/regnetd/command/regnet-cli/rpccalls"
)

func runRequestUser(c *cli.Context) error {

	identity, err := checkUser(c.String("name"), c.String("aadhar"))
	if nil != err {
		return err
	}

	email, err := checkRequired(c.String("email"), ErrRequiredEmail)
	if nil != err {
		return err
	}

	phone, err := checkRequired(c.String("phone"), ErrRequiredPhoneNumber)
	if nil != err {
		return err
	}

	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.RequestUser(identity, email, phone)
	})
}

func runApproveUser(c *cli.Context) error {

	identity, err := checkUser(c.String("name"), c.String("aadhar"))
	if nil != err {
		return err
	}

	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.ApproveUser(identity)
	})
}

func runRecharge(c *cli.Context) error {

	identity, err := checkUser(c.String("name"), c.String("aadhar"))
	if nil != err {
		return err
	}

	txID, err := checkRequired(c.String("txid"), ErrRequiredTransactionID)
	if nil != err {
		return err
	}

	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.RechargeAccount(identity, txID)
	})
}

func runViewUser(c *cli.Context) error {

	identity, err := checkUser(c.String("name"), c.String("aadhar"))
	if nil != err {
		return err
	}

	asRegistrar := c.Bool("registrar")
	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.ViewUser(identity, asRegistrar)
	})
}
