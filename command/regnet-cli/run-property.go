// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/regnet/regnetd/command/regnet-cli/rpccalls"
)

func runRequestProperty(c *cli.Context) error {

	owner, err := checkUser(c.String("name"), c.String("aadhar"))
	if nil != err {
		return err
	}

	propertyID, err := checkPropertyID(c.String("property"))
	if nil != err {
		return err
	}

	price := c.Uint64("price")
	if 0 == price {
		return ErrRequiredPrice
	}

	status, err := checkStatus(c.String("status"))
	if nil != err {
		return err
	}

	property := rpccalls.PropertyData{
		PropertyID: propertyID,
		Price:      price,
		Status:     status,
		Owner:      owner,
	}
	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.RequestProperty(property)
	})
}

func runApproveProperty(c *cli.Context) error {

	propertyID, err := checkPropertyID(c.String("property"))
	if nil != err {
		return err
	}

	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.ApproveProperty(propertyID)
	})
}

func runViewProperty(c *cli.Context) error {

	propertyID, err := checkPropertyID(c.String("property"))
	if nil != err {
		return err
	}

	asRegistrar := c.Bool("registrar")
	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.ViewProperty(propertyID, asRegistrar)
	})
}

func runUpdateProperty(c *cli.Context) error {

	owner, err := checkUser(c.String("name"), c.String("aadhar"))
	if nil != err {
		return err
	}

	propertyID, err := checkPropertyID(c.String("property"))
	if nil != err {
		return err
	}

	status, err := checkStatus(c.String("status"))
	if nil != err {
		return err
	}

	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.UpdateProperty(propertyID, owner, status)
	})
}

func runPurchase(c *cli.Context) error {

	buyer, err := checkUser(c.String("name"), c.String("aadhar"))
	if nil != err {
		return err
	}

	propertyID, err := checkPropertyID(c.String("property"))
	if nil != err {
		return err
	}

	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.PurchaseProperty(propertyID, buyer)
	})
}

func runInfo(c *cli.Context) error {
	return withClient(c, func(client *rpccalls.Client) (interface{}, error) {
		return client.GetInfo()
	})
}
