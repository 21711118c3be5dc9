// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/regnet/regnetd/rpc/node"
	"github.com/regnet/regnetd/rpc/reply"
	"github.com/regnet/regnetd/rpc/user"
)

// PropertyData - a registration request
type PropertyData struct {
	PropertyID string
	Price      uint64
	Status     string
	Owner      UserData
}

// RequestProperty - owner asks for a property to be registered
func (c *Client) RequestProperty(property PropertyData) (*reply.PropertyReply, error) {
	arguments := user.PropertyRequestArguments{
		PropertyID:   property.PropertyID,
		Price:        property.Price,
		Status:       property.Status,
		Name:         property.Owner.Name,
		AadharNumber: property.Owner.AadharNumber,
	}
	var r reply.PropertyReply
	if err := c.call("User.PropertyRegistrationRequest", &arguments, &r); nil != err {
		return nil, err
	}
	return &r, nil
}

// ApproveProperty - registrar approval of a requested property
func (c *Client) ApproveProperty(propertyID string) (*reply.PropertyReply, error) {
	arguments := reply.PropertyArguments{
		PropertyID: propertyID,
	}
	var r reply.PropertyReply
	if err := c.call("Registrar.ApprovePropertyRegistration", &arguments, &r); nil != err {
		return nil, err
	}
	return &r, nil
}

// ViewProperty - read a property, asRegistrar selects the registrar service
func (c *Client) ViewProperty(propertyID string, asRegistrar bool) (*reply.PropertyReply, error) {
	method := "User.ViewProperty"
	if asRegistrar {
		method = "Registrar.ViewProperty"
	}
	arguments := reply.PropertyArguments{
		PropertyID: propertyID,
	}
	var r reply.PropertyReply
	if err := c.call(method, &arguments, &r); nil != err {
		return nil, err
	}
	return &r, nil
}

// UpdateProperty - owner changes the sale status
func (c *Client) UpdateProperty(propertyID string, owner UserData, status string) (*reply.PropertyReply, error) {
	arguments := user.UpdateArguments{
		PropertyID:   propertyID,
		Name:         owner.Name,
		AadharNumber: owner.AadharNumber,
		Status:       status,
	}
	var r reply.PropertyReply
	if err := c.call("User.UpdateProperty", &arguments, &r); nil != err {
		return nil, err
	}
	return &r, nil
}

// PurchaseProperty - buyer takes ownership of a property on sale
func (c *Client) PurchaseProperty(propertyID string, buyer UserData) (*reply.PropertyReply, error) {
	arguments := user.PurchaseArguments{
		PropertyID:   propertyID,
		Name:         buyer.Name,
		AadharNumber: buyer.AadharNumber,
	}
	var r reply.PropertyReply
	if err := c.call("User.PurchaseProperty", &arguments, &r); nil != err {
		return nil, err
	}
	return &r, nil
}

// GetInfo - node status and ledger statistics
func (c *Client) GetInfo() (*node.InfoReply, error) {
	var r node.InfoReply
	if err := c.call("Node.Info", &node.InfoArguments{}, &r); nil != err {
		return nil, err
	}
	return &r, nil
}
