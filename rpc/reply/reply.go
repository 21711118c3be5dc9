// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reply - record presentation shared by the RPC services
package reply

import (
	"time"

	"github.com/regnet/regnetd/compositekey"
	"github.com/regnet/regnetd/record"
)

// UserArguments - identity of a user
type UserArguments struct {
	Name         string `json:"name"`
	AadharNumber string `json:"aadharNumber"`
}

// PropertyArguments - identity of a property
type PropertyArguments struct {
	PropertyID string `json:"propertyId"`
}

// UserInfo - a user as presented to clients
type UserInfo struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	AadharNumber string    `json:"aadharNumber"`
	CreatedAt    time.Time `json:"createdAt"`
	UpgradCoins  *uint64   `json:"upgradCoins,omitempty"`
	State        string    `json:"state"`
}

// UserReply - result of any user operation
type UserReply struct {
	User UserInfo `json:"user"`
}

// PropertyInfo - a property with its owner key split into identity
type PropertyInfo struct {
	PropertyID        string    `json:"propertyId"`
	OwnerName         string    `json:"ownerName"`
	OwnerAadharNumber string    `json:"ownerAadharNumber"`
	Price             uint64    `json:"price"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	State             string    `json:"state"`
}

// PropertyReply - result of any property operation
type PropertyReply struct {
	Property PropertyInfo `json:"property"`
}

// User - fill a user reply
func User(u *record.User, reply *UserReply) {
	reply.User = UserInfo{
		Name:         u.Name,
		Email:        u.Email,
		PhoneNumber:  u.PhoneNumber,
		AadharNumber: u.AadharNumber,
		CreatedAt:    u.CreatedAt,
		UpgradCoins:  u.UpgradCoins,
		State:        string(u.State),
	}
}

// Property - fill a property reply, fails only if the stored owner
// is not a user key
func Property(p *record.Property, reply *PropertyReply) error {
	name, aadharNumber, err := compositekey.SplitUserKey(p.Owner)
	if nil != err {
		return err
	}
	reply.Property = PropertyInfo{
		PropertyID:        p.PropertyID,
		OwnerName:         name,
		OwnerAadharNumber: aadharNumber,
		Price:             p.Price,
		Status:            string(p.Status),
		CreatedAt:         p.CreatedAt,
		State:             string(p.State),
	}
	return nil
}
