// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"time"

	"github.com/regnet/regnetd/compositekey"
)

// User - a participant
//
// UpgradCoins is nil until the user is approved
type User struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	AadharNumber string    `json:"aadharNumber"`
	CreatedAt    time.Time `json:"createdAt"`
	UpgradCoins  *uint64   `json:"upgradCoins,omitempty"`
	State        Lifecycle `json:"state"`
}

// Key - the composite key of this user
func (u *User) Key() compositekey.Key {
	return compositekey.UserKey(u.Name, u.AadharNumber)
}

// IsApproved - true once the registrar has activated the user
func (u *User) IsApproved() bool {
	return Approved == u.State && nil != u.UpgradCoins
}

// Balance - current credit, zero if no balance exists yet
func (u *User) Balance() uint64 {
	if nil == u.UpgradCoins {
		return 0
	}
	return *u.UpgradCoins
}

// SetBalance - replace the credit balance
func (u *User) SetBalance(coins uint64) {
	u.UpgradCoins = &coins
}
