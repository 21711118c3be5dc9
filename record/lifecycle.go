// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/regnet/regnetd/fault"
)

// Lifecycle - registration state shared by both record types
type Lifecycle string

// possible lifecycle states
const (
	Requested Lifecycle = "requested"
	Approved  Lifecycle = "approved"
)

// Valid - check for a known lifecycle state
func (l Lifecycle) Valid() bool {
	switch l {
	case Requested, Approved:
		return true
	default:
		return false
	}
}

// PropertyStatus - whether a property can be bought
type PropertyStatus string

// possible property status values
const (
	Registered PropertyStatus = "registered"
	OnSale     PropertyStatus = "onSale"
)

// ParsePropertyStatus - convert caller text to a status
func ParsePropertyStatus(s string) (PropertyStatus, error) {
	status := PropertyStatus(s)
	if !status.Valid() {
		return "", fault.ErrInvalidPropertyStatus
	}
	return status, nil
}

// Valid - check for a known status
func (s PropertyStatus) Valid() bool {
	switch s {
	case Registered, OnSale:
		return true
	default:
		return false
	}
}
