// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"time"

	"github.com/regnet/regnetd/compositekey"
)

// Property - a registrable asset
//
// Owner is the composite key of the owning user record
type Property struct {
	PropertyID string           `json:"propertyID"`
	Owner      compositekey.Key `json:"owner"`
	Price      uint64           `json:"price"`
	Status     PropertyStatus   `json:"status"`
	CreatedAt  time.Time        `json:"createdAt"`
	State      Lifecycle        `json:"state"`
}

// Key - the composite key of this property
func (p *Property) Key() compositekey.Key {
	return compositekey.PropertyKey(p.PropertyID)
}

// IsApproved - true once the registrar has activated the property
func (p *Property) IsApproved() bool {
	return Approved == p.State
}
