// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/json"

	"github.com/regnet/regnetd/fault"
)

// Packed - the byte form of a record as held in the store
type Packed []byte

// Pack - encode a user
func (u *User) Pack() (Packed, error) {
	if !u.State.Valid() {
		return nil, fault.ErrInvalidLifecycle
	}
	return json.Marshal(u)
}

// Pack - encode a property
func (p *Property) Pack() (Packed, error) {
	if !p.State.Valid() {
		return nil, fault.ErrInvalidLifecycle
	}
	if !p.Status.Valid() {
		return nil, fault.ErrInvalidPropertyStatus
	}
	return json.Marshal(p)
}

// UnpackUser - decode a user, the identity fields and lifecycle must
// be present
func (record Packed) UnpackUser() (*User, error) {
	if 0 == len(record) {
		return nil, fault.ErrMalformedRecord
	}

	u := &User{}
	if err := json.Unmarshal(record, u); nil != err {
		return nil, fault.ErrMalformedRecord
	}
	if "" == u.Name || "" == u.AadharNumber || !u.State.Valid() {
		return nil, fault.ErrMalformedRecord
	}
	return u, nil
}

// UnpackProperty - decode a property, the identity, owner, status and
// lifecycle must be present
func (record Packed) UnpackProperty() (*Property, error) {
	if 0 == len(record) {
		return nil, fault.ErrMalformedRecord
	}

	p := &Property{}
	if err := json.Unmarshal(record, p); nil != err {
		return nil, fault.ErrMalformedRecord
	}
	if "" == p.PropertyID || "" == p.Owner || !p.Status.Valid() || !p.State.Valid() {
		return nil, fault.ErrMalformedRecord
	}
	return p, nil
}
