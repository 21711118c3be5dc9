// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/regnet/regnetd/compositekey"
	"github.com/regnet/regnetd/record"
	"github.com/regnet/regnetd/storage"
)

// State - the read and write primitives of the current transaction
//
// Get returns nil for a key that was never written
type State interface {
	Get([]byte) (*storage.Element, error)
	Put([]byte, []byte)
}

// read a user, nil if absent
func getUser(state State, key compositekey.Key) (*record.User, error) {
	e, err := state.Get(key.Bytes())
	if nil != err {
		return nil, err
	}
	if nil == e {
		return nil, nil
	}
	return record.Packed(e.Value).UnpackUser()
}

// read a property, nil if absent
func getProperty(state State, key compositekey.Key) (*record.Property, error) {
	e, err := state.Get(key.Bytes())
	if nil != err {
		return nil, err
	}
	if nil == e {
		return nil, nil
	}
	return record.Packed(e.Value).UnpackProperty()
}

func putUser(state State, u *record.User) error {
	packed, err := u.Pack()
	if nil != err {
		return err
	}
	state.Put(u.Key().Bytes(), packed)
	return nil
}

func putProperty(state State, p *record.Property) error {
	packed, err := p.Pack()
	if nil != err {
		return err
	}
	state.Put(p.Key().Bytes(), packed)
	return nil
}
