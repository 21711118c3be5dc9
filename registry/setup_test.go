// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/regnet/regnetd/compositekey"
	"github.com/regnet/regnetd/fixtures"
	"github.com/regnet/regnetd/record"
	"github.com/regnet/regnetd/registry"
	"github.com/regnet/regnetd/storage"
)

const (
	buyerName    = "bhavna"
	buyerAadhar  = "111122223333"
	sellerName   = "suresh"
	sellerAadhar = "444455556666"
	propertyID   = "PLOT-42"
)

func setup(t *testing.T) *storage.Database {
	fixtures.SetupTestLogger()

	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return db
}

func teardown(db *storage.Database) {
	_ = db.Close()
	fixtures.TeardownTestLogger()
}

// run one operation in its own committed transaction
func inTransaction(t *testing.T, db storage.Store, operation func(registry.State) error) error {
	trx, err := db.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	if err := operation(trx); nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}

// must succeed
func mustRun(t *testing.T, db storage.Store, operation func(registry.State) error) {
	if err := inTransaction(t, db, operation); nil != err {
		t.Fatalf("operation error: %s", err)
	}
}

// create an approved user with a balance, zero balance leaves the
// approval balance untouched
func approvedUser(t *testing.T, db storage.Store, name string, aadhar string, transactionID string) {
	mustRun(t, db, func(s registry.State) error {
		_, err := registry.RequestUser(s, name, aadhar, name+"@example.com", "9000000000")
		return err
	})
	mustRun(t, db, func(s registry.State) error {
		_, err := registry.ApproveUser(s, name, aadhar)
		return err
	})
	if "" != transactionID {
		mustRun(t, db, func(s registry.State) error {
			_, err := registry.RechargeAccount(s, name, aadhar, transactionID)
			return err
		})
	}
}

// create an approved property owned by the seller
func approvedProperty(t *testing.T, db storage.Store, price uint64, status string) {
	mustRun(t, db, func(s registry.State) error {
		_, err := registry.RequestProperty(s, propertyID, price, status, sellerName, sellerAadhar)
		return err
	})
	mustRun(t, db, func(s registry.State) error {
		_, err := registry.ApproveProperty(s, propertyID)
		return err
	})
}

func viewUser(t *testing.T, db storage.Store, name string, aadhar string) *record.User {
	var u *record.User
	mustRun(t, db, func(s registry.State) error {
		var err error
		u, err = registry.ViewUser(s, name, aadhar)
		return err
	})
	return u
}

func viewProperty(t *testing.T, db storage.Store) *record.Property {
	var p *record.Property
	mustRun(t, db, func(s registry.State) error {
		var err error
		p, err = registry.ViewProperty(s, propertyID)
		return err
	})
	return p
}

// raw store value at a key, nil if absent
func rawValue(t *testing.T, db storage.Store, key compositekey.Key) []byte {
	trx, err := db.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	defer trx.Abort()

	e, err := trx.Get(key.Bytes())
	if nil != err {
		t.Fatalf("get error: %s", err)
	}
	if nil == e {
		return nil
	}
	return e.Value
}
