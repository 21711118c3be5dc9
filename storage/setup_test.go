// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/regnet/regnetd/fault"
	"github.com/regnet/regnetd/fixtures"
	"github.com/regnet/regnetd/storage"
)

// test database file
const (
	databaseFileName = "test.leveldb"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
}

// configure for testing
func setup(t *testing.T) *storage.Database {
	fixtures.SetupTestLogger()

	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return db
}

// post test cleanup
func teardown(db *storage.Database) {
	_ = db.Close()
	fixtures.TeardownTestLogger()
}

// commit a single key/value pair
func commitOne(t *testing.T, db storage.Store, key string, value string) {
	trx, err := db.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	trx.Put([]byte(key), []byte(value))
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

func TestReopenKeepsStateAndSequence(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	removeFiles()
	defer removeFiles()

	db, err := storage.Open(databaseFileName, storage.Options{Sync: true})
	assert.Nil(t, err, "open error")

	commitOne(t, db, "key-one", "data-one")
	commitOne(t, db, "key-two", "data-two")
	assert.Equal(t, uint64(2), db.Sequence(), "wrong sequence")
	assert.Nil(t, db.Close(), "close error")

	db, err = storage.Open(databaseFileName, storage.Options{})
	assert.Nil(t, err, "reopen error")
	defer db.Close()

	assert.Equal(t, uint64(2), db.Sequence(), "sequence lost on reopen")

	trx, err := db.Begin()
	assert.Nil(t, err, "begin error")
	defer trx.Abort()

	e, err := trx.Get([]byte("key-one"))
	assert.Nil(t, err, "get error")
	assert.NotNil(t, e, "key missing after reopen")
	assert.Equal(t, []byte("data-one"), e.Value, "wrong value")
	assert.Equal(t, uint64(1), e.Version, "wrong version")
}

func TestClosedStore(t *testing.T) {
	db := setup(t)
	defer fixtures.TeardownTestLogger()

	trx, err := db.Begin()
	assert.Nil(t, err, "begin error")
	trx.Put([]byte("k"), []byte("v"))

	assert.Nil(t, db.Close(), "close error")
	assert.Equal(t, fault.ErrStoreClosed, db.Close(), "second close allowed")

	_, err = db.Begin()
	assert.Equal(t, fault.ErrStoreClosed, err, "begin on closed store")

	err = trx.Commit()
	assert.Equal(t, fault.ErrStoreClosed, err, "commit on closed store")
}
