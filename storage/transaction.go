// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/regnet/regnetd/fault"
)

// Element - a versioned value read from the store
type Element struct {
	Key     []byte
	Value   []byte
	Version uint64
}

//go:generate mockgen -destination=mocks/storage.go -package=mocks github.com/regnet/regnetd/storage Store,Transaction

// Transaction - one unit of work against the store
type Transaction interface {
	Get([]byte) (*Element, error)
	Put([]byte, []byte)
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex

	database *Database
	snapshot *leveldb.Snapshot
	reads    map[string]uint64 // read set: key -> version seen
	writes   Cache
	done     bool
}

// Begin - start a transaction on a snapshot of the current state
func (d *Database) Begin() (Transaction, error) {
	d.Lock()
	defer d.Unlock()

	if d.closed {
		return nil, fault.ErrStoreClosed
	}

	snapshot, err := d.db.GetSnapshot()
	if nil != err {
		return nil, err
	}

	return &transaction{
		database: d,
		snapshot: snapshot,
		reads:    make(map[string]uint64),
		writes:   newCache(),
	}, nil
}

// Get - read a key
//
// returns nil if the key was never written; a staged write from this
// transaction is returned in preference to the snapshot
func (t *transaction) Get(key []byte) (*Element, error) {
	t.Lock()
	defer t.Unlock()

	if t.done {
		return nil, fault.ErrTransactionClosed
	}

	k := string(key)
	if value, found := t.writes.Get(k); found {
		return &Element{
			Key:     copyBytes(key),
			Value:   copyBytes(value),
			Version: t.reads[k],
		}, nil
	}

	buffer, err := t.snapshot.Get(prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		t.remember(k, 0)
		return nil, nil
	} else if nil != err {
		return nil, err
	}

	version, value, err := unpackVersioned(buffer)
	if nil != err {
		return nil, err
	}
	t.remember(k, version)

	return &Element{
		Key:     copyBytes(key),
		Value:   value,
		Version: version,
	}, nil
}

// only the first read of a key counts, the snapshot cannot change
func (t *transaction) remember(key string, version uint64) {
	if _, ok := t.reads[key]; !ok {
		t.reads[key] = version
	}
}

// Put - stage a write, visible to later reads in this transaction
//
// writes after Commit or Abort are discarded
func (t *transaction) Put(key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()

	if t.done {
		t.database.log.Warnf("put after transaction finished: %x", key)
		return
	}
	t.writes.Set(string(key), copyBytes(value))
}

// Commit - validate the read set and apply all staged writes
// atomically
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if t.done {
		return fault.ErrTransactionClosed
	}
	defer t.finish()

	d := t.database
	d.Lock()
	defer d.Unlock()

	if d.closed {
		return fault.ErrStoreClosed
	}

	for k, seen := range t.reads {
		current, err := d.currentVersion([]byte(k))
		if nil != err {
			return err
		}
		if current != seen {
			d.log.Debugf("conflict on key: %x  read version: %d  current version: %d", k, seen, current)
			return fault.ErrCommitConflict
		}
	}

	items := t.writes.Items()
	if 0 == len(items) {
		return nil
	}

	sequence := d.sequence + 1
	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, sequence)

	batch := new(leveldb.Batch)
	for k, value := range items {
		data := make([]byte, 0, len(n)+len(value))
		data = append(data, n...)
		data = append(data, value...)
		batch.Put(prefixKey([]byte(k)), data)
	}
	batch.Put(sequenceKey, n)

	err := d.db.Write(batch, &ldb_opt.WriteOptions{Sync: d.syncWrites})
	if nil != err {
		d.log.Errorf("commit write error: %s", err)
		return err
	}
	d.sequence = sequence

	d.log.Debugf("committed sequence: %d  keys: %d", sequence, len(items))
	return nil
}

// Abort - discard all staged writes
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	if t.done {
		return
	}
	t.finish()
}

// must hold the transaction lock
func (t *transaction) finish() {
	t.done = true
	t.writes.Clear()
	t.snapshot.Release()
}

// version of the live state, zero if absent
// must hold the database lock
func (d *Database) currentVersion(key []byte) (uint64, error) {
	buffer, err := d.db.Get(prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}
	version, _, err := unpackVersioned(buffer)
	return version, err
}

// prepend the state prefix onto the key
func prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = statePrefix
	return append(prefixedKey, key...)
}

// split a stored value into version and record
func unpackVersioned(buffer []byte) (uint64, []byte, error) {
	if len(buffer) < 8 {
		return 0, nil, fault.ErrTruncatedRecord
	}
	return binary.BigEndian.Uint64(buffer[:8]), buffer[8:], nil
}

func copyBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
