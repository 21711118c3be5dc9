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
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/logger"

	"github.com/regnet/regnetd/fault"
)

// table prefixes
const (
	metaPrefix  = 'M'
	statePrefix = 'S'
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

// for the commit counter
var sequenceKey = []byte{metaPrefix, 's', 'e', 'q', 'u', 'e', 'n', 'c', 'e'}

const (
	currentDBVersion = 0x100
)

// Options - database open settings
type Options struct {
	Sync bool // fsync every commit
}

// Store - the state store seen by the ledger
type Store interface {
	Begin() (Transaction, error)
	Sequence() uint64
	Close() error
}

// Database - a LevelDB backed Store
type Database struct {
	sync.Mutex // serialises commits

	log        *logger.L
	db         *leveldb.DB
	sequence   uint64
	syncWrites bool
	closed     bool
}

// Open - open or create the database at a path
func Open(fileName string, options Options) (*Database, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
	}

	db, err := leveldb.OpenFile(fileName, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, options)
}

// OpenMemory - a database that lives only as long as the process,
// used by tests
func OpenMemory() (*Database, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, Options{})
}

func setup(db *leveldb.DB, options Options) (*Database, error) {
	log := logger.New("storage")

	version, err := getVersion(db)
	if nil != err {
		db.Close()
		return nil, err
	}

	switch version {
	case 0:
		// database was empty so tag as current version
		if err := putVersion(db, currentDBVersion); nil != err {
			db.Close()
			return nil, err
		}
	case currentDBVersion:
	default:
		log.Criticalf("database version: %d  current version: %d", version, currentDBVersion)
		db.Close()
		return nil, fault.ErrDatabaseVersion
	}

	sequence, err := getSequence(db)
	if nil != err {
		db.Close()
		return nil, err
	}

	log.Infof("opened at sequence: %d", sequence)

	return &Database{
		log:        log,
		db:         db,
		sequence:   sequence,
		syncWrites: options.Sync,
	}, nil
}

// Sequence - number of the last successful commit
func (d *Database) Sequence() uint64 {
	d.Lock()
	defer d.Unlock()
	return d.sequence
}

// Close - close the database, open transactions can no longer commit
func (d *Database) Close() error {
	d.Lock()
	defer d.Unlock()

	if d.closed {
		return fault.ErrStoreClosed
	}
	d.closed = true
	d.log.Info("closed")
	return d.db.Close()
}

// return the version, zero for a new database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fault.ErrDatabaseVersion
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

func getSequence(db *leveldb.DB) (uint64, error) {
	value, err := db.Get(sequenceKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}
	if 8 != len(value) {
		return 0, fault.ErrTruncatedRecord
	}
	return binary.BigEndian.Uint64(value), nil
}
