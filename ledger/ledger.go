// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/regnet/regnetd/compositekey"
	"github.com/regnet/regnetd/counter"
	"github.com/regnet/regnetd/fault"
	"github.com/regnet/regnetd/messagebus"
	"github.com/regnet/regnetd/registry"
	"github.com/regnet/regnetd/storage"
)

// operation names as announced on the message bus
const (
	OpRequestUser     = "requestUser"
	OpApproveUser     = "approveUser"
	OpRechargeAccount = "rechargeAccount"
	OpRequestProperty = "requestProperty"
	OpApproveProperty = "approveProperty"
	OpUpdateProperty  = "updateProperty"
	OpPurchase        = "purchaseProperty"
)

// Ledger - binds registry operations to a store
type Ledger struct {
	log    *logger.L
	store  storage.Store
	events *messagebus.Queue

	committed counter.Counter
	rejected  counter.Counter
	conflicts counter.Counter
	failed    counter.Counter
	views     counter.Counter
}

// Statistics - invocation counts since start
type Statistics struct {
	Committed uint64 `json:"committed"`
	Rejected  uint64 `json:"rejected"`
	Conflicts uint64 `json:"conflicts"`
	Failed    uint64 `json:"failed"`
	Views     uint64 `json:"views"`
	Sequence  uint64 `json:"sequence"`
}

// New - create a ledger, events may be nil
func New(log *logger.L, store storage.Store, events *messagebus.Queue) *Ledger {
	return &Ledger{
		log:    log,
		store:  store,
		events: events,
	}
}

// Statistics - snapshot of the counters
func (l *Ledger) Statistics() Statistics {
	return Statistics{
		Committed: l.committed.Uint64(),
		Rejected:  l.rejected.Uint64(),
		Conflicts: l.conflicts.Uint64(),
		Failed:    l.failed.Uint64(),
		Views:     l.views.Uint64(),
		Sequence:  l.store.Sequence(),
	}
}

// a mutating operation: returns the key of its primary record
type mutation func(state registry.State) (compositekey.Key, error)

// run a mutation in one transaction
func (l *Ledger) invoke(operation string, fn mutation) error {
	trx, err := l.store.Begin()
	if nil != err {
		l.failed.Increment()
		l.log.Errorf("%s: begin error: %s", operation, err)
		return err
	}

	key, err := fn(trx)
	if nil != err {
		trx.Abort()
		l.rejected.Increment()
		l.log.Infof("%s: rejected: %s", operation, err)
		return err
	}

	err = trx.Commit()
	if nil != err {
		if fault.IsErrConflict(err) {
			l.conflicts.Increment()
			l.log.Warnf("%s: key: %q  %s", operation, key, err)
		} else {
			l.failed.Increment()
			l.log.Errorf("%s: key: %q  commit error: %s", operation, key, err)
		}
		return err
	}

	l.committed.Increment()
	l.log.Debugf("%s: committed key: %q", operation, key)

	if nil != l.events {
		l.events.Send(operation, key)
	}
	return nil
}

// run a read only operation, the transaction is always discarded
func (l *Ledger) view(fn func(state registry.State) error) error {
	trx, err := l.store.Begin()
	if nil != err {
		l.failed.Increment()
		l.log.Errorf("view: begin error: %s", err)
		return err
	}
	defer trx.Abort()

	l.views.Increment()
	return fn(trx)
}
