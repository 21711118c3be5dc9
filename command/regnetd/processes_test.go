// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/regnet/regnetd/compositekey"
	"github.com/regnet/regnetd/fixtures"
	"github.com/regnet/regnetd/ledger"
	"github.com/regnet/regnetd/messagebus"
	"github.com/regnet/regnetd/storage"
)

func TestEventLogger(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	events := messagebus.New(10)
	events.Send(ledger.OpRequestUser, compositekey.UserKey("alice", "123456789012"))
	events.Send(ledger.OpRequestProperty, compositekey.PropertyKey("001"))

	e := newEventLogger(events)
	shutdown := make(chan struct{})
	done := make(chan struct{})
	go func() {
		e.Run(nil, shutdown)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return 0 == len(events.Chan())
	}, time.Second, 5*time.Millisecond, "events not drained")

	close(shutdown)
	<-done
	assert.Equal(t, uint64(2), e.count, "wrong event count")
}

func TestDescribeKey(t *testing.T) {
	assert.Equal(t,
		compositekey.UserNamespace+` ["alice","123456789012"]`,
		describeKey(compositekey.UserKey("alice", "123456789012")),
		"user key")
	assert.Equal(t,
		compositekey.PropertyNamespace+` ["001"]`,
		describeKey(compositekey.PropertyKey("001")),
		"property key")
	assert.Contains(t, describeKey(compositekey.Key("junk")), "invalid key", "junk key")
}

func TestStatisticsReporter(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	db, err := storage.OpenMemory()
	assert.Nil(t, err, "open")
	defer db.Close()

	l := ledger.New(logger.New(fixtures.LogCategory), db, nil)

	for _, interval := range []time.Duration{0, time.Millisecond} {
		s := newStatisticsReporter(l, interval)
		shutdown := make(chan struct{})
		done := make(chan struct{})
		go func() {
			s.Run(nil, shutdown)
			close(done)
		}()

		time.Sleep(10 * time.Millisecond)
		close(shutdown)

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("reporter with interval: %s did not stop", interval)
		}
	}
}

func TestMemoryStatistics(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	m := newMemoryStatistics(time.Millisecond)
	shutdown := make(chan struct{})
	done := make(chan struct{})
	go func() {
		m.Run(nil, shutdown)
		close(done)
	}()

	time.Sleep(5 * time.Millisecond)
	close(shutdown)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("memory statistics did not stop")
	}
}
