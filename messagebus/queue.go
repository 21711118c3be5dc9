// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/regnet/regnetd/compositekey"
	"github.com/regnet/regnetd/counter"
)

// internal constants
const (
	queueSize = 1000
)

// Event - one committed operation
type Event struct {
	ID        ulid.ULID
	Operation string
	Key       compositekey.Key
	Timestamp time.Time
}

// Queue - buffered event channel
type Queue struct {
	sync.Mutex
	entropy *ulid.MonotonicEntropy
	queue   chan Event
	dropped counter.Counter
}

// Bus - the daemon's event queue
var Bus = New(queueSize)

// New - create a queue holding up to size events
func New(size int) *Queue {
	if size <= 0 {
		size = 1
	}
	return &Queue{
		entropy: ulid.Monotonic(rand.Reader, 0),
		queue:   make(chan Event, size),
	}
}

// Send - queue an event, drops it if the queue is full
func (q *Queue) Send(operation string, key compositekey.Key) {
	now := time.Now().UTC()

	// ids sort in send order
	q.Lock()
	id := ulid.MustNew(ulid.Timestamp(now), q.entropy)
	q.Unlock()

	e := Event{
		ID:        id,
		Operation: operation,
		Key:       key,
		Timestamp: now,
	}
	select {
	case q.queue <- e:
	default:
		q.dropped.Increment()
	}
}

// Chan - channel to read from
func (q *Queue) Chan() <-chan Event {
	return q.queue
}

// Dropped - number of events discarded because the queue was full
func (q *Queue) Dropped() uint64 {
	return q.dropped.Uint64()
}
