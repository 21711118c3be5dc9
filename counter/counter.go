// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - atomic unsigned counters shared between goroutines
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned value safe for concurrent update
type Counter uint64

// Increment - add one, returns the new value
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Decrement - subtract one, returns the new value
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Uint64 - the current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - true if nothing counted
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}

// Limit - increment only while the value is below max, returns false
// and leaves the value unchanged when the limit is already reached
func (c *Counter) Limit(max uint64) bool {
	for {
		n := atomic.LoadUint64((*uint64)(c))
		if n >= max {
			return false
		}
		if atomic.CompareAndSwapUint64((*uint64)(c), n, n+1) {
			return true
		}
	}
}
