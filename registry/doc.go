// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - user and property registration and the property
// purchase
//
// every operation works inside a single State (a store transaction)
// and never commits; the caller commits or aborts, so a failed
// operation leaves nothing behind even if it staged writes
package registry
