// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the user and property records held in the state
// store and their packed (JSON) form
//
// a store read that finds nothing must be handled by the caller; an
// empty Packed is always a malformed record, never an absent one
package record
