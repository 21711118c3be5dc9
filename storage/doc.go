// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk versioned state store
//
// This maintains a LevelDB database split into tables by a single
// prefix byte.  Every state record carries the commit sequence number
// that last wrote it, which is the version checked by optimistic
// commits.
//
//
// Notes:
// 1. ++       = concatenation of byte data
// 2. sequence = commit counter as big endian uint64 (8 bytes)
// 3. key      = composite key bytes supplied by the caller
// 4. record   = packed record bytes (JSON)
//
// Meta:
//
//   0x00 ++ "VERSION"          - database format version
//                                data: big endian uint32
//   M ++ "sequence"            - last commit sequence
//                                data: sequence
//
// State:
//
//   S ++ key                   - current state of a key
//                                data: sequence ++ record
//
//
// Transactions:
//
//   Begin takes a snapshot; reads come from the snapshot (or from the
//   transaction's own staged writes) and the version of each first
//   read is remembered.  Commit fails with a conflict if any remembered
//   version no longer matches, otherwise all staged writes and the new
//   sequence go to the database in a single batch.
package storage
