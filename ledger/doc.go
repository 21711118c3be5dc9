// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - run registry operations inside store transactions
//
// every call is one transaction: mutations commit on success and abort
// on error, views always abort.  A commit conflict is returned to the
// caller unchanged, nothing is retried here.
package ledger
