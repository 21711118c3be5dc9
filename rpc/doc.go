// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - setup and handle all of the incoming JSON RPC requests
// from registry participants and the registrar
//
// standard golang net/rpc clients with the jsonrpc codec can be used
// on the client side to access these services
package rpc
