// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - assemble the RPC services
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/regnet/regnetd/counter"
	"github.com/regnet/regnetd/ledger"
	"github.com/regnet/regnetd/rpc/node"
	"github.com/regnet/regnetd/rpc/registrar"
	"github.com/regnet/regnetd/rpc/user"
)

// Create - a server with the User, Registrar and Node services
func Create(log *logger.L, version string, rpcCount *counter.Counter, l *ledger.Ledger) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(user.New(log, l))
	_ = server.Register(registrar.New(log, l))
	_ = server.Register(node.New(log, start, version, rpcCount, l))

	return server
}
