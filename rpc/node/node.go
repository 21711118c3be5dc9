// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - RPC calls about the running daemon
package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/regnet/regnetd/counter"
	"github.com/regnet/regnetd/ledger"
	"github.com/regnet/regnetd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Ledger  *ledger.Ledger
	counter *counter.Counter
}

// New - create the Node service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, l *ledger.Ledger) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Ledger:  l,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version    string            `json:"version"`
	Uptime     string            `json:"uptime"`
	RPCs       uint64            `json:"rpcs"`
	Statistics ledger.Statistics `json:"statistics"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.Statistics = node.Ledger.Statistics()
	return nil
}
