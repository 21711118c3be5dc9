// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - network listeners for the RPC server
package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/regnet/regnetd/fault"
)

const (
	minConnectionCount = 1
)

// Listener - a started or startable network server
type Listener interface {
	Serve() error
	Addrs() []net.Addr
	Close() error
}

// change "*:PORT" to "[::]:PORT" and return the listen network
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	listens := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			log.Error("empty listen address")
			return nil, nil, fault.ErrMissingParameters
		}

		host, port, err := net.SplitHostPort(listen)
		if nil != err {
			log.Errorf("listen: %q  error: %s", listen, err)
			return nil, nil, err
		}

		switch {
		case "*" == host:
			host = "::"
			networks[i] = "tcp"
		case strings.Contains(host, ":"):
			networks[i] = "tcp6"
		default:
			networks[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			err := fault.ErrInvalidIPAddress
			log.Errorf("listen: %q  error: %s", listen, err)
			return nil, nil, err
		}
		listens[i] = net.JoinHostPort(host, port)
	}

	return networks, listens, nil
}
