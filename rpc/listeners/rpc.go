// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/regnet/regnetd/counter"
	"github.com/regnet/regnetd/fault"
)

const (
	logName = "client_rpc"
)

// RPCConfiguration - configuration file data for RPC setup
//
// an empty certificate disables TLS
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	sync.Mutex
	log             *logger.L
	listeners       []net.Listener
	count           *counter.Counter
	server          *rpc.Server
	maxConnections  uint64
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
}

// NewRPC - validate configuration and create a JSON-RPC listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.ErrMissingParameters
	}

	r := &rpcListener{
		log:            log,
		maxConnections: configuration.MaximumConnections,
		server:         server,
		count:          count,
		tlsConfig:      tlsConfig,
	}

	// validate all listen addresses
	var err error
	r.ipType, r.listenIPAndPort, err = parseListenAddress(configuration.Listen, r.log)
	if nil != err {
		return nil, err
	}

	return r, nil
}

// Serve - open every listen address and accept in the background
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s  tls: %t", listen, nil != r.tlsConfig)

		var l net.Listener
		var err error
		if nil == r.tlsConfig {
			l, err = net.Listen(r.ipType[i], listen)
		} else {
			l, err = tls.Listen(r.ipType[i], listen, r.tlsConfig)
		}
		if err != nil {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, l)

		go doServeRPC(l, r.server, r.maxConnections, r.log, r.count)
	}
	return nil
}

// Addrs - bound addresses of the started listeners
func (r *rpcListener) Addrs() []net.Addr {
	r.Lock()
	defer r.Unlock()

	addrs := make([]net.Addr, len(r.listeners))
	for i, l := range r.listeners {
		addrs[i] = l.Addr()
	}
	return addrs
}

// Close - stop accepting, existing connections finish their calls
func (r *rpcListener) Close() error {
	r.Lock()
	defer r.Unlock()

	var first error
	for _, l := range r.listeners {
		if err := l.Close(); nil != err && nil == first {
			first = err
		}
	}
	r.listeners = nil
	return first
}

func doServeRPC(listen net.Listener, server *rpc.Server, maximumConnections uint64, log *logger.L, count *counter.Counter) {
	for {
		conn, err := listen.Accept()
		if err != nil {
			log.Infof("rpc accept terminated: %s", err)
			break
		}
		if !count.Limit(maximumConnections) {
			log.Warnf("rpc connection from: %s  rejected: limit: %d", conn.RemoteAddr(), maximumConnections)
			_ = conn.Close()
			continue
		}
		go func() {
			server.ServeCodec(jsonrpc.NewServerCodec(conn))
			count.Decrement()
		}()
	}
}
