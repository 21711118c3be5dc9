// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	netrpc "net/rpc"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/regnet/regnetd/counter"
	"github.com/regnet/regnetd/fault"
	"github.com/regnet/regnetd/ledger"
	"github.com/regnet/regnetd/rpc/certificate"
	"github.com/regnet/regnetd/rpc/handler"
	"github.com/regnet/regnetd/rpc/listeners"
	"github.com/regnet/regnetd/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

var connectionCountRPC counter.Counter

// Initialise - start the JSON-RPC and HTTPS listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, l *ledger.Ledger) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	s := server.Create(log, version, &connectionCountRPC, l)

	// client rpc, TLS only if a certificate is configured
	var tlsConfig *tls.Config
	if "" != rpcConfiguration.Certificate {
		var fingerprint [32]byte
		var err error
		tlsConfig, fingerprint, err = certificate.Load(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
		if nil != err {
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", rpcName, fingerprint)
	} else {
		log.Warnf("%s: no certificate, serving plain TCP", rpcName)
	}

	rpcListener, err := listeners.NewRPC(rpcConfiguration, log, &connectionCountRPC, s, tlsConfig)
	if nil != err {
		return err
	}

	httpsListener, err := initialiseHTTPS(log, httpsConfiguration, version, s)
	if nil != err {
		return err
	}

	started := []listeners.Listener{rpcListener}
	if nil != httpsListener {
		started = append(started, httpsListener)
	}
	for _, listener := range started {
		if err := listener.Serve(); nil != err {
			closeAll(globalData.listeners)
			globalData.listeners = nil
			return err
		}
		globalData.listeners = append(globalData.listeners, listener)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

func initialiseHTTPS(log *logger.L, configuration *listeners.HTTPSConfiguration, version string, s *netrpc.Server) (listeners.Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil, nil
	}

	tlsConfig, fingerprint, err := certificate.Load(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

	h := handler.New(log, s, time.Now().UTC(), version, configuration.MaximumConnections)
	return listeners.NewHTTPS(configuration, log, tlsConfig, h)
}

// Finalise - stop all listeners
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	closeAll(globalData.listeners)
	globalData.listeners = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// ConnectionCount - number of open client RPC connections
func ConnectionCount() uint64 {
	return connectionCountRPC.Uint64()
}

func closeAll(list []listeners.Listener) {
	for _, listener := range list {
		_ = listener.Close()
	}
}
