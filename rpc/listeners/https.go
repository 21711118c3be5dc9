// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/regnet/regnetd/fault"
	"github.com/regnet/regnetd/rpc/handler"
)

const (
	httpsLogName     = "https_rpc"
	readWriteTimeout = 10 * time.Second
	keepAlivePeriod  = 3 * time.Minute
)

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

type httpsListener struct {
	sync.Mutex
	log             *logger.L
	ipType          []string
	listenIPAndPort []string
	tlsConfig       *tls.Config
	mux             *http.ServeMux
	servers         []*http.Server
	listeners       []net.Listener
}

// NewHTTPS - create the HTTPS listener, returns nil if no listen
// addresses are configured
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	hdlr handler.Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpsLogName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}

	if nil == tlsConfig {
		log.Errorf("%s requires a certificate", httpsLogName)
		return nil, fault.ErrMissingParameters
	}

	h := &httpsListener{
		log:       log,
		tlsConfig: tlsConfig,
	}

	var err error
	h.ipType, h.listenIPAndPort, err = parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	// access control lists per route
	local := make(map[string][]*net.IPNet)
	for path, addresses := range configuration.Allow {
		set := make([]*net.IPNet, len(addresses))
		local[path] = set
		for i, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.Trim(ip, " "))
			if nil != err {
				return nil, err
			}
			set[i] = cidr
		}
	}

	hdlr.SetAllow(local)

	h.mux = http.NewServeMux()
	h.mux.HandleFunc("/regnet/rpc", hdlr.RPC)
	h.mux.HandleFunc("/regnet/details", hdlr.Details)
	h.mux.HandleFunc("/", hdlr.Root)

	return h, nil
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if err != nil {
		return nil, err
	}
	_ = tc.SetKeepAlive(true)
	_ = tc.SetKeepAlivePeriod(keepAlivePeriod)
	return tc, nil
}

// Serve - open every listen address and serve in the background
func (h *httpsListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	cfg := h.tlsConfig.Clone()
	cfg.NextProtos = []string{"http/1.1"}

	for i, listen := range h.listenIPAndPort {
		h.log.Infof("starting server: %s on: %q", httpsLogName, listen)

		ln, err := net.Listen(h.ipType[i], listen)
		if err != nil {
			h.log.Errorf("%s listen error: %s", httpsLogName, err)
			return err
		}

		s := &http.Server{
			Handler:        h.mux,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		h.servers = append(h.servers, s)
		h.listeners = append(h.listeners, ln)

		tlsListener := tls.NewListener(tcpKeepAliveListener{ln.(*net.TCPListener)}, cfg)
		go func() {
			err := s.Serve(tlsListener)
			h.log.Infof("%s terminated: %s", httpsLogName, err)
		}()
	}

	return nil
}

// Addrs - bound addresses of the started listeners
func (h *httpsListener) Addrs() []net.Addr {
	h.Lock()
	defer h.Unlock()

	addrs := make([]net.Addr, len(h.listeners))
	for i, l := range h.listeners {
		addrs[i] = l.Addr()
	}
	return addrs
}

// Close - stop every server
func (h *httpsListener) Close() error {
	h.Lock()
	defer h.Unlock()

	var first error
	for _, s := range h.servers {
		if err := s.Close(); nil != err && nil == first {
			first = err
		}
	}
	h.servers = nil
	h.listeners = nil
	return first
}
