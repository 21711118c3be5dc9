// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package handler - HTTPS access to the RPC services
package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/regnet/regnetd/counter"
)

// Handler - the routes served on the HTTPS listener
type Handler interface {
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Root(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

// InternalConnection - allows the rpc codec to read a request body
// and write the response
type InternalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *InternalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *InternalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *InternalConnection) Close() error {
	return nil
}

type handler struct {
	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	allow              map[string][]*net.IPNet
	count              counter.Counter
	maximumConnections uint64
}

// New - create the HTTPS handler
func New(log *logger.L, server *rpc.Server, start time.Time, version string, maximumConnections uint64) Handler {
	return &handler{
		log:                log,
		server:             server,
		start:              start,
		version:            version,
		allow:              make(map[string][]*net.IPNet),
		maximumConnections: maximumConnections,
	}
}

// SetAllow - per route access lists, a route without a list is denied
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

// Root - matches anything not matched and returns error
func (h *handler) Root(w http.ResponseWriter, _ *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.count.Limit(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&InternalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	err := h.server.ServeRequest(serverCodec)
	if nil != err {
		h.log.Warnf("rpc from: %q  error: %s", r.RemoteAddr, err)
		sendInternalServerError(w)
		return
	}
}

// Details - a GET for version, uptime and connection count
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.allowed("details", r.RemoteAddr) {
		h.log.Warnf("Deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	type theReply struct {
		Version string `json:"version"`
		Uptime  string `json:"uptime"`
		RPCs    uint64 `json:"rpcs"`
	}

	sendReply(w, theReply{
		Version: h.version,
		Uptime:  time.Since(h.start).String(),
		RPCs:    h.count.Uint64(),
	})
}

func (h *handler) allowed(route string, remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}
	for _, n := range h.allow[route] {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just in case JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
