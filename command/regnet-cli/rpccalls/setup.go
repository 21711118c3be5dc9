// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/regnet/regnetd/fault"
)

const (
	dialTimeout = 10 * time.Second
	retryDelay  = 50 * time.Millisecond
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	retries int
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a regnetd
//
// retries is the number of extra attempts made when the server
// reports a commit conflict
func NewClient(connect string, useTLS bool, retries int, verbose bool, handle io.Writer) (*Client, error) {

	var conn net.Conn
	var err error
	dialer := &net.Dialer{Timeout: dialTimeout}
	if useTLS {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
		}
		conn, err = tls.DialWithDialer(dialer, "tcp", connect, tlsConfig)
	} else {
		conn, err = dialer.Dial("tcp", connect)
	}
	if err != nil {
		return nil, err
	}

	return newClient(conn, retries, verbose, handle), nil
}

func newClient(conn net.Conn, retries int, verbose bool, handle io.Writer) *Client {
	if retries < 0 {
		retries = 0
	}
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		retries: retries,
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the regnetd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// call a method, resubmitting while the server reports a commit conflict
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {

	c.printJson(method+" Request", arguments)

	for attempt := 0; ; attempt += 1 {
		err := c.client.Call(method, arguments, reply)
		if nil == err {
			break
		}
		if attempt >= c.retries || !fault.IsConflictMessage(err.Error()) {
			return err
		}
		c.printJson(method+" Retry", attempt+1)
		time.Sleep(retryDelay)
	}

	c.printJson(method+" Reply", reply)
	return nil
}
