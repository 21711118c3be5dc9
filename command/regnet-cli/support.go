// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/regnet/regnetd/command/regnet-cli/rpccalls"
)

// open a client from the global flags and run a single call on it
func withClient(c *cli.Context, call func(*rpccalls.Client) (interface{}, error)) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.useTLS, m.retries, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := call(client)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
