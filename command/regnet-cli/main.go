// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	useTLS  bool
	retries int
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "regnet-cli"
	app.Usage = "property registration client"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " regnetd host/IP and port, `HOST:PORT`",
			EnvVar: "REGNET_CONNECT",
		},
		cli.BoolFlag{
			Name:  "tls, t",
			Usage: " connect using TLS",
		},
		cli.IntFlag{
			Name:  "retry, r",
			Value: 3,
			Usage: " resubmit up to `COUNT` times on commit conflict",
		},
	}

	userFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "name, n",
			Value: "",
			Usage: "*user name `NAME`",
		},
		cli.StringFlag{
			Name:  "aadhar, a",
			Value: "",
			Usage: "*aadhar number `NUMBER`",
		},
	}
	registrarFlag := cli.BoolFlag{
		Name:  "registrar",
		Usage: " use the registrar service",
	}
	propertyFlag := cli.StringFlag{
		Name:  "property, p",
		Value: "",
		Usage: "*property identifier `ID`",
	}

	app.Commands = []cli.Command{
		{
			Name:      "request-user",
			Usage:     "request registration of a new user",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "email, e",
					Value: "",
					Usage: "*email address `EMAIL`",
				},
				cli.StringFlag{
					Name:  "phone",
					Value: "",
					Usage: "*phone number `PHONE`",
				},
			}, userFlags...),
			Action: runRequestUser,
		},
		{
			Name:      "approve-user",
			Usage:     "registrar approval of a requested user",
			ArgsUsage: "\n   (* = required)",
			Flags:     userFlags,
			Action:    runApproveUser,
		},
		{
			Name:      "recharge",
			Usage:     "recharge an approved account from a bank transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "txid, x",
					Value: "",
					Usage: "*bank transaction id `TXID` [upg100|upg500|upg1000]",
				},
			}, userFlags...),
			Action: runRecharge,
		},
		{
			Name:      "view-user",
			Usage:     "display a user",
			ArgsUsage: "\n   (* = required)",
			Flags:     append([]cli.Flag{registrarFlag}, userFlags...),
			Action:    runViewUser,
		},
		{
			Name:      "request-property",
			Usage:     "request registration of a property",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				propertyFlag,
				cli.Uint64Flag{
					Name:  "price",
					Value: 0,
					Usage: "*price in coins `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "status, s",
					Value: "registered",
					Usage: " initial status `STATUS` [registered|onSale]",
				},
			}, userFlags...),
			Action: runRequestProperty,
		},
		{
			Name:      "approve-property",
			Usage:     "registrar approval of a requested property",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{propertyFlag},
			Action:    runApproveProperty,
		},
		{
			Name:      "view-property",
			Usage:     "display a property",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{propertyFlag, registrarFlag},
			Action:    runViewProperty,
		},
		{
			Name:      "update-property",
			Usage:     "owner changes the sale status of a property",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				propertyFlag,
				cli.StringFlag{
					Name:  "status, s",
					Value: "",
					Usage: "*new status `STATUS` [registered|onSale]",
				},
			}, userFlags...),
			Action: runUpdateProperty,
		},
		{
			Name:      "purchase",
			Usage:     "buy a property that is on sale",
			ArgsUsage: "\n   (* = required)",
			Flags:     append([]cli.Flag{propertyFlag}, userFlags...),
			Action:    runPurchase,
		},
		{
			Name:   "info",
			Usage:  "display regnetd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display regnet-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		connect, err := checkConnect(c.GlobalString("connect"))
		if nil != err {
			return err
		}

		m := &metadata{
			connect: connect,
			useTLS:  c.GlobalBool("tls"),
			retries: c.GlobalInt("retry"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		if m.verbose {
			fmt.Fprintf(m.e, "connect: %s  tls: %t  retries: %d\n", m.connect, m.useTLS, m.retries)
		}
		c.App.Metadata["config"] = m

		return nil
	}

	return app
}
