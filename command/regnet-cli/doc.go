// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// regnet-cli - command line client for regnetd
//
// every sub-command is a single JSON-RPC call, the reply is printed
// as indented JSON on stdout
//
//   regnet-cli --connect=127.0.0.1:2130 request-user --name=alice --aadhar=1234 --email=a@example.com --phone=99
//   regnet-cli approve-user --name=alice --aadhar=1234
//   regnet-cli info
package main
