// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// the file is executed as a Lua chunk and must return a table, which
// is mapped onto the caller's struct using `gluamapper` tags. Base Lua
// is available so a file can compute values or read the environment
// with os.getenv.
package configuration
