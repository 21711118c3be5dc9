// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/regnet/regnetd/configuration"
	"github.com/regnet/regnetd/fault"
)

type databaseType struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
	Sync      bool   `gluamapper:"sync"`
}

type rpcType struct {
	MaximumConnections int      `gluamapper:"maximum_connections"`
	Listen             []string `gluamapper:"listen"`
}

type testConfiguration struct {
	DataDirectory string       `gluamapper:"data_directory"`
	PidFile       string       `gluamapper:"pidfile"`
	Database      databaseType `gluamapper:"database"`
	ClientRPC     rpcType      `gluamapper:"client_rpc"`
}

func writeFile(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { _ = os.RemoveAll(dir) }
}

func TestParse(t *testing.T) {
	fileName, cleanup := writeFile(t, `
local M = {}
M.data_directory = "."
M.database = {
    name = "registry.leveldb",
    sync = true,
}
M.client_rpc = {
    maximum_connections = 5 * 10,
    listen = { "127.0.0.1:2130", "[::1]:2130" },
}
return M
`)
	defer cleanup()

	options := &testConfiguration{
		PidFile: "default.pid",
		Database: databaseType{
			Directory: "data",
		},
	}

	err := configuration.ParseConfigurationFile(fileName, options)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, ".", options.DataDirectory, "wrong data directory")
	assert.Equal(t, "default.pid", options.PidFile, "default replaced")
	assert.Equal(t, "data", options.Database.Directory, "nested default replaced")
	assert.Equal(t, "registry.leveldb", options.Database.Name, "wrong database name")
	assert.True(t, options.Database.Sync, "wrong sync")
	assert.Equal(t, 50, options.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, options.ClientRPC.Listen, "wrong listen")
}

func TestArgGlobal(t *testing.T) {
	fileName, cleanup := writeFile(t, `return { pidfile = arg[0] }`)
	defer cleanup()

	options := &testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, options)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, fileName, options.PidFile, "arg[0] not the file name")
}

func TestParseErrors(t *testing.T) {
	fileName, cleanup := writeFile(t, `return { data_directory = `)
	defer cleanup()

	err := configuration.ParseConfigurationFile(fileName, &testConfiguration{})
	assert.NotNil(t, err, "syntax error accepted")

	err = configuration.ParseConfigurationFile(filepath.Join(filepath.Dir(fileName), "missing.conf"), &testConfiguration{})
	assert.NotNil(t, err, "missing file accepted")

	noTable, cleanup2 := writeFile(t, `return 42`)
	defer cleanup2()
	err = configuration.ParseConfigurationFile(noTable, &testConfiguration{})
	assert.Equal(t, fault.ErrMissingParameters, err, "non table accepted")
}

func TestNotStructPointer(t *testing.T) {
	fileName, cleanup := writeFile(t, `return {}`)
	defer cleanup()

	var s string
	for _, config := range []interface{}{nil, testConfiguration{}, &s} {
		err := configuration.ParseConfigurationFile(fileName, config)
		assert.Equal(t, fault.ErrInvalidStructPointer, err, "accepted: %T", config)
	}
}
