// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeConfiguration(t *testing.T, content string) (string, string) {
	dir, err := ioutil.TempDir("", "regnetd")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "regnetd.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return dir, fileName
}

func TestSampleConfiguration(t *testing.T) {
	sample, err := ioutil.ReadFile("regnetd.conf.sample")
	assert.Nil(t, err, "read sample")

	dir, fileName := writeConfiguration(t, string(sample))
	defer os.RemoveAll(dir)

	options, err := getConfiguration(fileName)
	assert.Nil(t, err, "configuration error")

	assert.Equal(t, dir+"/", options.DataDirectory, "wrong data directory")
	assert.Equal(t, filepath.Join(dir, "data", "regnet.leveldb"), options.Database.Name, "wrong database")
	assert.True(t, options.Database.Sync, "sync")
	assert.Equal(t, uint64(50), options.ClientRPC.MaximumConnections, "rpc connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, options.ClientRPC.Listen, "rpc listen")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), options.ClientRPC.Certificate, "rpc certificate")
	assert.Equal(t, filepath.Join(dir, "rpc.key"), options.HttpsRPC.PrivateKey, "https key")
	assert.Equal(t, []string{"127.0.0.0/8", "::1/128"}, options.HttpsRPC.Allow["details"], "allow")
	assert.Equal(t, 60*time.Second, options.statisticsInterval(), "statistics")
	assert.Equal(t, "info", options.Logging.Levels["ledger"], "log level")
	assert.Equal(t, filepath.Join(dir, "log"), options.Logging.Directory, "log directory")

	for _, d := range []string{"data", "log"} {
		info, err := os.Stat(filepath.Join(dir, d))
		assert.Nil(t, err, "missing: %s", d)
		assert.True(t, info.IsDir(), "not a directory: %s", d)
	}
}

func TestMinimalConfiguration(t *testing.T) {
	dir, fileName := writeConfiguration(t, `
return {
    data_directory = ".",
    client_rpc = {
        listen = { "127.0.0.1:2130" },
        certificate = "",
        private_key = "",
    },
    statistics_interval = 0,
}
`)
	defer os.RemoveAll(dir)

	options, err := getConfiguration(fileName)
	assert.Nil(t, err, "configuration error")

	assert.Equal(t, "", options.PidFile, "pid file")
	assert.Equal(t, "", options.ClientRPC.Certificate, "blank certificate made absolute")
	assert.Equal(t, uint64(defaultRPCClients), options.ClientRPC.MaximumConnections, "default connections")
	assert.Equal(t, 0, len(options.HttpsRPC.Listen), "https enabled")
	assert.Equal(t, filepath.Join(dir, defaultLevelDBDirectory, defaultDatabase), options.Database.Name, "default database")
	assert.Equal(t, time.Duration(0), options.statisticsInterval(), "statistics enabled")
}

func TestInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"blank data directory", `return { data_directory = "" }`},
		{"home data directory", `return { data_directory = "~" }`},
		{"missing data directory", `return { data_directory = "does-not-exist" }`},
		{"database path", `return { data_directory = ".", database = { name = "sub/regnet.leveldb" } }`},
		{"log path", `return { data_directory = ".", logging = { file = "sub/regnetd.log" } }`},
		{"not a table", `return "regnetd"`},
	}

	for _, test := range tests {
		dir, fileName := writeConfiguration(t, test.content)
		_, err := getConfiguration(fileName)
		assert.NotNil(t, err, "accepted: %s", test.name)
		_ = os.RemoveAll(dir)
	}
}
