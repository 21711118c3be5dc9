// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"bytes"
	"crypto/tls"
	"io/ioutil"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/regnet/regnetd/fault"
	"github.com/regnet/regnetd/fixtures"
	"github.com/regnet/regnetd/rpc/certificate"
	"github.com/regnet/regnetd/rpc/listeners"
)

type testHandler struct {
	allow map[string][]*net.IPNet
}

func (h *testHandler) RPC(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("RPC"))
}

func (h *testHandler) Details(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Details"))
}

func (h *testHandler) Root(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Root"))
}

func (h *testHandler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

var client = &http.Client{
	Transport: &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // self-signed test certificate
	},
	Timeout: 5 * time.Second,
}

func testTLS(t *testing.T) *tls.Config {
	cer, key, err := fixtures.Certificate()
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}
	tlsConfig, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, key)
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}
	return tlsConfig
}

func TestHTTPSListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{"127.0.0.1:0"},
		Allow: map[string][]string{
			"details": {"127.0.0.0/8", " ::1/128"},
		},
	}
	h := &testHandler{}

	l, err := listeners.NewHTTPS(&con, logger.New(fixtures.LogCategory), testTLS(t), h)
	assert.Nil(t, err, "wrong NewHTTPS")
	assert.Equal(t, 2, len(h.allow["details"]), "allow list not set")

	assert.Nil(t, l.Serve(), "wrong Serve")
	defer l.Close()

	base := "https://" + l.Addrs()[0].String()

	items := []struct {
		method   string
		path     string
		expected string
	}{
		{http.MethodPost, "/regnet/rpc", "RPC"},
		{http.MethodGet, "/regnet/details", "Details"},
		{http.MethodGet, "/anything", "Root"},
	}

	for _, item := range items {
		req, _ := http.NewRequest(item.method, base+item.path, bytes.NewReader(nil))
		resp, err := client.Do(req)
		if nil != err {
			t.Fatalf("%s %s error: %s", item.method, item.path, err)
		}
		body, _ := ioutil.ReadAll(resp.Body)
		_ = resp.Body.Close()
		assert.Equal(t, item.expected, string(body), "wrong route: %s", item.path)
	}
}

func TestNewHTTPSDisabled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	l, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{}, logger.New(fixtures.LogCategory), nil, &testHandler{})
	assert.Nil(t, err, "disabled listener errored")
	assert.Nil(t, l, "disabled listener created")
}

func TestNewHTTPSErrors(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	con := listeners.HTTPSConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:0"},
	}
	_, err := listeners.NewHTTPS(&con, logger.New(fixtures.LogCategory), testTLS(t), &testHandler{})
	assert.Equal(t, fault.ErrMissingParameters, err, "zero connections accepted")

	con.MaximumConnections = 1
	_, err = listeners.NewHTTPS(&con, logger.New(fixtures.LogCategory), nil, &testHandler{})
	assert.Equal(t, fault.ErrMissingParameters, err, "no certificate accepted")

	con.Allow = map[string][]string{"details": {"not-a-cidr"}}
	_, err = listeners.NewHTTPS(&con, logger.New(fixtures.LogCategory), testTLS(t), &testHandler{})
	assert.NotNil(t, err, "bad cidr accepted")
}
