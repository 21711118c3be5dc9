// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
)

var (
	certificateOnce sync.Once
	certificatePEM  []byte
	keyPEM          []byte
	certificateErr  error
)

// Certificate - a self-signed PEM certificate and key for localhost,
// generated once per test binary
func Certificate() ([]byte, []byte, error) {
	certificateOnce.Do(func() {
		certificatePEM, keyPEM, certificateErr = certgen.NewTLSCertPair(
			"regnetd testing",
			time.Now().Add(24*time.Hour),
			false,
			[]string{"127.0.0.1", "localhost"},
		)
	})
	return certificatePEM, keyPEM, certificateErr
}
