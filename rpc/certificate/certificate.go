// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS key pairs for the RPC listeners
package certificate

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/sha3"

	"github.com/regnet/regnetd/fault"
	"github.com/regnet/regnetd/util"
)

// Get - verify PEM encoded listener parameters and return the TLS
// configuration with the certificate fingerprint
func Get(log *logger.L, name string, certificate []byte, key []byte) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair(certificate, key)
	if err != nil {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Load - read the certificate and key files then call Get
func Load(log *logger.L, name string, certificateFileName string, keyFileName string) (*tls.Config, [32]byte, error) {
	certificate, err := ioutil.ReadFile(certificateFileName)
	if nil != err {
		log.Errorf("%s: read certificate: %q  error: %s", name, certificateFileName, err)
		return nil, [32]byte{}, err
	}
	key, err := ioutil.ReadFile(keyFileName)
	if nil != err {
		log.Errorf("%s: read key: %q  error: %s", name, keyFileName, err)
		return nil, [32]byte{}, err
	}
	return Get(log, name, certificate, key)
}

// Fingerprint - SHA3-256 of a DER certificate
//
// openssl x509 -outform DER -in regnetd-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}

// MakeSelfSigned - create a self-signed certificate and key, existing
// files are never overwritten
func MakeSelfSigned(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) error {

	if util.EnsureFileExists(certificateFileName) {
		return fault.ErrCertificateFileExists
	}

	if util.EnsureFileExists(privateKeyFileName) {
		return fault.ErrKeyFileExists
	}

	org := "regnetd self signed cert for: " + name
	validUntil := time.Now().Add(10 * 365 * 24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if err != nil {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); err != nil {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, key, 0600); err != nil {
		_ = os.Remove(certificateFileName)
		return err
	}

	return nil
}
