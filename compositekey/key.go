// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package compositekey - build store keys from a namespace and an
// ordered tuple of attributes
//
// layout (same as a Fabric composite key):
//
//   0x00 ++ namespace ++ 0x00 ++ attribute[0] ++ 0x00 ++ ... ++ attribute[n] ++ 0x00
//
// attributes must not contain U+0000 (the separator) or U+10FFFF, so
// composition is injective over valid tuples
package compositekey

import (
	"strings"
	"unicode/utf8"

	"github.com/regnet/regnetd/fault"
)

// namespaces
const (
	UserNamespace     = "org.property-registration.user-regnet.user"
	PropertyNamespace = "org.property-registration.user-regnet.property"
)

const (
	separator = "\x00"
	maxRune   = utf8.MaxRune
)

// Key - a composed store key
type Key string

// Bytes - key as bytes for the store
func (k Key) Bytes() []byte {
	return []byte(k)
}

// Compose - build the key for a namespace and attributes
func Compose(namespace string, attributes ...string) Key {
	var b strings.Builder
	b.WriteString(separator)
	b.WriteString(namespace)
	b.WriteString(separator)
	for _, a := range attributes {
		b.WriteString(a)
		b.WriteString(separator)
	}
	return Key(b.String())
}

// Validate - check caller supplied attributes before composing them
func Validate(attributes ...string) error {
	for _, a := range attributes {
		if "" == a || !utf8.ValidString(a) {
			return fault.ErrInvalidKeyAttribute
		}
		for _, r := range a {
			if 0 == r || maxRune == r {
				return fault.ErrInvalidKeyAttribute
			}
		}
	}
	return nil
}

// Split - recover namespace and attributes from a composed key
func Split(key Key) (string, []string, error) {
	s := string(key)
	if len(s) < 2 || !strings.HasPrefix(s, separator) || !strings.HasSuffix(s, separator) {
		return "", nil, fault.ErrInvalidKey
	}

	parts := strings.Split(s[1:len(s)-1], separator)
	namespace := parts[0]
	if "" == namespace {
		return "", nil, fault.ErrInvalidKey
	}
	return namespace, parts[1:], nil
}

// UserKey - key for a user record
func UserKey(name string, aadharNumber string) Key {
	return Compose(UserNamespace, name, aadharNumber)
}

// PropertyKey - key for a property record
func PropertyKey(propertyID string) Key {
	return Compose(PropertyNamespace, propertyID)
}

// SplitUserKey - name and aadhar number from a user key
func SplitUserKey(key Key) (string, string, error) {
	namespace, attributes, err := Split(key)
	if nil != err {
		return "", "", err
	}
	if UserNamespace != namespace || 2 != len(attributes) {
		return "", "", fault.ErrInvalidKey
	}
	return attributes[0], attributes[1], nil
}
