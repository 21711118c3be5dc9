// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/regnet/regnetd/fault"
)

// test that each class of error is only detected by its own predicate
func TestClasses(t *testing.T) {
	errorList := []struct {
		err           error
		conflict      bool
		invalid       bool
		notAllowed    bool
		notFound      bool
		notOwner      bool
		notRegistered bool
		record        bool
		transaction   bool
	}{
		{fault.ErrCommitConflict, true, false, false, false, false, false, false, false},
		{fault.ErrInvalidKeyAttribute, false, true, false, false, false, false, false, false},
		{fault.ErrInvalidPropertyStatus, false, true, false, false, false, false, false, false},
		{fault.ErrPurchaseNotAllowed, false, false, true, false, false, false, false, false},
		{fault.ErrUserNotFound, false, false, false, true, false, false, false, false},
		{fault.ErrPropertyNotFound, false, false, false, true, false, false, false, false},
		{fault.ErrSellerNotFound, false, false, false, true, false, false, false, false},
		{fault.ErrNotOwner, false, false, false, false, true, false, false, false},
		{fault.ErrOwnerNotRegistered, false, false, false, false, false, true, false, false},
		{fault.ErrMalformedRecord, false, false, false, false, false, false, true, false},
		{fault.ErrInvalidTransaction, false, false, false, false, false, false, false, true},
		{fault.ErrTransactionClosed, false, false, false, false, false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrConflict(err) != e.conflict {
			t.Errorf("%d: expected 'conflict' == %v for err = %v", i, e.conflict, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotAllowed(err) != e.notAllowed {
			t.Errorf("%d: expected 'not allowed' == %v for err = %v", i, e.notAllowed, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrNotOwner(err) != e.notOwner {
			t.Errorf("%d: expected 'not owner' == %v for err = %v", i, e.notOwner, err)
		}
		if fault.IsErrNotRegistered(err) != e.notRegistered {
			t.Errorf("%d: expected 'not registered' == %v for err = %v", i, e.notRegistered, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
		if fault.IsErrTransaction(err) != e.transaction {
			t.Errorf("%d: expected 'transaction' == %v for err = %v", i, e.transaction, err)
		}
	}
}

func TestConflictMessage(t *testing.T) {
	if !fault.IsConflictMessage(fault.ErrCommitConflict.Error()) {
		t.Error("commit conflict text not recognised")
	}
	if fault.IsConflictMessage(fault.ErrPurchaseNotAllowed.Error()) {
		t.Error("purchase rejection mistaken for a conflict")
	}
}
