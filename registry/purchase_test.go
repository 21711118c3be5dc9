// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/regnet/regnetd/compositekey"
	"github.com/regnet/regnetd/fault"
	"github.com/regnet/regnetd/record"
	"github.com/regnet/regnetd/registry"
	"github.com/regnet/regnetd/storage"
)

func purchase(t *testing.T, db storage.Store, name string, aadhar string) error {
	return inTransaction(t, db, func(s registry.State) error {
		_, err := registry.PurchaseProperty(s, propertyID, name, aadhar)
		return err
	})
}

func TestPurchaseProperty(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	approvedUser(t, db, sellerName, sellerAadhar, "")
	approvedUser(t, db, buyerName, buyerAadhar, "upg1000")
	approvedProperty(t, db, 500, "onSale")

	var p *record.Property
	mustRun(t, db, func(s registry.State) error {
		var err error
		p, err = registry.PurchaseProperty(s, propertyID, buyerName, buyerAadhar)
		return err
	})

	buyerKey := compositekey.UserKey(buyerName, buyerAadhar)
	assert.Equal(t, buyerKey, p.Owner, "owner not transferred")
	assert.Equal(t, record.Registered, p.Status, "still on sale")

	stored := viewProperty(t, db)
	assert.Equal(t, buyerKey, stored.Owner, "stored owner not transferred")
	assert.Equal(t, record.Registered, stored.Status, "stored status not reset")
	assert.Equal(t, record.Approved, stored.State, "approval lost")

	buyer := viewUser(t, db, buyerName, buyerAadhar)
	seller := viewUser(t, db, sellerName, sellerAadhar)
	assert.Equal(t, uint64(500), buyer.Balance(), "buyer not debited")
	assert.Equal(t, uint64(500), seller.Balance(), "seller not credited")
	assert.Equal(t, uint64(1000), buyer.Balance()+seller.Balance(), "coins not conserved")
}

func TestPurchaseRejectedLeavesStateUnchanged(t *testing.T) {
	items := []struct {
		title    string
		status   string
		recharge string
		name     string
		aadhar   string
		expected error
	}{
		{"not on sale", "registered", "upg1000", buyerName, buyerAadhar, fault.ErrPurchaseNotAllowed},
		{"insufficient balance", "onSale", "upg100", buyerName, buyerAadhar, fault.ErrPurchaseNotAllowed},
		{"owner buys own property", "onSale", "upg1000", sellerName, sellerAadhar, fault.ErrPurchaseNotAllowed},
		{"unknown buyer", "onSale", "upg1000", "nobody", "000000000000", fault.ErrUserNotFound},
	}

	for _, item := range items {
		db := setup(t)

		approvedUser(t, db, sellerName, sellerAadhar, "upg1000")
		approvedUser(t, db, buyerName, buyerAadhar, item.recharge)
		approvedProperty(t, db, 500, item.status)

		propertyBefore := rawValue(t, db, compositekey.PropertyKey(propertyID))
		buyerBefore := rawValue(t, db, compositekey.UserKey(buyerName, buyerAadhar))
		sellerBefore := rawValue(t, db, compositekey.UserKey(sellerName, sellerAadhar))
		sequence := db.Sequence()

		err := purchase(t, db, item.name, item.aadhar)
		assert.Equal(t, item.expected, err, "%s: wrong error", item.title)

		assert.Equal(t, sequence, db.Sequence(), "%s: commit happened", item.title)
		assert.True(t, bytes.Equal(propertyBefore, rawValue(t, db, compositekey.PropertyKey(propertyID))), "%s: property changed", item.title)
		assert.True(t, bytes.Equal(buyerBefore, rawValue(t, db, compositekey.UserKey(buyerName, buyerAadhar))), "%s: buyer changed", item.title)
		assert.True(t, bytes.Equal(sellerBefore, rawValue(t, db, compositekey.UserKey(sellerName, sellerAadhar))), "%s: seller changed", item.title)

		teardown(db)
	}
}

func TestPurchaseRequiresApprovals(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	approvedUser(t, db, sellerName, sellerAadhar, "")
	mustRun(t, db, func(s registry.State) error {
		_, err := registry.RequestUser(s, buyerName, buyerAadhar, "", "")
		return err
	})
	mustRun(t, db, func(s registry.State) error {
		_, err := registry.RequestProperty(s, propertyID, 0, "onSale", sellerName, sellerAadhar)
		return err
	})

	// property not yet approved
	assert.Equal(t, fault.ErrPurchaseNotAllowed, purchase(t, db, buyerName, buyerAadhar), "unapproved property sold")

	mustRun(t, db, func(s registry.State) error {
		_, err := registry.ApproveProperty(s, propertyID)
		return err
	})

	// buyer not yet approved, even at zero price
	assert.Equal(t, fault.ErrPurchaseNotAllowed, purchase(t, db, buyerName, buyerAadhar), "unapproved buyer purchased")

	mustRun(t, db, func(s registry.State) error {
		_, err := registry.ApproveUser(s, buyerName, buyerAadhar)
		return err
	})
	assert.Nil(t, purchase(t, db, buyerName, buyerAadhar), "approved purchase failed")
}

func TestPurchaseUnknownProperty(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	approvedUser(t, db, buyerName, buyerAadhar, "upg1000")
	assert.Equal(t, fault.ErrPropertyNotFound, purchase(t, db, buyerName, buyerAadhar), "bought unknown property")
}

func TestPurchaseMissingSeller(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	approvedUser(t, db, buyerName, buyerAadhar, "upg1000")

	// a property whose owner record does not exist
	orphan := &record.Property{
		PropertyID: propertyID,
		Owner:      compositekey.UserKey(sellerName, sellerAadhar),
		Price:      10,
		Status:     record.OnSale,
		State:      record.Approved,
	}
	packed, err := orphan.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	mustRun(t, db, func(s registry.State) error {
		s.Put(orphan.Key().Bytes(), packed)
		return nil
	})

	assert.Equal(t, fault.ErrSellerNotFound, purchase(t, db, buyerName, buyerAadhar), "bought from missing seller")
}

func TestConcurrentPurchasesConflict(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	const otherName = "charu"
	const otherAadhar = "777788889999"

	approvedUser(t, db, sellerName, sellerAadhar, "")
	approvedUser(t, db, buyerName, buyerAadhar, "upg1000")
	approvedUser(t, db, otherName, otherAadhar, "upg1000")
	approvedProperty(t, db, 500, "onSale")

	// both transactions read the same snapshot
	trx1, err := db.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	trx2, err := db.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}

	_, err = registry.PurchaseProperty(trx1, propertyID, buyerName, buyerAadhar)
	assert.Nil(t, err, "first purchase error")
	_, err = registry.PurchaseProperty(trx2, propertyID, otherName, otherAadhar)
	assert.Nil(t, err, "second purchase error")

	assert.Nil(t, trx1.Commit(), "first commit failed")
	assert.Equal(t, fault.ErrCommitConflict, trx2.Commit(), "second commit did not conflict")
	assert.True(t, fault.IsErrConflict(fault.ErrCommitConflict), "conflict is not retryable")

	p := viewProperty(t, db)
	assert.Equal(t, compositekey.UserKey(buyerName, buyerAadhar), p.Owner, "wrong owner")
	assert.Equal(t, uint64(1000), viewUser(t, db, otherName, otherAadhar).Balance(), "losing buyer was debited")
	assert.Equal(t, uint64(500), viewUser(t, db, sellerName, sellerAadhar).Balance(), "seller credited twice")

	// a retry on fresh state sees the property is no longer for sale
	assert.Equal(t, fault.ErrPurchaseNotAllowed, purchase(t, db, otherName, otherAadhar), "retry bought sold property")
}
