// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/regnet/regnetd/compositekey"
	"github.com/regnet/regnetd/fault"
	"github.com/regnet/regnetd/record"
)

// PurchaseProperty - transfer a property on sale to the buyer, paying
// its price from the buyer's balance to the seller's
//
// buyer, seller and property are all staged in the same state, so the
// transfer commits completely or not at all and total credit is
// unchanged
func PurchaseProperty(state State, propertyID string, buyerName string, buyerAadharNumber string) (*record.Property, error) {
	if err := compositekey.Validate(propertyID, buyerName, buyerAadharNumber); nil != err {
		return nil, err
	}

	buyerKey := compositekey.UserKey(buyerName, buyerAadharNumber)
	buyer, err := getUser(state, buyerKey)
	if nil != err {
		return nil, err
	}
	if nil == buyer {
		return nil, fault.ErrUserNotFound
	}

	property, err := getProperty(state, compositekey.PropertyKey(propertyID))
	if nil != err {
		return nil, err
	}
	if nil == property {
		return nil, fault.ErrPropertyNotFound
	}

	sellerKey := property.Owner
	seller, err := getUser(state, sellerKey)
	if nil != err {
		return nil, err
	}
	if nil == seller {
		logger.Criticalf("registry.PurchaseProperty: property: %q  owner: %q is not a user", propertyID, sellerKey)
		return nil, fault.ErrSellerNotFound
	}

	price := property.Price
	if !canPurchase(property, buyerKey, buyer, seller) {
		return nil, fault.ErrPurchaseNotAllowed
	}

	property.Owner = buyerKey
	property.Status = record.Registered
	buyer.SetBalance(buyer.Balance() - price)
	seller.SetBalance(seller.Balance() + price)

	// pack everything before staging anything
	packedProperty, err := property.Pack()
	if nil != err {
		return nil, err
	}
	packedBuyer, err := buyer.Pack()
	if nil != err {
		return nil, err
	}
	packedSeller, err := seller.Pack()
	if nil != err {
		return nil, err
	}

	state.Put(property.Key().Bytes(), packedProperty)
	state.Put(buyerKey.Bytes(), packedBuyer)
	state.Put(sellerKey.Bytes(), packedSeller)

	return property, nil
}

// all the conditions for a sale
func canPurchase(property *record.Property, buyerKey compositekey.Key, buyer *record.User, seller *record.User) bool {
	price := property.Price

	switch {
	case !property.IsApproved():
		return false
	case record.OnSale != property.Status:
		return false
	case buyerKey == property.Owner:
		return false
	case !buyer.IsApproved() || !seller.IsApproved():
		return false
	case buyer.Balance() < price:
		return false
	case seller.Balance() > math.MaxUint64-price:
		return false
	}
	return true
}
