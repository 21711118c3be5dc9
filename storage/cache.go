// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// Cache - staged writes of one transaction
type Cache interface {
	Get(string) ([]byte, bool)
	Set(string, []byte)
	Items() map[string][]byte
	Clear()
}

type dbCache struct {
	cache *cache.Cache
}

// staged writes live until commit or abort, so nothing expires and
// no janitor is started
func newCache() Cache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (c *dbCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	return obj.([]byte), true
}

func (c *dbCache) Set(key string, value []byte) {
	c.cache.Set(key, value, cache.NoExpiration)
}

func (c *dbCache) Items() map[string][]byte {
	items := c.cache.Items()
	result := make(map[string][]byte, len(items))
	for k, item := range items {
		result[k] = item.Object.([]byte)
	}
	return result
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
