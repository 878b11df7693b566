// cache.go

/**
 * Copyright 2025 (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 */

package contact

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Keep resolved lookups for 30 minutes
	DefaultLookupExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	DefaultLookupCleanup = 5 * time.Minute
)

// newLookupCache creates the cache that remembers resolved Find calls.
func newLookupCache(expiration, cleanup time.Duration) *cache.Cache {
	return cache.New(expiration, cleanup)
}

func lookupKey(o Order, key string) string {
	return o.String() + ":" + key
}

func cacheRecord(c *cache.Cache, o Order, key string, r Record) {
	// Set, not Add: a later Find for the same key overwrites
	c.Set(lookupKey(o, key), r, cache.DefaultExpiration)
}

func cachedRecord(c *cache.Cache, o Order, key string) (Record, bool) {
	val, ok := c.Get(lookupKey(o, key))
	if !ok {
		return Record{}, false
	}
	return val.(Record), true
}

func forgetRecord(c *cache.Cache, r Record) {
	c.Delete(lookupKey(NameOrder, r.Name))
	c.Delete(lookupKey(PhoneOrder, r.Phone))
}
