// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package namecache

import (
	"sort"

	"github.com/nomencoin/nomend/namerecord"
)

// Iterator - ordered enumeration of name records
//
// Next returns names in strict ascending byte order, each at most
// once; Release frees the underlying resources and must be called
// when iteration ends early
type Iterator interface {
	Seek(start []byte)
	Next() ([]byte, *namerecord.NameData, bool)
	Release()
}

// merged iterator combining the cache with a base iterator
//
// the cache overrides the base on equal names; tombstoned base
// entries are skipped
type mergedIterator struct {
	cache *Cache
	base  Iterator

	// pending base entry
	baseHasMore bool
	baseName    []byte
	baseData    *namerecord.NameData

	// snapshot of the cache entry names, sorted
	cacheNames []string
	cacheIndex int
}

// IterateNames - merged ordered iterator over cache and base
//
// takes ownership of the base iterator; the cache must not be
// mutated while iteration is in progress
func (c *Cache) IterateNames(base Iterator) Iterator {
	it := &mergedIterator{
		cache: c,
		base:  base,
	}
	// seek to the start to make the state consistent even if the
	// caller seeks somewhere else afterwards
	it.Seek(nil)
	return it
}

// Seek - position both cursors at the first name >= start
func (it *mergedIterator) Seek(start []byte) {
	names := make([]string, 0, len(it.cache.entries))
	for name := range it.cache.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	it.cacheNames = names
	it.cacheIndex = sort.SearchStrings(names, string(start))

	it.base.Seek(start)
	it.baseHasMore = true
	it.advanceBase()
}

// pull the next base entry, skipping tombstoned names
func (it *mergedIterator) advanceBase() {
	for {
		name, data, ok := it.base.Next()
		it.baseHasMore = ok
		it.baseName = name
		it.baseData = data
		if !ok || !it.cache.IsDeleted(name) {
			return
		}
	}
}

// Next - produce the next name in order
func (it *mergedIterator) Next() ([]byte, *namerecord.NameData, bool) {

	cacheHasMore := it.cacheIndex < len(it.cacheNames)

	// exit early if no more data is available in either the cache
	// nor the base iterator
	if !it.baseHasMore && !cacheHasMore {
		return nil, nil, false
	}

	useBase := false
	switch {
	case !it.baseHasMore:
		useBase = false
	case !cacheHasMore:
		useBase = true
	default:
		cacheName := it.cacheNames[it.cacheIndex]

		// when both sides hold the same name the cached version
		// wins and the base entry is consumed as well
		if string(it.baseName) == cacheName {
			it.advanceBase()
		}

		if !it.baseHasMore {
			useBase = false
		} else {
			useBase = string(it.baseName) < cacheName
		}
	}

	if useBase {
		name := it.baseName
		data := it.baseData
		it.advanceBase()
		return name, data, true
	}

	name := it.cacheNames[it.cacheIndex]
	it.cacheIndex += 1
	return []byte(name), it.cache.entries[name].Copy(), true
}

// Release - dispose of the owned base iterator
func (it *mergedIterator) Release() {
	it.base.Release()
}
