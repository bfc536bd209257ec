// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package namecache

import (
	"sort"

	"github.com/bitmark-inc/logger"

	"github.com/nomencoin/nomend/namerecord"
	"github.com/nomencoin/nomend/unotrie"
)

// Cache - pending name set mutations over a base view
type Cache struct {

	// new and changed bindings
	entries map[string]*namerecord.NameData

	// tombstones, disjoint from entries
	deleted map[string]struct{}

	// pending history rewrites, empty history means erase
	history map[string]namerecord.NameHistory

	// expire index flags keyed by packed ExpireEntry:
	// true adds the entry, false removes it
	expireIndex map[string]bool
}

// New - create an empty cache
func New() *Cache {
	return &Cache{
		entries:     make(map[string]*namerecord.NameData),
		deleted:     make(map[string]struct{}),
		history:     make(map[string]namerecord.NameHistory),
		expireIndex: make(map[string]bool),
	}
}

// Get - read a pending binding
//
// only consults the cache itself, never the base view
func (c *Cache) Get(name []byte) (*namerecord.NameData, bool) {
	data, ok := c.entries[string(name)]
	if !ok {
		return nil, false
	}
	return data.Copy(), true
}

// IsDeleted - true if the name carries a tombstone
func (c *Cache) IsDeleted(name []byte) bool {
	_, ok := c.deleted[string(name)]
	return ok
}

// Set - record a binding write, clearing any tombstone
func (c *Cache) Set(name []byte, data *namerecord.NameData) {
	delete(c.deleted, string(name))
	c.entries[string(name)] = data.Copy()
}

// Remove - record a tombstone, discarding any pending write
func (c *Cache) Remove(name []byte) {
	delete(c.entries, string(name))
	c.deleted[string(name)] = struct{}{}
}

// GetHistory - read a pending history rewrite
//
// aborts if history tracking is disabled
func (c *Cache) GetHistory(name []byte) (namerecord.NameHistory, bool) {
	if !HistoryEnabled() {
		logger.Panic("namecache.GetHistory called with history tracking disabled")
	}
	history, ok := c.history[string(name)]
	return history, ok
}

// SetHistory - record a history rewrite
//
// aborts if history tracking is disabled
func (c *Cache) SetHistory(name []byte, history namerecord.NameHistory) {
	if !HistoryEnabled() {
		logger.Panic("namecache.SetHistory called with history tracking disabled")
	}
	c.history[string(name)] = history
}

// AddExpireIndex - flag an expire index entry for addition
func (c *Cache) AddExpireIndex(name []byte, height uint32) {
	entry := namerecord.ExpireEntry{Height: height, Name: name}
	c.expireIndex[string(entry.Pack())] = true
}

// RemoveExpireIndex - flag an expire index entry for removal
func (c *Cache) RemoveExpireIndex(name []byte, height uint32) {
	entry := namerecord.ExpireEntry{Height: height, Name: name}
	c.expireIndex[string(entry.Pack())] = false
}

// UpdateNamesForHeight - fold the cached expire flags for one height
// into a caller supplied name set
//
// flagged additions insert the name, flagged removals erase it
func (c *Cache) UpdateNamesForHeight(height uint32, names map[string]struct{}) {
	for key, flag := range c.expireIndex {
		entry, err := namerecord.UnpackExpireEntry([]byte(key))
		if nil != err {
			logger.Panicf("namecache: corrupt expire entry: %x", key)
		}
		if entry.Height != height {
			continue
		}
		if flag {
			names[string(entry.Name)] = struct{}{}
		} else {
			delete(names, string(entry.Name))
		}
	}
}

// Apply - overlay this cache onto another cache
//
// routed through the other cache's own mutators so that write after
// delete conflicts resolve the same way everywhere
func (c *Cache) Apply(other *Cache) {
	for _, name := range c.sortedEntries() {
		other.Set([]byte(name), c.entries[name])
	}
	for _, name := range c.sortedDeleted() {
		other.Remove([]byte(name))
	}
	for name, history := range c.history {
		other.SetHistory([]byte(name), history)
	}
	for key, flag := range c.expireIndex {
		other.expireIndex[key] = flag
	}
}

// ApplyToTrie - replay the cached mutations onto a UNO trie
//
// all writes are applied before all deletes; the two key sets are
// disjoint so the relative order inside each group cannot matter
func (c *Cache) ApplyToTrie(trie *unotrie.Trie, expanded bool) error {
	for _, name := range c.sortedEntries() {
		trie.Set([]byte(name), c.entries[name], expanded)
	}
	for _, name := range c.sortedDeleted() {
		err := trie.Delete([]byte(name), expanded)
		if nil != err {
			return err
		}
	}
	return nil
}

// entry names in ascending order
func (c *Cache) sortedEntries() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// tombstoned names in ascending order
func (c *Cache) sortedDeleted() []string {
	names := make([]string, 0, len(c.deleted))
	for name := range c.deleted {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
