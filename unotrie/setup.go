// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unotrie

import (
	"sort"

	"github.com/nomencoin/nomend/namerecord"
)

// Trie - a node of the UNO trie and the subtree below it
//
// the zero value is not usable, call New
type Trie struct {
	prefix   []byte
	data     *namerecord.NameData
	children map[byte]*Trie
}

// New - create an empty trie
func New() *Trie {
	return &Trie{
		prefix:   nil,
		data:     nil,
		children: make(map[byte]*Trie),
	}
}

// Clear - drop all names and children
//
// also used by Unpack to reset the receiver before reading
func (t *Trie) Clear() {
	t.prefix = nil
	t.data = nil
	t.children = make(map[byte]*Trie)
}

// IsEmpty - true if the node has no data and no children
func (t *Trie) IsEmpty() bool {
	return nil == t.data && 0 == len(t.children)
}

// child bytes in ascending order
//
// map iteration order is random so every deterministic walk goes
// through this
func (t *Trie) childBytes() []byte {
	keys := make([]byte, 0, len(t.children))
	for b := range t.children {
		keys = append(keys, b)
	}
	sort.Slice(keys, func(i int, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// number of leading bytes shared by the node prefix and a key
func commonPrefix(prefix []byte, key []byte) int {
	n := 0
	for n < len(prefix) && n < len(key) && prefix[n] == key[n] {
		n += 1
	}
	return n
}

// copy a byte slice so that nodes never alias caller storage
func copyBytes(buffer []byte) []byte {
	result := make([]byte, len(buffer))
	copy(result, buffer)
	return result
}
