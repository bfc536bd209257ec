// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unotrie

import (
	"github.com/nomencoin/nomend/namerecord"
)

// Set - insert or overwrite the binding for a key
//
// the expanded flag selects the representation and must be the same
// for every operation on one trie
func (t *Trie) Set(key []byte, data *namerecord.NameData, expanded bool) {
	t.set(key, data.Copy(), expanded)
}

// internal routine for set, owns the data record
func (t *Trie) set(key []byte, data *namerecord.NameData, expanded bool) {

	n := commonPrefix(t.prefix, key)

	if n < len(t.prefix) {
		// the key ends inside the prefix or diverges from it: split
		// this node; its old contents move down one level keyed by
		// the first unmatched prefix byte
		//
		// only reachable in unexpanded form since expanded nodes
		// have no prefix
		descendant := &Trie{
			prefix:   copyBytes(t.prefix[n+1:]),
			data:     t.data,
			children: t.children,
		}
		divergence := t.prefix[n]

		t.prefix = copyBytes(t.prefix[:n])
		t.data = nil
		t.children = map[byte]*Trie{
			divergence: descendant,
		}
	}

	rest := key[n:]

	if 0 == len(rest) {
		t.data = data
		return
	}

	next := rest[0]
	if child, ok := t.children[next]; ok {
		child.set(rest[1:], data, expanded)
		return
	}

	if expanded {
		// one node per byte
		child := New()
		t.children[next] = child
		child.set(rest[1:], data, true)
	} else {
		// the whole remaining key becomes one compressed edge
		t.children[next] = &Trie{
			prefix:   copyBytes(rest[1:]),
			data:     data,
			children: make(map[byte]*Trie),
		}
	}
}
