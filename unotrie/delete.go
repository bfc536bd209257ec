// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unotrie

import (
	"bytes"

	"github.com/nomencoin/nomend/fault"
)

// Delete - remove the binding for a key
//
// returns ErrNameNotFound if the key has no binding; the tree is
// left untouched in that case
func (t *Trie) Delete(key []byte, expanded bool) error {
	return t.delete(key, expanded, true)
}

// internal routine for delete
//
// the root never collapses, so that an empty or single child tree
// stays rooted at the same node
func (t *Trie) delete(key []byte, expanded bool, isRoot bool) error {

	if len(key) < len(t.prefix) || !bytes.Equal(t.prefix, key[:len(t.prefix)]) {
		return fault.ErrNameNotFound
	}

	rest := key[len(t.prefix):]

	if 0 == len(rest) {
		if nil == t.data {
			return fault.ErrNameNotFound
		}
		t.data = nil
	} else {
		child, ok := t.children[rest[0]]
		if !ok {
			return fault.ErrNameNotFound
		}

		err := child.delete(rest[1:], expanded, false)
		if nil != err {
			return err
		}

		// prune a child that became an empty leaf; this cascades
		// upward as each level returns
		if child.IsEmpty() {
			delete(t.children, rest[0])
		}
	}

	// a data-less single child node is forbidden in unexpanded form:
	// fold the child into this node
	if !isRoot && !expanded && nil == t.data && 1 == len(t.children) {
		t.collapse()
	}

	return nil
}

// merge the single child into this node
//
// the child's dispatch byte and prefix are appended to this node's
// prefix and the child's contents are adopted
func (t *Trie) collapse() {
	var next byte
	var child *Trie
	for b, c := range t.children {
		next = b
		child = c
	}

	prefix := make([]byte, 0, len(t.prefix)+1+len(child.prefix))
	prefix = append(prefix, t.prefix...)
	prefix = append(prefix, next)
	prefix = append(prefix, child.prefix...)

	t.prefix = prefix
	t.data = child.data
	t.children = child.children
}
