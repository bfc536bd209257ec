// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unotrie

import (
	"github.com/nomencoin/nomend/fault"
)

// Check - audit the structural invariants of the subtree
//
// isRoot exempts the node itself from the empty leaf and pure edge
// rules; expanded selects which representation is being audited
func (t *Trie) Check(isRoot bool, expanded bool) error {

	if expanded && 0 != len(t.prefix) {
		return fault.ErrPrefixInExpandedNode
	}

	if isRoot {
		if 0 != len(t.prefix) {
			return fault.ErrRootPrefixNotEmpty
		}
	} else {
		if t.IsEmpty() {
			return fault.ErrEmptyLeafNode
		}
		if !expanded && nil == t.data && 1 == len(t.children) {
			return fault.ErrPureEdgeNode
		}
	}

	for _, b := range t.childBytes() {
		err := t.children[b].Check(false, expanded)
		if nil != err {
			return err
		}
	}

	return nil
}
