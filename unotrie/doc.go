// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package unotrie - Unspent Name Output trie
//
// A byte keyed radix tree holding every currently registered name
// together with its NameData record.  The root hash is a commitment
// to the complete name set, so the tree must be bit for bit
// deterministic: children are always processed in ascending byte
// order and the hash never depends on the in-memory shape.
//
// The tree exists in two interchangeable representations selected by
// the expanded flag on each operation:
//
//	expanded:   one node per key byte, prefixes always empty
//	unexpanded: path compressed, a chain of data-less single child
//	            nodes is folded into the child's prefix
//
// Both shapes hash to the same root for the same key set.  The hash
// of an unexpanded node is computed as if it were expanded, by
// folding the prefix back one byte at a time in reverse.
//
// Structural rules (checked by Check):
//
//	no node other than the root is an empty leaf
//	in unexpanded form no node other than the root is a pure edge
//	in expanded form no node carries a prefix
//
// The root is exempt from the empty leaf and pure edge rules so that
// the empty tree and a single child root stay representable.
package unotrie
