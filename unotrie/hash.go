// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unotrie

import (
	"hash"

	"github.com/nomencoin/nomend/digest"
	"github.com/nomencoin/nomend/util"
)

// node flag bits shared by hashing and the wire format
const (
	flagHasData   = 0x01
	flagHasPrefix = 0x02
)

// GetHash - root hash committing to the complete subtree
//
// the hash is defined over the expanded shape of the tree, so the
// expanded and unexpanded forms of the same key set give the same
// result
func (t *Trie) GetHash() digest.Digest {
	return t.hash()
}

// internal routine for hashing
//
// first the node is hashed as if its prefix were empty, over its
// data flag, data bytes and ordered child hashes; then the prefix is
// folded back one byte at a time in reverse, each step hashing a
// data-less single child node as the expanded form would contain
func (t *Trie) hash() digest.Digest {

	childBytes := t.childBytes()

	h := digest.NewWriter()
	if nil == t.data {
		h.Write([]byte{0x00})
	} else {
		h.Write([]byte{flagHasData})
		h.Write(t.data.Pack())
	}

	writeChildCount(h, len(childBytes))
	for _, b := range childBytes {
		child := t.children[b].hash()
		writeChildHash(h, b, child)
	}
	res := digest.Sum(h)

	for i := len(t.prefix) - 1; i >= 0; i -= 1 {
		h = digest.NewWriter()
		h.Write([]byte{0x00})
		writeChildCount(h, 1)
		writeChildHash(h, t.prefix[i], res)
		res = digest.Sum(h)
	}

	return res
}

// canonical child map encoding: compact size count then ascending
// (byte, hash) pairs
func writeChildCount(h hash.Hash, count int) {
	h.Write(util.ToCompactSize(uint64(count)))
}

func writeChildHash(h hash.Hash, next byte, d digest.Digest) {
	h.Write([]byte{next})
	h.Write(d[:])
}
