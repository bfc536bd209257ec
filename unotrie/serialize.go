// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package unotrie

import (
	"github.com/nomencoin/nomend/fault"
	"github.com/nomencoin/nomend/namerecord"
	"github.com/nomencoin/nomend/util"
)

// Pack - serialize the subtree to its canonical byte form
//
// per node layout:
//
//	flags               1 byte: 0x01 has data, 0x02 has prefix
//	prefix              compact size length + bytes, only if flagged
//	data                packed NameData, only if flagged
//	child count         compact size
//	children            (next byte, packed child node) ascending
//
// an empty trie packs to flags 0 and child count 0; this form is for
// storage and transfer only, hashing never uses it
func (t *Trie) Pack() []byte {
	return t.pack([]byte{})
}

// internal routine appending onto a buffer
func (t *Trie) pack(buffer []byte) []byte {

	flags := byte(0)
	if nil != t.data {
		flags |= flagHasData
	}
	if 0 != len(t.prefix) {
		flags |= flagHasPrefix
	}
	buffer = append(buffer, flags)

	if 0 != len(t.prefix) {
		buffer = util.AppendCompactBytes(buffer, t.prefix)
	}
	if nil != t.data {
		buffer = append(buffer, t.data.Pack()...)
	}

	childBytes := t.childBytes()
	buffer = append(buffer, util.ToCompactSize(uint64(len(childBytes)))...)
	for _, b := range childBytes {
		buffer = append(buffer, b)
		buffer = t.children[b].pack(buffer)
	}

	return buffer
}

// Unpack - rebuild the subtree from its packed form
//
// the receiver is cleared first; the whole buffer must be consumed
func (t *Trie) Unpack(buffer []byte) error {
	n, err := t.unpack(buffer)
	if nil != err {
		return err
	}
	if n != len(buffer) {
		return fault.ErrTruncatedRecord
	}
	return nil
}

// internal routine reading one node from the start of a buffer
//
// returns the number of bytes consumed
func (t *Trie) unpack(buffer []byte) (int, error) {

	t.Clear()

	if len(buffer) < 1 {
		return 0, fault.ErrTruncatedRecord
	}
	flags := buffer[0]
	if 0 != flags&^(flagHasData|flagHasPrefix) {
		return 0, fault.ErrInvalidNodeFlags
	}
	n := 1

	if 0 != flags&flagHasPrefix {
		prefix, used := util.SplitCompactBytes(buffer[n:])
		if 0 == used {
			return 0, fault.ErrTruncatedRecord
		}
		t.prefix = prefix
		n += used
	}

	if 0 != flags&flagHasData {
		data, used, err := namerecord.UnpackNameData(buffer[n:])
		if nil != err {
			return 0, err
		}
		t.data = data
		n += used
	}

	count, used := util.FromCompactSize(buffer[n:])
	if 0 == used {
		return 0, fault.ErrTruncatedRecord
	}
	n += used

	for i := uint64(0); i < count; i += 1 {
		if len(buffer) < n+1 {
			return 0, fault.ErrTruncatedRecord
		}
		next := buffer[n]
		n += 1

		if _, ok := t.children[next]; ok {
			return 0, fault.ErrDuplicateChildByte
		}

		child := New()
		used, err := child.unpack(buffer[n:])
		if nil != err {
			return 0, err
		}
		t.children[next] = child
		n += used
	}

	return n, nil
}
