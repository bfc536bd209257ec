// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package namerecord

import (
	"github.com/nomencoin/nomend/fault"
	"github.com/nomencoin/nomend/util"
)

// NameHistory - previous bindings of a name, oldest first
//
// an empty history is the instruction to erase the stored record
type NameHistory []NameData

// IsEmpty - true if there are no previous bindings
func (h NameHistory) IsEmpty() bool {
	return 0 == len(h)
}

// Push - append a binding that was just replaced
func (h *NameHistory) Push(data *NameData) {
	*h = append(*h, *data.Copy())
}

// Pop - remove the latest binding, used when disconnecting a block
func (h *NameHistory) Pop() {
	if 0 == len(*h) {
		return
	}
	*h = (*h)[:len(*h)-1]
}

// Pack - convert the history to its canonical byte form
//
// layout: compact size count then each packed NameData in order
func (h NameHistory) Pack() Packed {
	message := util.ToCompactSize(uint64(len(h)))
	for i := range h {
		entry := h[i].Pack()
		message = append(message, entry...)
	}
	return message
}

// UnpackHistory - rebuild a history from its packed form
func UnpackHistory(buffer []byte) (NameHistory, error) {
	count, used := util.FromCompactSize(buffer)
	if 0 == used {
		return nil, fault.ErrTruncatedRecord
	}
	buffer = buffer[used:]

	history := make(NameHistory, 0, count)
	for i := uint64(0); i < count; i += 1 {
		entry := NameData{}
		n, err := entry.unpack(buffer)
		if nil != err {
			return nil, err
		}
		history = append(history, entry)
		buffer = buffer[n:]
	}
	if 0 != len(buffer) {
		return nil, fault.ErrTruncatedRecord
	}
	return history, nil
}
