// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package namerecord

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/nomencoin/nomend/chain"
	"github.com/nomencoin/nomend/fault"
	"github.com/nomencoin/nomend/util"
)

// TxIdLength - number of bytes in a transaction id
const TxIdLength = 32

// OutPoint - the transaction output funding a name
type OutPoint struct {
	TxId  [TxIdLength]byte
	Index uint32
}

// NameData - the current binding of a name
//
// immutable after insertion into a cache or the trie; an update
// creates a fresh record
type NameData struct {
	Value   []byte   // current value bytes
	Height  uint32   // block height the binding was created at
	Prevout OutPoint // funding outpoint
	Addr    []byte   // recipient address script
}

// Packed - packed byte form of a record
type Packed []byte

// IsExpired - true if the binding has expired at the given chain height
func (d *NameData) IsExpired(chainName string, chainHeight uint32) bool {
	return chainHeight >= d.Height+chain.NameExpirationDepth(chainName, d.Height)
}

// Pack - convert the record to its canonical byte form
//
// layout:
//   value       compact size length + bytes
//   height      4 bytes big endian
//   prevout     32 byte txid + 4 byte big endian output index
//   addr        compact size length + bytes
func (d *NameData) Pack() Packed {
	message := util.AppendCompactBytes([]byte{}, d.Value)

	message = appendUint32(message, d.Height)

	message = append(message, d.Prevout.TxId[:]...)
	message = appendUint32(message, d.Prevout.Index)

	return util.AppendCompactBytes(message, d.Addr)
}

// unpack a record from the start of a buffer
//
// returns the number of bytes consumed
func (d *NameData) unpack(buffer []byte) (int, error) {
	value, used := util.SplitCompactBytes(buffer)
	if 0 == used {
		return 0, fault.ErrTruncatedRecord
	}
	n := used

	if len(buffer) < n+4+TxIdLength+4 {
		return 0, fault.ErrTruncatedRecord
	}
	height := binary.BigEndian.Uint32(buffer[n:])
	n += 4

	var prevout OutPoint
	copy(prevout.TxId[:], buffer[n:n+TxIdLength])
	n += TxIdLength
	prevout.Index = binary.BigEndian.Uint32(buffer[n:])
	n += 4

	addr, used := util.SplitCompactBytes(buffer[n:])
	if 0 == used {
		return 0, fault.ErrTruncatedRecord
	}
	n += used

	d.Value = value
	d.Height = height
	d.Prevout = prevout
	d.Addr = addr
	return n, nil
}

// Unpack - rebuild a record from its packed form
func (p Packed) Unpack() (*NameData, error) {
	data, n, err := UnpackNameData(p)
	if nil != err {
		return nil, err
	}
	if n != len(p) {
		return nil, fault.ErrTruncatedRecord
	}
	return data, nil
}

// UnpackNameData - rebuild a record from the start of a buffer
//
// also returns the number of bytes consumed, for callers that embed
// the record inside a larger stream
func UnpackNameData(buffer []byte) (*NameData, int, error) {
	data := &NameData{}
	n, err := data.unpack(buffer)
	if nil != err {
		return nil, 0, err
	}
	return data, n, nil
}

// Equal - compare two records field by field
func (d *NameData) Equal(other *NameData) bool {
	return bytes.Equal(d.Value, other.Value) &&
		d.Height == other.Height &&
		d.Prevout == other.Prevout &&
		bytes.Equal(d.Addr, other.Addr)
}

// Copy - deep copy of a record
func (d *NameData) Copy() *NameData {
	result := &NameData{
		Value:   append([]byte{}, d.Value...),
		Height:  d.Height,
		Prevout: d.Prevout,
		Addr:    append([]byte{}, d.Addr...),
	}
	return result
}

// String - printable summary for logging
func (d *NameData) String() string {
	return fmt.Sprintf("{value: %q  height: %d  addr: %s}",
		d.Value, d.Height, base58.Encode(d.Addr))
}
