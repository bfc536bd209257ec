// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"
)

// CompactSizeMaximumBytes - maximum possible number of bytes in a compact size
const CompactSizeMaximumBytes = 9

// ToCompactSize - convert a 64 bit unsigned integer to compact size form
//
// Structure of the result
//   0x00…0xfc        1 byte:  value
//   0xfd…0xffff      3 bytes: 0xfd then uint16 little endian
//   …0xffffffff      5 bytes: 0xfe then uint32 little endian
//   larger           9 bytes: 0xff then uint64 little endian
func ToCompactSize(value uint64) []byte {
	switch {
	case value < 0xfd:
		return []byte{byte(value)}
	case value <= 0xffff:
		result := make([]byte, 3)
		result[0] = 0xfd
		binary.LittleEndian.PutUint16(result[1:], uint16(value))
		return result
	case value <= 0xffffffff:
		result := make([]byte, 5)
		result[0] = 0xfe
		binary.LittleEndian.PutUint32(result[1:], uint32(value))
		return result
	default:
		result := make([]byte, 9)
		result[0] = 0xff
		binary.LittleEndian.PutUint64(result[1:], value)
		return result
	}
}

// FromCompactSize - convert a compact size from the beginning of a buffer
// to a uint64
//
// also return the number of bytes used as second value
// returns 0, 0 if the buffer is truncated
func FromCompactSize(buffer []byte) (uint64, int) {
	if len(buffer) < 1 {
		return 0, 0
	}

	switch buffer[0] {
	case 0xfd:
		if len(buffer) < 3 {
			return 0, 0
		}
		return uint64(binary.LittleEndian.Uint16(buffer[1:3])), 3
	case 0xfe:
		if len(buffer) < 5 {
			return 0, 0
		}
		return uint64(binary.LittleEndian.Uint32(buffer[1:5])), 5
	case 0xff:
		if len(buffer) < 9 {
			return 0, 0
		}
		return binary.LittleEndian.Uint64(buffer[1:9]), 9
	default:
		return uint64(buffer[0]), 1
	}
}

// AppendCompactBytes - append a length prefixed byte slice to a buffer
func AppendCompactBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, ToCompactSize(uint64(len(data)))...)
	return append(buffer, data...)
}

// SplitCompactBytes - read a length prefixed byte slice from the
// beginning of a buffer
//
// returns the data and the total number of bytes consumed
// returns nil, 0 if the buffer is truncated
func SplitCompactBytes(buffer []byte) ([]byte, int) {
	length, used := FromCompactSize(buffer)
	if 0 == used {
		return nil, 0
	}
	total := used + int(length)
	if len(buffer) < total {
		return nil, 0
	}
	data := make([]byte, length)
	copy(data, buffer[used:total])
	return data, total
}
