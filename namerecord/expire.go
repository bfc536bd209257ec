// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package namerecord

import (
	"encoding/binary"

	"github.com/nomencoin/nomend/fault"
)

// ExpireEntry - (height, name) key for the expire index
//
// the packed form sorts by height then name, so a range scan for one
// height is contiguous in the store
type ExpireEntry struct {
	Height uint32
	Name   []byte
}

// Pack - convert the entry to its order preserving key form
//
// layout: 4 byte big endian height then the raw name bytes
func (e *ExpireEntry) Pack() Packed {
	message := appendUint32(make([]byte, 0, 4+len(e.Name)), e.Height)
	return append(message, e.Name...)
}

// UnpackExpireEntry - rebuild an entry from a key
//
// the name is everything after the height, so the buffer must be the
// complete key payload
func UnpackExpireEntry(buffer []byte) (*ExpireEntry, error) {
	if len(buffer) < 4 {
		return nil, fault.ErrTruncatedRecord
	}
	name := make([]byte, len(buffer)-4)
	copy(name, buffer[4:])
	return &ExpireEntry{
		Height: binary.BigEndian.Uint32(buffer),
		Name:   name,
	}, nil
}
