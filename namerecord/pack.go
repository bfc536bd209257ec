// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package namerecord

import (
	"encoding/binary"
)

// append a big endian uint32 to a buffer
func appendUint32(buffer []byte, value uint32) []byte {
	valueBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(valueBytes, value)
	return append(buffer, valueBytes...)
}
