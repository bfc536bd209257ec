// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"encoding/hex"
	"hash"

	"golang.org/x/crypto/sha3"

	"github.com/nomencoin/nomend/fault"
)

// Length - number of bytes in the digest
const Length = 32

// Digest - type for a digest
//
// stored as a fixed byte array, represented as hex for printing
type Digest [Length]byte

// NewDigest - create a digest from a byte slice
func NewDigest(record []byte) Digest {
	return sha3.Sum256(record)
}

// NewWriter - create a streaming writer
//
// feed it with Write calls then call Sum to close it into a Digest
func NewWriter() hash.Hash {
	return sha3.New256()
}

// Sum - finish a streaming writer and return its digest
func Sum(h hash.Hash) Digest {
	var digest Digest
	copy(digest[:], h.Sum(nil))
	return digest
}

// String - convert a binary digest to hex string for use by the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - convert a binary digest to hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA3-256:" + hex.EncodeToString(digest[:]) + ">"
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(digest)))
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.ErrTruncatedRecord
	}
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	copy(digest[:], buffer[:byteCount])
	return nil
}

// DigestFromBytes - convert and validate a binary byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrTruncatedRecord
	}
	copy(digest[:], buffer)
	return nil
}
