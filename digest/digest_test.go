// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest_test

import (
	"testing"

	"github.com/nomencoin/nomend/digest"
)

// sha3-256 of "hello" from a reference implementation
const expectedHex = "3338be694f50c5f338814986cdf0686453a888b84f424d792af4b9202398f392"

func TestDigest(t *testing.T) {
	d := digest.NewDigest([]byte("hello"))
	if d.String() != expectedHex {
		t.Errorf("digest actual: %s  expected: %s", d, expectedHex)
	}
}

// streaming writer must agree with the one shot digest
func TestWriter(t *testing.T) {
	h := digest.NewWriter()
	h.Write([]byte("he"))
	h.Write([]byte("llo"))
	d := digest.Sum(h)

	if d != digest.NewDigest([]byte("hello")) {
		t.Errorf("streamed digest differs: %s", d)
	}
}

func TestMarshalText(t *testing.T) {
	d := digest.NewDigest([]byte("hello"))

	text, err := d.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	var restored digest.Digest
	err = restored.UnmarshalText(text)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if restored != d {
		t.Errorf("round trip mismatch: actual: %s  expected: %s", restored, d)
	}
}
