// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package namedb

import (
	"github.com/nomencoin/nomend/unotrie"
)

// BuildTrie - construct a UNO trie holding every stored name
//
// the root hash of the result is the commitment to the current name
// set; incremental updates then go through
// namecache.Cache.ApplyToTrie
func BuildTrie(expanded bool) (*unotrie.Trie, error) {
	trie := unotrie.New()

	it := IterateNames()
	defer it.Release()

	for {
		name, data, ok := it.Next()
		if !ok {
			break
		}
		trie.Set(name, data, expanded)
	}

	err := trie.Check(true, expanded)
	if nil != err {
		return nil, err
	}
	return trie, nil
}
