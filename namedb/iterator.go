// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package namedb

import (
	"github.com/bitmark-inc/logger"

	"github.com/nomencoin/nomend/namecache"
	"github.com/nomencoin/nomend/namerecord"
	"github.com/nomencoin/nomend/storage"
)

// ordered iterator over every stored name record
//
// usable directly or as the base of a namecache merged iterator
type dbNameIterator struct {
	cursor *storage.FetchCursor
}

// IterateNames - iterator over the whole names pool in key order
func IterateNames() namecache.Iterator {
	return &dbNameIterator{
		cursor: storage.Pool.Names.NewFetchCursor(),
	}
}

// Seek - reposition to the first name >= start
func (it *dbNameIterator) Seek(start []byte) {
	it.cursor.Seek(start)
}

// Next - read the next name record
//
// a record that cannot be decoded means database corruption, which
// is fatal
func (it *dbNameIterator) Next() ([]byte, *namerecord.NameData, bool) {
	elements, err := it.cursor.Fetch(1)
	logger.PanicIfError("namedb.IterateNames", err)
	if 0 == len(elements) {
		return nil, nil, false
	}

	data, err := namerecord.Packed(elements[0].Value).Unpack()
	if nil != err {
		logger.Panicf("corrupt name record for: %q  error: %s", elements[0].Key, err)
	}
	return elements[0].Key, data, true
}

// Release - nothing is held between fetches
func (it *dbNameIterator) Release() {
}
