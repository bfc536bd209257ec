// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package namecache

import (
	"github.com/bitmark-inc/logger"

	"github.com/nomencoin/nomend/storage"
)

// WriteBatch - stage the cached mutations into a storage transaction
//
// the transaction commits atomically, so the name records, history
// records and expire index move together; ordering inside the batch
// does not matter
func (c *Cache) WriteBatch(trx storage.Transaction) {

	for name, data := range c.entries {
		trx.Put(storage.Pool.Names, []byte(name), data.Pack())
	}

	for name := range c.deleted {
		trx.Delete(storage.Pool.Names, []byte(name))
	}

	if !HistoryEnabled() && 0 != len(c.history) {
		logger.Panic("namecache.WriteBatch: history records with history tracking disabled")
	}
	for name, history := range c.history {
		if history.IsEmpty() {
			trx.Delete(storage.Pool.NameHistory, []byte(name))
		} else {
			trx.Put(storage.Pool.NameHistory, []byte(name), history.Pack())
		}
	}

	for key, flag := range c.expireIndex {
		if flag {
			trx.Put(storage.Pool.NameExpiry, []byte(key), []byte{})
		} else {
			trx.Delete(storage.Pool.NameExpiry, []byte(key))
		}
	}
}
