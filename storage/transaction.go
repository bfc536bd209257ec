// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - batched mutations over the storage pools
//
// Put and Delete only stage operations; nothing reaches the disk
// until Commit, which applies the whole batch atomically
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	Commit() error
	Abort()
	InUse() bool
}

type TransactionImpl struct {
	dataAccess Access
}

func newTransaction(dataAccess Access) Transaction {
	return &TransactionImpl{
		dataAccess: dataAccess,
	}
}

func (t *TransactionImpl) Begin() error {
	return t.dataAccess.Begin()
}

func (t *TransactionImpl) Put(pool *PoolHandle, key []byte, value []byte) {
	t.dataAccess.Put(pool.prefixKey(key), value)
}

func (t *TransactionImpl) Delete(pool *PoolHandle, key []byte) {
	t.dataAccess.Delete(pool.prefixKey(key))
}

func (t *TransactionImpl) Get(pool *PoolHandle, key []byte) []byte {
	return pool.Get(key)
}

func (t *TransactionImpl) Commit() error {
	return t.dataAccess.Commit()
}

func (t *TransactionImpl) Abort() {
	t.dataAccess.Abort()
}

func (t *TransactionImpl) InUse() bool {
	return t.dataAccess.InUse()
}
