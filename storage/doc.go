// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - name database access
//
// maintains the on-disk name index as a single LevelDB database
// with single byte key prefixes to partition it into pools:
//
//	n → current name records
//	h → name history records
//	x → expire index entries, empty values
//	Z → test data
//
// reads go directly to the pools; all mutations are batched through
// a Transaction so that one block's worth of name changes commits
// atomically.  a short lived write-through cache covers the window
// between batching a write and committing it.
package storage
