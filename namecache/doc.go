// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package namecache - buffered name set mutations
//
// A Cache is a delta over some base view: another cache or the
// database itself.  It records pending binding writes, tombstones,
// history rewrites and expire index flags while a chain extension is
// still tentative.  A name is never in both the write and the
// tombstone set.
//
// A cache is consumed exactly once: merged onto its parent cache
// with Apply, turned into trie mutations with ApplyToTrie, or
// flushed to disk with WriteBatch inside one storage transaction.
//
// IterateNames composes the cache with a base iterator, producing
// the effective mapping (base minus tombstones, overlaid with the
// pending writes) in ascending name order.
//
// History tracking is a process wide switch set once at start up;
// touching history operations while it is off is a programming
// error and aborts.
package namecache
