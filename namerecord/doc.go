// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package namerecord - records stored against a registered name
//
// NameData is the current binding of a name: its value bytes, the
// height the binding was created at, the funding outpoint and the
// recipient address script.  NameHistory is the list of previous
// bindings, kept only when history tracking is switched on.
// ExpireEntry is the (height, name) index key used to enumerate the
// names that expire at a given height.
//
// All records pack to a deterministic byte form that round trips
// exactly; the packed NameData form is also the one fed into the
// UNO trie hash.
package namerecord
