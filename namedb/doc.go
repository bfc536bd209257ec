// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package namedb - persistent view of the name set
//
// read access to the name, history and expire index pools, an
// ordered iterator over all stored names that plugs under the
// namecache merged iterator, and a full database cross check.
//
// writes never happen here: a namecache.Cache stages them and
// flushes through a storage transaction.
package namedb
