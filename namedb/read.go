// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package namedb

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/nomencoin/nomend/fault"
	"github.com/nomencoin/nomend/namecache"
	"github.com/nomencoin/nomend/namerecord"
	"github.com/nomencoin/nomend/storage"
)

// GetName - read the current binding of a name
func GetName(name []byte) (*namerecord.NameData, error) {
	packed := storage.Pool.Names.Get(name)
	if nil == packed {
		return nil, fault.ErrNameNotFound
	}

	data, err := namerecord.Packed(packed).Unpack()
	if nil != err {
		globalData.log.Criticalf("corrupt name record for: %q  error: %s", name, err)
		return nil, err
	}
	return data, nil
}

// GetNameHistory - read the stored history of a name
//
// aborts if history tracking is disabled
func GetNameHistory(name []byte) (namerecord.NameHistory, error) {
	if !namecache.HistoryEnabled() {
		logger.Panic("namedb.GetNameHistory called with history tracking disabled")
	}

	packed := storage.Pool.NameHistory.Get(name)
	if nil == packed {
		return nil, fault.ErrNameNotFound
	}

	history, err := namerecord.UnpackHistory(packed)
	if nil != err {
		globalData.log.Criticalf("corrupt history record for: %q  error: %s", name, err)
		return nil, err
	}
	return history, nil
}

// GetNamesForHeight - all names whose expire index entry carries the
// given height
func GetNamesForHeight(height uint32) (map[string]struct{}, error) {
	names := make(map[string]struct{})

	heightPrefix := make([]byte, 4)
	binary.BigEndian.PutUint32(heightPrefix, height)

	cursor := storage.Pool.NameExpiry.NewFetchCursor()
	cursor.Seek(heightPrefix)

	err := cursor.Map(func(key []byte, value []byte) error {
		entry, err := namerecord.UnpackExpireEntry(key)
		if nil != err {
			return err
		}
		if entry.Height > height {
			return errStopIteration
		}
		names[string(entry.Name)] = struct{}{}
		return nil
	})
	if errStopIteration == err {
		err = nil
	}
	if nil != err {
		return nil, err
	}
	return names, nil
}

// sentinel to stop a cursor map early
var errStopIteration = fault.ProcessError("stop iteration")
