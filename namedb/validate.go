// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package namedb

import (
	"fmt"

	"github.com/nomencoin/nomend/fault"
	"github.com/nomencoin/nomend/namecache"
	"github.com/nomencoin/nomend/namerecord"
	"github.com/nomencoin/nomend/storage"
)

// Validate - cross check the whole name database
//
// read-only scan over the name, history and expire index pools:
//
//	every name appears in the expire index with the same height
//	every unexpired name is backed by a live name output and the
//	  other way round, when the caller supplies the output set
//	history records exist only while tracking is enabled and only
//	  for stored names
//
// expiration is checked at currentHeight+1 to match how expired
// names are swept when the next block connects.  utxoNames may be
// nil when no output view is available, skipping that comparison.
// the interrupt channel is polled between records; closing it
// aborts with ErrValidationInterrupted
func Validate(chainName string, currentHeight uint32, utxoNames map[string]struct{}, interrupt <-chan struct{}) error {

	nameHeightsData := make(map[string]uint32)
	namesInDB := make(map[string]struct{})
	nameHeightsIndex := make(map[string]uint32)
	namesWithHistory := make(map[string]struct{})

	interrupted := func() bool {
		select {
		case <-interrupt:
			return true
		default:
			return false
		}
	}

	// scan current name records
	err := storage.Pool.Names.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if interrupted() {
			return fault.ErrValidationInterrupted
		}

		data, err := namerecord.Packed(value).Unpack()
		if nil != err {
			return fmt.Errorf("corrupt name record for: %q: %s", key, err)
		}

		nameHeightsData[string(key)] = data.Height
		if !data.IsExpired(chainName, currentHeight+1) {
			namesInDB[string(key)] = struct{}{}
		}
		return nil
	})
	if nil != err {
		return err
	}

	// scan the expire index
	err = storage.Pool.NameExpiry.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if interrupted() {
			return fault.ErrValidationInterrupted
		}

		entry, err := namerecord.UnpackExpireEntry(key)
		if nil != err {
			return fmt.Errorf("corrupt expire entry: %x: %s", key, err)
		}

		if _, ok := nameHeightsIndex[string(entry.Name)]; ok {
			return fmt.Errorf("name %q duplicated in expire index", entry.Name)
		}
		nameHeightsIndex[string(entry.Name)] = entry.Height
		return nil
	})
	if nil != err {
		return err
	}

	// scan history records
	err = storage.Pool.NameHistory.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if interrupted() {
			return fault.ErrValidationInterrupted
		}

		namesWithHistory[string(key)] = struct{}{}
		return nil
	})
	if nil != err {
		return err
	}

	// name records and expire index must agree exactly
	for name, height := range nameHeightsData {
		indexHeight, ok := nameHeightsIndex[name]
		if !ok {
			return fmt.Errorf("name %q missing from expire index", name)
		}
		if indexHeight != height {
			return fmt.Errorf("name %q height mismatch: record: %d  index: %d",
				name, height, indexHeight)
		}
	}
	for name := range nameHeightsIndex {
		if _, ok := nameHeightsData[name]; !ok {
			return fmt.Errorf("name %q in expire index but has no record", name)
		}
	}

	// unexpired names must match the live name outputs
	if nil != utxoNames {
		for name := range namesInDB {
			if _, ok := utxoNames[name]; !ok {
				return fmt.Errorf("name %q in database but not in UTXO set", name)
			}
		}
		for name := range utxoNames {
			if _, ok := namesInDB[name]; !ok {
				return fmt.Errorf("name %q in UTXO set but not in database", name)
			}
		}
	}

	// history records need the switch on and a backing name record
	if !namecache.HistoryEnabled() {
		if 0 != len(namesWithHistory) {
			return fmt.Errorf("%d history records present but history tracking is disabled",
				len(namesWithHistory))
		}
	} else {
		for name := range namesWithHistory {
			if _, ok := nameHeightsData[name]; !ok {
				return fmt.Errorf("history entry for name %q without a name record", name)
			}
		}
	}

	globalData.log.Infof("checked name database: %d unexpired names, %d total, %d with history",
		len(namesInDB), len(nameHeightsData), len(namesWithHistory))

	return nil
}
