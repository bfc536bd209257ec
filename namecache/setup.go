// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package namecache

import (
	"sync"

	"github.com/nomencoin/nomend/fault"
)

// process wide history switch, immutable after initialisation
var globalData struct {
	sync.RWMutex
	historyEnabled bool
	initialised    bool
}

// Initialise - set the history tracking switch
//
// must be called once before any cache is used; the switch cannot
// change while the process runs
func Initialise(historyEnabled bool) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.historyEnabled = historyEnabled
	globalData.initialised = true
	return nil
}

// Finalise - for the daemon shutdown sequence and tests
func Finalise() {
	globalData.Lock()
	globalData.historyEnabled = false
	globalData.initialised = false
	globalData.Unlock()
}

// HistoryEnabled - current state of the history switch
func HistoryEnabled() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.historyEnabled
}
