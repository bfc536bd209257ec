// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package namedb

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/nomencoin/nomend/fault"
	"github.com/nomencoin/nomend/storage"
)

// globals for this package
var globalData struct {
	sync.RWMutex
	log *logger.L

	// set once during initialise
	initialised bool
}

// Initialise - set up the name database view
//
// storage must already be initialised
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("namedb")
	if nil == globalData.log {
		return fault.ErrInvalidLoggerChannel
	}
	globalData.log.Info("starting…")

	// check storage is initialised
	if nil == storage.Pool.Names {
		globalData.log.Critical("storage pool is not initialised")
		return fault.ErrNotInitialised
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shut down the name database view
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}
