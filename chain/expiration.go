// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// expiration depths
//
// a name registered at height h stays live until
// h + NameExpirationDepth(h) is reached
const (
	initialExpirationDepth = 12000
	forkExpirationDepth    = 36000

	// height at which the expiration fork activates on the main chain
	expirationForkHeight = 24000

	testingExpirationDepth = 30
)

// NameExpirationDepth - number of blocks after which a name registered
// at the given height expires
func NameExpirationDepth(chainName string, height uint32) uint32 {
	switch chainName {
	case Nomen:
		if height < expirationForkHeight {
			return initialExpirationDepth
		}
		return forkExpirationDepth
	default:
		return testingExpirationDepth
	}
}
