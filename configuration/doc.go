// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read the daemon configuration
//
// the configuration file is a Lua script that returns a table, e.g.:
//
//	local M = {}
//	M.data_directory = arg[0]:match("(.*/)") or "."
//	M.chain = "local"
//	M.name_history = true
//	M.database = {
//	    directory = "data",
//	}
//	M.logging = {
//	    Directory = "log",
//	    File = "nomend.log",
//	    Size = 1048576,
//	    Count = 10,
//	    Levels = {
//	        DEFAULT = "info",
//	    },
//	}
//	return M
//
// running a full language instead of a static format lets one file
// serve several deployments
package configuration
