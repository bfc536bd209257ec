// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nomencoin/nomend/chain"
	"github.com/nomencoin/nomend/configuration"
	"github.com/nomencoin/nomend/fault"
)

const sampleConfiguration = `
local M = {}
M.data_directory = "."
M.chain = "local"
M.name_history = true
M.database = {
    directory = "data",
}
M.logging = {
    Directory = "log",
    File = "test.log",
    Size = 1048576,
    Count = 5,
    Levels = {
        DEFAULT = "error",
    },
}
return M
`

func writeConfiguration(t *testing.T, text string) (string, func()) {
	directory, err := ioutil.TempDir("", "configuration-test")
	if nil != err {
		t.Fatalf("tempdir error: %s", err)
	}
	fileName := filepath.Join(directory, "nomend.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { os.RemoveAll(directory) }
}

func TestGetConfiguration(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, sampleConfiguration)
	defer cleanup()

	options, err := configuration.GetConfiguration(fileName)
	assert.Nil(t, err, "configuration error")

	assert.Equal(t, chain.Local, options.Chain, "wrong chain")
	assert.True(t, options.NameHistory, "wrong history flag")
	assert.Equal(t, chain.Local, options.Database.Name, "wrong database name")
	assert.True(t, filepath.IsAbs(options.Database.Directory), "database directory not absolute")
	assert.True(t, filepath.IsAbs(options.Logging.Directory), "log directory not absolute")
	assert.Equal(t, "test.log", options.Logging.File, "wrong log file")
	assert.Equal(t, 5, options.Logging.Count, "wrong log count")
	assert.Equal(t, "error", options.Logging.Levels["DEFAULT"], "wrong log level")

	// the directories were created relative to the config file
	_, err = os.Stat(options.Database.Directory)
	assert.Nil(t, err, "database directory not created")
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.chain = "testing"
return M
`)
	defer cleanup()

	options, err := configuration.GetConfiguration(fileName)
	assert.Nil(t, err, "configuration error")

	assert.False(t, options.NameHistory, "history defaulted on")
	assert.Equal(t, "testing", options.Database.Name, "wrong default database name")
	assert.Equal(t, "nomend.log", options.Logging.File, "wrong default log file")
}

func TestGetConfigurationBadChain(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.chain = "bogus"
return M
`)
	defer cleanup()

	_, err := configuration.GetConfiguration(fileName)
	assert.Equal(t, fault.ErrInvalidChain, err, "bad chain accepted")
}

func TestGetConfigurationMissingDataDirectory(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `
local M = {}
M.chain = "local"
return M
`)
	defer cleanup()

	_, err := configuration.GetConfiguration(fileName)
	assert.Equal(t, fault.ErrRequiredConfigDir, err, "missing data directory accepted")
}
