// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/nomencoin/nomend/chain"
	"github.com/nomencoin/nomend/fault"
)

// basic defaults (directories and files are relative to the
// "data_directory" from the configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"

	defaultLogDirectory = "log"
	defaultLogFile      = "nomend.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// DatabaseType - where the name database lives
type DatabaseType struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

// Configuration - the daemon configuration
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory"`
	PidFile       string               `gluamapper:"pidfile"`
	Chain         string               `gluamapper:"chain"`
	NameHistory   bool                 `gluamapper:"name_history"`
	Database      DatabaseType         `gluamapper:"database"`
	Logging       logger.Configuration `gluamapper:"logging"`
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Chain:         chain.Nomen,
		NameHistory:   false,
		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	err = ParseConfigurationFile(configurationFileName, options)
	if nil != err {
		return nil, err
	}

	// if any test mode and the database was not specified
	// switch to appropriate default.  Abort if then chain name is
	// not recognised.
	if !chain.Valid(options.Chain) {
		return nil, fault.ErrInvalidChain
	}
	if "" == options.Database.Name {
		options.Database.Name = options.Chain
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrRequiredConfigDir
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory
	}
	options.DataDirectory, err = filepath.Abs(filepath.Clean(options.DataDirectory))
	if nil != err {
		return nil, err
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrConfigDirPath
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = ensureAbsolute(options.DataDirectory, *f)
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}

// DatabasePath - full path prefix for the LevelDB files
func (c *Configuration) DatabasePath() string {
	return filepath.Join(c.Database.Directory, c.Database.Name)
}

// ensureAbsolute - if not absolute, prepend the directory to make an
// absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
