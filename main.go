// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/nomencoin/nomend/configuration"
	"github.com/nomencoin/nomend/mode"
	"github.com/nomencoin/nomend/namecache"
	"github.com/nomencoin/nomend/namedb"
	"github.com/nomencoin/nomend/storage"
)

type globalFlags struct {
	verbose bool
	config  string
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	globals := globalFlags{}

	app := cli.NewApp()
	app.Name = "nomend"
	app.Usage = "name registry database tool"
	app.Version = Version()
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:        "verbose, v",
			Usage:       " verbose result",
			Destination: &globals.verbose,
		},
		cli.StringFlag{
			Name:        "config, c",
			Value:       "",
			Usage:       "*nomend config file",
			Destination: &globals.config,
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "dump",
			Usage: "list all current names and their records",
			Action: func(c *cli.Context) error {
				return withDatabase(globals, runDump)
			},
		},
		{
			Name:  "hash",
			Usage: "print the UNO trie root hash of the name set",
			Action: func(c *cli.Context) error {
				return withDatabase(globals, runHash)
			},
		},
		{
			Name:      "expiring",
			Usage:     "list names recorded as expiring at a height",
			ArgsUsage: "HEIGHT",
			Action: func(c *cli.Context) error {
				height, err := heightArgument(c)
				if nil != err {
					return err
				}
				return withDatabase(globals, func(cfg *configuration.Configuration) error {
					return runExpiring(height)
				})
			},
		},
		{
			Name:      "validate",
			Usage:     "cross check the whole name database",
			ArgsUsage: "HEIGHT",
			Action: func(c *cli.Context) error {
				height, err := heightArgument(c)
				if nil != err {
					return err
				}
				return withDatabase(globals, func(cfg *configuration.Configuration) error {
					return runValidate(cfg, height)
				})
			},
		},
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}

// parse the single block height argument of a command
func heightArgument(c *cli.Context) (uint32, error) {
	if 1 != c.NArg() {
		return 0, fmt.Errorf("exactly one HEIGHT argument is required")
	}
	height, err := strconv.ParseUint(c.Args().First(), 10, 32)
	if nil != err {
		return 0, fmt.Errorf("invalid height: %q", c.Args().First())
	}
	return uint32(height), nil
}

// bring the system up, run one action against the database and shut
// down again in reverse order
func withDatabase(globals globalFlags, action func(*configuration.Configuration) error) error {

	if "" == globals.config {
		return fmt.Errorf("a config file is required, use: --config FILE")
	}

	cfg, err := configuration.GetConfiguration(globals.config)
	if nil != err {
		return fmt.Errorf("configuration: %q  error: %s", globals.config, err)
	}

	// start logging
	if globals.verbose {
		cfg.Logging.Console = true
	}
	err = logger.Initialise(cfg.Logging)
	if nil != err {
		return fmt.Errorf("logger setup failed with error: %s", err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", Version())

	err = mode.Initialise(cfg.Chain)
	if nil != err {
		return err
	}
	defer mode.Finalise()

	// the tool never mutates the database
	err = storage.Initialise(cfg.DatabasePath(), storage.ReadOnly)
	if nil != err {
		return fmt.Errorf("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	err = namecache.Initialise(cfg.NameHistory)
	if nil != err {
		return err
	}
	defer namecache.Finalise()

	err = namedb.Initialise()
	if nil != err {
		return err
	}
	defer namedb.Finalise()

	mode.Set(mode.Normal)

	return action(cfg)
}

// print every stored name with its record
func runDump(cfg *configuration.Configuration) error {
	it := namedb.IterateNames()
	defer it.Release()

	count := 0
	for {
		name, data, ok := it.Next()
		if !ok {
			break
		}
		fmt.Printf("%q: %s\n", name, data)
		count += 1
	}
	fmt.Printf("total: %d names\n", count)
	return nil
}

// print the UNO trie root hash over the whole database
func runHash(cfg *configuration.Configuration) error {
	trie, err := namedb.BuildTrie(false)
	if nil != err {
		return err
	}
	fmt.Printf("%s\n", trie.GetHash())
	return nil
}

// print the names recorded as expiring at one height
func runExpiring(height uint32) error {
	names, err := namedb.GetNamesForHeight(height)
	if nil != err {
		return err
	}
	for name := range names {
		fmt.Printf("%q\n", name)
	}
	fmt.Printf("total: %d names at height %d\n", len(names), height)
	return nil
}

// cross check the database, aborting on SIGINT/SIGTERM
func runValidate(cfg *configuration.Configuration, height uint32) error {

	interrupt := make(chan struct{})
	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChannel)
	go func() {
		<-sigChannel
		close(interrupt)
	}()

	// no transaction engine is attached, so the UTXO comparison is
	// skipped; the index cross checks still run
	err := namedb.Validate(cfg.Chain, height, nil, interrupt)
	if nil != err {
		return err
	}
	fmt.Printf("name database is consistent at height %d\n", height)
	return nil
}
