// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/processor"
	"github.com/bitmark-inc/recordd/rpc"
	"github.com/bitmark-inc/recordd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// start a logger channel for panics
	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// data commands only inspect the database
	readOnly := storage.ReadWrite
	if len(arguments) > 0 && "start" != arguments[0] && "run" != arguments[0] {
		readOnly = storage.ReadOnly
	}

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile && !readOnly {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("chain: %s", theConfiguration.Chain)
	log.Infof("database: %q", theConfiguration.Database)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, readOnly)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	programID, err := account.KeyFromBase58(theConfiguration.ProgramID)
	if nil != err {
		log.Criticalf("program id: %q error: %s", theConfiguration.ProgramID, err)
		exitwithstatus.Message("program id: %q error: %s", theConfiguration.ProgramID, err)
	}
	log.Infof("program id: %s", programID)

	// the ledger with the built in system program and the record program
	log.Info("initialise ledger")
	bank := ledger.New(logger.New("ledger"), storage.Pool.Accounts, storage.Pool.Receipts, storage.NewDBTransaction)
	err = bank.RegisterProgram(programID, processor.New(programID, logger.New("processor")))
	if nil != err {
		log.Criticalf("register program: %s error: %s", programID, err)
		exitwithstatus.Message("register program: %s error: %s", programID, err)
	}

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(arguments, bank) {
		return
	}

	err = bank.Genesis(theConfiguration.genesisEntries())
	if nil != err {
		log.Criticalf("genesis error: %s", err)
		exitwithstatus.Message("genesis error: %s", err)
	}

	// start up the RPC listener
	log.Info("initialise rpc")
	err = rpc.Initialise(&theConfiguration.ClientRPC, bank, version, theConfiguration.Chain, programID)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// report changes to the configuration file
	watcher, err := newConfigWatcher(configurationFile, logger.New("watcher"))
	if nil != err {
		log.Errorf("configuration watcher error: %s", err)
	} else if err = watcher.Start(); nil != err {
		log.Errorf("configuration watcher start error: %s", err)
	} else {
		defer watcher.Stop()
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if len(options["quiet"]) == 0 {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	var changed, removed <-chan struct{}
	if nil != watcher {
		changed = watcher.change
		removed = watcher.remove
	}

loop:
	for {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			break loop
		case <-changed:
			log.Warnf("configuration file: %q changed, restart to apply", configurationFile)
		case <-removed:
			log.Warnf("configuration file: %q removed", configurationFile)
			removed = nil
		}
	}

	if len(options["quiet"]) == 0 {
		fmt.Printf("\nreceived signal\n")
	}
	log.Info("shutting down…")
}
