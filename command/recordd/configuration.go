// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/chain"
	"github.com/bitmark-inc/recordd/configuration"
	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/processor"
	"github.com/bitmark-inc/recordd/rpc/listeners"
	"github.com/bitmark-inc/recordd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"

	defaultLogDirectory = "log"
	defaultLogFile      = "recordd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the LevelDB files
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// GenesisType - one funded account for an empty ledger
type GenesisType struct {
	Account string `gluamapper:"account" json:"account"`
	Balance uint64 `gluamapper:"balance" json:"balance"`
}

// Configuration - the decoded Lua configuration file
type Configuration struct {
	DataDirectory string        `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string        `gluamapper:"pidfile" json:"pidfile"`
	Chain         string        `gluamapper:"chain" json:"chain"`
	ProgramID     string        `gluamapper:"program_id" json:"program_id"`
	Database      DatabaseType  `gluamapper:"database" json:"database"`
	Genesis       []GenesisType `gluamapper:"genesis" json:"genesis"`

	ClientRPC listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Logging   logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Live,
		ProgramID:     processor.DefaultProgramID,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      "",
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// abort if the chain name is not recognised
	name, ok := chain.Normalise(options.Chain)
	if !ok {
		return nil, fmt.Errorf("chain: %q is not supported", options.Chain)
	}
	options.Chain = name

	// if database was not set pick the chain default
	if "" == options.Database.Name {
		options.Database.Name = chain.DatabaseName(options.Chain)
	}

	if _, err := account.KeyFromBase58(options.ProgramID); nil != err {
		return nil, fmt.Errorf("program_id: %q error: %s", options.ProgramID, err)
	}

	for i, g := range options.Genesis {
		if _, err := account.KeyFromBase58(g.Account); nil != err {
			return nil, fmt.Errorf("genesis[%d]: account: %q error: %s", i, g.Account, err)
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// fail if any of these are not simple file names
	if !util.IsPlainName(options.Database.Name) {
		return nil, fmt.Errorf("files: %q is not plain name", options.Database.Name)
	}
	if !util.IsPlainName(options.Logging.File) {
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}
	options.Database.Name = util.EnsureAbsolute(options.Database.Directory, options.Database.Name)

	// create directories if they do not already exist
	for _, d := range []string{
		options.Database.Directory,
		options.Logging.Directory,
	} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}

// genesis entries as ledger funding
func (options *Configuration) genesisEntries() []ledger.GenesisEntry {
	entries := make([]ledger.GenesisEntry, 0, len(options.Genesis))
	for _, g := range options.Genesis {
		k, err := account.KeyFromBase58(g.Account)
		if nil != err {
			continue // already checked by getConfiguration
		}
		entries = append(entries, ledger.GenesisEntry{
			Account: k,
			Balance: g.Balance,
		})
	}
	return entries
}
