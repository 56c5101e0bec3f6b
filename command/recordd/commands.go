// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/chain"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/keypair"
	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/merkle"
	"github.com/bitmark-inc/recordd/rpc/certificate"
	"github.com/bitmark-inc/recordd/util"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	identityFilename = "identity.json"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.MakeSelfSigned("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-identity", "identity":
		identityFile := getFilenameWithDirectory(arguments, identityFilename)

		testnet := false
		if len(arguments) >= 2 {
			name, ok := chain.Normalise(arguments[1])
			if !ok {
				fmt.Printf("error: chain: %q is not supported\n", arguments[1])
				exitwithstatus.Exit(1)
			}
			testnet = chain.Live != name
		}

		err := makeIdentity(identityFile, testnet)
		if nil != err {
			fmt.Printf("generate identity: %q error: %s\n", identityFile, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated identity: %q\n", identityFile)

	case "start", "run":
		return false // continue processing

	case "account", "a", "receipt", "r":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...] (rpc)   - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-identity [DIR [CHAIN]] (identity) - create seed and keys in: %q\n", "DIR/"+identityFilename)
		fmt.Printf("                                        for use in the genesis table\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  account KEY                (a)      - display a stored account as JSON\n")
		fmt.Printf("\n")

		fmt.Printf("  receipt TXID               (r)      - display a stored receipt as JSON\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJson(options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// the account data as displayed by the account command
type accountDump struct {
	Account account.Key `json:"account"`
	Owner   account.Key `json:"owner"`
	Balance uint64      `json:"balance"`
	Length  int         `json:"length"`
	Data    []byte      `json:"data"`
}

// data command handler
// the ledger is available so these commands can inspect the database
func processDataCommand(arguments []string, bank *ledger.Bank) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "account", "a":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing account argument")
		}
		k, err := account.KeyFromBase58(arguments[0])
		if nil != err {
			exitwithstatus.Message("error in account: %s", err)
		}
		a, ok := bank.Get(k)
		if !ok {
			exitwithstatus.Message("error: %s", fault.ErrAccountNotFound)
		}
		printJson(accountDump{
			Account: k,
			Owner:   a.Owner,
			Balance: a.Balance,
			Length:  len(a.Data),
			Data:    a.Data,
		})

	case "receipt", "r":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing transaction id argument")
		}
		var id merkle.Digest
		if err := id.UnmarshalText([]byte(arguments[0])); nil != err {
			exitwithstatus.Message("error in transaction id: %s", err)
		}
		receipt, err := bank.Receipt(id)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		printJson(receipt)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// print indented JSON to stdout
func printJson(item interface{}) {
	b, err := json.Marshal(item)
	if err != nil {
		exitwithstatus.Message("error: %s", err)
	}
	var out bytes.Buffer
	json.Indent(&out, b, "", "  ")
	out.WriteTo(os.Stdout)
	os.Stdout.WriteString("\n")
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}

// write a new seed and its keys, the account can then be funded
// through the genesis table of the configuration
func makeIdentity(identityFile string, testnet bool) error {
	if util.EnsureFileExists(identityFile) {
		return fault.ErrIdentityFileAlreadyExists
	}

	raw, _, err := keypair.MakeRawKeyPair(testnet)
	if nil != err {
		return err
	}

	b, err := json.MarshalIndent(raw, "", "  ")
	if nil != err {
		return err
	}

	return ioutil.WriteFile(identityFile, append(b, '\n'), 0600)
}
