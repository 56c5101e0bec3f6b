// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordd/chain"
	"github.com/bitmark-inc/recordd/command/record-cli/configuration"
	"github.com/bitmark-inc/recordd/processor"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "record-cli"
	app.Usage = "create and update records held by a recordd node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Testing,
			Usage: " connect to recordd `NETWORK` [live|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
		cli.StringFlag{
			Name:  "program, P",
			Value: processor.DefaultProgramID,
			Usage: " record program `ID`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "Initialise record-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*recordd host/IP and port, `HOST:PORT[,HOST:PORT...]`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing `SEED`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+using existing `SEED`",
				},
				cli.BoolFlag{
					Name:  "new, N",
					Usage: "+create a new seed",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+receive only `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "info",
			Usage:  "display record-cli identities",
			Action: runInfo,
		},
		{
			Name:   "node",
			Usage:  "display recordd node information",
			Action: runNode,
		},
		{
			Name:      "create",
			Usage:     "create and initialize a new record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "balance, b",
					Value: 1,
					Usage: " amount moved from the identity into the record `COUNT`",
				},
				cli.Uint64Flag{
					Name:  "size, s",
					Value: 0,
					Usage: " payload bytes to allocate `BYTES`",
				},
				cli.StringFlag{
					Name:  "authority, a",
					Value: "",
					Usage: " identity name or account allowed to write [default identity]",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "initialize",
			Usage:     "initialize an allocated record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				recordFlag(),
				cli.StringFlag{
					Name:  "authority, a",
					Value: "",
					Usage: " identity name or account allowed to write [default identity]",
				},
			},
			Action: runInitialize,
		},
		{
			Name:      "write",
			Usage:     "write bytes into a record payload",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				recordFlag(),
				cli.Uint64Flag{
					Name:  "offset, o",
					Value: 0,
					Usage: " payload `OFFSET`",
				},
				cli.StringFlag{
					Name:  "hex, x",
					Value: "",
					Usage: "+data as `HEX`",
				},
				cli.StringFlag{
					Name:  "text, t",
					Value: "",
					Usage: "+data as `STRING`",
				},
			},
			Action: runWrite,
		},
		{
			Name:      "set-authority",
			Usage:     "give write access to a different account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				recordFlag(),
				cli.StringFlag{
					Name:  "new-authority, a",
					Value: "",
					Usage: "*identity name or account `NEW`",
				},
			},
			Action: runSetAuthority,
		},
		{
			Name:      "close",
			Usage:     "move the whole record balance to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				recordFlag(),
				cli.StringFlag{
					Name:  "destination, d",
					Value: "",
					Usage: " identity name or account to receive the balance [default identity]",
				},
			},
			Action: runClose,
		},
		{
			Name:      "reallocate",
			Usage:     "grow a record payload",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				recordFlag(),
				cli.Uint64Flag{
					Name:  "length, l",
					Value: 0,
					Usage: "*payload `BYTES`",
				},
			},
			Action: runReallocate,
		},
		{
			Name:      "transfer",
			Usage:     "move balance from the identity to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*identity name or account to receive `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "balance, b",
					Value: 0,
					Usage: "*amount to transfer `COUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "show",
			Usage:     "display an account or record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " identity name or account `ACCOUNT` [default identity]",
				},
			},
			Action: runShow,
		},
		{
			Name:      "receipt",
			Usage:     "display the outcome of a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction id `TXID`",
				},
			},
			Action: runReceipt,
		},
		{
			Name:  "version",
			Usage: "display record-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h":
			return nil
		}

		network, ok := chain.Normalise(c.GlobalString("network"))
		if !ok {
			return fmt.Errorf("network: %q can only be live/testing/local", c.GlobalString("network"))
		}
		testnet := chain.Live != network

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, network+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		m := &metadata{
			file:    file,
			save:    false,
			testnet: testnet,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		switch command {
		case "setup":
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

		case "generate":
			// no configuration needed

		default:
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			config, err := configuration.Load(file)
			if nil != err {
				return err
			}
			m.config = config
			m.testnet = config.TestNet
		}

		c.App.Metadata["config"] = m
		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if m.verbose {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			return configuration.Save(m.file, m.config)
		}
		return nil
	}

	return app
}

func recordFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "record, r",
		Value: "",
		Usage: "*record `ACCOUNT`",
	}
}
