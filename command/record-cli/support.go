// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/command/record-cli/rpccalls"
	"github.com/bitmark-inc/recordd/host"
	"github.com/bitmark-inc/recordd/ledger"
)

// the selected identity name, blank selects the default
func selectedIdentity(c *cli.Context, m *metadata) string {
	name := c.GlobalString("identity")
	if "" == name {
		name = m.config.DefaultIdentity
	}
	return name
}

func identityName(c *cli.Context, m *metadata) (string, error) {
	return checkName(selectedIdentity(c, m))
}

// unlock the selected identity, prompting for a password if none was given
func unlockIdentity(c *cli.Context, m *metadata) (string, *account.PrivateKey, error) {
	name, err := identityName(c, m)
	if nil != err {
		return "", nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPassword(name)
		if nil != err {
			return "", nil, err
		}
	}

	private, err := m.config.Private(password, name)
	if nil != err {
		return "", nil, err
	}
	return name, private.PrivateKey, nil
}

func programID(c *cli.Context) (account.Key, error) {
	return account.KeyFromBase58(c.GlobalString("program"))
}

func connect(m *metadata) (*rpccalls.Client, error) {
	if 0 == len(m.config.Connections) {
		return nil, ErrRequiredConnect
	}
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.config.Connections[0])
	}
	return rpccalls.NewClient(m.config.Connections[0], m.verbose, m.e)
}

// sign and send instructions as one transaction and print the reply
func submit(m *metadata, signers []*account.PrivateKey, instructions ...host.Instruction) error {

	tx := ledger.NewTransaction(uint64(time.Now().UnixNano()), instructions...)
	tx.Sign(signers...)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Submit(tx)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
