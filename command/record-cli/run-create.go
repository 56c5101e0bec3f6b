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
	"github.com/bitmark-inc/recordd/instruction"
	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/record"
	rpcrecord "github.com/bitmark-inc/recordd/rpc/record"
)

type createReply struct {
	Record    account.Key            `json:"record"`
	Authority account.Key            `json:"authority"`
	Submit    *rpcrecord.SubmitReply `json:"submit"`
}

// allocate a record cell funded by the identity and initialize it in
// one transaction, the cell key is fresh and only signs this once
func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	program, err := programID(c)
	if nil != err {
		return err
	}

	name, payer, err := unlockIdentity(c, m)
	if nil != err {
		return err
	}

	authority, err := checkOptionalAccount(c.String("authority"), name, m.config)
	if nil != err {
		return err
	}

	balance := c.Uint64("balance")
	if 0 == balance {
		return ErrRequiredBalance
	}
	space := uint64(record.HeaderSize) + c.Uint64("size")

	cell, err := account.NewPrivateKey()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "payer: %s\n", payer.Key())
		fmt.Fprintf(m.e, "record: %s\n", cell.Key())
		fmt.Fprintf(m.e, "authority: %s\n", authority)
		fmt.Fprintf(m.e, "space: %d\n", space)
	}

	tx := ledger.NewTransaction(
		uint64(time.Now().UnixNano()),
		ledger.CreateAccount(payer.Key(), cell.Key(), balance, space, program),
		instruction.BuildInitialize(program, cell.Key(), authority),
	)
	tx.Sign(payer, cell)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Submit(tx)
	if nil != err {
		return err
	}

	return printJson(m.w, createReply{
		Record:    cell.Key(),
		Authority: authority,
		Submit:    reply,
	})
}
