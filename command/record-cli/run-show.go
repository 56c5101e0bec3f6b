// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := checkOptionalAccount(c.String("account"), selectedIdentity(c, m), m.config)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetAccount(key)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runReceipt(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txId, err := checkTxId(c.String("txid"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.GetReceipt(txId)
	if nil != err {
		return err
	}

	return printJson(m.w, receipt)
}
