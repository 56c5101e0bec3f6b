// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/ledger"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	receiver, err := checkAccount(c.String("receiver"), m.config)
	if nil != err {
		return err
	}

	balance := c.Uint64("balance")
	if 0 == balance {
		return ErrRequiredBalance
	}

	_, owner, err := unlockIdentity(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "sender: %s\n", owner.Key())
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
		fmt.Fprintf(m.e, "balance: %d\n", balance)
	}

	return submit(m, []*account.PrivateKey{owner}, ledger.Transfer(owner.Key(), receiver, balance))
}
