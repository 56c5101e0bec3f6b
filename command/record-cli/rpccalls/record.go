// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/merkle"
	"github.com/bitmark-inc/recordd/rpc/record"
)

// Submit - send a signed transaction for execution
func (client *Client) Submit(tx *ledger.Transaction) (*record.SubmitReply, error) {

	arguments := record.SubmitArguments{
		Transaction: *tx,
	}

	client.printJson("Submit Request", arguments)

	var reply record.SubmitReply
	if err := client.client.Call("Record.Submit", &arguments, &reply); nil != err {
		return nil, err
	}

	client.printJson("Submit Reply", reply)

	return &reply, nil
}

// GetAccount - read an account and any record header it holds
func (client *Client) GetAccount(key account.Key) (*record.GetReply, error) {

	arguments := record.GetArguments{
		Account: key,
	}

	client.printJson("Get Request", arguments)

	var reply record.GetReply
	if err := client.client.Call("Record.Get", &arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}

// GetReceipt - fetch the outcome of an earlier transaction
func (client *Client) GetReceipt(txId merkle.Digest) (*ledger.Receipt, error) {

	arguments := record.ReceiptArguments{
		TxId: txId,
	}

	client.printJson("Receipt Request", arguments)

	var reply ledger.Receipt
	if err := client.client.Call("Record.Receipt", &arguments, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}
