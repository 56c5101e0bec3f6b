// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"net"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/chain"
	"github.com/bitmark-inc/recordd/counter"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/fixtures"
	"github.com/bitmark-inc/recordd/instruction"
	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/merkle"
	"github.com/bitmark-inc/recordd/rpc/mocks"
	"github.com/bitmark-inc/recordd/rpc/record"
	"github.com/bitmark-inc/recordd/rpc/server"
)

func setupClient(t *testing.T) (*Client, *mocks.MockBank, account.Key, func()) {
	fixtures.SetupTestLogger()

	ctl := gomock.NewController(t)
	bank := mocks.NewMockBank(ctl)
	programID := account.NewUniqueKey()
	count := counter.Counter(0)

	s := server.Create(logger.New(fixtures.LogCategory), "0.1", chain.Local, programID, bank, &count)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	client := newClient(clientConn, true, &bytes.Buffer{})

	return client, bank, programID, func() {
		client.Close()
		ctl.Finish()
		fixtures.TeardownTestLogger()
	}
}

func TestGetNodeInfo(t *testing.T) {
	client, _, programID, teardown := setupClient(t)
	defer teardown()

	info, err := client.GetNodeInfo()
	assert.Nil(t, err, "info")
	assert.Equal(t, chain.Local, info.Chain, "chain")
	assert.Equal(t, programID, info.ProgramID, "program id")
	assert.Equal(t, "0.1", info.Version, "version")
}

func TestSubmit(t *testing.T) {
	client, bank, programID, teardown := setupClient(t)
	defer teardown()

	authority, err := account.NewPrivateKey()
	assert.Nil(t, err, "private key")
	cell := account.NewUniqueKey()

	tx := ledger.NewTransaction(1, instruction.BuildInitialize(programID, cell, authority.Key()))
	tx.Sign(authority)
	id := tx.Message.Id()

	code := uint32(0)
	bank.EXPECT().Execute(gomock.Any()).DoAndReturn(func(received *ledger.Transaction) (*ledger.Receipt, error) {
		assert.Equal(t, id, received.Message.Id(), "transaction survives the wire")
		return &ledger.Receipt{
			Id:          id,
			Status:      ledger.StatusFailed,
			Instruction: 0,
			Error:       "Custom(0)",
			Code:        &code,
		}, fault.ErrIncorrectAuthority
	}).Times(1)

	reply, err := client.Submit(tx)
	assert.Nil(t, err, "a failed execution is still a reply")
	assert.Equal(t, id, reply.TxId, "id")
	assert.Equal(t, ledger.StatusFailed, reply.Status, "status")
	assert.Equal(t, "Custom(0)", reply.Error, "error")
	if assert.NotNil(t, reply.Code, "code") {
		assert.Equal(t, uint32(0), *reply.Code, "code value")
	}
}

func TestSubmitRejected(t *testing.T) {
	client, bank, programID, teardown := setupClient(t)
	defer teardown()

	authority, err := account.NewPrivateKey()
	assert.Nil(t, err, "private key")

	tx := ledger.NewTransaction(2, instruction.BuildInitialize(programID, account.NewUniqueKey(), authority.Key()))

	bank.EXPECT().Execute(gomock.Any()).Return(nil, fault.ErrMissingRequiredSignature).Times(1)

	_, err = client.Submit(tx)
	if assert.NotNil(t, err, "rejected") {
		assert.Equal(t, fault.ErrMissingRequiredSignature.Error(), err.Error(), "error text")
	}
}

func TestGetAccountAndReceipt(t *testing.T) {
	client, bank, _, teardown := setupClient(t)
	defer teardown()

	key := account.NewUniqueKey()
	bank.EXPECT().Get(key).Return(&ledger.Account{Owner: ledger.SystemProgramID, Balance: 42, Data: []byte{1, 2}}, true).Times(1)

	reply, err := client.GetAccount(key)
	assert.Nil(t, err, "get")
	assert.Equal(t, record.GetReply{
		Account: key,
		Owner:   ledger.SystemProgramID,
		Balance: 42,
		Length:  2,
		Payload: "0102",
	}, *reply, "reply")

	id := merkle.NewDigest([]byte("some transaction"))
	bank.EXPECT().Receipt(id).Return(&ledger.Receipt{Id: id, Status: ledger.StatusOk, Instruction: -1}, nil).Times(1)

	receipt, err := client.GetReceipt(id)
	assert.Nil(t, err, "receipt")
	assert.True(t, receipt.Ok(), "ok")

	missing := merkle.NewDigest([]byte("missing"))
	bank.EXPECT().Receipt(missing).Return(nil, fault.ErrReceiptNotFound).Times(1)

	_, err = client.GetReceipt(missing)
	if assert.NotNil(t, err, "missing") {
		assert.Equal(t, fault.ErrReceiptNotFound.Error(), err.Error(), "error text")
	}
}
