// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/chain"
	"github.com/bitmark-inc/recordd/counter"
	"github.com/bitmark-inc/recordd/fixtures"
	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/rpc/mocks"
	"github.com/bitmark-inc/recordd/rpc/node"
	"github.com/bitmark-inc/recordd/rpc/record"
	"github.com/bitmark-inc/recordd/rpc/server"
)

func TestCreate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	bank := mocks.NewMockBank(ctl)
	programID := account.NewUniqueKey()
	key := account.NewUniqueKey()
	count := counter.Counter(0)

	s := server.Create(logger.New(fixtures.LogCategory), "0.1", chain.Testing, programID, bank, &count)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	client := jsonrpc.NewClient(clientConn)
	defer client.Close()

	var info node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &info)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, chain.Testing, info.Chain, "wrong chain")
	assert.Equal(t, programID, info.ProgramID, "wrong program id")

	bank.EXPECT().Get(key).Return(&ledger.Account{Owner: ledger.SystemProgramID, Balance: 9}, true).Times(1)

	var reply record.GetReply
	err = client.Call("Record.Get", &record.GetArguments{Account: key}, &reply)
	assert.Nil(t, err, "wrong Record.Get")
	assert.Equal(t, uint64(9), reply.Balance, "wrong balance")
}
