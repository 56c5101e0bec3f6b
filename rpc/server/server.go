// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - register all RPC services
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/counter"
	"github.com/bitmark-inc/recordd/rpc/node"
	"github.com/bitmark-inc/recordd/rpc/record"
)

// Create - an RPC server with the Node and Record services
func Create(log *logger.L, version string, chain string, programID account.Key, bank record.Bank, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(node.New(log, start, version, chain, programID, rpcCount))
	_ = server.Register(record.New(log, bank, programID))

	return server
}
