// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - RPC access to the ledger: submit transactions, read
// records and receipts
package record

import (
	"encoding/hex"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/merkle"
	"github.com/bitmark-inc/recordd/record"
	"github.com/bitmark-inc/recordd/rpc/ratelimit"
)

const (
	rateLimitRecord = 200
	rateBurstRecord = 100

	// instructions in one submitted transaction
	maximumInstructions = 64
)

// Bank - the ledger operations used by this service
type Bank interface {
	Execute(*ledger.Transaction) (*ledger.Receipt, error)
	Get(account.Key) (*ledger.Account, bool)
	Receipt(merkle.Digest) (*ledger.Receipt, error)
}

// Record - type for RPC calls
type Record struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Bank      Bank
	ProgramID account.Key
}

// New - create the record service for a program
func New(log *logger.L, bank Bank, programID account.Key) *Record {
	return &Record{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitRecord, rateBurstRecord),
		Bank:      bank,
		ProgramID: programID,
	}
}

// ---

// SubmitArguments - a signed transaction
type SubmitArguments struct {
	Transaction ledger.Transaction `json:"transaction"`
}

// SubmitReply - outcome of execution
type SubmitReply struct {
	TxId        merkle.Digest `json:"txId"`
	Status      string        `json:"status"`
	Instruction int           `json:"instruction"`
	Error       string        `json:"error,omitempty"`
	Code        *uint32       `json:"code,omitempty"`
}

// Submit - execute a transaction
//
// a transaction that ran and failed is not an RPC error, the reply
// carries the failure
func (r *Record) Submit(arguments *SubmitArguments, reply *SubmitReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrTransactionIsNil
	}

	n := len(arguments.Transaction.Message.Instructions)
	if 0 == n || n > maximumInstructions {
		return fault.ErrInvalidCount
	}

	r.Log.Infof("submit: %s  instructions: %d", arguments.Transaction.Message.Id(), n)

	receipt, err := r.Bank.Execute(&arguments.Transaction)
	if nil == receipt {
		r.Log.Debugf("submit: rejected: %s", err)
		return err
	}

	reply.TxId = receipt.Id
	reply.Status = receipt.Status
	reply.Instruction = receipt.Instruction
	reply.Error = receipt.Error
	reply.Code = receipt.Code
	return nil
}

// ---

// GetArguments - the account to read
type GetArguments struct {
	Account account.Key `json:"account"`
}

// GetReply - stored account, with the record header decoded when the
// account belongs to the record program
type GetReply struct {
	Account     account.Key  `json:"account"`
	Owner       account.Key  `json:"owner"`
	Balance     uint64       `json:"balance"`
	Length      int          `json:"length"`
	IsRecord    bool         `json:"isRecord"`
	Initialized bool         `json:"initialized"`
	Version     uint8        `json:"version"`
	Authority   *account.Key `json:"authority,omitempty"`
	Payload     string       `json:"payload"`
}

// Get - read an account
func (r *Record) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	a, ok := r.Bank.Get(arguments.Account)
	if !ok {
		return fault.ErrAccountNotFound
	}

	reply.Account = arguments.Account
	reply.Owner = a.Owner
	reply.Balance = a.Balance
	reply.Length = len(a.Data)

	if r.ProgramID != a.Owner {
		reply.Payload = hex.EncodeToString(a.Data)
		return nil
	}

	reply.IsRecord = true
	reply.Payload = hex.EncodeToString(record.Payload(a.Data))

	// a cell too short for a header is reported without one
	if header, err := record.DataFromBytes(a.Data); nil == err {
		reply.Initialized = header.IsInitialized()
		reply.Version = header.Version
		reply.Authority = &header.Authority
	}
	return nil
}

// ---

// ReceiptArguments - the transaction to look up
type ReceiptArguments struct {
	TxId merkle.Digest `json:"txId"`
}

// Receipt - fetch the stored outcome of a transaction
func (r *Record) Receipt(arguments *ReceiptArguments, reply *ledger.Receipt) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	receipt, err := r.Bank.Receipt(arguments.TxId)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}
