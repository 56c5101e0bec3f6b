// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/host"
)

// SystemProgramID - the built in program that creates accounts and moves balances
var SystemProgramID = account.Key{}

// system program instruction tags
const (
	createAccountTag = 0
	transferTag      = 1
)

// packed sizes
const (
	createAccountSize = 1 + 8 + 8 + account.KeySize
	transferSize      = 1 + 8
)

// CreateAccount - fund a new account, size its data and hand it to a program
//
// accounts: [0] payer (signer, writable), [1] new account (signer, writable)
func CreateAccount(payer account.Key, newAccount account.Key, balance uint64, space uint64, owner account.Key) host.Instruction {
	data := make([]byte, createAccountSize)
	data[0] = createAccountTag
	binary.LittleEndian.PutUint64(data[1:], balance)
	binary.LittleEndian.PutUint64(data[9:], space)
	copy(data[17:], owner[:])

	return host.Instruction{
		ProgramID: SystemProgramID,
		Accounts: []host.AccountMeta{
			host.NewWritable(payer, true),
			host.NewWritable(newAccount, true),
		},
		Data: data,
	}
}

// Transfer - move balance between accounts
//
// accounts: [0] source (signer, writable), [1] destination (writable)
func Transfer(from account.Key, to account.Key, balance uint64) host.Instruction {
	data := make([]byte, transferSize)
	data[0] = transferTag
	binary.LittleEndian.PutUint64(data[1:], balance)

	return host.Instruction{
		ProgramID: SystemProgramID,
		Accounts: []host.AccountMeta{
			host.NewWritable(from, true),
			host.NewWritable(to, false),
		},
		Data: data,
	}
}

type systemProgram struct {
	log *logger.L
}

// Process - run one system instruction
func (s *systemProgram) Process(programID account.Key, accounts []host.AccountInfo, input []byte) error {
	if 0 == len(input) {
		return fault.ErrInvalidInstructionData
	}
	if len(accounts) < 2 {
		return fault.ErrNotEnoughAccountKeys
	}

	switch input[0] {
	case createAccountTag:
		if len(input) < createAccountSize {
			return fault.ErrInvalidInstructionData
		}
		balance := binary.LittleEndian.Uint64(input[1:])
		space := binary.LittleEndian.Uint64(input[9:])
		owner := account.Key{}
		copy(owner[:], input[17:createAccountSize])
		s.log.Debugf("create account: %s  balance: %d  space: %d  owner: %s", accounts[1].Key(), balance, space, owner)
		return s.createAccount(accounts[0], accounts[1], balance, space, owner)

	case transferTag:
		if len(input) < transferSize {
			return fault.ErrInvalidInstructionData
		}
		balance := binary.LittleEndian.Uint64(input[1:])
		s.log.Debugf("transfer: %s -> %s  balance: %d", accounts[0].Key(), accounts[1].Key(), balance)
		return s.transfer(accounts[0], accounts[1], balance)

	default:
		return fault.ErrInvalidInstructionData
	}
}

func (s *systemProgram) createAccount(payer host.AccountInfo, newAccount host.AccountInfo, balance uint64, space uint64, owner account.Key) error {
	if !payer.IsSigner() || !newAccount.IsSigner() {
		return fault.ErrMissingRequiredSignature
	}
	if 0 != newAccount.Balance() || 0 != newAccount.DataLen() || SystemProgramID != newAccount.Owner() {
		return fault.ErrAccountAlreadyInUse
	}
	if space > MaxPermittedDataLength {
		return fault.ErrInvalidArgument
	}
	if payer.Key() == newAccount.Key() {
		return fault.ErrAccountAlreadyInUse
	}
	if payer.Balance() < balance {
		return fault.ErrInsufficientFunds
	}

	info, ok := newAccount.(*accountInfo)
	if !ok {
		return fault.ErrInvalidArgument
	}

	if err := newAccount.Resize(int(space)); nil != err {
		return err
	}
	if err := info.assign(owner); nil != err {
		return err
	}
	if err := payer.SetBalance(payer.Balance() - balance); nil != err {
		return err
	}
	return newAccount.SetBalance(balance)
}

func (s *systemProgram) transfer(from host.AccountInfo, to host.AccountInfo, balance uint64) error {
	if !from.IsSigner() {
		return fault.ErrMissingRequiredSignature
	}
	if from.Balance() < balance {
		return fault.ErrInsufficientFunds
	}
	if from.Key() == to.Key() {
		return nil
	}
	total := to.Balance() + balance
	if total < balance {
		return fault.ErrOverflow
	}
	if err := from.SetBalance(from.Balance() - balance); nil != err {
		return err
	}
	return to.SetBalance(total)
}
