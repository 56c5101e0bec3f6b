// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package host defines the boundary between the ledger and the programs
// it runs.
package host

import (
	"github.com/bitmark-inc/recordd/account"
)

// AccountInfo - a program's view of one account taking part in an instruction
//
// ReadData and WriteData scope a borrow of the data to the callback; the
// slice must not escape it
type AccountInfo interface {
	Key() account.Key
	Owner() account.Key
	IsSigner() bool
	IsWritable() bool
	DataLen() int
	ReadData(func(data []byte) error) error
	WriteData(func(data []byte) error) error
	Balance() uint64
	SetBalance(balance uint64) error
	Resize(newLength int) error
}

// Program - an entry point the ledger can dispatch instructions to
type Program interface {
	Process(programID account.Key, accounts []AccountInfo, input []byte) error
}

// AccountMeta - an account reference in an instruction
type AccountMeta struct {
	Key        account.Key `json:"key"`
	IsSigner   bool        `json:"isSigner"`
	IsWritable bool        `json:"isWritable"`
}

// Instruction - one call to a program
type Instruction struct {
	ProgramID account.Key   `json:"programId"`
	Accounts  []AccountMeta `json:"accounts"`
	Data      []byte        `json:"data"`
}

// NewWritable - meta for an account the instruction may modify
func NewWritable(k account.Key, isSigner bool) AccountMeta {
	return AccountMeta{
		Key:        k,
		IsSigner:   isSigner,
		IsWritable: true,
	}
}

// NewReadonly - meta for an account the instruction only reads
func NewReadonly(k account.Key, isSigner bool) AccountMeta {
	return AccountMeta{
		Key:        k,
		IsSigner:   isSigner,
		IsWritable: false,
	}
}
