// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package processor implements the record program: a single owned cell
// per account holding a version byte, an authority and free form data
package processor

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/host"
	"github.com/bitmark-inc/recordd/instruction"
)

// DefaultProgramID - base58 id used when the configuration does not name one
const DefaultProgramID = "bVNgiybSPHhywAMqLwKM6Sfa74z41wvk51nLiZGx53warCKKYM"

// Program - the record program as registered with the ledger
type Program struct {
	id  account.Key
	log *logger.L
}

// New - create the program with its immutable id
func New(programID account.Key, log *logger.L) *Program {
	return &Program{
		id:  programID,
		log: log,
	}
}

// ID - the program id
func (p *Program) ID() account.Key {
	return p.id
}

// Process - decode one instruction and run it against the supplied accounts
//
// every failure is returned before any account is modified
func (p *Program) Process(programID account.Key, accounts []host.AccountInfo, input []byte) error {

	in, err := instruction.Unpack(input)
	if nil != err {
		p.log.Debugf("program: %s  unpack error: %s", programID, err)
		return err
	}

	p.log.Debugf("program: %s  instruction: %s  accounts: %d", programID, instruction.Name(in), len(accounts))

	switch op := in.(type) {

	case *instruction.Initialize:
		err = p.initialize(accounts)

	case *instruction.Write:
		err = p.write(accounts, op.Offset, op.Data)

	case *instruction.SetAuthority:
		err = p.setAuthority(accounts)

	case *instruction.CloseAccount:
		err = p.closeAccount(accounts)

	case *instruction.Reallocate:
		err = p.reallocate(accounts, op.DataLength)

	default:
		err = fault.ErrInvalidInstructionData
	}

	if nil != err {
		p.log.Debugf("%s: failed: %s", instruction.Name(in), err)
	}
	return err
}

// fetch the first n positional accounts
func positional(accounts []host.AccountInfo, n int) ([]host.AccountInfo, error) {
	if len(accounts) < n {
		return nil, fault.ErrNotEnoughAccountKeys
	}
	return accounts[:n], nil
}
