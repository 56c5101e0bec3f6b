// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger is the host runtime: it stores accounts, verifies and
// executes transactions against registered programs and keeps receipts
package ledger

import (
	"bytes"
	"encoding/json"
	"math/bits"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/host"
	"github.com/bitmark-inc/recordd/merkle"
	"github.com/bitmark-inc/recordd/storage"
)

// GenesisEntry - initial funding of one account
type GenesisEntry struct {
	Account account.Key
	Balance uint64
}

// Bank - executes transactions one at a time
type Bank struct {
	sync.Mutex

	log      *logger.L
	accounts storage.Handle
	receipts storage.Handle
	begin    func() (storage.Transaction, error)
	programs map[account.Key]host.Program
}

// New - create a bank over the account and receipt pools
//
// begin opens the storage transaction used to commit each result
func New(log *logger.L, accounts storage.Handle, receipts storage.Handle, begin func() (storage.Transaction, error)) *Bank {
	b := &Bank{
		log:      log,
		accounts: accounts,
		receipts: receipts,
		begin:    begin,
		programs: make(map[account.Key]host.Program),
	}
	b.programs[SystemProgramID] = &systemProgram{log: log}
	return b
}

// RegisterProgram - make a program callable under an id
func (b *Bank) RegisterProgram(programID account.Key, program host.Program) error {
	b.Lock()
	defer b.Unlock()

	if _, ok := b.programs[programID]; ok {
		return fault.ErrAlreadyInitialised
	}
	b.programs[programID] = program
	b.log.Infof("registered program: %s", programID)
	return nil
}

// Genesis - fund accounts, only applied to an empty ledger
func (b *Bank) Genesis(entries []GenesisEntry) error {
	b.Lock()
	defer b.Unlock()

	empty := true
	b.accounts.Iterate(func(key []byte, value []byte) bool {
		empty = false
		return false
	})
	if !empty {
		b.log.Debug("genesis: ledger not empty")
		return nil
	}

	trx, err := b.begin()
	if nil != err {
		return err
	}
	for _, e := range entries {
		if 0 == e.Balance {
			continue
		}
		a := Account{
			Owner:   SystemProgramID,
			Balance: e.Balance,
		}
		trx.Put(b.accounts, e.Account[:], a.Bytes())
		b.log.Infof("genesis: %s  balance: %d", e.Account, e.Balance)
	}
	return trx.Commit()
}

// Get - fetch a stored account
func (b *Bank) Get(key account.Key) (*Account, bool) {
	b.Lock()
	defer b.Unlock()

	return b.load(key)
}

// Receipt - fetch the receipt of a processed transaction
func (b *Bank) Receipt(id merkle.Digest) (*Receipt, error) {
	b.Lock()
	defer b.Unlock()

	buffer := b.receipts.Get(id[:])
	if nil == buffer {
		return nil, fault.ErrReceiptNotFound
	}
	var r Receipt
	if err := json.Unmarshal(buffer, &r); nil != err {
		return nil, err
	}
	return &r, nil
}

func (b *Bank) load(key account.Key) (*Account, bool) {
	buffer := b.accounts.Get(key[:])
	if nil == buffer {
		return nil, false
	}
	a, err := AccountFromBytes(buffer)
	if nil != err {
		b.log.Errorf("account: %s  corrupt: %s", key, err)
		return nil, false
	}
	return a, true
}

// Execute - verify, run and commit a transaction
//
// a transaction that cannot be verified is rejected with an error and
// leaves no receipt; one that fails during execution changes no
// account, its failed receipt is stored and returned with the error
func (b *Bank) Execute(tx *Transaction) (*Receipt, error) {
	if nil == tx {
		return nil, fault.ErrTransactionIsNil
	}

	b.Lock()
	defer b.Unlock()

	id := tx.Message.Id()
	if b.receipts.Has(id[:]) {
		return nil, fault.ErrDuplicateTransaction
	}
	if err := tx.verify(); nil != err {
		b.log.Debugf("tx: %s  rejected: %s", id, err)
		return nil, err
	}

	cells, signer, writable := b.prepare(&tx.Message)

	failedIndex := -1
	var execErr error
	for i, in := range tx.Message.Instructions {
		if execErr = b.run(in, cells, signer, writable); nil != execErr {
			failedIndex = i
			break
		}
	}

	receipt := newReceipt(id, failedIndex, execErr)
	packedReceipt, err := json.Marshal(receipt)
	if nil != err {
		return nil, err
	}

	trx, err := b.begin()
	if nil != err {
		return nil, err
	}
	if nil == execErr {
		for key, c := range cells {
			if !writable[key] {
				continue
			}
			if 0 == c.balance {
				trx.Delete(b.accounts, key[:])
			} else {
				trx.Put(b.accounts, key[:], c.account().Bytes())
			}
		}
	}
	trx.Put(b.receipts, id[:], packedReceipt)
	if err := trx.Commit(); nil != err {
		b.log.Errorf("tx: %s  commit error: %s", id, err)
		return nil, err
	}

	if nil != execErr {
		b.log.Infof("tx: %s  failed instruction: %d  error: %s", id, failedIndex, receipt.Error)
	} else {
		b.log.Infof("tx: %s  ok", id)
	}
	return receipt, execErr
}

// load a working copy of every account in the message and merge the
// signer and writable flags per key across all instructions
func (b *Bank) prepare(m *Message) (map[account.Key]*cell, map[account.Key]bool, map[account.Key]bool) {
	cells := make(map[account.Key]*cell)
	signer := make(map[account.Key]bool)
	writable := make(map[account.Key]bool)

	for _, in := range m.Instructions {
		for _, meta := range in.Accounts {
			signer[meta.Key] = signer[meta.Key] || meta.IsSigner
			writable[meta.Key] = writable[meta.Key] || meta.IsWritable
			if _, ok := cells[meta.Key]; ok {
				continue
			}
			c := &cell{
				key:   meta.Key,
				owner: SystemProgramID,
			}
			if a, ok := b.load(meta.Key); ok {
				c.owner = a.Owner
				c.balance = a.Balance
				c.data = a.Data
			}
			cells[meta.Key] = c
		}
	}
	return cells, signer, writable
}

// run one instruction then enforce the host rules on every account it touched
func (b *Bank) run(in host.Instruction, cells map[account.Key]*cell, signer map[account.Key]bool, writable map[account.Key]bool) error {
	program, ok := b.programs[in.ProgramID]
	if !ok {
		return fault.ErrIncorrectProgramId
	}

	infos := make([]host.AccountInfo, len(in.Accounts))
	before := make(map[account.Key]snapshot, len(in.Accounts))
	for i, meta := range in.Accounts {
		c := cells[meta.Key]
		infos[i] = &accountInfo{
			cell:     c,
			signer:   signer[meta.Key],
			writable: writable[meta.Key],
		}
		if _, ok := before[meta.Key]; !ok {
			before[meta.Key] = c.snapshot()
		}
	}

	if err := program.Process(in.ProgramID, infos, in.Data); nil != err {
		return err
	}

	var preHigh, preLow, postHigh, postLow, carry uint64
	for key, pre := range before {
		post := cells[key]
		if err := verifyAccount(in.ProgramID, pre, post, writable[key]); nil != err {
			return err
		}
		if err := verifyGrowth(in.ProgramID, pre, post); nil != err {
			return err
		}
		preLow, carry = bits.Add64(preLow, pre.balance, 0)
		preHigh += carry
		postLow, carry = bits.Add64(postLow, post.balance, 0)
		postHigh += carry
	}
	if preHigh != postHigh || preLow != postLow {
		return fault.ErrUnbalancedInstruction
	}
	return nil
}

// host rules for one account after an instruction
func verifyAccount(programID account.Key, pre snapshot, post *cell, writable bool) error {

	// owner may only be changed by the owner while the data is all zero
	if pre.owner != post.owner {
		if !writable || pre.owner != programID || !isZeroed(pre.data) {
			return fault.ErrModifiedProgramId
		}
	}

	if pre.balance != post.balance {
		if !writable {
			return fault.ErrReadonlyBalanceChanged
		}
		if post.balance < pre.balance && pre.owner != programID {
			return fault.ErrExternalAccountBalanceSpend
		}
	}

	if !bytes.Equal(pre.data, post.data) {
		if !writable {
			return fault.ErrReadonlyDataModified
		}
		if pre.owner != programID {
			return fault.ErrExternalAccountDataModified
		}
	}
	return nil
}

// size limits, the system program sizes new accounts in one step so
// only the absolute limit applies to it
func verifyGrowth(programID account.Key, pre snapshot, post *cell) error {
	if len(post.data) > MaxPermittedDataLength {
		return fault.ErrInvalidRealloc
	}
	if SystemProgramID == programID {
		return nil
	}
	if len(post.data) > len(pre.data) && len(post.data)-len(pre.data) > MaxPermittedDataIncrease {
		return fault.ErrInvalidRealloc
	}
	return nil
}

func isZeroed(data []byte) bool {
	for _, b := range data {
		if 0 != b {
			return false
		}
	}
	return true
}
