// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
)

// working copy of an account for the duration of one transaction
//
// all handles for the same key share one cell so borrows are
// tracked per account, not per handle
type cell struct {
	key     account.Key
	owner   account.Key
	balance uint64
	data    []byte
	readers int
	writing bool
}

// state of a cell before an instruction runs
type snapshot struct {
	owner   account.Key
	balance uint64
	data    []byte
}

func (c *cell) snapshot() snapshot {
	return snapshot{
		owner:   c.owner,
		balance: c.balance,
		data:    append([]byte{}, c.data...),
	}
}

func (c *cell) borrowed() bool {
	return c.writing || c.readers > 0
}

func (c *cell) account() *Account {
	return &Account{
		Owner:   c.owner,
		Balance: c.balance,
		Data:    c.data,
	}
}

// accountInfo - host.AccountInfo over a cell
type accountInfo struct {
	cell     *cell
	signer   bool
	writable bool
}

func (a *accountInfo) Key() account.Key {
	return a.cell.key
}

func (a *accountInfo) Owner() account.Key {
	return a.cell.owner
}

func (a *accountInfo) IsSigner() bool {
	return a.signer
}

func (a *accountInfo) IsWritable() bool {
	return a.writable
}

func (a *accountInfo) DataLen() int {
	return len(a.cell.data)
}

func (a *accountInfo) Balance() uint64 {
	return a.cell.balance
}

// ReadData - shared borrow of the data for the duration of f
func (a *accountInfo) ReadData(f func([]byte) error) error {
	c := a.cell
	if c.writing {
		return fault.ErrAccountBorrowFailed
	}
	c.readers += 1
	defer func() { c.readers -= 1 }()
	return f(c.data)
}

// WriteData - exclusive borrow of the data for the duration of f
func (a *accountInfo) WriteData(f func([]byte) error) error {
	c := a.cell
	if !a.writable {
		return fault.ErrReadonlyDataModified
	}
	if c.borrowed() {
		return fault.ErrAccountBorrowFailed
	}
	c.writing = true
	defer func() { c.writing = false }()
	return f(c.data)
}

// SetBalance - change the balance of a writable account
func (a *accountInfo) SetBalance(balance uint64) error {
	if !a.writable && balance != a.cell.balance {
		return fault.ErrReadonlyBalanceChanged
	}
	a.cell.balance = balance
	return nil
}

// Resize - change the data length, existing bytes are preserved
//
// refused while any borrow of the data is live
func (a *accountInfo) Resize(newLength int) error {
	c := a.cell
	if !a.writable {
		return fault.ErrReadonlyDataModified
	}
	if c.borrowed() {
		return fault.ErrAccountBorrowFailed
	}
	if newLength < 0 || newLength > MaxPermittedDataLength {
		return fault.ErrInvalidRealloc
	}
	if newLength <= len(c.data) {
		c.data = c.data[:newLength]
		return nil
	}
	data := make([]byte, newLength)
	copy(data, c.data)
	c.data = data
	return nil
}

// assign - change the owner, only the system program does this
func (a *accountInfo) assign(owner account.Key) error {
	if !a.writable {
		return fault.ErrModifiedProgramId
	}
	a.cell.owner = owner
	return nil
}
