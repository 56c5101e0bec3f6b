// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - all or nothing group of pool writes
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	Has(Handle, []byte) bool
	InUse() bool
	Put(Handle, []byte, []byte)
}

// TransactionData - Transaction on the shared batch
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Begin - fails if another transaction is open
func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

// Put - queue a write to a pool
func (t *TransactionData) Put(h Handle, key []byte, value []byte) {
	h.Put(key, value)
}

// Delete - queue a removal from a pool
func (t *TransactionData) Delete(h Handle, key []byte) {
	h.Delete(key)
}

// Get - read including pending writes
func (t *TransactionData) Get(h Handle, key []byte) []byte {
	return h.Get(key)
}

// Has - check including pending writes
func (t *TransactionData) Has(h Handle, key []byte) bool {
	return h.Has(key)
}

// InUse - true between Begin and Commit/Abort
func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}

// Commit - write everything queued since Begin
func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

// Abort - discard everything queued since Begin
func (t *TransactionData) Abort() {
	t.access.Abort()
}
