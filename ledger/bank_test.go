// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"bytes"
	"os"
	"sync/atomic"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/fixtures"
	"github.com/bitmark-inc/recordd/host"
	"github.com/bitmark-inc/recordd/instruction"
	"github.com/bitmark-inc/recordd/ledger"
	"github.com/bitmark-inc/recordd/merkle"
	"github.com/bitmark-inc/recordd/processor"
	"github.com/bitmark-inc/recordd/record"
	"github.com/bitmark-inc/recordd/storage"
)

const (
	databaseFileName = "ledger-test"
	initialFunds     = 1000000
	recordFunds      = 1000
)

var nonce uint64

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// a program built from a function
type programFunc func(programID account.Key, accounts []host.AccountInfo, input []byte) error

func (f programFunc) Process(programID account.Key, accounts []host.AccountInfo, input []byte) error {
	return f(programID, accounts, input)
}

type testLedger struct {
	bank      *ledger.Bank
	programID account.Key
	payer     *account.PrivateKey
}

func removeFiles() {
	os.RemoveAll(databaseFileName + ".leveldb")
}

func setup(t *testing.T) *testLedger {
	removeFiles()
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	log := logger.New(fixtures.LogCategory)
	bank := ledger.New(log, storage.Pool.Accounts, storage.Pool.Receipts, storage.NewDBTransaction)

	programID := account.NewUniqueKey()
	err = bank.RegisterProgram(programID, processor.New(programID, log))
	assert.Nil(t, err, "register program")

	payer := newPrivateKey(t)
	err = bank.Genesis([]ledger.GenesisEntry{{Account: payer.Key(), Balance: initialFunds}})
	assert.Nil(t, err, "genesis")

	return &testLedger{
		bank:      bank,
		programID: programID,
		payer:     payer,
	}
}

func teardown() {
	storage.Finalise()
	removeFiles()
}

func newPrivateKey(t *testing.T) *account.PrivateKey {
	privateKey, err := account.NewPrivateKey()
	if nil != err {
		t.Fatalf("new private key error: %s", err)
	}
	return privateKey
}

func (l *testLedger) execute(signers []*account.PrivateKey, instructions ...host.Instruction) (*ledger.Receipt, error) {
	tx := ledger.NewTransaction(atomic.AddUint64(&nonce, 1), instructions...)
	tx.Sign(signers...)
	return l.bank.Execute(tx)
}

// create and initialise a record owned by the payer
func (l *testLedger) newRecord(t *testing.T, payloadSize uint64) *account.PrivateKey {
	recordKey := newPrivateKey(t)
	receipt, err := l.execute(
		[]*account.PrivateKey{l.payer, recordKey},
		ledger.CreateAccount(l.payer.Key(), recordKey.Key(), recordFunds, record.HeaderSize+payloadSize, l.programID),
		instruction.BuildInitialize(l.programID, recordKey.Key(), l.payer.Key()),
	)
	assert.Nil(t, err, "create record")
	assert.True(t, receipt.Ok(), "create record receipt")
	return recordKey
}

func TestCreateInitializeWrite(t *testing.T) {
	l := setup(t)
	defer teardown()

	payload := bytes.Repeat([]byte{111}, 8)
	recordKey := newPrivateKey(t)

	receipt, err := l.execute(
		[]*account.PrivateKey{l.payer, recordKey},
		ledger.CreateAccount(l.payer.Key(), recordKey.Key(), recordFunds, record.HeaderSize+8, l.programID),
		instruction.BuildInitialize(l.programID, recordKey.Key(), l.payer.Key()),
		instruction.BuildWrite(l.programID, recordKey.Key(), l.payer.Key(), 0, payload),
	)
	assert.Nil(t, err, "execute")
	assert.Equal(t, ledger.StatusOk, receipt.Status, "status")

	a, ok := l.bank.Get(recordKey.Key())
	assert.True(t, ok, "record not stored")
	assert.Equal(t, l.programID, a.Owner, "owner")
	assert.Equal(t, uint64(recordFunds), a.Balance, "record balance")

	expected := record.Data{
		Version:   record.CurrentVersion,
		Authority: l.payer.Key(),
	}
	assert.Equal(t, append(expected.Bytes(), payload...), a.Data, "record data")

	p, ok := l.bank.Get(l.payer.Key())
	assert.True(t, ok, "payer not stored")
	assert.Equal(t, uint64(initialFunds-recordFunds), p.Balance, "payer balance")

	stored, err := l.bank.Receipt(receipt.Id)
	assert.Nil(t, err, "receipt")
	assert.Equal(t, receipt, stored, "stored receipt")
}

func TestDuplicateTransaction(t *testing.T) {
	l := setup(t)
	defer teardown()

	tx := ledger.NewTransaction(atomic.AddUint64(&nonce, 1), ledger.Transfer(l.payer.Key(), account.NewUniqueKey(), 10))
	tx.Sign(l.payer)

	_, err := l.bank.Execute(tx)
	assert.Nil(t, err, "first execute")

	receipt, err := l.bank.Execute(tx)
	assert.Equal(t, fault.ErrDuplicateTransaction, err, "duplicate accepted")
	assert.Nil(t, receipt, "duplicate receipt")
}

func TestSignatureChecks(t *testing.T) {
	l := setup(t)
	defer teardown()

	destination := account.NewUniqueKey()

	tx := ledger.NewTransaction(atomic.AddUint64(&nonce, 1), ledger.Transfer(l.payer.Key(), destination, 10))
	receipt, err := l.bank.Execute(tx)
	assert.Equal(t, fault.ErrMissingRequiredSignature, err, "unsigned transfer")
	assert.Nil(t, receipt, "unsigned receipt")

	tx.Sign(l.payer)
	tx.Message.Nonce += 1000
	receipt, err = l.bank.Execute(tx)
	assert.Equal(t, fault.ErrInvalidSignature, err, "altered transfer")
	assert.Nil(t, receipt, "altered receipt")

	_, ok := l.bank.Get(destination)
	assert.False(t, ok, "destination funded")

	_, err = l.bank.Execute(nil)
	assert.Equal(t, fault.ErrTransactionIsNil, err, "nil transaction")
}

func TestFailedTransactionIsAtomic(t *testing.T) {
	l := setup(t)
	defer teardown()

	other := newPrivateKey(t)
	recordKey := newPrivateKey(t)

	receipt, err := l.execute(
		[]*account.PrivateKey{l.payer, recordKey, other},
		ledger.CreateAccount(l.payer.Key(), recordKey.Key(), recordFunds, record.HeaderSize+8, l.programID),
		instruction.BuildInitialize(l.programID, recordKey.Key(), l.payer.Key()),
		instruction.BuildWrite(l.programID, recordKey.Key(), other.Key(), 0, []byte{1, 2, 3}),
	)
	assert.Equal(t, fault.ErrIncorrectAuthority, err, "write by non authority")
	assert.Equal(t, ledger.StatusFailed, receipt.Status, "status")
	assert.Equal(t, 2, receipt.Instruction, "failed instruction")
	assert.Equal(t, "Custom(0)", receipt.Error, "error name")
	if assert.NotNil(t, receipt.Code, "custom code") {
		assert.Equal(t, uint32(0), *receipt.Code, "custom code value")
	}

	_, ok := l.bank.Get(recordKey.Key())
	assert.False(t, ok, "record stored")

	p, _ := l.bank.Get(l.payer.Key())
	assert.Equal(t, uint64(initialFunds), p.Balance, "payer charged")

	stored, err := l.bank.Receipt(receipt.Id)
	assert.Nil(t, err, "failed receipt not stored")
	assert.Equal(t, ledger.StatusFailed, stored.Status, "stored status")
}

func TestCloseAccount(t *testing.T) {
	l := setup(t)
	defer teardown()

	recordKey := l.newRecord(t, 8)
	destination := account.NewUniqueKey()

	receipt, err := l.execute(
		[]*account.PrivateKey{l.payer},
		instruction.BuildCloseAccount(l.programID, recordKey.Key(), l.payer.Key(), destination),
	)
	assert.Nil(t, err, "close")
	assert.True(t, receipt.Ok(), "close receipt")

	d, ok := l.bank.Get(destination)
	assert.True(t, ok, "destination not stored")
	assert.Equal(t, uint64(recordFunds), d.Balance, "destination balance")

	_, ok = l.bank.Get(recordKey.Key())
	assert.False(t, ok, "zero balance record kept")
}

// closing only moves the balance, until the end of the transaction
// the header is intact and the authority can still write
func TestCloseThenWriteInOneTransaction(t *testing.T) {
	l := setup(t)
	defer teardown()

	recordKey := l.newRecord(t, 8)
	destination := account.NewUniqueKey()

	receipt, err := l.execute(
		[]*account.PrivateKey{l.payer},
		instruction.BuildCloseAccount(l.programID, recordKey.Key(), l.payer.Key(), destination),
		instruction.BuildWrite(l.programID, recordKey.Key(), l.payer.Key(), 0, []byte{42}),
	)
	assert.Nil(t, err, "write after close")
	assert.True(t, receipt.Ok(), "receipt")

	_, ok := l.bank.Get(recordKey.Key())
	assert.False(t, ok, "zero balance record kept")
}

func TestSetAuthorityThroughLedger(t *testing.T) {
	l := setup(t)
	defer teardown()

	recordKey := l.newRecord(t, 4)
	newAuthority := newPrivateKey(t)

	_, err := l.execute(
		[]*account.PrivateKey{l.payer},
		instruction.BuildSetAuthority(l.programID, recordKey.Key(), l.payer.Key(), newAuthority.Key()),
	)
	assert.Nil(t, err, "set authority")

	_, err = l.execute(
		[]*account.PrivateKey{l.payer},
		instruction.BuildWrite(l.programID, recordKey.Key(), l.payer.Key(), 0, []byte{1}),
	)
	assert.Equal(t, fault.ErrIncorrectAuthority, err, "old authority wrote")

	_, err = l.execute(
		[]*account.PrivateKey{newAuthority},
		instruction.BuildWrite(l.programID, recordKey.Key(), newAuthority.Key(), 3, []byte{9}),
	)
	assert.Nil(t, err, "new authority write")

	a, _ := l.bank.Get(recordKey.Key())
	assert.Equal(t, []byte{0, 0, 0, 9}, record.Payload(a.Data), "payload")
}

func TestReallocateThroughLedger(t *testing.T) {
	l := setup(t)
	defer teardown()

	recordKey := l.newRecord(t, 4)

	_, err := l.execute(
		[]*account.PrivateKey{l.payer},
		instruction.BuildReallocate(l.programID, recordKey.Key(), l.payer.Key(), 100),
	)
	assert.Nil(t, err, "reallocate")

	a, _ := l.bank.Get(recordKey.Key())
	assert.Equal(t, record.HeaderSize+100, len(a.Data), "length")

	_, err = l.execute(
		[]*account.PrivateKey{l.payer},
		instruction.BuildReallocate(l.programID, recordKey.Key(), l.payer.Key(), 100+ledger.MaxPermittedDataIncrease+1),
	)
	assert.Equal(t, fault.ErrInvalidRealloc, err, "excessive growth")

	a, _ = l.bank.Get(recordKey.Key())
	assert.Equal(t, record.HeaderSize+100, len(a.Data), "length after failed growth")
}

func TestUnknownProgram(t *testing.T) {
	l := setup(t)
	defer teardown()

	receipt, err := l.execute(
		nil,
		instruction.BuildInitialize(account.NewUniqueKey(), account.NewUniqueKey(), l.payer.Key()),
	)
	assert.Equal(t, fault.ErrIncorrectProgramId, err, "unknown program")
	assert.Equal(t, "IncorrectProgramId", receipt.Error, "error name")
	assert.Nil(t, receipt.Code, "custom code")
}

func TestRegisterTwice(t *testing.T) {
	l := setup(t)
	defer teardown()

	err := l.bank.RegisterProgram(l.programID, programFunc(nil))
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second registration")

	err = l.bank.RegisterProgram(ledger.SystemProgramID, programFunc(nil))
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "system replaced")
}

func TestHostRules(t *testing.T) {
	l := setup(t)
	defer teardown()

	victim := l.payer.Key()
	other := account.NewUniqueKey()

	testItems := []struct {
		name     string
		writable bool
		f        programFunc
		err      error
	}{
		{
			name:     "resize foreign",
			writable: true,
			f: func(_ account.Key, accounts []host.AccountInfo, _ []byte) error {
				return accounts[0].Resize(4)
			},
			err: fault.ErrExternalAccountDataModified,
		},
		{
			name:     "write readonly",
			writable: false,
			f: func(_ account.Key, accounts []host.AccountInfo, _ []byte) error {
				return accounts[0].WriteData(func([]byte) error { return nil })
			},
			err: fault.ErrReadonlyDataModified,
		},
		{
			name:     "credit readonly",
			writable: false,
			f: func(_ account.Key, accounts []host.AccountInfo, _ []byte) error {
				return accounts[0].SetBalance(accounts[0].Balance() + 1)
			},
			err: fault.ErrReadonlyBalanceChanged,
		},
		{
			name:     "mint",
			writable: true,
			f: func(_ account.Key, accounts []host.AccountInfo, _ []byte) error {
				return accounts[0].SetBalance(accounts[0].Balance() + 1)
			},
			err: fault.ErrUnbalancedInstruction,
		},
		{
			name:     "spend foreign",
			writable: true,
			f: func(_ account.Key, accounts []host.AccountInfo, _ []byte) error {
				if err := accounts[0].SetBalance(accounts[0].Balance() - 1); nil != err {
					return err
				}
				return accounts[1].SetBalance(accounts[1].Balance() + 1)
			},
			err: fault.ErrExternalAccountBalanceSpend,
		},
	}

	for _, item := range testItems {
		programID := account.NewUniqueKey()
		err := l.bank.RegisterProgram(programID, item.f)
		assert.Nil(t, err, "register: %s", item.name)

		meta := host.NewReadonly(victim, false)
		if item.writable {
			meta = host.NewWritable(victim, false)
		}
		in := host.Instruction{
			ProgramID: programID,
			Accounts: []host.AccountMeta{
				meta,
				host.NewWritable(other, false),
			},
		}

		receipt, err := l.execute(nil, in)
		assert.Equal(t, item.err, err, "%s", item.name)
		assert.False(t, receipt.Ok(), "%s: receipt", item.name)

		p, _ := l.bank.Get(victim)
		assert.Equal(t, uint64(initialFunds), p.Balance, "%s: balance", item.name)
		assert.Equal(t, 0, len(p.Data), "%s: data", item.name)
	}
}

func TestTransfer(t *testing.T) {
	l := setup(t)
	defer teardown()

	destination := account.NewUniqueKey()

	_, err := l.execute([]*account.PrivateKey{l.payer}, ledger.Transfer(l.payer.Key(), destination, 250))
	assert.Nil(t, err, "transfer")

	d, ok := l.bank.Get(destination)
	assert.True(t, ok, "destination")
	assert.Equal(t, uint64(250), d.Balance, "destination balance")
	assert.Equal(t, ledger.SystemProgramID, d.Owner, "destination owner")

	_, err = l.execute([]*account.PrivateKey{l.payer}, ledger.Transfer(l.payer.Key(), destination, initialFunds))
	assert.Equal(t, fault.ErrInsufficientFunds, err, "overdraft")

	_, err = l.execute([]*account.PrivateKey{l.payer}, ledger.Transfer(l.payer.Key(), destination, initialFunds-250))
	assert.Nil(t, err, "transfer all")

	_, ok = l.bank.Get(l.payer.Key())
	assert.False(t, ok, "empty payer kept")
}

func TestCreateExistingAccount(t *testing.T) {
	l := setup(t)
	defer teardown()

	recordKey := l.newRecord(t, 4)

	_, err := l.execute(
		[]*account.PrivateKey{l.payer, recordKey},
		ledger.CreateAccount(l.payer.Key(), recordKey.Key(), 1, 4, l.programID),
	)
	assert.Equal(t, fault.ErrAccountAlreadyInUse, err, "create over existing")
}

func TestGenesisOnlyOnce(t *testing.T) {
	l := setup(t)
	defer teardown()

	other := account.NewUniqueKey()
	err := l.bank.Genesis([]ledger.GenesisEntry{{Account: other, Balance: 5}})
	assert.Nil(t, err, "second genesis")

	_, ok := l.bank.Get(other)
	assert.False(t, ok, "second genesis applied")
}

func TestReceiptNotFound(t *testing.T) {
	l := setup(t)
	defer teardown()

	_, err := l.bank.Receipt(merkle.NewDigest([]byte("none")))
	assert.Equal(t, fault.ErrReceiptNotFound, err, "missing receipt")
}
