// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
)

// limits on account data
const (
	MaxPermittedDataIncrease = 10 * 1024        // growth per instruction
	MaxPermittedDataLength   = 10 * 1024 * 1024 // absolute size
)

// size of the fixed part of a stored account
const accountHeaderSize = account.KeySize + 8

// Account - the stored state of one ledger account
type Account struct {
	Owner   account.Key `json:"owner"`
	Balance uint64      `json:"balance"`
	Data    []byte      `json:"data"`
}

// Bytes - packed form: owner ++ balance (big endian) ++ data
func (a *Account) Bytes() []byte {
	buffer := make([]byte, accountHeaderSize+len(a.Data))
	copy(buffer, a.Owner[:])
	binary.BigEndian.PutUint64(buffer[account.KeySize:], a.Balance)
	copy(buffer[accountHeaderSize:], a.Data)
	return buffer
}

// AccountFromBytes - unpack a stored account
//
// the data is copied so the buffer may be reused
func AccountFromBytes(buffer []byte) (*Account, error) {
	if len(buffer) < accountHeaderSize {
		return nil, fault.ErrInvalidAccountData
	}
	a := &Account{
		Balance: binary.BigEndian.Uint64(buffer[account.KeySize:]),
		Data:    make([]byte, len(buffer)-accountHeaderSize),
	}
	copy(a.Owner[:], buffer[:account.KeySize])
	copy(a.Data, buffer[accountHeaderSize:])
	return a, nil
}
