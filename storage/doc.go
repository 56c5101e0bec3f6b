// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. key          = account identity (32 byte ed25519 public key or address)
// 4. txId         = transaction digest as 32 byte SHA3-256(packed message)
// 5. *others*     = byte values of various length
//
// Accounts:
//
//   A ++ key                   - ledger account
//                                data: owner ++ balance(big endian uint64) ++ account data
//
// Receipts:
//
//   R ++ txId                  - outcome of a submitted transaction
//                                data: status ++ custom code(big endian uint32) ++ error text
//
// Testing:
//   Z ++ key                   - testing data
package storage
