// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/host"
	"github.com/bitmark-inc/recordd/merkle"
	"github.com/bitmark-inc/recordd/util"
)

// maximum signatures carried by one transaction
const maxSignatures = 16

// flag bits for a packed account meta
const (
	signerFlag   = 0x01
	writableFlag = 0x02
)

// Message - the signed part of a transaction
//
// the nonce only serves to make otherwise identical messages distinct
type Message struct {
	Nonce        uint64             `json:"nonce"`
	Instructions []host.Instruction `json:"instructions"`
}

// SignaturePair - a signature and the key that made it
type SignaturePair struct {
	Key       account.Key       `json:"key"`
	Signature account.Signature `json:"signature"`
}

// Transaction - a message and its signatures
type Transaction struct {
	Message    Message         `json:"message"`
	Signatures []SignaturePair `json:"signatures"`
}

// Pack - deterministic binary form of a message, this is what is signed
//
//   nonce ++ count ++ { program ++ count ++ { key ++ flags } ++ length ++ data }
func (m *Message) Pack() []byte {
	buffer := util.ToVarint64(m.Nonce)
	buffer = util.AppendVarint64(buffer, uint64(len(m.Instructions)))
	for _, in := range m.Instructions {
		buffer = append(buffer, in.ProgramID[:]...)
		buffer = util.AppendVarint64(buffer, uint64(len(in.Accounts)))
		for _, meta := range in.Accounts {
			flags := byte(0)
			if meta.IsSigner {
				flags |= signerFlag
			}
			if meta.IsWritable {
				flags |= writableFlag
			}
			buffer = append(buffer, meta.Key[:]...)
			buffer = append(buffer, flags)
		}
		buffer = util.AppendVarint64(buffer, uint64(len(in.Data)))
		buffer = append(buffer, in.Data...)
	}
	return buffer
}

// Id - the transaction id
func (m *Message) Id() merkle.Digest {
	return merkle.NewDigest(m.Pack())
}

// NewTransaction - an unsigned transaction from a list of instructions
func NewTransaction(nonce uint64, instructions ...host.Instruction) *Transaction {
	return &Transaction{
		Message: Message{
			Nonce:        nonce,
			Instructions: instructions,
		},
	}
}

// Sign - add or replace the signature of each key
func (tx *Transaction) Sign(keys ...*account.PrivateKey) {
	packed := tx.Message.Pack()
signing:
	for _, privateKey := range keys {
		pair := SignaturePair{
			Key:       privateKey.Key(),
			Signature: privateKey.Sign(packed),
		}
		for i := range tx.Signatures {
			if tx.Signatures[i].Key == pair.Key {
				tx.Signatures[i] = pair
				continue signing
			}
		}
		tx.Signatures = append(tx.Signatures, pair)
	}
}

// verify all signatures and ensure every signing account has one
func (tx *Transaction) verify() error {
	if len(tx.Signatures) > maxSignatures {
		return fault.ErrTooManySignatures
	}

	packed := tx.Message.Pack()
	signed := make(map[account.Key]struct{}, len(tx.Signatures))
	for _, pair := range tx.Signatures {
		if err := pair.Key.CheckSignature(packed, pair.Signature); nil != err {
			return err
		}
		signed[pair.Key] = struct{}{}
	}

	for _, in := range tx.Message.Instructions {
		for _, meta := range in.Accounts {
			if !meta.IsSigner {
				continue
			}
			if _, ok := signed[meta.Key]; !ok {
				return fault.ErrMissingRequiredSignature
			}
		}
	}
	return nil
}
