// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/util"
)

// PrivateKey - an ed25519 signing key
type PrivateKey struct {
	privateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a random key
func NewPrivateKey() (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{privateKey: priv}, nil
}

// PrivateKeyFromBytes - wrap a raw 64 byte ed25519 private key
func PrivateKeyFromBytes(privateKeyBytes []byte) (*PrivateKey, error) {
	if ed25519.PrivateKeySize != len(privateKeyBytes) {
		return nil, fault.ErrInvalidKeyLength
	}
	priv := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
	copy(priv, privateKeyBytes)
	return &PrivateKey{privateKey: priv}, nil
}

// PrivateKeyFromBase58 - this converts a Base58 encoded string and returns a private key
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	decoded := util.FromBase58(privateKeyBase58Encoded)
	if 0 == len(decoded) {
		return nil, fault.ErrCannotDecodePrivateKey
	}

	// Parse the key variant
	keyVariant, keyVariantLength := util.FromVarint64(decoded)

	// Check key type
	if 0 == keyVariantLength || keyVariant&publicKeyCode == publicKeyCode {
		return nil, fault.ErrNotAPrivateKey
	}
	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.ErrInvalidKeyType
	}

	// Compute key length
	keyLength := len(decoded) - keyVariantLength - checksumLength
	if ed25519.PrivateKeySize != keyLength {
		return nil, fault.ErrInvalidKeyLength
	}

	// Checksum
	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	return PrivateKeyFromBytes(decoded[keyVariantLength:checksumStart])
}

// Key - the public identity for this private key
func (privateKey *PrivateKey) Key() Key {
	k := Key{}
	copy(k[:], privateKey.privateKey[ed25519.PrivateKeySize-ed25519.PublicKeySize:])
	return k
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.privateKey, message)
}

// PrivateKeyBytes - fetch the private key as byte slice
func (privateKey *PrivateKey) PrivateKeyBytes() []byte {
	return privateKey.privateKey[:]
}

// Bytes - byte slice for encoded key
func (privateKey *PrivateKey) Bytes() []byte {
	keyVariant := byte(ED25519 << algorithmShift)
	return append([]byte{keyVariant}, privateKey.privateKey[:]...)
}

// String - base58 encoding of encoded key
func (privateKey *PrivateKey) String() string {
	buffer := privateKey.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// MarshalText - convert a private key to its Base58 JSON form
func (privateKey PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}

// UnmarshalText - convert Base58 JSON text to a private key
func (privateKey *PrivateKey) UnmarshalText(s []byte) error {
	p, err := PrivateKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	privateKey.privateKey = p.privateKey
	return nil
}
