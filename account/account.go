// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"sync/atomic"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/util"
)

// KeySize - number of bytes in an identity
const KeySize = ed25519.PublicKeySize

// enumeration of supported key algorithms
const (
	// zero is not a valid algorithm
	ED25519 = iota + 1
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Key - the identity of a ledger account
//
// for signing accounts this is the ed25519 public key, other accounts
// (e.g. a record cell created by a program) simply use it as an address
type Key [KeySize]byte

// KeyFromBytes - convert a raw 32 byte slice to a key
func KeyFromBytes(buffer []byte) (Key, error) {
	k := Key{}
	if KeySize != len(buffer) {
		return k, fault.ErrInvalidKeyLength
	}
	copy(k[:], buffer)
	return k, nil
}

// KeyFromBase58 - this converts a Base58 encoded string and returns a key
//
// the encoded form is: key variant ++ public key ++ 4 byte SHA3 checksum
func KeyFromBase58(keyBase58Encoded string) (Key, error) {
	k := Key{}

	decoded := util.FromBase58(keyBase58Encoded)
	if 0 == len(decoded) {
		return k, fault.ErrCannotDecodeAccount
	}

	// Parse the key variant
	keyVariant, keyVariantLength := util.FromVarint64(decoded)

	// Check key type
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return k, fault.ErrNotAPublicKey
	}
	if ED25519 != keyVariant>>algorithmShift || 0 != keyVariant&testKeyCode {
		return k, fault.ErrInvalidKeyType
	}

	// Compute key length
	keyLength := len(decoded) - keyVariantLength - checksumLength
	if KeySize != keyLength {
		return k, fault.ErrInvalidKeyLength
	}

	// Checksum
	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return k, fault.ErrChecksumMismatch
	}

	copy(k[:], decoded[keyVariantLength:checksumStart])
	return k, nil
}

// counter for NewUniqueKey
var uniqueCount uint64

// NewUniqueKey - a distinct key with no private key behind it
//
// useful for destinations and other addresses that never sign
func NewUniqueKey() Key {
	n := atomic.AddUint64(&uniqueCount, 1)
	k := Key{}
	k[0] = 0xff
	binary.BigEndian.PutUint64(k[KeySize-8:], n)
	return k
}

// IsZero - true for the all zero key
func (k Key) IsZero() bool {
	return k == Key{}
}

// Bytes - byte slice for encoded key
func (k Key) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	return append([]byte{keyVariant}, k[:]...)
}

// String - base58 encoding of encoded key
func (k Key) String() string {
	buffer := k.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// GoString - for the %#v format
func (k Key) GoString() string {
	return "<key:" + hex.EncodeToString(k[:]) + ">"
}

// MarshalText - convert a key to its Base58 JSON form
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText - convert Base58 JSON text to a key
func (k *Key) UnmarshalText(s []byte) error {
	decoded, err := KeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*k = decoded
	return nil
}

// CheckSignature - verify an ed25519 signature made by this key
func (k Key) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(k[:], message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}
