// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/util"
)

// seed layout: header(3) ++ network(1) ++ secret(32) ++ checksum(4)
var seedHeader = []byte{0x5a, 0xfe, 0x01}

var (
	seedNonce     = [24]byte{}
	authSeedIndex = [16]byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0xe7,
	}
)

const (
	seedHeaderLength   = 3
	seedNetworkLength  = 1
	seedSecretLength   = 32
	seedChecksumLength = 4

	seedLength = seedHeaderLength + seedNetworkLength + seedSecretLength + seedChecksumLength
)

// PrivateKeyFromBase58Seed - derive the signing key from a Base58 encoded seed
//
// also returns true if the seed was created for a test network
func PrivateKeyFromBase58Seed(seedBase58Encoded string) (*PrivateKey, bool, error) {

	seed := util.FromBase58(seedBase58Encoded)
	if 0 == len(seed) {
		return nil, false, fault.ErrCannotDecodeSeed
	}
	if seedLength != len(seed) {
		return nil, false, fault.ErrInvalidSeedLength
	}

	checksumStart := seedLength - seedChecksumLength
	digest := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(digest[:seedChecksumLength], seed[checksumStart:]) {
		return nil, false, fault.ErrChecksumMismatch
	}

	if !bytes.Equal(seedHeader, seed[:seedHeaderLength]) {
		return nil, false, fault.ErrInvalidSeedHeader
	}

	testnet := 0x01 == seed[seedHeaderLength]

	var sk [seedSecretLength]byte
	copy(sk[:], seed[seedHeaderLength+seedNetworkLength:checksumStart])

	// the sealed box is 16 bytes of tag plus 16 bytes of index: exactly an ed25519 seed
	ed25519Seed := secretbox.Seal([]byte{}, authSeedIndex[:], &seedNonce, &sk)

	_, priv, err := ed25519.GenerateKey(bytes.NewBuffer(ed25519Seed))
	if nil != err {
		return nil, false, err
	}
	return &PrivateKey{privateKey: priv}, testnet, nil
}

// NewBase58Seed - generate a random seed
func NewBase58Seed(testnet bool) (string, error) {
	sk := make([]byte, seedSecretLength)
	n, err := rand.Read(sk)
	if nil != err {
		return "", err
	}
	if seedSecretLength != n {
		return "", fmt.Errorf("got: %d bytes, expected: %d bytes", n, seedSecretLength)
	}

	net := byte(0x00)
	if testnet {
		net = 0x01
	}
	seed := append(append([]byte{}, seedHeader...), net)
	seed = append(seed, sk...)
	checksum := sha3.Sum256(seed)
	seed = append(seed, checksum[:seedChecksumLength]...)

	return util.ToBase58(seed), nil
}
