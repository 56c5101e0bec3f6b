// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"encoding/hex"

	"github.com/bitmark-inc/recordd/account"
)

// KeyPair - structure to hold public and private keys and the seed
// that was used to generate them
type KeyPair struct {
	Seed       string
	Key        account.Key
	PrivateKey *account.PrivateKey
}

// RawKeyPair - text version of seed and keys
type RawKeyPair struct {
	Seed       string `json:"seed"`
	Account    string `json:"account"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// MakeRawKeyPair - create new seed and generate public/private keys from it
func MakeRawKeyPair(test bool) (*RawKeyPair, *KeyPair, error) {
	seed, err := account.NewBase58Seed(test)
	if err != nil {
		return nil, nil, err
	}
	return MakeRawKeyPairFromSeed(seed)
}

// MakeRawKeyPairFromSeed - generate public/private keys from existing seed
func MakeRawKeyPairFromSeed(seed string) (*RawKeyPair, *KeyPair, error) {

	privateKey, _, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return nil, nil, err
	}

	k := privateKey.Key()

	keyPair := KeyPair{
		Seed:       seed,
		Key:        k,
		PrivateKey: privateKey,
	}

	rawKeyPair := RawKeyPair{
		Seed:       seed,
		Account:    k.String(),
		PublicKey:  hex.EncodeToString(k[:]),
		PrivateKey: hex.EncodeToString(privateKey.PrivateKeyBytes()),
	}

	return &rawKeyPair, &keyPair, nil
}

// KeyFromHexPublicKey - create a key from a hexadecimal public key
func KeyFromHexPublicKey(publicKey string) (account.Key, error) {
	b, err := hex.DecodeString(publicKey)
	if nil != err {
		return account.Key{}, err
	}
	return account.KeyFromBytes(b)
}
