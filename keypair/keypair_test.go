// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/keypair"
)

func TestMakeRawKeyPairFromSeed(t *testing.T) {
	raw, pair, err := keypair.MakeRawKeyPairFromSeed("5XEECqhR7QBkJezUJiUJBmHaSmffDfVN5atuLnQBHnvfxbsWHuBfQLw")
	assert.Nil(t, err, "key pair from seed")
	assert.Equal(t, "ajsDToCYSuK9rjSKGU6pwKGHahybu3DJ42DYbXRgHxS3Yc6CFC", raw.Account, "wrong account")
	assert.Equal(t, "5b4d99cc95cec16a3d489c94ba33d7fd6705c6cd3a6495c264e188b1985f4249", raw.PublicKey, "wrong public key")
	assert.Equal(t, "e6d85658b86242d45b52d9421736427ef22edda12c8790408c09ec3c9e356e755b4d99cc95cec16a3d489c94ba33d7fd6705c6cd3a6495c264e188b1985f4249", raw.PrivateKey, "wrong private key")
	assert.Equal(t, pair.Key, pair.PrivateKey.Key(), "key mismatch")
}

func TestMakeRawKeyPair(t *testing.T) {
	raw, pair, err := keypair.MakeRawKeyPair(true)
	assert.Nil(t, err, "new key pair")
	assert.Equal(t, raw.Seed, pair.Seed, "seed mismatch")

	k, err := keypair.KeyFromHexPublicKey(raw.PublicKey)
	assert.Nil(t, err, "key from hex")
	assert.Equal(t, pair.Key, k, "hex key mismatch")
}

func TestKeyFromHexPublicKey(t *testing.T) {
	_, err := keypair.KeyFromHexPublicKey("12fa")
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short key accepted")

	_, err = keypair.KeyFromHexPublicKey("zz")
	assert.NotNil(t, err, "invalid hex accepted")
}
