// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/command/record-cli/configuration"
	"github.com/bitmark-inc/recordd/merkle"
)

func TestCheckConnect(t *testing.T) {
	c, err := checkConnect("127.0.0.1:2130, [::1]:2130,")
	assert.Nil(t, err, "connect")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c, "connections")

	_, err = checkConnect(" , ")
	assert.Equal(t, ErrRequiredConnect, err, "blank")
}

func TestCheckData(t *testing.T) {
	d, err := checkData("6f6f", "")
	assert.Nil(t, err, "hex")
	assert.Equal(t, []byte{0x6f, 0x6f}, d, "hex data")

	d, err = checkData("", "oo")
	assert.Nil(t, err, "text")
	assert.Equal(t, []byte("oo"), d, "text data")

	_, err = checkData("6f", "o")
	assert.Equal(t, ErrIncompatibleOptions, err, "both")

	_, err = checkData("", "")
	assert.Equal(t, ErrRequiredData, err, "neither")

	_, err = checkData("zz", "")
	assert.NotNil(t, err, "bad hex")
}

func TestCheckAccount(t *testing.T) {
	config := configuration.New("alice", true, nil)

	privateKey, err := account.NewPrivateKey()
	assert.Nil(t, err, "private key")
	err = config.AddReceiveOnlyIdentity("bob", "receive only", privateKey.Key().String())
	assert.Nil(t, err, "add")

	k, err := checkAccount("bob", config)
	assert.Nil(t, err, "by name")
	assert.Equal(t, privateKey.Key(), k, "name lookup")

	other, err := account.NewPrivateKey()
	assert.Nil(t, err, "other key")
	k, err = checkAccount(other.Key().String(), config)
	assert.Nil(t, err, "by account")
	assert.Equal(t, other.Key(), k, "base58 account")

	_, err = checkAccount("", config)
	assert.Equal(t, ErrRequiredAccount, err, "blank")

	k, err = checkOptionalAccount("", "bob", config)
	assert.Nil(t, err, "default")
	assert.Equal(t, privateKey.Key(), k, "default lookup")

	_, err = checkRecord("", config)
	assert.Equal(t, ErrRequiredRecord, err, "record")
}

func TestCheckSeed(t *testing.T) {
	seed, err := checkSeed("", true)
	assert.Nil(t, err, "new seed")

	again, err := checkSeed(seed, true)
	assert.Nil(t, err, "existing seed")
	assert.Equal(t, seed, again, "unchanged")

	_, err = checkSeed(seed, false)
	assert.NotNil(t, err, "network mismatch")
}

func TestCheckTxId(t *testing.T) {
	id := merkle.NewDigest([]byte("transaction"))

	decoded, err := checkTxId(id.String())
	assert.Nil(t, err, "txid")
	assert.Equal(t, id, decoded, "round trip")

	_, err = checkTxId("")
	assert.Equal(t, ErrRequiredTransferTxId, err, "blank")

	_, err = checkTxId("1234")
	assert.NotNil(t, err, "short")
}
