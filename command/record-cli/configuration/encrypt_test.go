// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/fault"
)

// test encrypt and decrypt one string with various passwords
func TestEncryptDecrypt(t *testing.T) {

	plainText := "The Quick Brown Fox Jumps Over The Lazy Dog"

	passwords := []string{"test", "123", "444", "m,erRGhtk%$33ug62sd al/fajfb.adv"}

	for _, password := range passwords {
		salt, key, err := hashPassword(password)
		if nil != err {
			t.Fatalf("hash error: %s", err)
		}

		encrypted, err := encryptData(plainText, key)
		if nil != err {
			t.Fatalf("encrypt error: %s", err)
		}

		key2, err := generateKey(password, salt)
		if nil != err {
			t.Fatalf("generateKey error: %s", err)
		}

		decrypted, err := decryptData(encrypted, key2)
		if nil != err {
			t.Fatalf("decrypt error: %s", err)
		}

		if decrypted != plainText {
			t.Errorf("decrypt: actual:   %s", decrypted)
			t.Errorf("decrypt: expected: %s", plainText)
		}
	}
}

func TestEncryptionIsNotRepeated(t *testing.T) {
	plainText := "This is some text for testing 1234567890"

	_, key, err := hashPassword("abcdefghijklmnopqrstuvwxyz")
	assert.Nil(t, err, "hash")

	first, err := encryptData(plainText, key)
	assert.Nil(t, err, "first")
	second, err := encryptData(plainText, key)
	assert.Nil(t, err, "second")

	assert.NotEqual(t, first, second, "nonce must differ")
}

func TestDecryptWithWrongPassword(t *testing.T) {
	plainText := "This is some text for testing 1234567890"

	salt, key, err := hashPassword("1234567890")
	assert.Nil(t, err, "hash")

	encrypted, err := encryptData(plainText, key)
	assert.Nil(t, err, "encrypt")

	bad, err := generateKey("A Bad Password", salt)
	assert.Nil(t, err, "bad key")

	_, err = decryptData(encrypted, bad)
	assert.Equal(t, fault.ErrCryptoFailed, err, "wrong key")
}

func TestEncryptLimits(t *testing.T) {
	_, key, err := hashPassword("password")
	assert.Nil(t, err, "hash")

	_, err = encryptData("short", key)
	assert.Equal(t, fault.ErrCryptoFailed, err, "too short")

	_, err = encryptData(strings.Repeat("x", maximumDataLength), key)
	assert.Equal(t, fault.ErrCryptoFailed, err, "too long")

	_, err = decryptData("", key)
	assert.Equal(t, fault.ErrCryptoFailed, err, "empty")

	_, err = decryptData("0011", key)
	assert.Equal(t, fault.ErrCryptoFailed, err, "no room for nonce")
}

func TestSaltText(t *testing.T) {
	salt, err := MakeSalt()
	assert.Nil(t, err, "make")

	text, err := salt.MarshalText()
	assert.Nil(t, err, "marshal")
	assert.Equal(t, salt.String(), string(text), "text form")

	var decoded Salt
	err = decoded.UnmarshalText(text)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, *salt, decoded, "round trip")

	err = decoded.UnmarshalText([]byte("0102"))
	assert.Equal(t, fault.ErrInvalidSaltLength, err, "short salt")

	err = decoded.UnmarshalText([]byte("not hex"))
	assert.NotNil(t, err, "bad hex")
}
