// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/record"
)

func TestOverlayTooShort(t *testing.T) {
	for _, size := range []int{0, 1, record.HeaderSize - 1} {
		_, err := record.Overlay(make([]byte, size))
		assert.Equal(t, fault.ErrInvalidAccountData, err, "size: %d", size)
	}
}

func TestOverlayAliases(t *testing.T) {
	buffer := make([]byte, record.HeaderSize+8)
	h, err := record.Overlay(buffer)
	assert.Nil(t, err, "overlay")
	assert.False(t, h.IsInitialized(), "zeroed buffer is initialized")

	k := account.NewUniqueKey()
	h.SetVersion(record.CurrentVersion)
	h.SetAuthority(k)

	assert.Equal(t, byte(record.CurrentVersion), buffer[0], "version not written through")
	assert.Equal(t, k[:], buffer[1:record.HeaderSize], "authority not written through")
	assert.Equal(t, make([]byte, 8), record.Payload(buffer), "payload disturbed")

	again, err := record.Overlay(buffer)
	assert.Nil(t, err, "second overlay")
	assert.True(t, again.IsInitialized(), "not initialized")
	assert.Equal(t, k, again.Authority(), "authority")
}

func TestOtherVersionNotInitialized(t *testing.T) {
	buffer := make([]byte, record.HeaderSize)
	h, _ := record.Overlay(buffer)
	h.SetVersion(2)
	assert.False(t, h.IsInitialized(), "version 2 counted as initialized")
}

func TestDataBytes(t *testing.T) {
	d := record.Data{
		Version:   record.CurrentVersion,
		Authority: account.NewUniqueKey(),
	}
	buffer := d.Bytes()
	assert.Equal(t, record.HeaderSize, len(buffer), "packed size")

	decoded, err := record.DataFromBytes(append(buffer, 111, 111))
	assert.Nil(t, err, "unpack")
	assert.Equal(t, d, decoded, "round trip")
	assert.True(t, decoded.IsInitialized(), "not initialized")
}

func TestPayload(t *testing.T) {
	assert.Equal(t, []byte{}, record.Payload(nil), "nil buffer")
	assert.Equal(t, []byte{}, record.Payload(make([]byte, record.HeaderSize)), "header only")

	buffer := make([]byte, record.HeaderSize+2)
	buffer[record.WritableStartIndex] = 0x6f
	assert.Equal(t, []byte{0x6f, 0x00}, record.Payload(buffer), "payload")
}
