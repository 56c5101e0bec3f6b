// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
)

// layout of a record cell
//
//   offset 0       version
//   offset 1..33   authority
//   offset 33..    payload
const (
	versionOffset   = 0
	authorityOffset = 1

	// HeaderSize - bytes occupied by the fixed header
	HeaderSize = authorityOffset + account.KeySize

	// WritableStartIndex - first byte of the payload
	WritableStartIndex = HeaderSize

	// CurrentVersion - version stored by Initialize
	CurrentVersion = 1
)

// Header - a view onto the first HeaderSize bytes of a cell
//
// it aliases the underlying buffer, so it must not be kept beyond the
// borrow that produced it
type Header struct {
	buffer []byte
}

// Data - a detached copy of a header
type Data struct {
	Version   uint8       `json:"version"`
	Authority account.Key `json:"authority"`
}

// Overlay - view the header at the start of a buffer
func Overlay(buffer []byte) (Header, error) {
	if len(buffer) < HeaderSize {
		return Header{}, fault.ErrInvalidAccountData
	}
	return Header{buffer: buffer[:HeaderSize:HeaderSize]}, nil
}

// Payload - the bytes following the header
func Payload(buffer []byte) []byte {
	if len(buffer) <= HeaderSize {
		return []byte{}
	}
	return buffer[HeaderSize:]
}

// Version - the stored version byte
func (h Header) Version() uint8 {
	return h.buffer[versionOffset]
}

// SetVersion - overwrite the version byte
func (h Header) SetVersion(version uint8) {
	h.buffer[versionOffset] = version
}

// Authority - the key allowed to modify this record
func (h Header) Authority() account.Key {
	k := account.Key{}
	copy(k[:], h.buffer[authorityOffset:HeaderSize])
	return k
}

// SetAuthority - overwrite the authority
func (h Header) SetAuthority(authority account.Key) {
	copy(h.buffer[authorityOffset:HeaderSize], authority[:])
}

// IsInitialized - true only for the current version
func (h Header) IsInitialized() bool {
	return CurrentVersion == h.Version()
}

// Data - copy the header out of the buffer
func (h Header) Data() Data {
	return Data{
		Version:   h.Version(),
		Authority: h.Authority(),
	}
}

// Bytes - the packed header form
func (d Data) Bytes() []byte {
	buffer := make([]byte, HeaderSize)
	buffer[versionOffset] = d.Version
	copy(buffer[authorityOffset:], d.Authority[:])
	return buffer
}

// IsInitialized - true only for the current version
func (d Data) IsInitialized() bool {
	return CurrentVersion == d.Version
}

// DataFromBytes - unpack a header, any trailing payload is ignored
func DataFromBytes(buffer []byte) (Data, error) {
	h, err := Overlay(buffer)
	if nil != err {
		return Data{}, err
	}
	return h.Data(), nil
}
