// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/binary"
)

// Pack - tag only
func (*Initialize) Pack() Packed {
	return Packed{byte(InitializeTag)}
}

// Pack - tag ++ offset:u64 ++ length:u32 ++ data, little endian
func (w *Write) Pack() Packed {
	message := make([]byte, 0, 1+8+4+len(w.Data))
	message = append(message, byte(WriteTag))
	message = appendUint64(message, w.Offset)
	message = appendUint32(message, uint32(len(w.Data)))
	return append(message, w.Data...)
}

// Pack - tag only
func (*SetAuthority) Pack() Packed {
	return Packed{byte(SetAuthorityTag)}
}

// Pack - tag only
func (*CloseAccount) Pack() Packed {
	return Packed{byte(CloseAccountTag)}
}

// Pack - tag ++ data_length:u64, little endian
func (r *Reallocate) Pack() Packed {
	message := make([]byte, 0, 1+8)
	message = append(message, byte(ReallocateTag))
	return appendUint64(message, r.DataLength)
}

func appendUint64(buffer []byte, value uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}

func appendUint32(buffer []byte, value uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}
