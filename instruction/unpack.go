// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/binary"

	"github.com/bitmark-inc/recordd/fault"
)

// Unpack - turn a byte slice into an instruction
//
// Note: Write.Data aliases the packed bytes, nothing is copied
//       an empty Write.Data is nil
//       bytes after the end of an instruction are ignored
func (record Packed) Unpack() (i Instruction, e error) {

	defer func() {
		if r := recover(); nil != r {
			i = nil
			e = fault.ErrInvalidInstructionData
		}
	}()

	if 0 == len(record) {
		return nil, fault.ErrInvalidInstructionData
	}

	n := 1
	switch TagType(record[0]) {

	case InitializeTag:
		return &Initialize{}, nil

	case WriteTag:
		offset, ok := readUint64(record[n:])
		if !ok {
			return nil, fault.ErrInvalidInstructionData
		}
		n += 8

		length, ok := readUint32(record[n:])
		if !ok {
			return nil, fault.ErrInvalidInstructionData
		}
		n += 4

		if uint64(length) > uint64(len(record)-n) {
			return nil, fault.ErrInvalidInstructionData
		}
		w := &Write{
			Offset: offset,
		}
		if 0 != length {
			w.Data = record[n : n+int(length) : n+int(length)]
		}
		return w, nil

	case SetAuthorityTag:
		return &SetAuthority{}, nil

	case CloseAccountTag:
		return &CloseAccount{}, nil

	case ReallocateTag:
		dataLength, ok := readUint64(record[n:])
		if !ok {
			return nil, fault.ErrInvalidInstructionData
		}
		return &Reallocate{DataLength: dataLength}, nil

	default:
		return nil, fault.ErrInvalidInstructionData
	}
}

// Unpack - convenience form of Packed.Unpack
func Unpack(input []byte) (Instruction, error) {
	return Packed(input).Unpack()
}

func readUint64(buffer []byte) (uint64, bool) {
	if len(buffer) < 8 {
		return 0, false
	}
	return binary.LittleEndian.Uint64(buffer), true
}

func readUint32(buffer []byte) (uint32, bool) {
	if len(buffer) < 4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(buffer), true
}
