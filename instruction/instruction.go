// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

// TagType - type code for record instructions
type TagType uint8

// enumerate the possible instructions
// this is encoded as a single byte at the start of "Packed"
const (
	InitializeTag   = TagType(iota) // claim an empty cell
	WriteTag        = TagType(iota) // copy bytes into the payload
	SetAuthorityTag = TagType(iota) // hand the record to another key
	CloseAccountTag = TagType(iota) // drain the balance to a destination
	ReallocateTag   = TagType(iota) // grow the cell

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed instructions are just a byte slice
type Packed []byte

// Instruction - one of the five record operations
//
// the set of implementations is closed, dispatch with:
//   switch in := i.(type) {
//   case *instruction.Write:
type Instruction interface {
	Pack() Packed
	tag() TagType
}

// Initialize - set the authority of a new record
type Initialize struct {
}

// Write - copy Data into the payload starting at Offset
type Write struct {
	Offset uint64 `json:"offset"`
	Data   []byte `json:"data"`
}

// SetAuthority - replace the authority
type SetAuthority struct {
}

// CloseAccount - move the whole balance to a destination
type CloseAccount struct {
}

// Reallocate - ensure the payload can hold DataLength bytes
type Reallocate struct {
	DataLength uint64 `json:"dataLength"`
}

func (*Initialize) tag() TagType   { return InitializeTag }
func (*Write) tag() TagType        { return WriteTag }
func (*SetAuthority) tag() TagType { return SetAuthorityTag }
func (*CloseAccount) tag() TagType { return CloseAccountTag }
func (*Reallocate) tag() TagType   { return ReallocateTag }

var names = map[TagType]string{
	InitializeTag:   "Initialize",
	WriteTag:        "Write",
	SetAuthorityTag: "SetAuthority",
	CloseAccountTag: "CloseAccount",
	ReallocateTag:   "Reallocate",
}

// Name - for logging
func Name(i Instruction) string {
	if nil == i {
		return "nil"
	}
	return i.tag().String()
}

// String - name of the tag
func (t TagType) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return "Invalid"
}

// Type - the tag of a packed instruction, InvalidTag if unknown
func (record Packed) Type() TagType {
	if 0 == len(record) || TagType(record[0]) >= InvalidTag {
		return InvalidTag
	}
	return TagType(record[0])
}
