// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/host"
)

// account order for each instruction:
//
//   Initialize    record(w)  new authority(r)
//   Write         record(w)  authority(s)
//   SetAuthority  record(w)  authority(s)  new authority(r)
//   CloseAccount  record(w)  authority(s)  destination(w)
//   Reallocate    record(w)  authority(s)

// BuildInitialize - host instruction for Initialize
func BuildInitialize(programID account.Key, recordKey account.Key, authority account.Key) host.Instruction {
	return host.Instruction{
		ProgramID: programID,
		Accounts: []host.AccountMeta{
			host.NewWritable(recordKey, false),
			host.NewReadonly(authority, false),
		},
		Data: (&Initialize{}).Pack(),
	}
}

// BuildWrite - host instruction for Write
func BuildWrite(programID account.Key, recordKey account.Key, authority account.Key, offset uint64, data []byte) host.Instruction {
	w := &Write{
		Offset: offset,
		Data:   data,
	}
	return host.Instruction{
		ProgramID: programID,
		Accounts: []host.AccountMeta{
			host.NewWritable(recordKey, false),
			host.NewReadonly(authority, true),
		},
		Data: w.Pack(),
	}
}

// BuildSetAuthority - host instruction for SetAuthority
func BuildSetAuthority(programID account.Key, recordKey account.Key, authority account.Key, newAuthority account.Key) host.Instruction {
	return host.Instruction{
		ProgramID: programID,
		Accounts: []host.AccountMeta{
			host.NewWritable(recordKey, false),
			host.NewReadonly(authority, true),
			host.NewReadonly(newAuthority, false),
		},
		Data: (&SetAuthority{}).Pack(),
	}
}

// BuildCloseAccount - host instruction for CloseAccount
func BuildCloseAccount(programID account.Key, recordKey account.Key, authority account.Key, destination account.Key) host.Instruction {
	return host.Instruction{
		ProgramID: programID,
		Accounts: []host.AccountMeta{
			host.NewWritable(recordKey, false),
			host.NewReadonly(authority, true),
			host.NewWritable(destination, false),
		},
		Data: (&CloseAccount{}).Pack(),
	}
}

// BuildReallocate - host instruction for Reallocate
func BuildReallocate(programID account.Key, recordKey account.Key, authority account.Key, dataLength uint64) host.Instruction {
	r := &Reallocate{
		DataLength: dataLength,
	}
	return host.Instruction{
		ProgramID: programID,
		Accounts: []host.AccountMeta{
			host.NewWritable(recordKey, false),
			host.NewReadonly(authority, true),
		},
		Data: r.Pack(),
	}
}
