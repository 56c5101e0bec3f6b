// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/host"
	"github.com/bitmark-inc/recordd/record"
)

const maxInt = int(^uint(0) >> 1)

// accounts: record(w), new authority
func (p *Program) initialize(accounts []host.AccountInfo) error {
	a, err := positional(accounts, 2)
	if nil != err {
		return err
	}
	recordInfo, authorityInfo := a[0], a[1]

	authority := authorityInfo.Key()
	err = recordInfo.WriteData(func(data []byte) error {
		h, err := record.Overlay(data)
		if nil != err {
			return err
		}
		if h.IsInitialized() {
			return fault.ErrAccountAlreadyInitialized
		}
		h.SetAuthority(authority)
		h.SetVersion(record.CurrentVersion)
		return nil
	})
	if nil != err {
		return err
	}

	p.log.Debugf("initialize: record: %s  authority: %s", recordInfo.Key(), authority)
	return nil
}

// read the header and run the authority guard
//
// the borrow is released before returning so the caller may write
func readAndCheck(recordInfo host.AccountInfo, authorityInfo host.AccountInfo) error {
	return recordInfo.ReadData(func(data []byte) error {
		h, err := record.Overlay(data)
		if nil != err {
			return err
		}
		if !h.IsInitialized() {
			return fault.ErrUninitializedAccount
		}
		return checkAuthority(authorityInfo, h.Authority())
	})
}

// accounts: record(w), authority(s)
func (p *Program) write(accounts []host.AccountInfo, offset uint64, buffer []byte) error {
	a, err := positional(accounts, 2)
	if nil != err {
		return err
	}
	recordInfo, authorityInfo := a[0], a[1]

	err = readAndCheck(recordInfo, authorityInfo)
	if nil != err {
		return err
	}

	start := saturatingAdd(record.WritableStartIndex, offset)
	end := saturatingAdd(start, uint64(len(buffer)))
	if end > uint64(recordInfo.DataLen()) {
		return fault.ErrAccountDataTooSmall
	}

	err = recordInfo.WriteData(func(data []byte) error {
		copy(data[start:end], buffer)
		return nil
	})
	if nil != err {
		return err
	}

	p.log.Debugf("write: record: %s  offset: %d  length: %d", recordInfo.Key(), offset, len(buffer))
	return nil
}

// accounts: record(w), authority(s), new authority
func (p *Program) setAuthority(accounts []host.AccountInfo) error {
	a, err := positional(accounts, 3)
	if nil != err {
		return err
	}
	recordInfo, authorityInfo, newAuthorityInfo := a[0], a[1], a[2]

	newAuthority := newAuthorityInfo.Key()
	err = recordInfo.WriteData(func(data []byte) error {
		h, err := record.Overlay(data)
		if nil != err {
			return err
		}
		if !h.IsInitialized() {
			return fault.ErrUninitializedAccount
		}
		err = checkAuthority(authorityInfo, h.Authority())
		if nil != err {
			return err
		}
		h.SetAuthority(newAuthority)
		return nil
	})
	if nil != err {
		return err
	}

	p.log.Debugf("set authority: record: %s  authority: %s", recordInfo.Key(), newAuthority)
	return nil
}

// accounts: record(w), authority(s), destination(w)
//
// the header is not cleared; a closed record that is not swept by the
// host remains initialized
func (p *Program) closeAccount(accounts []host.AccountInfo) error {
	a, err := positional(accounts, 3)
	if nil != err {
		return err
	}
	recordInfo, authorityInfo, destinationInfo := a[0], a[1], a[2]

	err = readAndCheck(recordInfo, authorityInfo)
	if nil != err {
		return err
	}

	amount := recordInfo.Balance()
	total := destinationInfo.Balance() + amount
	if total < amount {
		return fault.ErrOverflow
	}

	err = destinationInfo.SetBalance(total)
	if nil != err {
		return err
	}
	err = recordInfo.SetBalance(0)
	if nil != err {
		return err
	}

	p.log.Debugf("close: record: %s  destination: %s  amount: %d", recordInfo.Key(), destinationInfo.Key(), amount)
	return nil
}

// accounts: record(w), authority(s)
//
// only grows; a record already large enough is left alone
func (p *Program) reallocate(accounts []host.AccountInfo, dataLength uint64) error {
	a, err := positional(accounts, 2)
	if nil != err {
		return err
	}
	recordInfo, authorityInfo := a[0], a[1]

	err = readAndCheck(recordInfo, authorityInfo)
	if nil != err {
		return err
	}

	if dataLength > uint64(maxInt-record.WritableStartIndex) {
		return fault.ErrInvalidArgument
	}
	needed := record.WritableStartIndex + int(dataLength)
	if recordInfo.DataLen() >= needed {
		return nil
	}

	err = recordInfo.Resize(needed)
	if nil != err {
		return err
	}

	p.log.Debugf("reallocate: record: %s  length: %d", recordInfo.Key(), needed)
	return nil
}

func saturatingAdd(a uint64, b uint64) uint64 {
	c := a + b
	if c < a {
		return ^uint64(0)
	}
	return c
}

