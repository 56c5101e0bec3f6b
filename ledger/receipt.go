// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/merkle"
)

// receipt status values
const (
	StatusOk     = "ok"
	StatusFailed = "failed"
)

// Receipt - the persisted outcome of a transaction
type Receipt struct {
	Id          merkle.Digest `json:"id"`
	Status      string        `json:"status"`
	Instruction int           `json:"instruction"`
	Error       string        `json:"error,omitempty"`
	Code        *uint32       `json:"code,omitempty"`
}

func newReceipt(id merkle.Digest, index int, err error) *Receipt {
	if nil == err {
		return &Receipt{
			Id:          id,
			Status:      StatusOk,
			Instruction: -1,
		}
	}

	r := &Receipt{
		Id:          id,
		Status:      StatusFailed,
		Instruction: index,
		Error:       fault.Name(err),
	}
	if code, ok := fault.CustomCode(err); ok {
		r.Code = &code
	}
	return r
}

// Ok - true if every instruction succeeded
func (r *Receipt) Ok() bool {
	return StatusOk == r.Status
}
