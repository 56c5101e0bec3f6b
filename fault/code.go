// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"strconv"
)

// custom program error codes as seen by the host ledger
//
// these values are persisted in receipts and must never be renumbered
var customCodes = map[error]uint32{
	ErrIncorrectAuthority: 0,
	ErrOverflow:           1,
}

// names from the host generic error vocabulary
var hostNames = map[error]string{
	ErrAccountAlreadyInitialized:   "AccountAlreadyInitialized",
	ErrAccountAlreadyInUse:         "AccountAlreadyInUse",
	ErrAccountBorrowFailed:         "AccountBorrowFailed",
	ErrAccountDataTooSmall:         "AccountDataTooSmall",
	ErrExternalAccountBalanceSpend: "ExternalAccountBalanceSpend",
	ErrExternalAccountDataModified: "ExternalAccountDataModified",
	ErrIncorrectProgramId:          "IncorrectProgramId",
	ErrInsufficientFunds:           "InsufficientFunds",
	ErrInvalidAccountData:          "InvalidAccountData",
	ErrInvalidArgument:             "InvalidArgument",
	ErrInvalidInstructionData:      "InvalidInstructionData",
	ErrInvalidRealloc:              "InvalidRealloc",
	ErrInvalidSignature:            "InvalidSignature",
	ErrMissingRequiredSignature:    "MissingRequiredSignature",
	ErrModifiedProgramId:           "ModifiedProgramId",
	ErrNotEnoughAccountKeys:        "NotEnoughAccountKeys",
	ErrReadonlyBalanceChanged:      "ReadonlyBalanceChanged",
	ErrReadonlyDataModified:        "ReadonlyDataModified",
	ErrUnbalancedInstruction:       "UnbalancedInstruction",
	ErrUninitializedAccount:        "UninitializedAccount",
}

// CustomCode - the program specific code of an error
//
// second result is false for errors outside the program's own set
func CustomCode(err error) (uint32, bool) {
	code, ok := customCodes[err]
	return code, ok
}

// Name - render an error in the host vocabulary
//
// program errors are shown as Custom(n), anything unknown to the
// host vocabulary is returned as its plain message
func Name(err error) string {
	if nil == err {
		return "Ok"
	}
	if code, ok := customCodes[err]; ok {
		return "Custom(" + strconv.FormatUint(uint64(code), 10) + ")"
	}
	if name, ok := hostNames[err]; ok {
		return name
	}
	return err.Error()
}
