// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/host"
)

// the identity check comes first so a signed but wrong key reports
// IncorrectAuthority rather than a signature problem
func checkAuthority(info host.AccountInfo, expected account.Key) error {
	if expected != info.Key() {
		return fault.ErrIncorrectAuthority
	}
	if !info.IsSigner() {
		return fault.ErrMissingRequiredSignature
	}
	return nil
}
