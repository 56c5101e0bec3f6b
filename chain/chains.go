// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the ledgers a node or client can be attached to
package chain

import (
	"strings"
)

// names of all chains
const (
	Live    = "live"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Live, Testing, Local:
		return true
	default:
		return false
	}
}

// Normalise - lower case form of a chain name, false if not a chain
func Normalise(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	return name, Valid(name)
}

// DatabaseName - default database file for a chain
func DatabaseName(name string) string {
	return name + "-record"
}
