// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/command/record-cli/configuration"
	"github.com/bitmark-inc/recordd/fault"
	"github.com/bitmark-inc/recordd/merkle"
)

var (
	ErrIncompatibleOptions  = fault.InvalidError("incompatible options")
	ErrRequiredAccount      = fault.InvalidError("account is required")
	ErrRequiredBalance      = fault.InvalidError("balance is required")
	ErrRequiredConnect      = fault.InvalidError("connect is required")
	ErrRequiredData         = fault.InvalidError("data is required")
	ErrRequiredDescription  = fault.InvalidError("description is required")
	ErrRequiredIdentity     = fault.InvalidError("identity is required")
	ErrRequiredLength       = fault.InvalidError("length is required")
	ErrRequiredRecord       = fault.InvalidError("record is required")
	ErrRequiredTransferTxId = fault.InvalidError("transaction id is required")
)

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}

	return name, nil
}

// connect is required
func checkConnect(connect string) ([]string, error) {
	connections := []string{}
	for _, s := range strings.Split(connect, ",") {
		s = strings.TrimSpace(s)
		if "" != s {
			connections = append(connections, s)
		}
	}
	if 0 == len(connections) {
		return nil, ErrRequiredConnect
	}

	return connections, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}

	return description, nil
}

// a blank seed is replaced by a new random one
func checkSeed(seed string, testnet bool) (string, error) {
	if "" == seed {
		return account.NewBase58Seed(testnet)
	}

	_, test, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return "", err
	}
	if test != testnet {
		return "", fault.ErrInvalidSeedHeader
	}
	return seed, nil
}

// an identity name from the configuration or a base58 account
func checkAccount(name string, config *configuration.Configuration) (account.Key, error) {
	if "" == name {
		return account.Key{}, ErrRequiredAccount
	}

	if nil != config {
		if k, err := config.Key(name); nil == err {
			return k, nil
		}
	}
	return account.KeyFromBase58(name)
}

// same as checkAccount but blank selects a default
func checkOptionalAccount(name string, defaultName string, config *configuration.Configuration) (account.Key, error) {
	if "" == name {
		name = defaultName
	}
	return checkAccount(name, config)
}

// record key is required
func checkRecord(name string, config *configuration.Configuration) (account.Key, error) {
	if "" == name {
		return account.Key{}, ErrRequiredRecord
	}
	return checkAccount(name, config)
}

// exactly one of hex or text
func checkData(hexData string, text string) ([]byte, error) {
	switch {
	case "" != hexData && "" != text:
		return nil, ErrIncompatibleOptions
	case "" != hexData:
		return hex.DecodeString(hexData)
	case "" != text:
		return []byte(text), nil
	default:
		return nil, ErrRequiredData
	}
}

// transaction id is required
func checkTxId(txId string) (merkle.Digest, error) {
	var id merkle.Digest
	if "" == txId {
		return id, ErrRequiredTransferTxId
	}
	err := id.UnmarshalText([]byte(txId))
	return id, err
}

// check if file exists, true if it is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}
