// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/recordd/fault"
)

const (
	minimumPasswordLength = 8
)

var passwordConsole *terminal.Terminal

func getTerminal() (*terminal.Terminal, int, *terminal.State, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := terminal.MakeRaw(fd)
	if nil != err {
		return nil, 0, nil, err
	}

	if nil != passwordConsole {
		return passwordConsole, fd, oldState, nil
	}

	tmpIO, err := os.OpenFile("/dev/tty", os.O_RDWR, os.ModePerm)
	if nil != err {
		terminal.Restore(fd, oldState)
		return nil, 0, nil, err
	}

	passwordConsole = terminal.NewTerminal(tmpIO, "record-cli: ")

	return passwordConsole, fd, oldState, nil
}

func readPassword(prompt string) (string, error) {
	console, fd, state, err := getTerminal()
	if nil != err {
		return "", err
	}
	defer terminal.Restore(fd, state)

	return console.ReadPassword(prompt)
}

// prompt twice for a password to protect a new identity
func promptNewPassword() (string, error) {
	password, err := readPassword(fmt.Sprintf("Set identity password (length >= %d): ", minimumPasswordLength))
	if nil != err {
		return "", err
	}

	if len(password) < minimumPasswordLength {
		return "", fault.ErrInvalidPasswordLength
	}

	verifyPassword, err := readPassword("Verify password: ")
	if nil != err {
		return "", err
	}

	if password != verifyPassword {
		return "", fault.ErrPasswordMismatch
	}

	return password, nil
}

// prompt once for the password of an existing identity
func promptPassword(name string) (string, error) {
	return readPassword(fmt.Sprintf("password for %q: ", name))
}
