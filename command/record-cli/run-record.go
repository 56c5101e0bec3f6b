// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordd/account"
	"github.com/bitmark-inc/recordd/instruction"
)

// initialize needs no signature, the authority is only recorded
func runInitialize(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	program, err := programID(c)
	if nil != err {
		return err
	}

	recordKey, err := checkRecord(c.String("record"), m.config)
	if nil != err {
		return err
	}

	authority, err := checkOptionalAccount(c.String("authority"), selectedIdentity(c, m), m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "record: %s\n", recordKey)
		fmt.Fprintf(m.e, "authority: %s\n", authority)
	}

	return submit(m, nil, instruction.BuildInitialize(program, recordKey, authority))
}

func runWrite(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	program, err := programID(c)
	if nil != err {
		return err
	}

	recordKey, err := checkRecord(c.String("record"), m.config)
	if nil != err {
		return err
	}

	data, err := checkData(c.String("hex"), c.String("text"))
	if nil != err {
		return err
	}
	offset := c.Uint64("offset")

	_, authority, err := unlockIdentity(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "record: %s\n", recordKey)
		fmt.Fprintf(m.e, "offset: %d\n", offset)
		fmt.Fprintf(m.e, "data: %x\n", data)
	}

	return submit(m, []*account.PrivateKey{authority}, instruction.BuildWrite(program, recordKey, authority.Key(), offset, data))
}

func runSetAuthority(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	program, err := programID(c)
	if nil != err {
		return err
	}

	recordKey, err := checkRecord(c.String("record"), m.config)
	if nil != err {
		return err
	}

	newAuthority, err := checkAccount(c.String("new-authority"), m.config)
	if nil != err {
		return err
	}

	_, authority, err := unlockIdentity(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "record: %s\n", recordKey)
		fmt.Fprintf(m.e, "new authority: %s\n", newAuthority)
	}

	return submit(m, []*account.PrivateKey{authority}, instruction.BuildSetAuthority(program, recordKey, authority.Key(), newAuthority))
}

func runClose(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	program, err := programID(c)
	if nil != err {
		return err
	}

	recordKey, err := checkRecord(c.String("record"), m.config)
	if nil != err {
		return err
	}

	name, authority, err := unlockIdentity(c, m)
	if nil != err {
		return err
	}

	destination, err := checkOptionalAccount(c.String("destination"), name, m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "record: %s\n", recordKey)
		fmt.Fprintf(m.e, "destination: %s\n", destination)
	}

	return submit(m, []*account.PrivateKey{authority}, instruction.BuildCloseAccount(program, recordKey, authority.Key(), destination))
}

func runReallocate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	program, err := programID(c)
	if nil != err {
		return err
	}

	recordKey, err := checkRecord(c.String("record"), m.config)
	if nil != err {
		return err
	}

	if !c.IsSet("length") {
		return ErrRequiredLength
	}
	length := c.Uint64("length")

	_, authority, err := unlockIdentity(c, m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "record: %s\n", recordKey)
		fmt.Fprintf(m.e, "length: %d\n", length)
	}

	return submit(m, []*account.PrivateKey{authority}, instruction.BuildReallocate(program, recordKey, authority.Key(), length))
}
