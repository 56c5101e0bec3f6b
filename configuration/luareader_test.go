// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/configuration"
	"github.com/bitmark-inc/recordd/fault"
)

type databaseType struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Chain         string            `gluamapper:"chain"`
	Connections   int               `gluamapper:"maximum_connections"`
	Listen        []string          `gluamapper:"listen"`
	Database      databaseType      `gluamapper:"database"`
	Levels        map[string]string `gluamapper:"levels"`
	Unset         string            `gluamapper:"unset"`
}

const testFile = `
local M = {}

M.data_directory = arg[0]:match("(.*/)")
M.chain = "local"
M.maximum_connections = 5
M.listen = { "127.0.0.1:2130", "[::1]:2130" }
M.database = {
    directory = "data",
    name = string.format("%s.leveldb", M.chain),
}
M.levels = {
    DEFAULT = "info",
    ledger = "debug",
}

return M
`

func writeFile(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(content), 0600)
	if nil != err {
		t.Fatalf("write file error: %s", err)
	}
	return fileName, func() { os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeFile(t, testFile)
	defer cleanup()

	c := testConfiguration{
		Unset: "default",
	}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Nil(t, err, "parse")

	assert.Equal(t, filepath.Dir(fileName)+"/", c.DataDirectory, "data directory")
	assert.Equal(t, "local", c.Chain, "chain")
	assert.Equal(t, 5, c.Connections, "connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.Listen, "listen")
	assert.Equal(t, databaseType{Directory: "data", Name: "local.leveldb"}, c.Database, "database")
	assert.Equal(t, map[string]string{"DEFAULT": "info", "ledger": "debug"}, c.Levels, "levels")
	assert.Equal(t, "default", c.Unset, "default overwritten")
}

func TestParseNotStruct(t *testing.T) {
	fileName, cleanup := writeFile(t, testFile)
	defer cleanup()

	c := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, c)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non pointer")

	s := "string"
	err = configuration.ParseConfigurationFile(fileName, &s)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non struct")
}

func TestParseNoTable(t *testing.T) {
	fileName, cleanup := writeFile(t, "return 42\n")
	defer cleanup()

	c := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "number returned")
}

func TestParseSyntaxError(t *testing.T) {
	fileName, cleanup := writeFile(t, "return {\n")
	defer cleanup()

	c := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &c)
	assert.NotNil(t, err, "syntax error accepted")
}
