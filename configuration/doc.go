// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// the file is an ordinary Lua chunk that must return a table, so base
// Lua is available e.g. os.getenv to pick up environment supplied
// items or string functions to build paths.  arg[0] holds the name of
// the file being run.
package configuration
