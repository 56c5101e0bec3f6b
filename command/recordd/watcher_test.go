// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordd/fixtures"
)

const (
	waitForEvent = 2 * time.Second
)

func TestConfigWatcher(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, fileName, teardown := writeConfiguration(t, "return {}")
	defer teardown()

	w, err := newConfigWatcher(fileName, logger.New(fixtures.LogCategory))
	assert.Nil(t, err, "new watcher")
	defer w.Stop()

	err = w.Start()
	assert.Nil(t, err, "start")

	// other files in the directory are ignored
	err = ioutil.WriteFile(filepath.Join(dir, "other.conf"), []byte("return {}"), 0600)
	assert.Nil(t, err, "write other")

	select {
	case <-w.change:
		t.Error("change event for a different file")
	case <-time.After(100 * time.Millisecond):
	}

	err = ioutil.WriteFile(fileName, []byte("return { chain = \"local\" }"), 0600)
	assert.Nil(t, err, "rewrite")

	select {
	case <-w.change:
	case <-time.After(waitForEvent):
		t.Error("no change event")
	}

	err = os.Remove(fileName)
	assert.Nil(t, err, "remove")

	select {
	case <-w.remove:
	case <-time.After(waitForEvent):
		t.Error("no remove event")
	}
}

func TestConfigWatcherMissingFile(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, err := newConfigWatcher("/no/such/recordd.conf", logger.New(fixtures.LogCategory))
	assert.NotNil(t, err, "missing file")
}

func TestSendEventDoesNotBlock(t *testing.T) {
	ch := make(chan struct{}, watcherChannelSize)
	sendEvent(ch)
	sendEvent(ch)
	assert.Equal(t, watcherChannelSize, len(ch), "extra events dropped")
}
