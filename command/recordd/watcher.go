// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

// events are dropped if the reader has not caught up
const watcherChannelSize = 1

type configWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

// watch the configuration file, the running daemon does not reload
// it so any event only produces a warning
func newConfigWatcher(fileName string, log *logger.L) (*configWatcher, error) {

	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	return &configWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, watcherChannelSize),
		remove:   make(chan struct{}, watcherChannelSize),
	}, nil
}

// start delivering events, the directory is watched so that editors
// which replace the file are still seen
func (w *configWatcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s", err)
		return err
	}

	go w.loop()
	return nil
}

func (w *configWatcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			w.log.Debugf("file event: %v", event)

			switch {
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				sendEvent(w.remove)
			case event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Chmod) != 0:
				sendEvent(w.change)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

// Stop - release the underlying watcher, also ends the event loop
func (w *configWatcher) Stop() {
	w.watcher.Close()
}

func sendEvent(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
