// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"log/slog"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// configWatcher reports modifications of the config file. The watcher
// goroutine only signals; the reload itself happens on the main loop.
type configWatcher struct {
	watcher *fsnotify.Watcher
	path    string

	// changed holds at most one pending notification.
	changed chan struct{}
	done    chan struct{}
}

// watchConfig starts watching the file at path. The parent directory is
// watched, so that editors which save by replacing the file are seen too.
func watchConfig(path string) (*configWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Log(err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, errors.Log(err)
	}
	cw := &configWatcher{
		watcher: watcher,
		path:    abs,
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, errors.Log(err)
	}
	go cw.run()
	return cw, nil
}

func (cw *configWatcher) run() {
	defer close(cw.done)
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			select {
			case cw.changed <- struct{}{}:
			default:
			}
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("system.configWatcher", "path", cw.path, "err", err)
		}
	}
}

// Changed returns whether the file was modified since the last call.
func (cw *configWatcher) Changed() bool {
	select {
	case <-cw.changed:
		return true
	default:
		return false
	}
}

// Close stops watching and waits for the watcher goroutine to exit.
func (cw *configWatcher) Close() {
	errors.Log(cw.watcher.Close())
	<-cw.done
}
