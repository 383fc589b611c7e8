// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"github.com/fsnotify/fsnotify"

	"cogentcore.org/verve/logx"
)

// Watcher watches a local configuration file and reports rewrites,
// for live re-ingestion during development.
type Watcher struct {
	filename string
	watcher  *fsnotify.Watcher
	done     chan struct{}
}

// Watch starts watching the given configuration file. Every time the
// file is written, it is re-read and passed to fun; read and parse
// errors are logged and skipped. Call [Watcher.Close] to stop.
func Watch(filename string, fun func(b *Blob)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filename); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{filename: filename, watcher: fw, done: make(chan struct{})}
	go w.run(fun)
	return w, nil
}

func (w *Watcher) run(fun func(b *Blob)) {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			b, err := Open(w.filename)
			if err != nil {
				logx.Error("config: reload failed", "file", w.filename, "err", err)
				continue
			}
			fun(b)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logx.Error("config: watch error", "file", w.filename, "err", err)
		}
	}
}

// Close stops watching the file.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
