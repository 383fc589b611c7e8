// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import "sync"

// The runtime registry tracks every live [Runtime] by its surface id,
// plus the "current" runtime for ambient lookup. This replaces a bare
// global with an explicit registry so that multi-surface hosts can
// resolve a runtime by id and single-surface hosts can fall back to
// the current one.
var (
	registryMu sync.Mutex
	runtimes   = map[string]*Runtime{}
	current    *Runtime
)

// RuntimeFor returns the runtime registered for the given surface id.
// An empty id returns the current runtime. Returns nil if no such
// runtime exists.
func RuntimeFor(id string) *Runtime {
	registryMu.Lock()
	defer registryMu.Unlock()
	if id == "" {
		return current
	}
	return runtimes[id]
}

// Current returns the most recently created live runtime, or nil.
func Current() *Runtime {
	registryMu.Lock()
	defer registryMu.Unlock()
	return current
}

func register(id string, rt *Runtime) {
	registryMu.Lock()
	defer registryMu.Unlock()
	runtimes[id] = rt
	current = rt
}

func unregister(id string, rt *Runtime) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(runtimes, id)
	if current == rt {
		current = nil
	}
}
