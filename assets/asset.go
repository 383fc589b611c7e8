// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets provides asset descriptors, the asset registries,
// and the resource loading contract for the verve runtime.
package assets

import (
	"encoding/json"
	"sync"
)

// Asset describes one loadable resource. The runtime reads and
// subscribes to assets; it does not own their backing resources.
type Asset struct {

	// ID is the registry identifier of the asset.
	ID string

	// Name is the display name of the asset.
	Name string

	// Type is the asset kind ("script", "bundle", "texture", ...).
	Type string

	// URL locates the asset's file; empty for data-only assets.
	URL string

	// Preload loads the asset eagerly before the application starts.
	Preload bool

	// Loaded reports whether the asset's resource has been loaded.
	Loaded bool

	// Resource is the loaded resource, once available.
	Resource any

	// Data is asset-type-specific inline data, passed through opaquely.
	Data json.RawMessage

	// I18n maps locale codes to the ids of localized variants.
	I18n map[string]string

	mu      sync.Mutex
	loadFns []func(a *Asset)
	errFns  []func(a *Asset, err error)
}

// OnceLoad registers a one-shot handler called when the asset finishes
// loading. If the asset is already loaded, the handler runs
// immediately.
func (a *Asset) OnceLoad(fun func(a *Asset)) {
	a.mu.Lock()
	if a.Loaded {
		a.mu.Unlock()
		fun(a)
		return
	}
	a.loadFns = append(a.loadFns, fun)
	a.mu.Unlock()
}

// OnceError registers a one-shot handler called if the asset's load
// fails.
func (a *Asset) OnceError(fun func(a *Asset, err error)) {
	a.mu.Lock()
	a.errFns = append(a.errFns, fun)
	a.mu.Unlock()
}

// FireLoad marks the asset loaded with the given resource and runs
// the pending load handlers, discarding all one-shot handlers.
func (a *Asset) FireLoad(resource any) {
	a.mu.Lock()
	a.Loaded = true
	a.Resource = resource
	fns := a.loadFns
	a.loadFns = nil
	a.errFns = nil
	a.mu.Unlock()
	for _, fun := range fns {
		fun(a)
	}
}

// FireError runs the pending error handlers with the given error,
// discarding all one-shot handlers. The asset stays unloaded.
func (a *Asset) FireError(err error) {
	a.mu.Lock()
	fns := a.errFns
	a.loadFns = nil
	a.errFns = nil
	a.mu.Unlock()
	for _, fun := range fns {
		fun(a, err)
	}
}

// Unload discards the loaded resource and pending handlers.
func (a *Asset) Unload() {
	a.mu.Lock()
	a.Loaded = false
	a.Resource = nil
	a.loadFns = nil
	a.errFns = nil
	a.mu.Unlock()
}
