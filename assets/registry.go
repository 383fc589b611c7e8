// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import "slices"

// Registry is the ordered registry of assets. Insertion order is the
// load order.
type Registry struct {

	// Prefix is prepended to relative asset URLs at load time.
	Prefix string

	list []*Asset
	byID map[string]*Asset
}

// NewRegistry returns a new empty [Registry] with the given URL
// prefix.
func NewRegistry(prefix string) *Registry {
	return &Registry{Prefix: prefix, byID: map[string]*Asset{}}
}

// Add registers the given asset. An asset with a duplicate id
// replaces the previous entry in place.
func (r *Registry) Add(a *Asset) {
	if old, ok := r.byID[a.ID]; ok {
		i := slices.Index(r.list, old)
		r.list[i] = a
	} else {
		r.list = append(r.list, a)
	}
	r.byID[a.ID] = a
}

// Get returns the asset with the given id, or nil if not registered.
func (r *Registry) Get(id string) *Asset {
	return r.byID[id]
}

// List returns the registered assets in load order.
func (r *Registry) List() []*Asset {
	return r.list
}

// Preloads returns the assets flagged for preloading, in load order.
func (r *Registry) Preloads() []*Asset {
	var ps []*Asset
	for _, a := range r.list {
		if a.Preload {
			ps = append(ps, a)
		}
	}
	return ps
}

// UnloadAll unloads every registered asset and clears the registry.
func (r *Registry) UnloadAll() {
	for _, a := range r.list {
		a.Unload()
	}
	r.list = nil
	r.byID = map[string]*Asset{}
}

// LoadOrder orders assets for registration: script assets named in
// scriptOrder come first, in that order; bundle assets follow so that
// bundled files resolve before their consumers; the remainder keeps
// its original order.
func LoadOrder(as []*Asset, scriptOrder []string) []*Asset {
	ordered := make([]*Asset, 0, len(as))
	used := make(map[*Asset]bool, len(as))
	for _, id := range scriptOrder {
		for _, a := range as {
			if a.ID == id && a.Type == "script" && !used[a] {
				ordered = append(ordered, a)
				used[a] = true
			}
		}
	}
	for _, a := range as {
		if a.Type == "bundle" && !used[a] {
			ordered = append(ordered, a)
			used[a] = true
		}
	}
	for _, a := range as {
		if !used[a] {
			ordered = append(ordered, a)
		}
	}
	return ordered
}

// SceneRef registers one scene by name and url.
type SceneRef struct {
	Name string
	URL  string
}

// SceneRegistry is the ordered registry of scenes.
type SceneRegistry struct {
	list []SceneRef
}

// Add registers the given scene.
func (r *SceneRegistry) Add(name, url string) {
	r.list = append(r.list, SceneRef{Name: name, URL: url})
}

// Find returns the scene with the given name and whether it exists.
func (r *SceneRegistry) Find(name string) (SceneRef, bool) {
	for _, s := range r.list {
		if s.Name == name {
			return s, true
		}
	}
	return SceneRef{}, false
}

// List returns the registered scenes in order.
func (r *SceneRegistry) List() []SceneRef {
	return r.list
}

// Destroy clears the registry.
func (r *SceneRegistry) Destroy() {
	r.list = nil
}

// ScriptRegistry tracks loaded code libraries by URL.
type ScriptRegistry struct {
	loaded map[string]bool
}

// SetLoaded records the library at the given URL as loaded.
func (r *ScriptRegistry) SetLoaded(url string) {
	if r.loaded == nil {
		r.loaded = map[string]bool{}
	}
	r.loaded[url] = true
}

// Loaded reports whether the library at the given URL has loaded.
func (r *ScriptRegistry) Loaded(url string) bool {
	return r.loaded[url]
}

// Destroy clears the registry.
func (r *ScriptRegistry) Destroy() {
	r.loaded = nil
}

// BundleRegistry indexes bundle assets so that files inside bundles
// resolve without further network requests.
type BundleRegistry struct {
	bundles map[string]*Asset
}

// Add registers the given bundle asset.
func (r *BundleRegistry) Add(a *Asset) {
	if r.bundles == nil {
		r.bundles = map[string]*Asset{}
	}
	r.bundles[a.ID] = a
}

// Get returns the bundle asset with the given id, or nil.
func (r *BundleRegistry) Get(id string) *Asset {
	return r.bundles[id]
}

// Destroy clears the registry.
func (r *BundleRegistry) Destroy() {
	r.bundles = nil
}
