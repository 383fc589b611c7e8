// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"sort"
	"strconv"
	"sync"

	"cogentcore.org/verve/assets"
	"cogentcore.org/verve/config"
	"cogentcore.org/verve/layers"
	"cogentcore.org/verve/logx"
)

// ConfigureFromURL fetches a declarative configuration blob from the
// given URL and applies it, calling cb with nil on success or the
// error that aborted the operation. A fetch failure short-circuits;
// malformed or missing sub-sections of a fetched blob are "nothing to
// do", not errors.
func (rt *Runtime) ConfigureFromURL(url string, cb func(err error)) {
	go func() {
		b, err := config.Fetch(url)
		if err != nil {
			cb(err)
			return
		}
		rt.Configure(b, cb)
	}()
}

// Configure applies the given configuration blob: canvas properties,
// the layer composition, batch groups, localization assets, scene and
// asset registration, and finally code library loading, after which
// cb fires with the outcome. While the frame loop is running, the
// blob applies at the start of the next tick, since the composition
// and canvas state are only mutated from the tick thread; otherwise
// it applies synchronously.
func (rt *Runtime) Configure(b *config.Blob, cb func(err error)) {
	rt.runOnTick(func() { rt.configure(b, cb) })
}

func (rt *Runtime) configure(b *config.Blob, cb func(err error)) {
	props := &b.ApplicationProperties
	rt.applyProps(props)
	if len(props.Layers) > 0 && len(props.LayerOrder) > 0 {
		rt.SetLayers(buildComposition(props))
	}
	if len(props.BatchGroups) > 0 && rt.batcher != nil {
		for _, g := range props.BatchGroups {
			rt.batcher.AddGroup(g)
		}
	}
	if len(props.I18nAssets) > 0 {
		rt.I18n.AddAssets(props.I18nAssets)
	}
	rt.registerScenes(b.Scenes)
	rt.registerAssets(b.Assets, props.Scripts)
	rt.loadLibraries(props.Libraries, cb)
}

func (rt *Runtime) applyProps(props *config.Properties) {
	if props.FillMode != "" {
		rt.fillMode = props.FillMode
	}
	if props.ResolutionMode != "" {
		rt.resolutionMode = props.ResolutionMode
	}
	if props.Width > 0 {
		rt.width = props.Width
	}
	if props.Height > 0 {
		rt.height = props.Height
	}
	rt.useDPR = props.UseDevicePixelRatio
	rt.resizeCanvas()
	if props.MaxAssetRetries > 0 {
		rt.loader.EnableRetry(props.MaxAssetRetries)
	}
}

// buildComposition constructs a layer composition from configured
// layer definitions and the ordered sub-layer list. The well-known
// depth layer starts disabled; it is enabled lazily by reference
// counting.
func buildComposition(props *config.Properties) *layers.Composition {
	byKey := make(map[string]*layers.Layer, len(props.Layers))
	for key, def := range props.Layers {
		id, err := strconv.Atoi(key)
		if err != nil {
			logx.Warn("app: non-numeric layer id in config", "id", key)
			continue
		}
		l := layers.NewLayer(id, def.Name)
		l.OpaqueSort = layers.SortMode(def.OpaqueSortMode)
		l.TransparentSort = layers.SortMode(def.TransparentSortMode)
		if id == layers.Depth {
			l.Enabled = false
		}
		byKey[key] = l
	}
	c := layers.NewComposition("config")
	for _, o := range props.LayerOrder {
		l := byKey[o.Layer]
		if l == nil {
			logx.Warn("app: layer order names unknown layer", "id", o.Layer)
			continue
		}
		c.Push(l, o.Transparent, o.Enabled)
	}
	return c
}

// ApplySceneSettings applies render settings from a scene blob to the
// renderer, if it accepts them.
func (rt *Runtime) ApplySceneSettings(settings map[string]any) {
	if rs, ok := rt.renderer.(RenderSettings); ok {
		rs.ApplySettings(settings)
	}
}

func (rt *Runtime) registerScenes(scenes []config.SceneRef) {
	for _, s := range scenes {
		rt.Scenes.Add(s.Name, s.URL)
	}
}

// registerAssets instantiates descriptors for every manifest entry
// and registers them in load order: ordered script assets first, then
// bundles, then the remainder. Registration is best-effort and never
// fails the overall configure operation.
func (rt *Runtime) registerAssets(defs map[string]config.AssetDef, scriptOrder []string) {
	ids := make([]string, 0, len(defs))
	for id := range defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	list := make([]*assets.Asset, 0, len(defs))
	for _, id := range ids {
		def := defs[id]
		a := &assets.Asset{
			ID:      id,
			Name:    def.Name,
			Type:    def.Type,
			Preload: def.Preload,
			Data:    def.Data,
			I18n:    def.I18n,
		}
		if def.File != nil {
			a.URL = def.File.URL
		}
		list = append(list, a)
	}
	for _, a := range assets.LoadOrder(list, scriptOrder) {
		rt.Assets.Add(a)
		if a.Type == "bundle" {
			rt.Bundles.Add(a)
		}
	}
}

// loadLibraries loads the given code library URLs, tracked by a
// simple countdown. The first error fires cb immediately without
// waiting for the rest; when all succeed, the librariesloaded
// bootstrapping runs before cb fires with nil. Zero URLs is immediate
// synchronous success.
func (rt *Runtime) loadLibraries(urls []string, cb func(err error)) {
	if len(urls) == 0 {
		rt.setLibrariesLoaded()
		cb(nil)
		return
	}
	var mu sync.Mutex
	remaining := len(urls)
	failed := false
	for _, u := range urls {
		url := u
		if rt.scriptPrefix != "" && !absoluteURL(url) {
			url = joinURL(rt.scriptPrefix, url)
		}
		rt.loader.Load(url, "script", func(err error, result any) {
			mu.Lock()
			if failed {
				mu.Unlock()
				return
			}
			if err != nil {
				failed = true
				mu.Unlock()
				cb(err)
				return
			}
			rt.Scripts.SetLoaded(url)
			remaining--
			last := remaining == 0
			mu.Unlock()
			if last {
				rt.setLibrariesLoaded()
				cb(nil)
			}
		})
	}
}
