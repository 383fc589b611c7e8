// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/verve/assets"
	"cogentcore.org/verve/events"
)

func TestPreloadEmpty(t *testing.T) {
	f := newFixture(nil)
	var fired []events.Types
	for _, typ := range []events.Types{events.PreloadStart, events.PreloadEnd} {
		typ := typ
		f.rt.Events.Add(typ, func(ev events.Event) { fired = append(fired, typ) })
	}
	done := 0
	f.rt.Preload(func() { done++ })
	// an empty preload set completes synchronously
	assert.Equal(t, 1, done)
	assert.Equal(t, []events.Types{events.PreloadStart, events.PreloadEnd}, fired)
}

func TestPreloadMixedOutcomes(t *testing.T) {
	f := newFixture(nil)
	f.loader.auto = false
	f.rt.Assets.Add(&assets.Asset{ID: "1", URL: "a.png", Type: "texture", Preload: true})
	f.rt.Assets.Add(&assets.Asset{ID: "2", URL: "b.png", Type: "texture", Preload: true})
	f.rt.Assets.Add(&assets.Asset{ID: "3", URL: "c.png", Type: "texture", Preload: true})
	f.rt.Assets.Add(&assets.Asset{ID: "4", URL: "d.png", Type: "texture"}) // not preload

	var progress [][2]int
	f.rt.Events.Add(events.PreloadProgress, func(ev events.Event) {
		pe := ev.(*events.ProgressEvent)
		progress = append(progress, [2]int{pe.Completed, pe.Total})
	})
	done := 0
	f.rt.Preload(func() { done++ })
	assert.Equal(t, 0, done)
	require.Len(t, f.loader.loads, 3)

	f.loader.fire(0, nil, "res0")
	assert.Equal(t, 0, done)
	f.loader.fire(1, errLoad, nil) // a failed asset still counts toward completion
	assert.Equal(t, 0, done)
	f.loader.fire(2, nil, "res2")
	assert.Equal(t, 1, done)

	assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, progress)
	assert.True(t, f.rt.Assets.Get("1").Loaded)
	assert.False(t, f.rt.Assets.Get("2").Loaded)
}

func TestPreloadAlreadyLoaded(t *testing.T) {
	f := newFixture(nil)
	f.loader.auto = false
	f.rt.Assets.Add(&assets.Asset{ID: "1", Preload: true, Loaded: true})
	f.rt.Assets.Add(&assets.Asset{ID: "2", Preload: true, Loaded: true})
	done := 0
	f.rt.Preload(func() { done++ })
	assert.Equal(t, 1, done)
	assert.Empty(t, f.loader.loads)
}

func TestPreloadCompletesOnce(t *testing.T) {
	f := newFixture(nil)
	f.loader.auto = false
	a := &assets.Asset{ID: "1", URL: "a.png", Preload: true}
	f.rt.Assets.Add(a)
	done := 0
	f.rt.Preload(func() { done++ })
	f.loader.fire(0, nil, "res")
	// a stray duplicate completion signal must not re-fire
	a.FireLoad("res-again")
	assert.Equal(t, 1, done)
}

func TestPreloadDestroyedGuard(t *testing.T) {
	f := newFixture(nil)
	f.loader.auto = false
	f.rt.Assets.Add(&assets.Asset{ID: "1", URL: "a.png", Preload: true})
	done := 0
	f.rt.Preload(func() { done++ })
	f.rt.Destroy()
	f.loader.fire(0, nil, "res")
	assert.Equal(t, 0, done)
}

func TestLoadAssetPrefix(t *testing.T) {
	f := newFixture(func(cfg *Config) {
		cfg.AssetPrefix = "https://cdn.example.com/app/"
	})
	f.loader.auto = false
	f.rt.LoadAsset(&assets.Asset{ID: "1", URL: "tex/a.png", Type: "texture"})
	f.rt.LoadAsset(&assets.Asset{ID: "2", URL: "https://other.example.com/b.png", Type: "texture"})
	require.Len(t, f.loader.loads, 2)
	assert.Equal(t, "https://cdn.example.com/app/tex/a.png", f.loader.loads[0].url)
	assert.Equal(t, "https://other.example.com/b.png", f.loader.loads[1].url)
}
