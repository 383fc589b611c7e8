// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"strings"
	"sync"

	"cogentcore.org/verve/assets"
	"cogentcore.org/verve/base/progress"
	"cogentcore.org/verve/events"
	"cogentcore.org/verve/logx"
)

// Preload bulk-loads every asset flagged for preloading and calls
// done exactly once when every such asset has either loaded or
// failed. A failed asset counts toward completion: one bad asset must
// not block the rest from completing the aggregate signal. Progress
// events fire after every per-asset outcome. An empty preload set
// completes synchronously, before Preload returns.
func (rt *Runtime) Preload(done func()) {
	rt.fire(events.New(events.PreloadStart))
	list := rt.Assets.Preloads()
	tr := progress.NewTracker(len(list))

	var mu sync.Mutex
	fired := false

	finish := func() {
		mu.Lock()
		if !tr.Done() || fired {
			mu.Unlock()
			return
		}
		// completion must not run against a destroyed runtime
		if rt.surface == nil {
			mu.Unlock()
			return
		}
		fired = true
		mu.Unlock()
		rt.fire(events.New(events.PreloadEnd))
		done()
	}
	advance := func() {
		mu.Lock()
		tr.Advance()
		completed, total := tr.Completed, tr.Total
		mu.Unlock()
		rt.fire(events.NewProgress(completed, total))
	}

	for _, a := range list {
		if a.Loaded {
			advance()
			continue
		}
		a.OnceLoad(func(a *assets.Asset) {
			advance()
			finish()
		})
		a.OnceError(func(a *assets.Asset, err error) {
			logx.Error("app: preload failed", "asset", a.ID, "url", a.URL, "err", err)
			advance()
			finish()
		})
		rt.LoadAsset(a)
	}
	finish()
}

// LoadAsset issues the load request for the given asset through the
// resource loader, firing the asset's load or error handlers when it
// completes.
func (rt *Runtime) LoadAsset(a *assets.Asset) {
	url := a.URL
	if rt.Assets.Prefix != "" && !absoluteURL(url) {
		url = joinURL(rt.Assets.Prefix, url)
	}
	rt.loader.Load(url, a.Type, func(err error, result any) {
		if err != nil {
			a.FireError(err)
			return
		}
		a.FireLoad(result)
	})
}

// absoluteURL reports whether the given URL is absolute and should
// not receive a path prefix.
func absoluteURL(url string) bool {
	return strings.Contains(url, "://") || strings.HasPrefix(url, "/")
}

func joinURL(prefix, url string) string {
	return strings.TrimSuffix(prefix, "/") + "/" + url
}
