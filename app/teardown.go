// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"cogentcore.org/verve/events"
	"cogentcore.org/verve/layers"
	"cogentcore.org/verve/logx"
)

// Destroy tears down every subsystem and releases the runtime. If a
// tick is currently executing, destruction is deferred until the tick
// returns; otherwise it runs immediately. Destroying an already
// destroyed runtime is a no-op.
func (rt *Runtime) Destroy() {
	rt.mu.Lock()
	if rt.state == stateDestroyed {
		rt.mu.Unlock()
		return
	}
	if rt.inFrame {
		rt.state = stateDestroyPending
		rt.mu.Unlock()
		return
	}
	rt.mu.Unlock()
	rt.doDestroy()
}

// doDestroy releases every subsystem in reverse dependency order.
// Each step null-checks its subsystem, since teardown may run after a
// partial construction failure.
func (rt *Runtime) doDestroy() {
	rt.cancelPendingFrame()
	rt.fire(events.New(events.Destroy))

	for _, in := range rt.inputs {
		in.Detach()
	}
	rt.inputs = nil

	for _, sys := range rt.systems {
		sys.Destroy()
	}
	rt.systems = nil

	// clear the special-layer hook before nulling the composition so
	// that no dangling callback fires during partial teardown
	rt.onLayersChanged = nil
	if rt.comp != nil {
		if depth := rt.comp.ByID(layers.Depth); depth != nil && rt.capture != nil {
			rt.capture.Detach(depth)
		}
	}
	rt.comp = nil
	rt.capture = nil

	if rt.Assets != nil {
		rt.Assets.UnloadAll()
		rt.Assets = nil
	}
	if rt.Bundles != nil {
		rt.Bundles.Destroy()
		rt.Bundles = nil
	}
	if rt.I18n != nil {
		rt.I18n.Destroy()
		rt.I18n = nil
	}
	if rt.Scripts != nil {
		rt.Scripts.Destroy()
		rt.Scripts = nil
	}
	if rt.Scenes != nil {
		rt.Scenes.Destroy()
		rt.Scenes = nil
	}

	if rt.lightmapper != nil {
		rt.lightmapper.Destroy()
		rt.lightmapper = nil
	}
	if rt.batcher != nil {
		rt.batcher.Destroy()
		rt.batcher = nil
	}

	if rt.xr != nil {
		if err := rt.xr.End(); err != nil {
			logx.Error("app: ending immersive session", "err", err)
		}
		rt.xr.Destroy()
		rt.xr = nil
	}

	if rt.renderer != nil {
		rt.renderer.Destroy()
		rt.renderer = nil
	}
	rt.graph = nil

	var surfID string
	if rt.surface != nil {
		surfID = rt.surface.ID()
		rt.surface.Destroy()
		rt.surface = nil
	}

	rt.tickFn = nil
	rt.onTick = nil
	rt.Events.Reset()

	if rt.sound != nil {
		rt.sound.Destroy()
		rt.sound = nil
	}

	unregister(surfID, rt)
	rt.mu.Lock()
	rt.state = stateDestroyed
	rt.mu.Unlock()
	logx.Info("app: destroyed", "name", rt.Name)
}
