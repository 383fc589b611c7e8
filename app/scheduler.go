// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"github.com/chewxy/math32"

	"cogentcore.org/verve/events"
	"cogentcore.org/verve/logx"
)

// Start runs the one-time start sequence and begins the frame loop:
// it fires the start event, runs the libraries-loaded bootstrapping
// if configuration did not already, drives the component systems
// through their initialization phases with matching lifecycle events
// on the scene root, and performs the first tick. Start must be
// called at most once; calling it again is a programmer error and
// panics.
func (rt *Runtime) Start() {
	if rt.started {
		panic("app.Runtime.Start: already started")
	}
	rt.started = true
	rt.mu.Lock()
	rt.state = stateRunning
	rt.mu.Unlock()

	rt.fire(events.New(events.Start))
	if !rt.librariesLoaded {
		rt.setLibrariesLoaded()
	}

	for _, sys := range rt.systems {
		sys.Initialize()
	}
	if rt.root != nil {
		rt.root.Fire(events.Initialize)
	}
	rt.fire(events.New(events.Initialize))

	for _, sys := range rt.systems {
		sys.PostInitialize()
	}
	if rt.root != nil {
		rt.root.Fire(events.PostInitialize)
	}
	rt.fire(events.New(events.PostInitialize))

	for _, sys := range rt.systems {
		sys.PostPostInitialize()
	}

	logx.Info("app: started", "name", rt.Name)
	rt.tick(rt.platform.Now())
}

// tick is one full iteration of the frame loop, invoked by the host
// frame callback with the host timestamp in milliseconds.
func (rt *Runtime) tick(now float64) {
	if rt.surface == nil {
		// already destroyed
		return
	}
	rt.mu.Lock()
	if rt.state == stateDestroyed {
		rt.mu.Unlock()
		return
	}
	rt.inFrame = true
	rt.mu.Unlock()

	// a stale pending request would re-enter the loop concurrently
	rt.cancelPendingFrame()

	// work queued from other goroutines applies at tick start
	rt.mu.Lock()
	fns := rt.onTick
	rt.onTick = nil
	rt.mu.Unlock()
	for _, fun := range fns {
		fun()
	}

	if rt.prevTime == 0 {
		rt.prevTime = now
	}
	ms := now - rt.prevTime
	if ms < 0 {
		ms = 0
	}
	dt := math32.Min(math32.Max(float32(ms)/1000, 0), rt.MaxDeltaTime) * rt.TimeScale
	rt.prevTime = now
	rt.time += ms / 1000
	rt.dt = dt

	// request the next frame before doing this frame's work, so a
	// slow frame does not delay scheduling the next one
	xrActive := rt.xr != nil && rt.xr.Active()
	if xrActive {
		rt.pendingFrame = rt.xr.RequestFrame(rt.tickFn)
		rt.pendingXR = true
		rt.surface.SetDefaultFramebuffer(rt.xr.Target())
	} else {
		rt.pendingFrame = rt.platform.RequestFrame(rt.tickFn)
		rt.pendingXR = false
		rt.surface.SetDefaultFramebuffer(nil)
	}

	// cheap per-frame counters always reset, even on context loss
	if rt.renderer != nil {
		rt.renderer.ResetCounters()
	}
	if rt.surface.ContextLost() {
		rt.endFrame()
		return
	}

	rt.fire(events.NewUpdate(events.FrameUpdate, dt))

	shouldRender := rt.AutoRender || rt.RenderNextFrame
	if xrActive {
		// an immersive session decides its own frame rendering
		shouldRender = rt.xr.Update()
	}

	rt.Update(dt)
	rt.frame++

	if shouldRender && rt.renderer != nil {
		rt.fire(events.NewUpdate(events.FrameRender, dt))
		rt.resizeCanvas()
		rt.surface.FrameStart()
		rt.Render()
		rt.surface.FrameEnd()
		rt.RenderNextFrame = false
		rt.fire(events.NewFrameEnd(now, rt))
	} else {
		rt.skipRenderCounter++
	}

	rt.endFrame()
}

// endFrame clears the in-frame guard and runs a destroy that was
// deferred while the tick was executing.
func (rt *Runtime) endFrame() {
	rt.mu.Lock()
	rt.inFrame = false
	deferred := rt.state == stateDestroyPending
	rt.mu.Unlock()
	if deferred {
		rt.doDestroy()
	}
}

func (rt *Runtime) cancelPendingFrame() {
	if rt.pendingFrame == 0 {
		return
	}
	if rt.pendingXR && rt.xr != nil {
		rt.xr.CancelFrame(rt.pendingFrame)
	} else {
		rt.platform.CancelFrame(rt.pendingFrame)
	}
	rt.pendingFrame = 0
}

// Update runs the update phase for one tick: component system update,
// animation, and post-update, the generic update event, then input
// device polling.
func (rt *Runtime) Update(dt float32) {
	for _, sys := range rt.systems {
		sys.Update(dt)
	}
	for _, sys := range rt.systems {
		sys.AnimationUpdate(dt)
	}
	for _, sys := range rt.systems {
		sys.PostUpdate(dt)
	}
	rt.fire(events.NewUpdate(events.Update, dt))
	for _, in := range rt.inputs {
		in.Poll()
	}
}

// Render runs the full render phase for one frame: the prerender
// event, root transform synchronization, batch consolidation, frame
// graph rebuild and execution against the current layer composition,
// and the postrender event.
func (rt *Runtime) Render() {
	rt.fire(events.New(events.PreRender))
	if rt.root != nil {
		rt.root.SyncHierarchy()
	}
	if rt.batcher != nil {
		rt.batcher.UpdateAll()
	}
	rt.skipRenderCounter = 0
	rt.renderer.BuildFrameGraph(rt.graph, rt.comp)
	rt.renderer.Render(rt.surface)
	rt.fire(events.New(events.PostRender))
}

// setLibrariesLoaded runs the libraries-loaded bootstrapping: systems
// implementing [LibrariesLoadedHandler] are notified, then the
// librariesloaded event fires.
func (rt *Runtime) setLibrariesLoaded() {
	rt.librariesLoaded = true
	for _, sys := range rt.systems {
		if h, ok := sys.(LibrariesLoadedHandler); ok {
			h.LibrariesLoaded()
		}
	}
	rt.fire(events.New(events.LibrariesLoaded))
}
