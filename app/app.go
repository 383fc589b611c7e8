// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app provides the application lifecycle and frame scheduling
// core of the verve runtime. A [Runtime] owns the per-surface runtime
// state, constructs the rendering subsystems in dependency order,
// ingests declarative configuration, coordinates asset preloading,
// and drives the per-frame update/render cycle until it is destroyed.
package app

import (
	"sync"

	"cogentcore.org/verve/assets"
	"cogentcore.org/verve/events"
	"cogentcore.org/verve/layers"
)

// lifecycleState is the runtime lifecycle state machine. Destruction
// requested during a tick is deferred to the end of that tick.
type lifecycleState int32

const (
	// stateIdle is the state after construction, before [Runtime.Start].
	stateIdle lifecycleState = iota

	// stateRunning is the steady state with the tick loop active.
	stateRunning

	// stateDestroyPending means destruction was requested while a
	// tick was executing and runs when the tick returns.
	stateDestroyPending

	// stateDestroyed is terminal.
	stateDestroyed
)

// Runtime is one application runtime, bound to one graphics surface.
// Create with [New], configure with [Runtime.Configure] or
// [Runtime.ConfigureFromURL], preload with [Runtime.Preload], and run
// with [Runtime.Start].
type Runtime struct {

	// Name is the name of the application.
	Name string

	// Events is the runtime's lifecycle event bus.
	Events events.Listeners

	// Assets is the asset registry.
	Assets *assets.Registry

	// Scenes is the scene registry.
	Scenes *assets.SceneRegistry

	// Scripts tracks loaded code libraries.
	Scripts *assets.ScriptRegistry

	// Bundles indexes bundle assets.
	Bundles *assets.BundleRegistry

	// I18n is the localization manager.
	I18n *I18n

	// TimeScale scales the delta time passed to the update phase.
	// Default is 1.
	TimeScale float32

	// MaxDeltaTime clamps the per-tick delta time, in seconds, so
	// that a long host stall cannot blow up the simulation.
	// Default is 0.1.
	MaxDeltaTime float32

	// AutoRender renders every frame; when false, frames render only
	// when [Runtime.RenderNextFrame] is set.
	AutoRender bool

	// RenderNextFrame renders the next frame, then resets itself.
	RenderNextFrame bool

	surface     Surface
	platform    Platform
	renderer    Renderer
	graph       FrameGraph
	batcher     Batcher
	lightmapper Lightmapper
	xr          XRManager
	sound       SoundManager
	capture     SceneCapture
	loader      assets.Loader
	root        SceneNode
	systems     []ComponentSystem
	inputs      []InputDevice

	comp            *layers.Composition
	onLayersChanged func(c *layers.Composition)

	frame             uint64
	time              float64
	prevTime          float64
	dt                float32
	skipRenderCounter int

	started         bool
	librariesLoaded bool
	useDPR          bool
	fillMode        string
	resolutionMode  string
	width, height   int
	scriptPrefix    string

	pendingFrame int
	pendingXR    bool
	tickFn       func(now float64)

	mu      sync.Mutex
	state   lifecycleState
	inFrame bool
	onTick  []func()
}

// runOnTick runs fun on the tick thread: immediately when the frame
// loop is not running, otherwise at the start of the next tick. The
// layer composition and canvas state are only mutated from the tick
// thread. Functions queued on a destroyed runtime are dropped.
func (rt *Runtime) runOnTick(fun func()) {
	rt.mu.Lock()
	switch rt.state {
	case stateDestroyed:
		rt.mu.Unlock()
		return
	case stateRunning, stateDestroyPending:
		rt.onTick = append(rt.onTick, fun)
		rt.mu.Unlock()
		return
	}
	rt.mu.Unlock()
	fun()
}

// Frame returns the index of the current frame; it increments once
// per tick whether or not the frame rendered.
func (rt *Runtime) Frame() uint64 { return rt.frame }

// Time returns the accumulated unclamped wall-clock time since the
// first tick, in seconds.
func (rt *Runtime) Time() float64 { return rt.time }

// Dt returns the clamped, scaled delta time of the current tick,
// in seconds.
func (rt *Runtime) Dt() float32 { return rt.dt }

// SkippedFrames returns the number of consecutive ticks since the
// last rendered frame.
func (rt *Runtime) SkippedFrames() int { return rt.skipRenderCounter }

// Layers returns the current layer composition.
func (rt *Runtime) Layers() *layers.Composition { return rt.comp }

// Loader returns the resource loader.
func (rt *Runtime) Loader() assets.Loader { return rt.loader }

// Root returns the root scene node, or nil if none was supplied.
func (rt *Runtime) Root() SceneNode { return rt.root }

// SetLayers replaces the layer composition wholesale. Special layers
// in the new composition (the depth capture layer) are re-linked to
// the capture subsystem, since external systems hold raw references
// to them.
func (rt *Runtime) SetLayers(c *layers.Composition) {
	rt.comp = c
	if rt.onLayersChanged != nil {
		rt.onLayersChanged(c)
	}
}

func (rt *Runtime) fire(ev events.Event) {
	rt.Events.Call(ev)
}

// Canvas fill modes.
const (
	// FillNone leaves the canvas size alone.
	FillNone = "NONE"

	// FillWindow sizes the canvas to fill its hosting window.
	FillWindow = "FILL_WINDOW"

	// FillKeepAspect fills the window while keeping the design
	// aspect ratio.
	FillKeepAspect = "KEEP_ASPECT"
)

// Canvas resolution modes.
const (
	// ResolutionAuto tracks the client size of the canvas.
	ResolutionAuto = "AUTO"

	// ResolutionFixed keeps the configured design resolution.
	ResolutionFixed = "FIXED"
)

// SetCanvasFillMode sets how the canvas fills its container and
// applies the new sizing immediately.
func (rt *Runtime) SetCanvasFillMode(mode string, w, h int) {
	rt.fillMode = mode
	if w > 0 {
		rt.width = w
	}
	if h > 0 {
		rt.height = h
	}
	rt.resizeCanvas()
}

// SetCanvasResolution sets how the canvas resolution tracks the
// client size and applies the new sizing immediately.
func (rt *Runtime) SetCanvasResolution(mode string, w, h int) {
	rt.resolutionMode = mode
	if w > 0 {
		rt.width = w
	}
	if h > 0 {
		rt.height = h
	}
	rt.resizeCanvas()
}

func (rt *Runtime) resizeCanvas() {
	if rt.surface == nil {
		return
	}
	rt.surface.UpdateClientRect()
	w, h := rt.width, rt.height
	if rt.fillMode == FillWindow || rt.resolutionMode == ResolutionAuto {
		w, h = rt.surface.Size()
	}
	if rt.useDPR {
		if r := rt.surface.DevicePixelRatio(); r > 0 {
			w = int(float32(w) * r)
			h = int(float32(h) * r)
		}
	}
	if w > 0 && h > 0 {
		rt.surface.ResizeCanvas(w, h)
	}
}

// I18n registers localization assets for the localization subsystem.
type I18n struct {
	assetIDs []string
}

// AddAssets registers the given localization asset ids.
func (i *I18n) AddAssets(ids []string) {
	i.assetIDs = append(i.assetIDs, ids...)
}

// Assets returns the registered localization asset ids.
func (i *I18n) Assets() []string { return i.assetIDs }

// Destroy clears the manager.
func (i *I18n) Destroy() { i.assetIDs = nil }
