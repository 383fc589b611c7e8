// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"cogentcore.org/verve/config"
	"cogentcore.org/verve/events"
	"cogentcore.org/verve/layers"
)

// Platform is the host environment driving the runtime: it supplies
// the recurring frame callback, wall-clock time, and visibility
// notifications. On the web this maps onto requestAnimationFrame and
// the page visibility API; on desktop onto the windowing system's
// paint events.
type Platform interface {

	// RequestFrame schedules fun to run at the host's next frame,
	// with the host frame timestamp in milliseconds. It returns a
	// request id for [Platform.CancelFrame].
	RequestFrame(fun func(now float64)) int

	// CancelFrame cancels a previously requested, not yet fired,
	// frame callback.
	CancelFrame(id int)

	// Now returns the host wall clock in milliseconds, used as a
	// fallback when no frame timestamp is available.
	Now() float64

	// SetVisibilityChangedFunc sets the function called when the
	// hosting surface is hidden or shown.
	SetVisibilityChangedFunc(fun func(hidden bool))
}

// Surface is the graphics surface (canvas) that the runtime renders
// to. It is constructed by the caller and owned by the runtime after
// [New].
type Surface interface {

	// ID is the host key for this surface, used to register the
	// runtime for ambient lookup.
	ID() string

	// Size returns the current client size of the surface in pixels.
	Size() (w, h int)

	// ResizeCanvas sets the pixel resolution of the surface.
	ResizeCanvas(w, h int)

	// UpdateClientRect refreshes the cached client rectangle.
	UpdateClientRect()

	// DevicePixelRatio returns the ratio of device pixels to layout
	// pixels for the hosting display; non-positive means unknown.
	DevicePixelRatio() float32

	// FrameStart and FrameEnd bracket the rendering of one frame.
	FrameStart()
	FrameEnd()

	// ContextLost reports whether the graphics context has been lost.
	ContextLost() bool

	// SetDefaultFramebuffer sets the render target for the frame:
	// nil for the surface's own backbuffer, or an immersive-session
	// provided target.
	SetDefaultFramebuffer(fb any)

	// Destroy releases the surface.
	Destroy()
}

// FrameGraph is the opaque frame graph rebuilt and executed by the
// [Renderer] every rendered frame.
type FrameGraph interface{}

// Renderer is the rendering backend contract.
type Renderer interface {

	// BuildFrameGraph rebuilds the given frame graph from the current
	// layer composition.
	BuildFrameGraph(graph FrameGraph, comp *layers.Composition)

	// Render executes the frame graph against the given surface.
	Render(s Surface)

	// ResetCounters resets the per-frame draw statistics counters.
	ResetCounters()

	// Destroy releases the renderer.
	Destroy()
}

// RenderSettings is an optional interface for renderers that accept
// scene render settings (gamma, tonemapping, exposure and similar
// knobs) from a scene blob.
type RenderSettings interface {
	ApplySettings(settings map[string]any)
}

// SceneNode is the root of the entity hierarchy, consumed only to
// synchronize transforms and deliver lifecycle events.
type SceneNode interface {

	// SyncHierarchy updates world transforms throughout the tree.
	SyncHierarchy()

	// Fire delivers the given lifecycle event kind to the tree.
	Fire(typ events.Types)
}

// ComponentSystem is one registered component system, driven through
// the initialization phases at start and the update phases each tick.
type ComponentSystem interface {
	Initialize()
	PostInitialize()
	PostPostInitialize()
	Update(dt float32)
	AnimationUpdate(dt float32)
	PostUpdate(dt float32)
	Destroy()
}

// LibrariesLoadedHandler is an optional interface for component
// systems that need to run bootstrapping once all code libraries
// have loaded (e.g., a physics system backed by an external library).
type LibrariesLoadedHandler interface {
	LibrariesLoaded()
}

// NullSystem is an embeddable no-op implementation of
// [ComponentSystem].
type NullSystem struct{}

func (NullSystem) Initialize()                {}
func (NullSystem) PostInitialize()            {}
func (NullSystem) PostPostInitialize()        {}
func (NullSystem) Update(dt float32)          {}
func (NullSystem) AnimationUpdate(dt float32) {}
func (NullSystem) PostUpdate(dt float32)      {}
func (NullSystem) Destroy()                   {}

// InputDevice is one input device polled every tick.
type InputDevice interface {

	// Poll processes any pending device input.
	Poll()

	// Detach disconnects the device from its host element.
	Detach()
}

// SoundManager is the externally owned audio subsystem, suspended
// while the hosting surface is hidden.
type SoundManager interface {
	Suspend()
	Resume()
	Destroy()
}

// Batcher consolidates static and dynamic geometry into batches.
type Batcher interface {

	// AddGroup registers one batch group.
	AddGroup(g config.BatchGroupDef)

	// Generate performs the initial batch generation; called once
	// before the first rendered frame.
	Generate()

	// UpdateAll reconsolidates dirty batches; called every rendered
	// frame.
	UpdateAll()

	// Destroy releases all batches.
	Destroy()
}

// Lightmapper bakes static lighting; the first bake runs before the
// first rendered frame.
type Lightmapper interface {
	Bake()
	Destroy()
}

// XRManager manages an immersive session that supplies its own frame
// pacing and render target instead of the platform's.
type XRManager interface {

	// Active reports whether an immersive session is running.
	Active() bool

	// RequestFrame schedules fun at the session's next frame,
	// returning a request id.
	RequestFrame(fun func(now float64)) int

	// CancelFrame cancels a pending session frame request.
	CancelFrame(id int)

	// Update runs the session's own per-frame routine and reports
	// whether this frame should render.
	Update() bool

	// Target returns the session-provided framebuffer target.
	Target() any

	// End ends the active session, if any.
	End() error

	// Destroy releases the manager.
	Destroy()
}

// SceneCapture is the scene depth/color capture subsystem that
// well-known special layers are linked to.
type SceneCapture interface {

	// Attach links the given layer to the capture pipeline.
	Attach(l *layers.Layer)

	// Detach unlinks the given layer.
	Detach(l *layers.Layer)
}
