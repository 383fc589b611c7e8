// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"errors"
	"sort"

	"cogentcore.org/verve/assets"
	"cogentcore.org/verve/events"
	"cogentcore.org/verve/layers"
	"cogentcore.org/verve/logx"
)

// Config supplies the constructors and externally owned collaborators
// for a [Runtime]. It is consumed exactly once by [New]. Surface and
// Platform are required; every other field is optional, and a missing
// optional piece disables the corresponding feature.
type Config struct {

	// Name is the application name.
	Name string

	// Surface is the graphics surface to render to. Required.
	Surface Surface

	// Platform is the host environment driving frame callbacks.
	// Required.
	Platform Platform

	// Root is the root node of the entity hierarchy.
	Root SceneNode

	// Sound is the externally owned sound manager.
	Sound SoundManager

	// Capture is the scene capture subsystem that special layers are
	// linked to.
	Capture SceneCapture

	// Loader is the resource loader; defaults to [assets.NewHTTPLoader].
	Loader assets.Loader

	// NewRenderer constructs the forward renderer.
	NewRenderer func(s Surface) Renderer

	// NewFrameGraph constructs the frame graph.
	NewFrameGraph func() FrameGraph

	// NewBatcher constructs the batcher.
	NewBatcher func(rt *Runtime) Batcher

	// NewLightmapper constructs the lightmapper.
	NewLightmapper func(rt *Runtime) Lightmapper

	// NewXR constructs the immersive session manager.
	NewXR func(s Surface) XRManager

	// Inputs are the input devices to poll every tick.
	Inputs []InputDevice

	// ResourceHandlers maps asset kinds to their resource handlers.
	ResourceHandlers map[string]assets.Handler

	// Systems constructs the component systems, in registration order.
	Systems []func(rt *Runtime) ComponentSystem

	// AssetPrefix is prepended to relative asset URLs.
	AssetPrefix string

	// ScriptPrefix is prepended to relative code library URLs.
	ScriptPrefix string
}

// New constructs a [Runtime] from the given configuration, building
// the subsystems in dependency order. It returns an error if the
// configuration has no graphics surface or no platform; all other
// missing pieces degrade to disabled features.
func New(cfg *Config) (*Runtime, error) {
	if cfg == nil || cfg.Surface == nil {
		return nil, errors.New("app: no graphics surface; a Runtime requires a Surface")
	}
	if cfg.Platform == nil {
		return nil, errors.New("app: no host platform; a Runtime requires a Platform")
	}
	rt := &Runtime{
		Name:         cfg.Name,
		TimeScale:    1,
		MaxDeltaTime: 0.1,
		AutoRender:   true,
	}
	rt.surface = cfg.Surface
	rt.platform = cfg.Platform
	rt.sound = cfg.Sound
	rt.loader = cfg.Loader
	if rt.loader == nil {
		rt.loader = assets.NewHTTPLoader()
	}
	rt.root = cfg.Root
	rt.Assets = assets.NewRegistry(cfg.AssetPrefix)
	rt.Bundles = &assets.BundleRegistry{}
	rt.Scripts = &assets.ScriptRegistry{}
	rt.Scenes = &assets.SceneRegistry{}
	rt.I18n = &I18n{}
	rt.scriptPrefix = cfg.ScriptPrefix
	rt.fillMode = FillKeepAspect
	rt.resolutionMode = ResolutionAuto

	rt.capture = cfg.Capture
	// re-link the depth capture layer whenever the composition is
	// replaced wholesale; external systems hold raw layer references
	rt.onLayersChanged = func(c *layers.Composition) {
		if rt.capture == nil {
			return
		}
		if depth := c.ByID(layers.Depth); depth != nil {
			rt.capture.Attach(depth)
		}
	}
	rt.SetLayers(defaultComposition())

	if cfg.NewRenderer != nil {
		rt.renderer = cfg.NewRenderer(rt.surface)
	}
	if cfg.NewFrameGraph != nil {
		rt.graph = cfg.NewFrameGraph()
	}
	if cfg.NewLightmapper != nil {
		rt.lightmapper = cfg.NewLightmapper(rt)
		rt.Events.AddOnce(events.PreRender, func(ev events.Event) {
			rt.lightmapper.Bake()
		})
	}
	if cfg.NewBatcher != nil {
		rt.batcher = cfg.NewBatcher(rt)
		rt.Events.AddOnce(events.PreRender, func(ev events.Event) {
			rt.batcher.Generate()
		})
	}
	rt.inputs = cfg.Inputs
	if cfg.NewXR != nil {
		rt.xr = cfg.NewXR(rt.surface)
	}

	if _, has := cfg.ResourceHandlers["bundle"]; !has {
		rt.loader.AddHandler("bundle", assets.HandlerFunc(func(url string, data []byte) (any, error) {
			return data, nil
		}))
	}
	kinds := make([]string, 0, len(cfg.ResourceHandlers))
	for kind := range cfg.ResourceHandlers {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		rt.loader.AddHandler(kind, cfg.ResourceHandlers[kind])
	}

	for _, newSys := range cfg.Systems {
		rt.systems = append(rt.systems, newSys(rt))
	}

	rt.platform.SetVisibilityChangedFunc(func(hidden bool) {
		if rt.sound == nil {
			return
		}
		if hidden {
			rt.sound.Suspend()
		} else {
			rt.sound.Resume()
		}
	})

	rt.tickFn = rt.tick
	register(rt.surface.ID(), rt)
	logx.Info("app: runtime created", "name", rt.Name, "surface", rt.surface.ID())
	return rt, nil
}

// defaultComposition returns the default layer composition: world,
// depth, skybox and immediate in the opaque pass, then world,
// immediate and UI in the transparent pass. The depth layer starts
// disabled; it is enabled by reference counting from systems that
// need a depth capture.
func defaultComposition() *layers.Composition {
	world := layers.NewLayer(layers.World, "World")
	depth := layers.NewLayer(layers.Depth, "Depth")
	depth.Enabled = false
	skybox := layers.NewLayer(layers.Skybox, "Skybox")
	skybox.OpaqueSort = layers.SortNone
	immediate := layers.NewLayer(layers.Immediate, "Immediate")
	immediate.OpaqueSort = layers.SortNone
	immediate.TransparentSort = layers.SortNone
	ui := layers.NewLayer(layers.UI, "UI")
	ui.TransparentSort = layers.SortManual

	c := layers.NewComposition("default")
	c.PushOpaque(world)
	c.PushOpaque(depth)
	c.PushOpaque(skybox)
	c.PushOpaque(immediate)
	c.PushTransparent(world)
	c.PushTransparent(immediate)
	c.PushTransparent(ui)
	return c
}
