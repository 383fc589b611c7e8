// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"errors"
	"sync"

	"cogentcore.org/verve/assets"
	"cogentcore.org/verve/config"
	"cogentcore.org/verve/events"
	"cogentcore.org/verve/layers"
)

// fakePlatform is a manually pumped host: Step advances the clock and
// fires all pending frame callbacks.
type fakePlatform struct {
	now      float64
	nextID   int
	pending  map[int]func(now float64)
	canceled []int
	visFn    func(hidden bool)
	log      *[]string
}

func (p *fakePlatform) RequestFrame(fun func(now float64)) int {
	p.nextID++
	if p.pending == nil {
		p.pending = map[int]func(float64){}
	}
	p.pending[p.nextID] = fun
	if p.log != nil {
		*p.log = append(*p.log, "request")
	}
	return p.nextID
}

func (p *fakePlatform) CancelFrame(id int) {
	delete(p.pending, id)
	p.canceled = append(p.canceled, id)
}

func (p *fakePlatform) Now() float64 { return p.now }

func (p *fakePlatform) SetVisibilityChangedFunc(fun func(hidden bool)) { p.visFn = fun }

// Step advances the clock by ms milliseconds and fires every pending
// frame callback with the new timestamp.
func (p *fakePlatform) Step(ms float64) {
	p.now += ms
	fns := p.pending
	p.pending = map[int]func(float64){}
	for _, fun := range fns {
		fun(p.now)
	}
}

type fakeSurface struct {
	id          string
	w, h        int
	dpr         float32
	contextLost bool
	destroyed   int
	fb          any
	resizes     [][2]int
	frameStarts int
	frameEnds   int
}

func (s *fakeSurface) ID() string             { return s.id }
func (s *fakeSurface) Size() (w, h int)       { return s.w, s.h }
func (s *fakeSurface) ResizeCanvas(w, h int)  { s.resizes = append(s.resizes, [2]int{w, h}) }
func (s *fakeSurface) UpdateClientRect()      {}
func (s *fakeSurface) DevicePixelRatio() float32 { return s.dpr }
func (s *fakeSurface) FrameStart()            { s.frameStarts++ }
func (s *fakeSurface) FrameEnd()              { s.frameEnds++ }
func (s *fakeSurface) ContextLost() bool      { return s.contextLost }
func (s *fakeSurface) SetDefaultFramebuffer(fb any) { s.fb = fb }
func (s *fakeSurface) Destroy()               { s.destroyed++ }

type fakeGraph struct{}

type fakeRenderer struct {
	resets    int
	builds    []*layers.Composition
	renders   int
	destroyed int
	log       *[]string
}

func (r *fakeRenderer) BuildFrameGraph(graph FrameGraph, comp *layers.Composition) {
	r.builds = append(r.builds, comp)
}

func (r *fakeRenderer) Render(s Surface) {
	r.renders++
	if r.log != nil {
		*r.log = append(*r.log, "render")
	}
}

func (r *fakeRenderer) ResetCounters() { r.resets++ }
func (r *fakeRenderer) Destroy()       { r.destroyed++ }

type fakeCapture struct {
	attached []*layers.Layer
	detached []*layers.Layer
}

func (c *fakeCapture) Attach(l *layers.Layer) { c.attached = append(c.attached, l) }
func (c *fakeCapture) Detach(l *layers.Layer) { c.detached = append(c.detached, l) }

type fakeSound struct {
	suspended, resumed, destroyed int
}

func (s *fakeSound) Suspend() { s.suspended++ }
func (s *fakeSound) Resume()  { s.resumed++ }
func (s *fakeSound) Destroy() { s.destroyed++ }

type fakeBatcher struct {
	groups    []config.BatchGroupDef
	generated int
	updated   int
	destroyed int
}

func (b *fakeBatcher) AddGroup(g config.BatchGroupDef) { b.groups = append(b.groups, g) }
func (b *fakeBatcher) Generate()                       { b.generated++ }
func (b *fakeBatcher) UpdateAll()                      { b.updated++ }
func (b *fakeBatcher) Destroy()                        { b.destroyed++ }

type fakeLightmapper struct {
	bakes, destroyed int
}

func (l *fakeLightmapper) Bake()    { l.bakes++ }
func (l *fakeLightmapper) Destroy() { l.destroyed++ }

type fakeInput struct {
	polls, detached int
}

func (in *fakeInput) Poll()   { in.polls++ }
func (in *fakeInput) Detach() { in.detached++ }

type fakeRoot struct {
	syncs int
	fired []events.Types
}

func (r *fakeRoot) SyncHierarchy()          { r.syncs++ }
func (r *fakeRoot) Fire(typ events.Types)   { r.fired = append(r.fired, typ) }

type fakeSystem struct {
	NullSystem
	calls  *[]string
	name   string
	libsOK int
}

func (s *fakeSystem) rec(what string) {
	if s.calls != nil {
		*s.calls = append(*s.calls, s.name+":"+what)
	}
}

func (s *fakeSystem) Initialize()                { s.rec("init") }
func (s *fakeSystem) PostInitialize()            { s.rec("postinit") }
func (s *fakeSystem) PostPostInitialize()        { s.rec("postpostinit") }
func (s *fakeSystem) Update(dt float32)          { s.rec("update") }
func (s *fakeSystem) AnimationUpdate(dt float32) { s.rec("anim") }
func (s *fakeSystem) PostUpdate(dt float32)      { s.rec("postupdate") }
func (s *fakeSystem) Destroy()                   { s.rec("destroy") }
func (s *fakeSystem) LibrariesLoaded()           { s.libsOK++ }

// fakeXR is a manually pumped immersive session source.
type fakeXR struct {
	active       bool
	shouldRender bool
	target       any
	nextID       int
	pending      map[int]func(now float64)
	now          float64
	updates      int
	ended        int
	destroyed    int
}

func (x *fakeXR) Active() bool { return x.active }

func (x *fakeXR) RequestFrame(fun func(now float64)) int {
	x.nextID++
	if x.pending == nil {
		x.pending = map[int]func(float64){}
	}
	x.pending[x.nextID] = fun
	return x.nextID
}

func (x *fakeXR) CancelFrame(id int) { delete(x.pending, id) }

func (x *fakeXR) Update() bool {
	x.updates++
	return x.shouldRender
}

func (x *fakeXR) Target() any { return x.target }
func (x *fakeXR) End() error  { x.ended++; return nil }
func (x *fakeXR) Destroy()    { x.destroyed++ }

func (x *fakeXR) Step(ms float64) {
	x.now += ms
	fns := x.pending
	x.pending = map[int]func(float64){}
	for _, fun := range fns {
		fun(x.now)
	}
}

// fakeLoad is one pending load captured by [fakeLoader].
type fakeLoad struct {
	url  string
	kind string
	cb   func(err error, result any)
}

// fakeLoader captures loads for manual completion; with auto set,
// every load succeeds synchronously.
type fakeLoader struct {
	mu      sync.Mutex
	loads   []fakeLoad
	retries int
	auto    bool
}

func (l *fakeLoader) Load(url, kind string, cb func(err error, result any)) {
	if l.auto {
		cb(nil, []byte("ok"))
		return
	}
	l.mu.Lock()
	l.loads = append(l.loads, fakeLoad{url: url, kind: kind, cb: cb})
	l.mu.Unlock()
}

func (l *fakeLoader) AddHandler(kind string, h assets.Handler) {}

func (l *fakeLoader) EnableRetry(maxRetries int) { l.retries = maxRetries }

func (l *fakeLoader) fire(i int, err error, result any) {
	l.mu.Lock()
	ld := l.loads[i]
	l.mu.Unlock()
	ld.cb(err, result)
}

var errLoad = errors.New("load failed")

// fixture bundles a runtime with all of its fakes.
type fixture struct {
	rt       *Runtime
	platform *fakePlatform
	surface  *fakeSurface
	renderer *fakeRenderer
	capture  *fakeCapture
	sound    *fakeSound
	batcher  *fakeBatcher
	loader   *fakeLoader
	root     *fakeRoot
	input    *fakeInput
	log      []string
}

func newFixture(mod func(cfg *Config)) *fixture {
	f := &fixture{}
	f.platform = &fakePlatform{log: &f.log}
	f.surface = &fakeSurface{id: "canvas1", w: 800, h: 600}
	f.renderer = &fakeRenderer{log: &f.log}
	f.capture = &fakeCapture{}
	f.sound = &fakeSound{}
	f.batcher = &fakeBatcher{}
	f.loader = &fakeLoader{auto: true}
	f.root = &fakeRoot{}
	f.input = &fakeInput{}
	cfg := &Config{
		Name:          "test",
		Surface:       f.surface,
		Platform:      f.platform,
		Root:          f.root,
		Sound:         f.sound,
		Capture:       f.capture,
		Loader:        f.loader,
		NewRenderer:   func(s Surface) Renderer { return f.renderer },
		NewFrameGraph: func() FrameGraph { return &fakeGraph{} },
		NewBatcher:    func(rt *Runtime) Batcher { return f.batcher },
		Inputs:        []InputDevice{f.input},
	}
	if mod != nil {
		mod(cfg)
	}
	rt, err := New(cfg)
	if err != nil {
		panic(err)
	}
	f.rt = rt
	return f
}
