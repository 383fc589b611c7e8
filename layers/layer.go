// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layers provides the render layer composition for the verve
// runtime: named, orderable render pass buckets arranged into opaque
// and transparent pass lists.
package layers

// SortMode determines how drawables within one pass of a layer are
// ordered before rendering.
type SortMode int32

const (
	// SortNone performs no sorting.
	SortNone SortMode = iota

	// SortManual sorts by the manually assigned drawable order.
	SortManual

	// SortMaterialMesh sorts to minimize material and mesh switches;
	// the usual mode for opaque passes.
	SortMaterialMesh

	// SortBackToFront sorts by descending camera distance; the usual
	// mode for transparent passes.
	SortBackToFront

	// SortFrontToBack sorts by ascending camera distance, maximizing
	// early depth rejection for opaque geometry.
	SortFrontToBack
)

// Well-known layer identifiers. The depth layer starts disabled and is
// enabled by reference counting from systems that need a depth capture.
const (
	// World is the default layer for scene geometry.
	World = 0

	// Depth is the scene depth capture layer.
	Depth = 1

	// Skybox is the background skybox layer.
	Skybox = 2

	// Immediate is the layer for immediate-mode debug drawing.
	Immediate = 3

	// UI is the layer for screen-space user interface elements.
	UI = 4
)

// Layer is a named render pass bucket. The same Layer may be placed in
// both the opaque and the transparent pass lists of a [Composition].
type Layer struct {

	// ID is the numeric identifier of the layer, unique within a
	// composition. IDs below 1000 are reserved for well-known layers.
	ID int

	// Name is the display name of the layer.
	Name string

	// Enabled determines whether the layer is rendered at all.
	// See [Layer.AddRef] for reference-counted enabling.
	Enabled bool

	// OpaqueSort is the sort mode for the opaque pass.
	OpaqueSort SortMode

	// TransparentSort is the sort mode for the transparent pass.
	TransparentSort SortMode

	refs int
}

// NewLayer returns a new enabled [Layer] with the given id and name
// and the default sort modes.
func NewLayer(id int, name string) *Layer {
	return &Layer{
		ID:              id,
		Name:            name,
		Enabled:         true,
		OpaqueSort:      SortMaterialMesh,
		TransparentSort: SortBackToFront,
	}
}

// AddRef increments the layer's reference count, enabling it on the
// transition from zero. Used by systems that need a normally-disabled
// layer (such as the depth capture layer) while they are active.
func (l *Layer) AddRef() {
	l.refs++
	if l.refs == 1 {
		l.Enabled = true
	}
}

// RemoveRef decrements the layer's reference count, disabling the
// layer when it reaches zero.
func (l *Layer) RemoveRef() {
	if l.refs == 0 {
		return
	}
	l.refs--
	if l.refs == 0 {
		l.Enabled = false
	}
}
