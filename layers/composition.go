// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layers

import "slices"

// Composition is the full ordered arrangement of layers for the
// opaque and transparent render passes. Each entry in List is one
// sub-layer: one pass of one layer. A layer placed in both passes
// appears twice in List, with Transparent reporting which pass each
// entry is.
type Composition struct {

	// Name is the name of the composition.
	Name string

	// List holds one entry per sub-layer, in render order.
	List []*Layer

	// Transparent is parallel to List and reports whether each entry
	// is the transparent pass of its layer.
	Transparent []bool

	// SubLayerEnabled is parallel to List and holds the per-sub-layer
	// enable flag, independent of [Layer.Enabled].
	SubLayerEnabled []bool
}

// NewComposition returns a new empty [Composition] with the given name.
func NewComposition(name string) *Composition {
	return &Composition{Name: name}
}

// PushOpaque appends the opaque pass of the given layer, enabled.
func (c *Composition) PushOpaque(l *Layer) {
	c.push(l, false, true)
}

// PushTransparent appends the transparent pass of the given layer,
// enabled.
func (c *Composition) PushTransparent(l *Layer) {
	c.push(l, true, true)
}

// Push appends one pass of the given layer with the given initial
// sub-layer enabled state.
func (c *Composition) Push(l *Layer, transparent, enabled bool) {
	c.push(l, transparent, enabled)
}

func (c *Composition) push(l *Layer, transparent, enabled bool) {
	c.List = append(c.List, l)
	c.Transparent = append(c.Transparent, transparent)
	c.SubLayerEnabled = append(c.SubLayerEnabled, enabled)
}

// InsertOpaque inserts the opaque pass of the given layer at the given
// sub-layer index, enabled. An out-of-range index appends.
func (c *Composition) InsertOpaque(l *Layer, i int) {
	c.insert(l, i, false)
}

// InsertTransparent inserts the transparent pass of the given layer at
// the given sub-layer index, enabled. An out-of-range index appends.
func (c *Composition) InsertTransparent(l *Layer, i int) {
	c.insert(l, i, true)
}

func (c *Composition) insert(l *Layer, i int, transparent bool) {
	if i < 0 || i > len(c.List) {
		i = len(c.List)
	}
	c.List = slices.Insert(c.List, i, l)
	c.Transparent = slices.Insert(c.Transparent, i, transparent)
	c.SubLayerEnabled = slices.Insert(c.SubLayerEnabled, i, true)
}

// Opaque returns the layers of the opaque pass, in order.
func (c *Composition) Opaque() []*Layer {
	return c.pass(false)
}

// TransparentLayers returns the layers of the transparent pass,
// in order.
func (c *Composition) TransparentLayers() []*Layer {
	return c.pass(true)
}

func (c *Composition) pass(transparent bool) []*Layer {
	var ls []*Layer
	for i, l := range c.List {
		if c.Transparent[i] == transparent {
			ls = append(ls, l)
		}
	}
	return ls
}

// ByID returns the layer with the given id, or nil if not present.
func (c *Composition) ByID(id int) *Layer {
	for _, l := range c.List {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// ByName returns the layer with the given name, or nil if not present.
func (c *Composition) ByName(name string) *Layer {
	for _, l := range c.List {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Len returns the number of sub-layers.
func (c *Composition) Len() int {
	return len(c.List)
}
