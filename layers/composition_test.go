// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompositionPasses(t *testing.T) {
	c := NewComposition("test")
	world := NewLayer(World, "World")
	ui := NewLayer(UI, "UI")
	c.PushOpaque(world)
	c.PushTransparent(world)
	c.PushTransparent(ui)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []*Layer{world}, c.Opaque())
	assert.Equal(t, []*Layer{world, ui}, c.TransparentLayers())
	assert.Equal(t, []bool{true, true, true}, c.SubLayerEnabled)
}

func TestCompositionInsert(t *testing.T) {
	c := NewComposition("test")
	world := NewLayer(World, "World")
	ui := NewLayer(UI, "UI")
	c.PushOpaque(world)
	c.PushTransparent(ui)

	imm := NewLayer(Immediate, "Immediate")
	c.InsertOpaque(imm, 1)
	assert.Equal(t, []*Layer{world, imm}, c.Opaque())
	assert.Equal(t, []*Layer{world, imm, ui}, c.List)

	sky := NewLayer(Skybox, "Skybox")
	c.InsertTransparent(sky, 99) // out of range appends
	assert.Equal(t, []*Layer{imm, sky}, []*Layer{c.List[1], c.List[3]})
	assert.Equal(t, []bool{true, true, true, true}, c.SubLayerEnabled)
}

func TestCompositionLookup(t *testing.T) {
	c := NewComposition("test")
	world := NewLayer(World, "World")
	c.PushOpaque(world)
	assert.Equal(t, world, c.ByID(World))
	assert.Nil(t, c.ByID(Depth))
	assert.Equal(t, world, c.ByName("World"))
	assert.Nil(t, c.ByName("Depth"))
}

func TestLayerRefCounting(t *testing.T) {
	depth := NewLayer(Depth, "Depth")
	depth.Enabled = false
	depth.AddRef()
	assert.True(t, depth.Enabled)
	depth.AddRef()
	depth.RemoveRef()
	assert.True(t, depth.Enabled)
	depth.RemoveRef()
	assert.False(t, depth.Enabled)
	depth.RemoveRef() // extra remove is a no-op
	assert.False(t, depth.Enabled)
}
