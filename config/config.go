// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the declarative application configuration
// format for the verve runtime: application properties, the render
// layer topology, batch groups, scenes, and the asset manifest.
// The wire format is JSON; TOML and YAML front-ends decode into the
// same structures.
package config

import (
	"encoding/json"
	"fmt"
)

// Blob is the top-level declarative configuration, as fetched from a
// config endpoint or read from a local file. It is read once during
// ingestion and not retained afterward.
type Blob struct {

	// ApplicationProperties configures the canvas, layer topology,
	// batch groups, localization assets, and code libraries.
	ApplicationProperties Properties `json:"application_properties"`

	// Scenes lists the registered scenes as (name, url) pairs.
	Scenes []SceneRef `json:"scenes"`

	// Assets is the asset manifest, keyed by asset id.
	Assets map[string]AssetDef `json:"assets"`
}

// Properties are the top-level application properties. Several keys
// have both camelCase and snake_case spellings in the wild; both are
// accepted, with the camelCase spelling winning when both are present.
type Properties struct {

	// Width and Height are the design resolution of the canvas.
	Width  int `json:"width"`
	Height int `json:"height"`

	// ResolutionMode controls how the canvas resolution tracks the
	// client size ("AUTO" or "FIXED").
	ResolutionMode string `json:"resolutionMode"`

	// FillMode controls how the canvas fills its container
	// ("FILL_WINDOW", "KEEP_ASPECT", or "NONE").
	FillMode string `json:"fillMode"`

	// UseDevicePixelRatio renders at the device pixel ratio instead
	// of CSS pixels.
	UseDevicePixelRatio bool `json:"useDevicePixelRatio"`

	// MaxAssetRetries is the retry count for failed asset loads;
	// zero disables retrying.
	MaxAssetRetries int `json:"maxAssetRetries"`

	// Layers defines the render layers, keyed by numeric layer id.
	Layers map[string]LayerDef `json:"layers"`

	// LayerOrder is the ordered list of sub-layers (one pass of one
	// layer each) making up the layer composition.
	LayerOrder []LayerOrderDef `json:"layerOrder"`

	// BatchGroups defines the static/dynamic batching groups.
	BatchGroups []BatchGroupDef `json:"batchGroups"`

	// I18nAssets lists the ids of localization assets.
	I18nAssets []string `json:"i18nAssets"`

	// Libraries lists code library URLs to load before start.
	Libraries []string `json:"libraries"`

	// Scripts lists script asset ids in their required load order.
	Scripts []string `json:"scripts"`
}

// propsAliases carries the snake_case spellings of aliased keys.
type propsAliases struct {
	ResolutionMode      string `json:"resolution_mode"`
	FillMode            string `json:"fill_mode"`
	UseDevicePixelRatio bool   `json:"use_device_pixel_ratio"`
}

// UnmarshalJSON accepts both key spellings for the aliased properties.
func (p *Properties) UnmarshalJSON(data []byte) error {
	type plain Properties
	if err := json.Unmarshal(data, (*plain)(p)); err != nil {
		return err
	}
	al := propsAliases{}
	if err := json.Unmarshal(data, &al); err != nil {
		return err
	}
	if p.ResolutionMode == "" {
		p.ResolutionMode = al.ResolutionMode
	}
	if p.FillMode == "" {
		p.FillMode = al.FillMode
	}
	if !p.UseDevicePixelRatio {
		p.UseDevicePixelRatio = al.UseDevicePixelRatio
	}
	return nil
}

// LayerDef defines one render layer.
type LayerDef struct {

	// Name is the display name of the layer.
	Name string `json:"name"`

	// OpaqueSortMode is the sort mode for the opaque pass.
	OpaqueSortMode int `json:"opaqueSortMode"`

	// TransparentSortMode is the sort mode for the transparent pass.
	TransparentSortMode int `json:"transparentSortMode"`
}

// LayerOrderDef places one pass of one layer in the composition.
type LayerOrderDef struct {

	// Layer is the id of the layer, a key of [Properties.Layers].
	Layer string `json:"layer"`

	// Transparent selects the transparent pass instead of the opaque
	// pass.
	Transparent bool `json:"transparent"`

	// Enabled is the initial sub-layer enabled state.
	Enabled bool `json:"enabled"`
}

// UnmarshalJSON accepts the layer reference as either a string or a
// number, normalizing to the string key form of [Properties.Layers].
// Configs in the wild carry both.
func (d *LayerOrderDef) UnmarshalJSON(data []byte) error {
	aux := struct {
		Layer       json.RawMessage `json:"layer"`
		Transparent bool            `json:"transparent"`
		Enabled     bool            `json:"enabled"`
	}{}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	d.Transparent = aux.Transparent
	d.Enabled = aux.Enabled
	if len(aux.Layer) == 0 {
		d.Layer = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(aux.Layer, &s); err == nil {
		d.Layer = s
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(aux.Layer, &n); err != nil {
		return fmt.Errorf("config: layer order reference %s: %w", aux.Layer, err)
	}
	d.Layer = n.String()
	return nil
}

// BatchGroupDef defines one batching group.
type BatchGroupDef struct {

	// Name is the display name of the group.
	Name string `json:"name"`

	// Dynamic marks the group as containing moving geometry.
	Dynamic bool `json:"dynamic"`

	// MaxAabbSize is the maximum world-space extent of one batch.
	MaxAabbSize float32 `json:"maxAabbSize"`

	// ID is the group identifier.
	ID string `json:"id"`

	// Layers lists the layer ids the group renders into.
	Layers []int `json:"layers"`
}

// SceneRef registers one scene by name and url.
type SceneRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// AssetDef is one entry of the asset manifest.
type AssetDef struct {

	// Name is the display name of the asset.
	Name string `json:"name"`

	// Type is the asset kind ("script", "bundle", "texture", ...).
	Type string `json:"type"`

	// File locates the asset's file, if it has one.
	File *FileRef `json:"file"`

	// Preload loads the asset eagerly before the application starts.
	Preload bool `json:"preload"`

	// Data is asset-type-specific inline data, passed through opaquely.
	Data json.RawMessage `json:"data"`

	// I18n maps locale codes to the ids of localized variants.
	I18n map[string]string `json:"i18n"`
}

// FileRef locates an asset file.
type FileRef struct {
	URL  string `json:"url"`
	Size int64  `json:"size"`
	Hash string `json:"hash"`
}
