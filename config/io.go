// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ReadJSON decodes a [Blob] from JSON bytes.
func ReadJSON(data []byte) (*Blob, error) {
	b := &Blob{}
	if err := json.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return b, nil
}

// ReadTOML decodes a [Blob] from TOML bytes. The TOML is decoded
// generically and routed through the JSON structures so that key
// aliasing behaves identically across formats.
func ReadTOML(data []byte) (*Blob, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return readGeneric(raw)
}

// ReadYAML decodes a [Blob] from YAML bytes, routed through the JSON
// structures like [ReadTOML].
func ReadYAML(data []byte) (*Blob, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return readGeneric(raw)
}

func readGeneric(raw map[string]any) (*Blob, error) {
	js, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return ReadJSON(js)
}

// Open reads a [Blob] from the given file, dispatching on the file
// extension: .json, .toml, or .yaml/.yml.
func Open(filename string) (*Blob, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return ReadTOML(data)
	case ".yaml", ".yml":
		return ReadYAML(data)
	default:
		return ReadJSON(data)
	}
}

// Fetch retrieves a JSON [Blob] from the given URL.
func Fetch(url string) (*Blob, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("config: fetching %q: %s", url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return ReadJSON(data)
}
