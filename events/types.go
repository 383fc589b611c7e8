// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the kind of runtime lifecycle event. Each kind has
// a fixed payload type, so that subscribers get compile-time checked
// payloads instead of string-keyed variadic arguments.
type Types int32

const (
	// UnknownType is the zero value, an unknown event type.
	UnknownType Types = iota

	// Start is sent exactly once when [app.Runtime.Start] runs,
	// before the first frame.
	Start

	// Initialize is sent on the scene root when component systems
	// run their initialize phase.
	Initialize

	// PostInitialize is sent on the scene root after every component
	// system has initialized.
	PostInitialize

	// PreloadStart is sent when bulk preloading of assets begins.
	PreloadStart

	// PreloadProgress is sent as each preload asset finishes loading
	// or fails; the payload carries completed and total counts.
	PreloadProgress

	// PreloadEnd is sent exactly once when every preload asset has
	// finished loading or failed.
	PreloadEnd

	// LibrariesLoaded is sent when all configured code libraries have
	// loaded successfully.
	LibrariesLoaded

	// PreRender is sent each frame immediately before rendering.
	PreRender

	// PostRender is sent each frame immediately after rendering.
	PostRender

	// Update is sent each frame during the update phase, after
	// component systems have updated.
	Update

	// FrameUpdate is sent at the start of each tick, before the
	// update phase runs.
	FrameUpdate

	// FrameRender is sent each frame when the frame will render,
	// before canvas sizing.
	FrameRender

	// FrameEnd is sent at the end of each rendered frame, carrying
	// the frame timestamp.
	FrameEnd

	// Destroy is sent once when the runtime is torn down.
	Destroy

	// TypesN is the number of event types.
	TypesN
)

var typeNames = map[Types]string{
	UnknownType:     "unknown",
	Start:           "start",
	Initialize:      "initialize",
	PostInitialize:  "postinitialize",
	PreloadStart:    "preload:start",
	PreloadProgress: "preload:progress",
	PreloadEnd:      "preload:end",
	LibrariesLoaded: "librariesloaded",
	PreRender:       "prerender",
	PostRender:      "postrender",
	Update:          "update",
	FrameUpdate:     "frameupdate",
	FrameRender:     "framerender",
	FrameEnd:        "frameend",
	Destroy:         "destroy",
}

func (t Types) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "unknown"
}
