// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides the typed lifecycle event system for the
// verve runtime. Event kinds are a fixed enum ([Types]) and each kind
// carries a fixed payload struct, so subscribers are checked at
// compile time rather than dispatching on strings.
package events

// Event is the interface for all runtime lifecycle events.
type Event interface {

	// Type returns the kind of this event.
	Type() Types
}

// Base is the base type for all events, providing the [Types] kind.
// Events with no payload beyond their kind use Base directly.
type Base struct {
	Typ Types
}

func (b *Base) Type() Types { return b.Typ }

func (b *Base) String() string { return b.Typ.String() }

// New returns a new payload-free event of the given kind.
func New(typ Types) *Base {
	return &Base{Typ: typ}
}

// UpdateEvent is the payload for [Update] and [FrameUpdate] events.
type UpdateEvent struct {
	Base

	// Dt is the clamped, scaled delta time for this tick, in seconds.
	Dt float32
}

// NewUpdate returns a new [UpdateEvent] of the given kind with the
// given delta time.
func NewUpdate(typ Types, dt float32) *UpdateEvent {
	return &UpdateEvent{Base: Base{Typ: typ}, Dt: dt}
}

// ProgressEvent is the payload for [PreloadProgress] events.
type ProgressEvent struct {
	Base

	// Completed is the number of assets that have finished,
	// successfully or not.
	Completed int

	// Total is the total number of assets being preloaded.
	Total int
}

// Fraction returns the normalized progress in [0, 1].
// An empty batch reports 1.
func (e *ProgressEvent) Fraction() float32 {
	if e.Total == 0 {
		return 1
	}
	return float32(e.Completed) / float32(e.Total)
}

// NewProgress returns a new [PreloadProgress] event.
func NewProgress(completed, total int) *ProgressEvent {
	return &ProgressEvent{Base: Base{Typ: PreloadProgress}, Completed: completed, Total: total}
}

// FrameEndEvent is the payload for [FrameEnd] events.
type FrameEndEvent struct {
	Base

	// Timestamp is the host frame timestamp for the tick that just
	// rendered, in milliseconds.
	Timestamp float64

	// Target is the runtime that sent the event.
	Target any
}

// NewFrameEnd returns a new [FrameEnd] event with the given timestamp
// and sending runtime.
func NewFrameEnd(timestamp float64, target any) *FrameEndEvent {
	return &FrameEndEvent{Base: Base{Typ: FrameEnd}, Timestamp: timestamp, Target: target}
}
