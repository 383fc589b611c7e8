// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package progress provides a minimal counting barrier for joining
// batches of asynchronous operations. A failed operation advances the
// tracker the same as a successful one, so a batch always completes
// even under partial failure.
package progress

// Tracker counts completed operations out of a fixed total.
// A Tracker with Total == 0 is done from the start.
type Tracker struct {

	// Total is the number of operations in the batch.
	Total int

	// Completed is the number of operations that have finished,
	// successfully or not.
	Completed int
}

// NewTracker returns a new [Tracker] for a batch of the given size.
func NewTracker(total int) *Tracker {
	return &Tracker{Total: total}
}

// Advance records one more finished operation. Advancing past
// Total is a no-op.
func (t *Tracker) Advance() {
	if t.Completed >= t.Total {
		return
	}
	t.Completed++
}

// Done reports whether every operation in the batch has finished.
func (t *Tracker) Done() bool {
	return t.Completed == t.Total
}
