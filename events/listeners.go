// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners registers lists of event listener functions to receive
// different event types. Listeners are closure methods with all
// context captured, registered on specific objects.
type Listeners map[Types][]func(ev Event)

// Init ensures that the map is constructed.
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types][]func(Event))
}

// Add adds a function for the given type.
func (ls *Listeners) Add(typ Types, fun func(ev Event)) {
	ls.Init()
	ets := (*ls)[typ]
	ets = append(ets, fun)
	(*ls)[typ] = ets
}

// AddOnce adds a function for the given type that is removed
// after its first call.
func (ls *Listeners) AddOnce(typ Types, fun func(ev Event)) {
	fired := false
	ls.Add(typ, func(ev Event) {
		if fired {
			return
		}
		fired = true
		fun(ev)
	})
}

// Call calls all functions for the given event, in the order they
// were added. Every listener registered at the time of the call
// receives the event; lifecycle events are broadcasts, not
// capture-style handled chains.
func (ls *Listeners) Call(ev Event) {
	ets := (*ls)[ev.Type()]
	n := len(ets)
	if n == 0 {
		return
	}
	// copy so that listeners added during delivery do not receive
	// this event
	fns := make([]func(Event), n)
	copy(fns, ets)
	for _, fun := range fns {
		fun(ev)
	}
}

// Reset removes all listeners for all types.
func (ls *Listeners) Reset() {
	*ls = nil
}
