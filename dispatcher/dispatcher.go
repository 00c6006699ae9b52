// This file is part of Tactile.
//
// Tactile is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tactile is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tactile.  If not, see <https://www.gnu.org/licenses/>.

package dispatcher

import (
	"slices"
	"time"

	"github.com/tactile-go/tactile/assert"
	"github.com/tactile-go/tactile/curated"
	"github.com/tactile-go/tactile/diagnostics"
	"github.com/tactile-go/tactile/history"
	"github.com/tactile-go/tactile/slots"
	"github.com/tactile-go/tactile/userinput"
)

// Sentinal error patterns.
const (
	ListenerError        = "dispatcher: %v"
	InvalidConfiguration = "dispatcher: invalid configuration: %v"
)

// Dispatcher converts samples into events once per frame.
type Dispatcher struct {
	src      userinput.Source
	view     userinput.View
	listener userinput.Listener
	prefs    *Preferences
	diag     diagnostics.Reporter

	slots   *slots.Allocator
	history *history.Pool

	// touch contacts indexed by slot. only entries for occupied slots are
	// meaningful
	touch [slots.MaxCapacity]userinput.Contact

	// the mouse is a single permanent contact. it is not allocated a slot from
	// the allocator
	mouse     userinput.Contact
	mouseSeen bool

	// per-pass scratch. cleared after every category
	batches [userinput.NumPhases]batch
	wheel   []userinput.EventMouseWheel

	// the external ID of the contact currently being given a slot. used to
	// report slot reclamation
	acquiring uint64

	// the first error returned by the listener during a pass
	listenerErr error

	frame int

	owner assert.Owner
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type.
//
// The view, prefs and diag arguments can be nil. A nil view has a pixel ratio
// of one. Nil prefs is the same as DefaultPreferences(). Nil diag discards
// all diagnostic notices.
func NewDispatcher(src userinput.Source, view userinput.View, listener userinput.Listener,
	prefs *Preferences, diag diagnostics.Reporter) (*Dispatcher, error) {

	if src == nil {
		return nil, curated.Errorf(InvalidConfiguration, "no source")
	}
	if listener == nil {
		return nil, curated.Errorf(InvalidConfiguration, "no listener")
	}
	if prefs == nil {
		prefs = DefaultPreferences()
	}
	if diag == nil {
		diag = diagnostics.Discard
	}

	d := &Dispatcher{
		src:      src,
		view:     view,
		listener: listener,
		prefs:    prefs,
		diag:     diag,
	}

	var err error

	d.slots, err = slots.NewAllocator(prefs.maxSlots())
	if err != nil {
		return nil, curated.Errorf(InvalidConfiguration, err)
	}
	d.slots.SetTimeout(prefs.touchTimeout())
	d.slots.SetHookReclaim(func(slot int, id uint64) {
		d.diag.Report(diagnostics.SlotReclaimed, slot, id, d.acquiring)
	})

	d.history, err = history.NewPool(prefs.historyCapacity())
	if err != nil {
		return nil, curated.Errorf(InvalidConfiguration, err)
	}

	return d, nil
}

// Pass drains the source and delivers events for one frame.
//
// Every event for the frame is delivered even if the listener returns an
// error. The first error returned by the listener is returned by Pass().
func (d *Dispatcher) Pass() error {
	d.owner.Check("dispatcher")

	d.slots.SetTimeout(d.prefs.touchTimeout())
	multi := d.prefs.multiContact()

	for _, cat := range userinput.Categories {
		samples := d.src.Drain(cat)
		if len(samples) == 0 {
			continue
		}

		switch cat {
		case userinput.Mouse:
			d.mousePass(samples, multi)
		case userinput.Touch:
			d.touchPass(samples, multi)
		case userinput.Keyboard:
			d.keyboardPass(samples)
		case userinput.Accelerometer:
			d.motionPass(samples)
		}
	}

	d.frame++

	if d.listenerErr != nil {
		err := d.listenerErr
		d.listenerErr = nil
		return curated.Errorf(ListenerError, err)
	}

	return nil
}

// Frame returns the number of completed passes.
func (d *Dispatcher) Frame() int {
	return d.frame
}

// Contacts returns a copy of every active touch contact, in slot order.
func (d *Dispatcher) Contacts() []userinput.Contact {
	return d.activeTouch()
}

// Mouse returns the mouse contact. The second return value is false if no
// mouse sample has ever been processed.
func (d *Dispatcher) Mouse() (userinput.Contact, bool) {
	return d.mouse, d.mouseSeen
}

// Reset forgets every active touch contact without delivering any events.
// The mouse contact and the history of previous positions are kept.
func (d *Dispatcher) Reset() {
	d.slots.Reset()
	for i := range d.batches {
		d.batches[i].clear()
	}
	d.wheel = d.wheel[:0]
}

// deliver an event to the listener, remembering the first error.
func (d *Dispatcher) deliver(ev userinput.Event) {
	if err := d.listener.HandleEvent(ev); err != nil && d.listenerErr == nil {
		d.listenerErr = err
	}
}

func (d *Dispatcher) activeTouch() []userinput.Contact {
	var active []userinput.Contact
	for s := range d.slots.Capacity() {
		if d.slots.Occupied(s) {
			active = append(active, d.touch[s])
		}
	}
	return active
}

func (d *Dispatcher) active(cat userinput.Category) []userinput.Contact {
	switch cat {
	case userinput.Mouse:
		if d.mouseSeen {
			return []userinput.Contact{d.mouse}
		}
	case userinput.Touch:
		return d.activeTouch()
	}
	return nil
}

// emitPointer delivers one event for every phase with changed contacts and
// then clears the batches.
func (d *Dispatcher) emitPointer(cat userinput.Category, multi bool) {
	var active []userinput.Contact
	if multi {
		active = d.active(cat)
	}

	for ph := range userinput.NumPhases {
		b := &d.batches[ph]
		if len(b.contacts) == 0 {
			continue
		}

		ev := userinput.EventPointer{
			Source:   cat,
			Phase:    ph,
			Time:     b.time,
			Contacts: slices.Clone(b.contacts),
			Active:   slices.Clone(active),
			Buttons:  b.buttons,
		}
		b.clear()

		d.deliver(ev)
	}
}

// the previous position for a contact that is not being tracked. the
// position supplied with the sample is preferred over the history pool.
func (d *Dispatcher) untrackedPrevious(cat userinput.Category, id uint64, s userinput.Sample) (float64, float64) {
	if s.HasPrev {
		return s.PrevX, s.PrevY
	}
	if x, y, ok := d.history.FindPrevious(cat, id); ok {
		return x, y
	}
	return s.X, s.Y
}

func (d *Dispatcher) record(cat userinput.Category, id uint64, x, y float64, t time.Duration) {
	d.history.Record(history.Entry{
		Category: cat,
		ID:       id,
		X:        x,
		Y:        y,
		Time:     t,
	})
}
