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
	"github.com/tactile-go/tactile/diagnostics"
	"github.com/tactile-go/tactile/slots"
	"github.com/tactile-go/tactile/userinput"
)

func (d *Dispatcher) touchPass(samples []userinput.Sample, multi bool) {
	for _, s := range samples {
		d.touchSample(s)
	}
	d.emitPointer(userinput.Touch, multi)
}

func (d *Dispatcher) touchSample(s userinput.Sample) {
	ph, ok := s.Kind.Phase()
	if !ok {
		d.diag.Report(diagnostics.UnknownSampleKind, userinput.Touch, s.Kind)
		return
	}

	// the position is remembered whether or not the contact is tracked. this
	// must happen after the previous position has been decided
	defer d.record(userinput.Touch, s.ID, s.X, s.Y, s.Time)

	slot, tracked := d.slots.IsTracked(s.ID)

	if ph == userinput.PhaseBegin {
		// a repeated Begin for a contact that is already tracked is ignored
		if tracked {
			return
		}

		px, py := d.untrackedPrevious(userinput.Touch, s.ID, s)

		d.acquiring = s.ID
		slot = d.slots.Acquire(s.ID, s.Time)
		if slot == slots.NoSlot {
			d.diag.Report(diagnostics.SlotsExhausted, s.ID)
			return
		}

		d.touch[slot] = userinput.Contact{
			Slot:         slot,
			ID:           s.ID,
			X:            s.X,
			Y:            s.Y,
			PrevX:        px,
			PrevY:        py,
			LastModified: s.Time,
		}
		d.batches[ph].add(d.touch[slot], s)
		return
	}

	// move, end or cancel for a contact that is not tracked
	if !tracked {
		return
	}

	c := &d.touch[slot]
	c.PrevX, c.PrevY = c.X, c.Y
	c.X, c.Y = s.X, s.Y
	c.LastModified = s.Time

	switch ph {
	case userinput.PhaseMove:
		d.slots.Touch(slot, s.Time)
		d.batches[ph].replace(*c, s)
	case userinput.PhaseEnd, userinput.PhaseCancel:
		d.slots.Release(slot)
		d.slots.Forget(s.ID)
		d.batches[ph].add(*c, s)
	}
}

func (d *Dispatcher) mousePass(samples []userinput.Sample, multi bool) {
	ratio := userinput.PixelRatio(d.view)

	for _, s := range samples {
		s.X *= ratio
		s.Y *= ratio
		s.PrevX *= ratio
		s.PrevY *= ratio
		d.mouseSample(s)
	}

	d.emitPointer(userinput.Mouse, multi)

	for _, ev := range d.wheel {
		d.deliver(ev)
	}
	d.wheel = d.wheel[:0]
}

func (d *Dispatcher) mouseSample(s userinput.Sample) {
	if s.Kind == userinput.Wheel {
		d.wheel = append(d.wheel, userinput.EventMouseWheel{
			Time:    s.Time,
			X:       s.X,
			Y:       s.Y,
			DeltaX:  s.WheelX,
			DeltaY:  s.WheelY,
			Buttons: s.Buttons,
		})
		return
	}

	ph, ok := s.Kind.Phase()
	if !ok {
		d.diag.Report(diagnostics.UnknownSampleKind, userinput.Mouse, s.Kind)
		return
	}

	defer d.record(userinput.Mouse, userinput.MouseID, s.X, s.Y, s.Time)

	if d.mouseSeen {
		d.mouse.PrevX, d.mouse.PrevY = d.mouse.X, d.mouse.Y
	} else {
		d.mouse.PrevX, d.mouse.PrevY = d.untrackedPrevious(userinput.Mouse, userinput.MouseID, s)
		d.mouseSeen = true
	}

	d.mouse.Slot = 0
	d.mouse.ID = userinput.MouseID
	d.mouse.X, d.mouse.Y = s.X, s.Y
	d.mouse.LastModified = s.Time

	if ph == userinput.PhaseMove {
		d.batches[ph].replace(d.mouse, s)
	} else {
		d.batches[ph].add(d.mouse, s)
	}
}
