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

package userinput

import (
	"fmt"
	"time"
)

// Phase is the lifecycle stage of a contact.
type Phase int

// List of phases. Events for the same category in the same frame are
// delivered in this order.
const (
	PhaseBegin Phase = iota
	PhaseMove
	PhaseEnd
	PhaseCancel
	NumPhases
)

func (p Phase) String() string {
	switch p {
	case PhaseBegin:
		return "begin"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	case PhaseCancel:
		return "cancel"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Event represents all the different type of events that can be delivered
// to a Listener.
type Event interface{}

// EventPointer is delivered once per frame for every category/phase pair
// with at least one changed contact. Source is either Mouse or Touch.
type EventPointer struct {
	Source Category
	Phase  Phase

	// timestamp of the most recent sample that contributed to the event
	Time time.Duration

	// the contacts that changed in this phase, in the order their samples
	// arrived
	Contacts []Contact

	// every active contact in slot order, after all the samples for the
	// category have been processed. nil unless multi-contact mode is enabled
	Active []Contact

	// mouse button state of the most recent sample. always zero for touch
	// events
	Buttons MouseButtons
}

func (ev EventPointer) String() string {
	return fmt.Sprintf("%s %s %v", ev.Source, ev.Phase, ev.Contacts)
}

// EventMouseWheel is delivered for every mouse wheel sample. Deltas are
// passed through unmodified.
type EventMouseWheel struct {
	Time    time.Duration
	X, Y    float64
	DeltaX  float64
	DeltaY  float64
	Buttons MouseButtons
}

func (ev EventMouseWheel) String() string {
	return fmt.Sprintf("wheel %.1f,%.1f", ev.DeltaX, ev.DeltaY)
}

// EventKeyboard is delivered for every key sample.
type EventKeyboard struct {
	Time   time.Duration
	Key    string
	Down   bool
	Mod    KeyMod
	Repeat bool
}

func (ev EventKeyboard) String() string {
	if ev.Down {
		return fmt.Sprintf("key down %s", ev.Key)
	}
	return fmt.Sprintf("key up %s", ev.Key)
}

// EventMotion is delivered for every accelerometer motion sample. The axis
// values are raw.
type EventMotion struct {
	Time    time.Duration
	X, Y, Z float64
}

func (ev EventMotion) String() string {
	return fmt.Sprintf("motion %.3f,%.3f,%.3f", ev.X, ev.Y, ev.Z)
}
