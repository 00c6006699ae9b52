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
	"strings"
	"time"
)

// Kind of sample.
type Kind int

// List of valid sample kinds.
const (
	// contact kinds. used by mouse and touch samples
	Begin Kind = iota
	Move
	End
	Cancel

	// mouse wheel
	Wheel

	// keyboard
	KeyDown
	KeyUp

	// accelerometer
	Motion

	numKinds
)

var kindNames = [numKinds]string{
	Begin:   "begin",
	Move:    "move",
	End:     "end",
	Cancel:  "cancel",
	Wheel:   "wheel",
	KeyDown: "keydown",
	KeyUp:   "keyup",
	Motion:  "motion",
}

func (k Kind) String() string {
	if k >= 0 && k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String().
func ParseKind(s string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(s, n) {
			return Kind(k), nil
		}
	}
	return numKinds, fmt.Errorf("unrecognised sample kind (%s)", s)
}

// Phase returns the contact phase for contact kinds. The second return value
// is false if the kind is not a contact kind.
func (k Kind) Phase() (Phase, bool) {
	switch k {
	case Begin:
		return PhaseBegin, true
	case Move:
		return PhaseMove, true
	case End:
		return PhaseEnd, true
	case Cancel:
		return PhaseCancel, true
	}
	return NumPhases, false
}

// MouseButtons is the set of mouse buttons pressed at the time of a sample.
type MouseButtons uint8

// List of mouse buttons.
const (
	ButtonPrimary MouseButtons = 1 << iota
	ButtonSecondary
	ButtonTertiary
)

func (b MouseButtons) String() string {
	var s []string
	if b&ButtonPrimary != 0 {
		s = append(s, "primary")
	}
	if b&ButtonSecondary != 0 {
		s = append(s, "secondary")
	}
	if b&ButtonTertiary != 0 {
		s = append(s, "tertiary")
	}
	return strings.Join(s, "|")
}

// KeyMod is the set of modifier keys active at the time of a keyboard sample.
type KeyMod uint8

// List of key modifiers.
const (
	ModShift KeyMod = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Sample is a single raw input sample produced by a platform source. Samples
// are values and are never modified once queued.
//
// Which fields are meaningful depends on the Kind:
//
//	Begin, Move, End, Cancel: ID, X, Y, PrevX, PrevY, HasPrev, Buttons
//	Wheel: X, Y, WheelX, WheelY, Buttons
//	KeyDown, KeyUp: Key, Mod, Repeat
//	Motion: X, Y, Z (the raw accelerometer axes)
//
// The ID of mouse samples is ignored. The mouse is always contact zero.
type Sample struct {
	Kind Kind

	// external identifier of a touch contact, as supplied by the platform
	ID uint64

	X, Y float64

	// the previous position of the contact, if the platform knows it
	PrevX, PrevY float64
	HasPrev      bool

	// when the sample was taken, relative to an undefined base
	Time time.Duration

	Buttons MouseButtons

	WheelX, WheelY float64

	Key    string
	Mod    KeyMod
	Repeat bool

	Z float64
}
