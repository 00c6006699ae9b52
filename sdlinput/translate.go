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

package sdlinput

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/tactile-go/tactile/userinput"
)

// Translator converts SDL events into samples. It keeps track of the mouse
// buttons currently held so that a button press can be reported as the
// beginning of a mouse contact.
//
// The zero value is ready to use.
type Translator struct {
	buttons userinput.MouseButtons

	// most recent mouse position. used for wheel events, which do not carry
	// a position
	x, y float64

	// instance IDs of the sensors that are accelerometers. events from any
	// other sensor are not translated
	accel map[int32]bool
}

// AddAccelerometer registers the instance ID of an open accelerometer
// sensor.
func (tr *Translator) AddAccelerometer(id int32) {
	if tr.accel == nil {
		tr.accel = make(map[int32]bool)
	}
	tr.accel[id] = true
}

func timestamp(ms uint32) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func mouseButton(b uint8) userinput.MouseButtons {
	switch b {
	case sdl.BUTTON_LEFT:
		return userinput.ButtonPrimary
	case sdl.BUTTON_RIGHT:
		return userinput.ButtonSecondary
	case sdl.BUTTON_MIDDLE:
		return userinput.ButtonTertiary
	}
	return 0
}

func mouseState(state uint32) userinput.MouseButtons {
	var b userinput.MouseButtons
	if state&sdl.Button(sdl.BUTTON_LEFT) != 0 {
		b |= userinput.ButtonPrimary
	}
	if state&sdl.Button(sdl.BUTTON_RIGHT) != 0 {
		b |= userinput.ButtonSecondary
	}
	if state&sdl.Button(sdl.BUTTON_MIDDLE) != 0 {
		b |= userinput.ButtonTertiary
	}
	return b
}

func keyMod(mod uint16) userinput.KeyMod {
	var m userinput.KeyMod
	if mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
		m |= userinput.ModShift
	}
	if mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
		m |= userinput.ModCtrl
	}
	if mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT {
		m |= userinput.ModAlt
	}
	if mod&sdl.KMOD_LGUI == sdl.KMOD_LGUI || mod&sdl.KMOD_RGUI == sdl.KMOD_RGUI {
		m |= userinput.ModSuper
	}
	return m
}

// Translate an SDL event. The width and height arguments are the drawable
// size of the window and are used to scale touch coordinates.
//
// Returns false if the event is not an input event or if it is a mouse event
// synthesised from touch input.
func (tr *Translator) Translate(ev sdl.Event, width, height int32) (userinput.Category, userinput.Sample, bool) {
	switch ev := ev.(type) {
	case *sdl.MouseButtonEvent:
		if ev.Which == sdl.TOUCH_MOUSEID {
			return 0, userinput.Sample{}, false
		}

		tr.x, tr.y = float64(ev.X), float64(ev.Y)
		s := userinput.Sample{
			X:    tr.x,
			Y:    tr.y,
			Time: timestamp(ev.Timestamp),
		}

		b := mouseButton(ev.Button)
		switch ev.Type {
		case sdl.MOUSEBUTTONDOWN:
			if tr.buttons == 0 {
				s.Kind = userinput.Begin
			} else {
				s.Kind = userinput.Move
			}
			tr.buttons |= b
		case sdl.MOUSEBUTTONUP:
			tr.buttons &^= b
			if tr.buttons == 0 {
				s.Kind = userinput.End
			} else {
				s.Kind = userinput.Move
			}
		default:
			return 0, userinput.Sample{}, false
		}
		s.Buttons = tr.buttons

		return userinput.Mouse, s, true

	case *sdl.MouseMotionEvent:
		if ev.Which == sdl.TOUCH_MOUSEID {
			return 0, userinput.Sample{}, false
		}

		tr.buttons = mouseState(ev.State)
		tr.x, tr.y = float64(ev.X), float64(ev.Y)

		return userinput.Mouse, userinput.Sample{
			Kind:    userinput.Move,
			X:       tr.x,
			Y:       tr.y,
			PrevX:   float64(ev.X - ev.XRel),
			PrevY:   float64(ev.Y - ev.YRel),
			HasPrev: true,
			Time:    timestamp(ev.Timestamp),
			Buttons: tr.buttons,
		}, true

	case *sdl.MouseWheelEvent:
		if ev.Which == sdl.TOUCH_MOUSEID {
			return 0, userinput.Sample{}, false
		}

		x, y := float64(ev.X), float64(ev.Y)
		if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
			x, y = -x, -y
		}

		return userinput.Mouse, userinput.Sample{
			Kind:    userinput.Wheel,
			X:       tr.x,
			Y:       tr.y,
			WheelX:  x,
			WheelY:  y,
			Time:    timestamp(ev.Timestamp),
			Buttons: tr.buttons,
		}, true

	case *sdl.TouchFingerEvent:
		s := userinput.Sample{
			ID:      uint64(ev.FingerID),
			X:       float64(ev.X) * float64(width),
			Y:       float64(ev.Y) * float64(height),
			PrevX:   float64(ev.X-ev.DX) * float64(width),
			PrevY:   float64(ev.Y-ev.DY) * float64(height),
			HasPrev: ev.Type == sdl.FINGERMOTION,
			Time:    timestamp(ev.Timestamp),
		}

		switch ev.Type {
		case sdl.FINGERDOWN:
			s.Kind = userinput.Begin
		case sdl.FINGERMOTION:
			s.Kind = userinput.Move
		case sdl.FINGERUP:
			s.Kind = userinput.End
		default:
			return 0, userinput.Sample{}, false
		}

		return userinput.Touch, s, true

	case *sdl.KeyboardEvent:
		s := userinput.Sample{
			Key:    sdl.GetKeyName(ev.Keysym.Sym),
			Mod:    keyMod(ev.Keysym.Mod),
			Repeat: ev.Repeat != 0,
			Time:   timestamp(ev.Timestamp),
		}

		switch ev.Type {
		case sdl.KEYDOWN:
			s.Kind = userinput.KeyDown
		case sdl.KEYUP:
			s.Kind = userinput.KeyUp
		default:
			return 0, userinput.Sample{}, false
		}

		return userinput.Keyboard, s, true

	case *sdl.SensorEvent:
		if !tr.accel[ev.Which] {
			return 0, userinput.Sample{}, false
		}
		return userinput.Accelerometer, userinput.Sample{
			Kind: userinput.Motion,
			X:    float64(ev.Data[0]),
			Y:    float64(ev.Data[1]),
			Z:    float64(ev.Data[2]),
			Time: timestamp(ev.Timestamp),
		}, true
	}

	return 0, userinput.Sample{}, false
}

// FromTouch returns true if the event is a mouse event that SDL synthesised
// from touch input.
func FromTouch(ev sdl.Event) bool {
	switch ev := ev.(type) {
	case *sdl.MouseButtonEvent:
		return ev.Which == sdl.TOUCH_MOUSEID
	case *sdl.MouseMotionEvent:
		return ev.Which == sdl.TOUCH_MOUSEID
	case *sdl.MouseWheelEvent:
		return ev.Which == sdl.TOUCH_MOUSEID
	}
	return false
}

// describe an event for diagnostic purposes.
func describe(ev sdl.Event) string {
	return fmt.Sprintf("%T (type %#x)", ev, ev.GetType())
}
