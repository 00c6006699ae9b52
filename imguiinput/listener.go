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

package imguiinput

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/tactile-go/tactile/curated"
	"github.com/tactile-go/tactile/userinput"
)

// Sentinal error patterns.
const (
	UnsupportedEvent = "imguiinput: unsupported event (%T)"
)

// IO is the part of imgui.IO used by the Listener.
type IO interface {
	SetMousePosition(imgui.Vec2)
	SetMouseButtonDown(int, bool)
	AddMouseWheelDelta(float32, float32)
	KeyMap(int, int)
	KeyPress(int)
	KeyRelease(int)
	KeyShift(int, int)
	KeyCtrl(int, int)
	KeyAlt(int, int)
	KeySuper(int, int)
	AddInputCharacters(string)
}

// indices in the imgui key array for the modifier keys. the named keys use
// their imgui value as the index so these are chosen to be clear of them.
const (
	shiftKey = 500 + iota
	ctrlKey
	altKey
	superKey
)

var namedKeys = map[string]int{
	"Tab":       imgui.KeyTab,
	"Left":      imgui.KeyLeftArrow,
	"Right":     imgui.KeyRightArrow,
	"Up":        imgui.KeyUpArrow,
	"Down":      imgui.KeyDownArrow,
	"PageUp":    imgui.KeyPageUp,
	"PageDown":  imgui.KeyPageDown,
	"Home":      imgui.KeyHome,
	"End":       imgui.KeyEnd,
	"Insert":    imgui.KeyInsert,
	"Delete":    imgui.KeyDelete,
	"Backspace": imgui.KeyBackspace,
	"Space":     imgui.KeySpace,
	"Return":    imgui.KeyEnter,
	"Enter":     imgui.KeyEnter,
	"Escape":    imgui.KeyEscape,
	"A":         imgui.KeyA,
	"C":         imgui.KeyC,
	"V":         imgui.KeyV,
	"X":         imgui.KeyX,
	"Y":         imgui.KeyY,
	"Z":         imgui.KeyZ,
}

// Listener implements the userinput.Listener interface.
type Listener struct {
	io IO

	// time of the most recent pointer event applied to the io, for each
	// source. the dispatcher delivers phases in a fixed order so an End
	// event can arrive after a newer Begin event in the same frame
	latest [userinput.NumCategories]time.Duration
}

// NewListener is the preferred method of initialisation for the Listener
// type. The io argument will usually be imgui.CurrentIO().
func NewListener(io IO) *Listener {
	for _, k := range namedKeys {
		io.KeyMap(k, k)
	}
	return &Listener{io: io}
}

// HandleEvent implements the userinput.Listener interface.
func (l *Listener) HandleEvent(ev userinput.Event) error {
	switch ev := ev.(type) {
	case userinput.EventPointer:
		l.pointer(ev)
	case userinput.EventMouseWheel:
		l.io.AddMouseWheelDelta(float32(ev.DeltaX), float32(ev.DeltaY))
	case userinput.EventKeyboard:
		l.keyboard(ev)
	case userinput.EventMotion:
	default:
		return curated.Errorf(UnsupportedEvent, ev)
	}
	return nil
}

func (l *Listener) pointer(ev userinput.EventPointer) {
	// only the contact in slot zero drives the imgui pointer
	if ev.Source == userinput.Touch && !slotZero(ev.Contacts) {
		return
	}

	if ev.Source >= 0 && ev.Source < userinput.NumCategories {
		if ev.Time < l.latest[ev.Source] {
			return
		}
		l.latest[ev.Source] = ev.Time
	}

	switch ev.Source {
	case userinput.Mouse:
		for _, c := range ev.Contacts {
			l.io.SetMousePosition(imgui.Vec2{X: float32(c.X), Y: float32(c.Y)})
		}
		l.io.SetMouseButtonDown(0, ev.Buttons&userinput.ButtonPrimary == userinput.ButtonPrimary)
		l.io.SetMouseButtonDown(1, ev.Buttons&userinput.ButtonSecondary == userinput.ButtonSecondary)
		l.io.SetMouseButtonDown(2, ev.Buttons&userinput.ButtonTertiary == userinput.ButtonTertiary)

	case userinput.Touch:
		for _, c := range ev.Contacts {
			if c.Slot != 0 {
				continue
			}
			l.io.SetMousePosition(imgui.Vec2{X: float32(c.X), Y: float32(c.Y)})
			switch ev.Phase {
			case userinput.PhaseBegin, userinput.PhaseMove:
				l.io.SetMouseButtonDown(0, true)
			case userinput.PhaseEnd, userinput.PhaseCancel:
				l.io.SetMouseButtonDown(0, false)
			}
		}
	}
}

func slotZero(contacts []userinput.Contact) bool {
	for _, c := range contacts {
		if c.Slot == 0 {
			return true
		}
	}
	return false
}

func (l *Listener) press(k int, down bool) {
	if down {
		l.io.KeyPress(k)
	} else {
		l.io.KeyRelease(k)
	}
}

func (l *Listener) keyboard(ev userinput.EventKeyboard) {
	l.press(shiftKey, ev.Mod&userinput.ModShift == userinput.ModShift)
	l.press(ctrlKey, ev.Mod&userinput.ModCtrl == userinput.ModCtrl)
	l.press(altKey, ev.Mod&userinput.ModAlt == userinput.ModAlt)
	l.press(superKey, ev.Mod&userinput.ModSuper == userinput.ModSuper)
	l.io.KeyShift(shiftKey, shiftKey)
	l.io.KeyCtrl(ctrlKey, ctrlKey)
	l.io.KeyAlt(altKey, altKey)
	l.io.KeySuper(superKey, superKey)

	key := ev.Key
	if utf8.RuneCountInString(key) == 1 {
		key = strings.ToUpper(key)
	}
	if k, ok := namedKeys[key]; ok {
		l.press(k, ev.Down)
	}

	// printable characters. control and alt combinations are shortcuts and
	// not text
	if !ev.Down || ev.Mod&(userinput.ModCtrl|userinput.ModAlt|userinput.ModSuper) != 0 {
		return
	}
	if ev.Key == "Space" {
		l.io.AddInputCharacters(" ")
		return
	}
	if utf8.RuneCountInString(ev.Key) == 1 {
		if ev.Mod&userinput.ModShift == userinput.ModShift {
			l.io.AddInputCharacters(strings.ToUpper(ev.Key))
		} else {
			l.io.AddInputCharacters(strings.ToLower(ev.Key))
		}
	}
}
