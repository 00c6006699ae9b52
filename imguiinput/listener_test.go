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

package imguiinput_test

import (
	"testing"
	"time"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/tactile-go/tactile/imguiinput"
	"github.com/tactile-go/tactile/test"
	"github.com/tactile-go/tactile/userinput"
)

type fakeIO struct {
	pos     imgui.Vec2
	buttons [3]bool
	wheel   [2]float32
	keymap  map[int]int
	down    map[int]bool
	text    string
	shift   bool
	ctrl    bool
}

func newFakeIO() *fakeIO {
	return &fakeIO{
		keymap: make(map[int]int),
		down:   make(map[int]bool),
	}
}

func (io *fakeIO) SetMousePosition(p imgui.Vec2) { io.pos = p }
func (io *fakeIO) SetMouseButtonDown(i int, down bool) { io.buttons[i] = down }
func (io *fakeIO) AddMouseWheelDelta(x, y float32) {
	io.wheel[0] += x
	io.wheel[1] += y
}
func (io *fakeIO) KeyMap(k int, n int) { io.keymap[k] = n }
func (io *fakeIO) KeyPress(k int) { io.down[k] = true }
func (io *fakeIO) KeyRelease(k int) { io.down[k] = false }
func (io *fakeIO) KeyShift(l int, r int) { io.shift = io.down[l] || io.down[r] }
func (io *fakeIO) KeyCtrl(l int, r int) { io.ctrl = io.down[l] || io.down[r] }
func (io *fakeIO) KeyAlt(_ int, _ int) {}
func (io *fakeIO) KeySuper(_ int, _ int) {}
func (io *fakeIO) AddInputCharacters(s string) { io.text += s }

func TestMouse(t *testing.T) {
	io := newFakeIO()
	l := imguiinput.NewListener(io)

	err := l.HandleEvent(userinput.EventPointer{
		Source:   userinput.Mouse,
		Phase:    userinput.PhaseBegin,
		Contacts: []userinput.Contact{{X: 10, Y: 20}},
		Buttons:  userinput.ButtonPrimary | userinput.ButtonTertiary,
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, io.pos, imgui.Vec2{X: 10, Y: 20})
	test.ExpectEquality(t, io.buttons, [3]bool{true, false, true})

	err = l.HandleEvent(userinput.EventMouseWheel{DeltaX: 1, DeltaY: -2})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, io.wheel, [2]float32{1, -2})
}

func TestMouseReleaseAndPressInFrame(t *testing.T) {
	io := newFakeIO()
	l := imguiinput.NewListener(io)

	test.ExpectSuccess(t, l.HandleEvent(userinput.EventPointer{
		Source:   userinput.Mouse,
		Phase:    userinput.PhaseBegin,
		Time:     time.Millisecond,
		Contacts: []userinput.Contact{{X: 1, Y: 1}},
		Buttons:  userinput.ButtonPrimary,
	}))
	test.ExpectEquality(t, io.buttons, [3]bool{true, false, false})

	// release at 2ms and press again at 3ms in the same frame. the Begin
	// event is delivered before the End event
	test.ExpectSuccess(t, l.HandleEvent(userinput.EventPointer{
		Source:   userinput.Mouse,
		Phase:    userinput.PhaseBegin,
		Time:     3 * time.Millisecond,
		Contacts: []userinput.Contact{{X: 5, Y: 5}},
		Buttons:  userinput.ButtonPrimary,
	}))
	test.ExpectSuccess(t, l.HandleEvent(userinput.EventPointer{
		Source:   userinput.Mouse,
		Phase:    userinput.PhaseEnd,
		Time:     2 * time.Millisecond,
		Contacts: []userinput.Contact{{X: 3, Y: 3}},
	}))
	test.ExpectEquality(t, io.buttons, [3]bool{true, false, false})
	test.ExpectEquality(t, io.pos, imgui.Vec2{X: 5, Y: 5})

	// a later release is applied
	test.ExpectSuccess(t, l.HandleEvent(userinput.EventPointer{
		Source:   userinput.Mouse,
		Phase:    userinput.PhaseEnd,
		Time:     4 * time.Millisecond,
		Contacts: []userinput.Contact{{X: 6, Y: 6}},
	}))
	test.ExpectEquality(t, io.buttons, [3]bool{false, false, false})
	test.ExpectEquality(t, io.pos, imgui.Vec2{X: 6, Y: 6})
}

func TestTouch(t *testing.T) {
	io := newFakeIO()
	l := imguiinput.NewListener(io)

	// only the contact in slot zero moves the pointer
	_ = l.HandleEvent(userinput.EventPointer{
		Source:   userinput.Touch,
		Phase:    userinput.PhaseBegin,
		Contacts: []userinput.Contact{{Slot: 1, ID: 9, X: 1, Y: 1}, {Slot: 0, ID: 5, X: 30, Y: 40}},
	})
	test.ExpectEquality(t, io.pos, imgui.Vec2{X: 30, Y: 40})
	test.ExpectEquality(t, io.buttons[0], true)

	_ = l.HandleEvent(userinput.EventPointer{
		Source:   userinput.Touch,
		Phase:    userinput.PhaseEnd,
		Contacts: []userinput.Contact{{Slot: 0, ID: 5, X: 31, Y: 41}},
	})
	test.ExpectEquality(t, io.pos, imgui.Vec2{X: 31, Y: 41})
	test.ExpectEquality(t, io.buttons[0], false)

	// a newer event for another slot does not hide an older event for slot
	// zero
	_ = l.HandleEvent(userinput.EventPointer{
		Source:   userinput.Touch,
		Phase:    userinput.PhaseBegin,
		Time:     time.Millisecond,
		Contacts: []userinput.Contact{{Slot: 0, ID: 6, X: 50, Y: 50}},
	})
	_ = l.HandleEvent(userinput.EventPointer{
		Source:   userinput.Touch,
		Phase:    userinput.PhaseMove,
		Time:     3 * time.Millisecond,
		Contacts: []userinput.Contact{{Slot: 1, ID: 9, X: 2, Y: 2}},
	})
	_ = l.HandleEvent(userinput.EventPointer{
		Source:   userinput.Touch,
		Phase:    userinput.PhaseEnd,
		Time:     2 * time.Millisecond,
		Contacts: []userinput.Contact{{Slot: 0, ID: 6, X: 51, Y: 51}},
	})
	test.ExpectEquality(t, io.pos, imgui.Vec2{X: 51, Y: 51})
	test.ExpectEquality(t, io.buttons[0], false)
}

func TestKeyboard(t *testing.T) {
	io := newFakeIO()
	l := imguiinput.NewListener(io)
	test.ExpectEquality(t, io.keymap[imgui.KeyTab], imgui.KeyTab)

	_ = l.HandleEvent(userinput.EventKeyboard{Key: "Tab", Down: true})
	test.ExpectEquality(t, io.down[imgui.KeyTab], true)
	_ = l.HandleEvent(userinput.EventKeyboard{Key: "Tab", Down: false})
	test.ExpectEquality(t, io.down[imgui.KeyTab], false)

	// printable keys are also text
	_ = l.HandleEvent(userinput.EventKeyboard{Key: "a", Down: true})
	_ = l.HandleEvent(userinput.EventKeyboard{Key: "a", Down: false})
	_ = l.HandleEvent(userinput.EventKeyboard{Key: "B", Down: true, Mod: userinput.ModShift})
	_ = l.HandleEvent(userinput.EventKeyboard{Key: "Space", Down: true})
	test.ExpectEquality(t, io.text, "aB ")
	test.ExpectEquality(t, io.shift, false)

	// shortcuts are not text
	_ = l.HandleEvent(userinput.EventKeyboard{Key: "c", Down: true, Mod: userinput.ModCtrl})
	test.ExpectEquality(t, io.text, "aB ")
	test.ExpectEquality(t, io.ctrl, true)
	test.ExpectEquality(t, io.down[imgui.KeyC], true)
}

func TestUnsupported(t *testing.T) {
	l := imguiinput.NewListener(newFakeIO())
	test.ExpectSuccess(t, l.HandleEvent(userinput.EventMotion{X: 1}))
	test.ExpectFailure(t, l.HandleEvent(nil))
}
