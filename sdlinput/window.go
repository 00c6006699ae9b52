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
	"math"
	"runtime"
	"sync/atomic"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/tactile-go/tactile/curated"
	"github.com/tactile-go/tactile/diagnostics"
	"github.com/tactile-go/tactile/logger"
	"github.com/tactile-go/tactile/queue"
)

// Sentinal error patterns.
const (
	SDLError = "sdl: %v"
)

// Window is an SDL window that is the source of input events. It implements
// the userinput.View interface.
//
// SDL requires that all calls are made from the main thread. The Window
// should be created and polled from the same goroutine. PixelRatio() can be
// called from any goroutine.
type Window struct {
	window *sdl.Window
	q      *queue.Queue
	diag   diagnostics.Reporter
	tr     Translator

	// accelerometers opened by NewWindow
	sensors []*sdl.Sensor

	// pixel ratio as measured by the most recent call to Poll(). stored as
	// the bits of a float64
	ratio atomic.Uint64

	quit bool
}

// NewWindow is the preferred method of initialisation for the Window type.
// Translated events are pushed to the queue. Events that cannot be
// translated are reported to diag, which can be nil.
func NewWindow(title string, width, height int32, q *queue.Queue, diag diagnostics.Reporter) (*Window, error) {
	runtime.LockOSThread()

	if diag == nil {
		diag = diagnostics.Discard
	}

	err := sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		width, height, sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	logger.Logf(logger.Allow, "sdl", "opened window (%dx%d)", width, height)

	win := &Window{
		window: window,
		q:      q,
		diag:   diag,
	}
	win.measure()
	win.openAccelerometers()

	return win, nil
}

// open every accelerometer attached to the system. SDL does not deliver
// sensor events for sensors that have not been opened.
func (win *Window) openAccelerometers() {
	for i := range sdl.NumSensors() {
		if sdl.SensorGetDeviceType(i) != sdl.SENSOR_ACCEL {
			continue
		}
		s := sdl.SensorOpen(i)
		if s == nil {
			logger.Logf(logger.Allow, "sdl", "cannot open accelerometer (%s)", sdl.SensorGetDeviceName(i))
			continue
		}
		win.sensors = append(win.sensors, s)
		win.tr.AddAccelerometer(int32(s.GetInstanceID()))
		logger.Logf(logger.Allow, "sdl", "opened accelerometer (%s)", sdl.SensorGetDeviceName(i))
	}
}

// Destroy the window and shutdown SDL.
func (win *Window) Destroy() {
	for _, s := range win.sensors {
		s.Close()
	}
	win.sensors = nil
	if win.window != nil {
		_ = win.window.Destroy()
		win.window = nil
	}
	sdl.Quit()
}

// measure the pixel ratio of the window. returns the drawable size.
func (win *Window) measure() (int32, int32) {
	dw, dh := win.window.GLGetDrawableSize()
	w, _ := win.window.GetSize()

	r := 1.0
	if w > 0 {
		r = float64(dw) / float64(w)
	}
	win.ratio.Store(math.Float64bits(r))

	return dw, dh
}

// PixelRatio implements the userinput.View interface.
func (win *Window) PixelRatio() float64 {
	return math.Float64frombits(win.ratio.Load())
}

// Poll all pending SDL events and push the translated samples to the queue.
// Returns false once the window has been asked to close.
func (win *Window) Poll() bool {
	width, height := win.measure()

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev.(type) {
		case *sdl.QuitEvent:
			win.quit = true
			continue
		case *sdl.WindowEvent:
			width, height = win.measure()
			continue
		case *sdl.TextInputEvent, *sdl.TextEditingEvent:
			// key presses are reported through the KeyboardEvent
			continue
		}

		if FromTouch(ev) {
			continue
		}

		cat, s, ok := win.tr.Translate(ev, width, height)
		if !ok {
			win.diag.Report(diagnostics.UntranslatedEvent, describe(ev))
			continue
		}
		win.q.Push(cat, s)
	}

	return !win.quit
}
