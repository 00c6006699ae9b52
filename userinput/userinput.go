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

// Source is a platform collaborator that accumulates samples. Drain returns
// the samples accumulated for the category since the previous call and
// clears them. Drain must never block.
type Source interface {
	Drain(cat Category) []Sample
}

// View supplies the ratio between physical and logical pixels. Mouse
// coordinates are multiplied by the ratio.
type View interface {
	PixelRatio() float64
}

// FixedView is a View with a constant pixel ratio.
type FixedView float64

// PixelRatio implements the View interface.
func (v FixedView) PixelRatio() float64 {
	return float64(v)
}

// PixelRatio returns the pixel ratio of the view. A nil view, or a view that
// reports a ratio that is not positive, is treated as a ratio of one.
func PixelRatio(v View) float64 {
	if v == nil {
		return 1.0
	}
	r := v.PixelRatio()
	if r <= 0 {
		return 1.0
	}
	return r
}

// Listener receives events from the dispatcher. Delivery is synchronous.
type Listener interface {
	HandleEvent(ev Event) error
}

// ListenerFunc allows a function to be used as a Listener.
type ListenerFunc func(ev Event) error

// HandleEvent implements the Listener interface.
func (f ListenerFunc) HandleEvent(ev Event) error {
	return f(ev)
}

// Listeners fans a single event out to a list of listeners, in order. Every
// listener receives the event even if an earlier listener fails. The first
// error is returned.
type Listeners []Listener

// HandleEvent implements the Listener interface.
func (l Listeners) HandleEvent(ev Event) error {
	var first error
	for _, h := range l {
		if err := h.HandleEvent(ev); err != nil && first == nil {
			first = err
		}
	}
	return first
}
