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
	"github.com/tactile-go/tactile/userinput"
)

func (d *Dispatcher) keyboardPass(samples []userinput.Sample) {
	for _, s := range samples {
		switch s.Kind {
		case userinput.KeyDown, userinput.KeyUp:
			d.deliver(userinput.EventKeyboard{
				Time:   s.Time,
				Key:    s.Key,
				Down:   s.Kind == userinput.KeyDown,
				Mod:    s.Mod,
				Repeat: s.Repeat,
			})
		default:
			d.diag.Report(diagnostics.UnknownSampleKind, userinput.Keyboard, s.Kind)
		}
	}
}

func (d *Dispatcher) motionPass(samples []userinput.Sample) {
	for _, s := range samples {
		if s.Kind != userinput.Motion {
			d.diag.Report(diagnostics.UnknownSampleKind, userinput.Accelerometer, s.Kind)
			continue
		}
		d.deliver(userinput.EventMotion{
			Time: s.Time,
			X:    s.X,
			Y:    s.Y,
			Z:    s.Z,
		})
	}
}
