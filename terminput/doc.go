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

// Package terminput reads key presses from a terminal and queues them as
// keyboard samples.
//
// The terminal is put into cbreak mode when opened and is restored when
// closed. In cbreak mode key presses are available immediately and are not
// echoed. Interrupt keys still raise a signal.
// A terminal reports key presses but not key releases, so every key produces
// a KeyDown sample immediately followed by a KeyUp sample.
//
// Escape sequences for the cursor keys are recognised. Control characters
// are reported as the corresponding letter with the ModCtrl modifier.
package terminput
