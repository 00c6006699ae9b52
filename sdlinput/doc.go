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

// Package sdlinput is the SDL platform collaborator. It polls SDL for mouse,
// touch, keyboard and sensor events and translates them into samples that
// are pushed onto a queue.
//
// Mouse coordinates are left in window units. The dispatcher scales them by
// the pixel ratio of the View, which the Window type implements. Touch
// coordinates arrive from SDL normalised to the range 0 to 1 and are scaled
// to the drawable size of the window, which is already in physical pixels.
//
// Mouse events that SDL synthesises from touch input are discarded. The same
// contact is reported through the touch category.
//
// Every SDL sensor event is treated as an accelerometer reading.
package sdlinput
