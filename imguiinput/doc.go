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

// Package imguiinput forwards dispatcher events to Dear ImGui.
//
// The mouse pointer is forwarded as is. The touch contact in slot zero is
// forwarded as if it were the mouse with the primary button held, which is
// enough to operate widgets by touch. Keyboard events are forwarded as key
// presses and releases. Printable keys are also forwarded as input
// characters.
//
// Accelerometer events are not forwarded.
package imguiinput
