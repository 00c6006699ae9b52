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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function, which is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern and
// placeholder values and returns an error.
//
// The Is() function checks whether an error was created with a specific
// pattern. The pattern is what differentiates one curated error from another.
// For example:
//
//	e := curated.Errorf("slots: invalid capacity (%d)", 100)
//
//	if curated.Is(e, "slots: invalid capacity (%d)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the error chain.
//
// Sentinel patterns should be stored as exported string constants in the
// package that creates the error, suitably named and commented.
//
// The Error() implementation normalises the error chain by removing duplicate
// adjacent parts. Parts are separated by the sub-string ": ". This means that
// callers don't need to worry about whether the function they called has
// already prefixed the message with the same context. For example:
//
//	err := curated.Errorf("playback: %v", curated.Errorf("playback: line %d", 10))
//
// will print as
//
//	playback: line 10
package curated
