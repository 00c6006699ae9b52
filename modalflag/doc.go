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

// Package modalflag wraps the flag package of the standard library. It
// provides a way of handling program modes and allows different flags for each
// mode.
//
// Arguments are given to NewArgs() and flags are added with the Add*()
// functions. Parse() then processes the flags:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	fps := md.AddInt("fps", 60, "frames per second")
//	md.AddSubModes("SDL", "TERM", "PLAYBACK")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After parsing, the first argument that isn't a flag is compared against
// the list of sub-modes. If it matches, that sub-mode is selected and the
// argument is consumed. Otherwise the first sub-mode in the list is selected
// as the default. Comparisons are case insensitive and sub-modes are always
// reported in upper case. Mode() returns the selected sub-mode.
//
// A sub-mode can have its own flags and sub-modes by calling NewMode() and
// then Parse() again. Path() returns every mode selected so far, separated by
// a forward slash.
package modalflag
