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

// Package prefs facilitates the storage of preferential values in the
// application. Preference values are typed (Bool, Int, Float, String and
// Duration) and safe to read from any goroutine.
//
// Values are associated with a key and registered with a Disk instance. The
// Disk type saves and loads registered values to and from a TOML file.
//
//	var slots prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	_ = dsk.Add("dispatcher.maxSlots", &slots)
//	_ = dsk.Load()
//
// Values can also be specified on the command line, in the form:
//
//	key::value; key::value
//
// The string is added with PushCommandLineStack() and values in the most
// recently pushed group take precedence over values on disk the next time
// Load() is called.
//
// Each type can have a function hooked to it, called just before or just after
// a new value is set. A hook that returns an error prevents the new value from
// being stored (pre-hook) or is returned to the caller of Set() (post-hook).
package prefs
