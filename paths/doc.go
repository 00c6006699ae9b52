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

// Package paths contains functions to prepare paths to tactile resources.
//
// The ResourcePath() function prepends the supplied resource names with the
// appropriate configuration directory. For example, the following returns the
// path to the preferences file:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// The policy of ResourcePath() is simple: if the base resource directory,
// ".tactile", is present in the program's current directory then that is the
// base path that will be used. If it is not present, then the "tactile"
// directory in the user's config directory is used (see os.UserConfigDir()).
// The directory is created if necessary.
//
// On a modern Linux system the path above will be:
//
//	/home/user/.config/tactile/preferences.toml
package paths
