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

package paths

import (
	"os"
	"path/filepath"
)

// the name of the base resource directory when it is found in the current
// working directory.
const portableResourcePath = ".tactile"

// the name of the resource directory in the user's config directory.
const configResourcePath = "tactile"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the base resource path. The directory containing the
// resource is created if it doesn't already exist. The path argument can be
// empty, in which case the file is in the base directory.
func ResourcePath(path string, file string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}

	return filepath.Join(dir, file), nil
}

// getBasePath returns portableResourcePath if it exists in the current
// directory, otherwise the configResourcePath in the user's config directory.
func getBasePath() (string, error) {
	if fi, err := os.Stat(portableResourcePath); err == nil && fi.IsDir() {
		return portableResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configResourcePath), nil
}
