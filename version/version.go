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

// Package version reports the version of the application. The version is
// taken from the linker, if set, and otherwise from the build information
// embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Tactile"

// number is set by the linker for release builds. eg.
//
//	go build -ldflags "-X github.com/tactile-go/tactile/version.number=v0.1.0"
var number string

// Info describes the build.
type Info struct {
	// Version is the release number. It is "unreleased" if the build has
	// version control information but no release number and "local" if it
	// has neither
	Version string

	// Revision is the version control revision. It is suffixed with "+dirty"
	// if the source has been modified since the revision
	Revision string

	// Release is true if Version is a release number
	Release bool
}

func (inf Info) String() string {
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Version, inf.Revision)
}

var info Info

// Version returns information about the current build.
func Version() Info {
	return info
}

func init() {
	info = fromBuildInfo(number, debug.ReadBuildInfo)
}

func fromBuildInfo(number string, read func() (*debug.BuildInfo, bool)) Info {
	var vcs bool
	var inf Info

	bi, ok := read()
	if ok {
		var modified bool
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				inf.Revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
		if inf.Revision != "" && modified {
			inf.Revision = fmt.Sprintf("%s+dirty", inf.Revision)
		}
	}

	if inf.Revision == "" {
		inf.Revision = "no revision information"
	}

	switch {
	case number != "":
		inf.Version = number
		inf.Release = true
	case vcs:
		inf.Version = "unreleased"
	default:
		inf.Version = "local"
	}

	return inf
}
