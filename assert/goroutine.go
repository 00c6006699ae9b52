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

// Package assert contains checks that are only useful during development.
//
// The Owner type records which goroutine first used a value and panics if a
// different goroutine uses it later. The check only happens when the program
// is built with the assertions build tag. Otherwise it compiles to nothing.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GoroutineID returns an identifier for the current goroutine. It returns a
// result that is different between goroutines and consistent for a given
// goroutine. It should only ever be used for debugging or testing purposes.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}
