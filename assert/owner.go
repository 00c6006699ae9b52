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

//go:build assertions

package assert

import (
	"fmt"
	"sync/atomic"
)

// Enabled is true if the assertions build tag was used.
const Enabled = true

// Owner remembers the goroutine that first called Check().
type Owner struct {
	id atomic.Uint64
}

// Check panics if it is called from a goroutine other than the goroutine
// that called it first.
func (o *Owner) Check(label string) {
	id := GoroutineID()
	if o.id.CompareAndSwap(0, id) {
		return
	}
	if own := o.id.Load(); own != id {
		panic(fmt.Sprintf("%s: used by goroutine %d but owned by goroutine %d", label, id, own))
	}
}

// Reset forgets the owning goroutine.
func (o *Owner) Reset() {
	o.id.Store(0)
}
