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

//go:build !assertions

package assert

// Enabled is true if the assertions build tag was used.
const Enabled = false

// Owner remembers the goroutine that first called Check(). Without the
// assertions build tag it does nothing.
type Owner struct{}

// Check is a stub.
func (o *Owner) Check(_ string) {}

// Reset is a stub.
func (o *Owner) Reset() {}
