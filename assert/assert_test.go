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

package assert_test

import (
	"testing"

	"github.com/tactile-go/tactile/assert"
	"github.com/tactile-go/tactile/test"
)

func TestGoroutineID(t *testing.T) {
	a := assert.GoroutineID()
	test.ExpectEquality(t, assert.GoroutineID(), a)

	ch := make(chan uint64)
	go func() {
		ch <- assert.GoroutineID()
	}()
	test.ExpectInequality(t, <-ch, a)
}

func TestOwner(t *testing.T) {
	var o assert.Owner
	o.Check("test")
	o.Check("test")

	panicked := make(chan bool)
	go func() {
		defer func() {
			panicked <- recover() != nil
		}()
		o.Check("test")
	}()
	test.ExpectEquality(t, <-panicked, assert.Enabled)

	o.Reset()
	go func() {
		defer func() {
			panicked <- recover() != nil
		}()
		o.Check("test")
	}()
	test.ExpectEquality(t, <-panicked, false)
}
