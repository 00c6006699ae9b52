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

package performance_test

import (
	"strings"
	"testing"
	"time"

	"github.com/tactile-go/tactile/dispatcher"
	"github.com/tactile-go/tactile/performance"
	"github.com/tactile-go/tactile/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu, trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)

	p, err = performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfile("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfile("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	var out strings.Builder

	res, err := performance.Check(&out, performance.ProfileNone, dispatcher.DefaultPreferences(), 4, 20*time.Millisecond, 1)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, res.Passes > 0)
	test.ExpectSuccess(t, res.Samples >= res.Passes*5)
	test.ExpectSuccess(t, res.Events > 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "passes/sec"))
}

func TestCheckTooManyContacts(t *testing.T) {
	p := dispatcher.DefaultPreferences()
	test.DemandSuccess(t, p.MaxSlots.Set(2))

	// contacts beyond the number of slots are dropped but the check still
	// completes
	res, err := performance.Check(nil, performance.ProfileNone, p, 4, 10*time.Millisecond, 2)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, res.Passes > 0)
}
