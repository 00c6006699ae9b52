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

package limiter_test

import (
	"testing"
	"time"

	"github.com/tactile-go/tactile/performance/limiter"
	"github.com/tactile-go/tactile/test"
)

func TestLimits(t *testing.T) {
	_, err := limiter.NewFPSLimiter(0)
	test.ExpectFailure(t, err)
	_, err = limiter.NewFPSLimiter(limiter.MaxFPS + 1)
	test.ExpectFailure(t, err)

	lim, err := limiter.NewFPSLimiter(30)
	test.DemandSuccess(t, err)
	defer lim.Stop()
	test.ExpectEquality(t, lim.Limit(), 30)
	test.ExpectEquality(t, lim.String(), "30 fps")

	test.ExpectFailure(t, lim.SetLimit(-1))
	test.ExpectEquality(t, lim.Limit(), 30)
	test.ExpectSuccess(t, lim.SetLimit(60))
	test.ExpectEquality(t, lim.Limit(), 60)
}

func TestWait(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(100)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	// the first tick cannot have happened yet
	test.ExpectFailure(t, lim.HasWaited())

	start := time.Now()
	for range 5 {
		lim.Wait()
	}

	// five ticks at 100fps is at least 50ms. allow for an early first tick
	test.ExpectSuccess(t, time.Since(start) >= 40*time.Millisecond)
}
