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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		dispatcher.Pass()
//	}
package limiter

import (
	"fmt"
	"sync"
	"time"
)

// MaxFPS is the highest rate accepted by SetLimit().
const MaxFPS = 1000

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	crit            sync.Mutex
	framesPerSecond int
	ticker          *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	lim := &FpsLimiter{}
	err := lim.SetLimit(framesPerSecond)
	if err != nil {
		return nil, err
	}
	return lim, nil
}

func (lim *FpsLimiter) String() string {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return fmt.Sprintf("%d fps", lim.framesPerSecond)
}

// SetLimit changes the limit at which the FpsLimiter waits.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond < 1 || framesPerSecond > MaxFPS {
		return fmt.Errorf("limiter: fps must be between 1 and %d (not %d)", MaxFPS, framesPerSecond)
	}

	lim.crit.Lock()
	defer lim.crit.Unlock()

	lim.framesPerSecond = framesPerSecond
	secondsPerFrame := time.Second / time.Duration(framesPerSecond)
	if lim.ticker == nil {
		lim.ticker = time.NewTicker(secondsPerFrame)
	} else {
		lim.ticker.Reset(secondsPerFrame)
	}

	return nil
}

// Limit returns the current rate.
func (lim *FpsLimiter) Limit() int {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.framesPerSecond
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.ticker.C
}

// HasWaited will return true if time has already elapsed and false if it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *FpsLimiter) Stop() {
	lim.ticker.Stop()
}
