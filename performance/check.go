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

package performance

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/tactile-go/tactile/dispatcher"
	"github.com/tactile-go/tactile/queue"
	"github.com/tactile-go/tactile/userinput"
)

// the simulated time between passes. the time of each sample is advanced by
// this amount every pass regardless of how long the pass actually took
const simulatedFrame = 16 * time.Millisecond

// Results of a performance check.
type Results struct {
	Passes   int
	Samples  int
	Events   int
	Duration time.Duration
}

func (r Results) String() string {
	secs := r.Duration.Seconds()
	if secs == 0 {
		return "no time elapsed"
	}
	return fmt.Sprintf("%.0f passes/sec, %.0f samples/sec, %.0f events/sec (%d passes in %.2f seconds)",
		float64(r.Passes)/secs, float64(r.Samples)/secs, float64(r.Events)/secs, r.Passes, secs)
}

// Check the performance of the dispatcher by feeding it synthetic touch,
// mouse and keyboard input for the specified duration.
//
// The contacts argument is the number of simultaneous touch contacts to
// simulate. Contacts begin, move and end at random. The seed argument
// initialises the random number generator so that a check can be repeated.
func Check(output io.Writer, profile Profile, prefs *dispatcher.Preferences, contacts int, duration time.Duration, seed uint64) (Results, error) {
	var res Results

	q := queue.NewQueue(queue.Unlimited, nil)
	l := userinput.ListenerFunc(func(_ userinput.Event) error {
		res.Events++
		return nil
	})

	d, err := dispatcher.NewDispatcher(q, nil, l, prefs, nil)
	if err != nil {
		return res, fmt.Errorf("performance: %w", err)
	}

	rnd := rand.New(rand.NewPCG(seed, seed))
	active := make([]bool, contacts)

	runner := func() error {
		var now time.Duration
		start := time.Now()

		for time.Since(start) < duration {
			now += simulatedFrame

			for id := range contacts {
				s := userinput.Sample{
					ID:   uint64(id),
					X:    rnd.Float64() * 1000,
					Y:    rnd.Float64() * 1000,
					Time: now,
				}
				switch {
				case !active[id]:
					s.Kind = userinput.Begin
					active[id] = true
				case rnd.IntN(20) == 0:
					s.Kind = userinput.End
					active[id] = false
				default:
					s.Kind = userinput.Move
				}
				q.Push(userinput.Touch, s)
				res.Samples++
			}

			q.Push(userinput.Mouse, userinput.Sample{Kind: userinput.Move, X: rnd.Float64() * 1000, Y: rnd.Float64() * 1000, Time: now})
			res.Samples++

			if rnd.IntN(10) == 0 {
				q.Push(userinput.Keyboard, userinput.Sample{Kind: userinput.KeyDown, Key: "a", Time: now})
				q.Push(userinput.Keyboard, userinput.Sample{Kind: userinput.KeyUp, Key: "a", Time: now})
				res.Samples += 2
			}

			if err := d.Pass(); err != nil {
				return err
			}
			res.Passes++
		}

		res.Duration = time.Since(start)
		return nil
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return res, fmt.Errorf("performance: %w", err)
	}

	if output != nil {
		_, err = io.WriteString(output, fmt.Sprintf("%s\n", res))
		if err != nil {
			return res, fmt.Errorf("performance: %w", err)
		}
	}

	return res, nil
}
