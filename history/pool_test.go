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

package history_test

import (
	"testing"

	"github.com/tactile-go/tactile/curated"
	"github.com/tactile-go/tactile/history"
	"github.com/tactile-go/tactile/test"
	"github.com/tactile-go/tactile/userinput"
)

func TestInvalidCapacity(t *testing.T) {
	_, err := history.NewPool(0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, history.InvalidCapacity))
}

func TestRoundTrip(t *testing.T) {
	p, err := history.NewPool(history.DefaultCapacity)
	test.DemandSuccess(t, err)

	_, _, ok := p.FindPrevious(userinput.Touch, 7)
	test.ExpectFailure(t, ok)

	p.Record(history.Entry{Category: userinput.Touch, ID: 7, X: 1, Y: 2})
	x, y, ok := p.FindPrevious(userinput.Touch, 7)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, x, 1.0)
	test.ExpectEquality(t, y, 2.0)

	// same identifier in a different category is a different contact
	_, _, ok = p.FindPrevious(userinput.Mouse, 7)
	test.ExpectFailure(t, ok)
}

func TestMostRecentWins(t *testing.T) {
	p, err := history.NewPool(4)
	test.DemandSuccess(t, err)

	p.Record(history.Entry{Category: userinput.Touch, ID: 1, X: 10, Y: 10})
	p.Record(history.Entry{Category: userinput.Touch, ID: 2, X: 20, Y: 20})
	p.Record(history.Entry{Category: userinput.Touch, ID: 1, X: 30, Y: 30})

	// duplicates are kept
	test.ExpectEquality(t, p.Len(), 3)

	x, y, ok := p.FindPrevious(userinput.Touch, 1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, x, 30.0)
	test.ExpectEquality(t, y, 30.0)
}

func TestWraparound(t *testing.T) {
	const capacity = 50

	p, err := history.NewPool(capacity)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Capacity(), capacity)

	for i := range capacity + 1 {
		p.Record(history.Entry{Category: userinput.Touch, ID: uint64(i), X: float64(i)})
	}
	test.ExpectEquality(t, p.Len(), capacity)

	// the oldest entry has been overwritten
	_, _, ok := p.FindPrevious(userinput.Touch, 0)
	test.ExpectFailure(t, ok)

	for i := 1; i <= capacity; i++ {
		x, _, ok := p.FindPrevious(userinput.Touch, uint64(i))
		test.ExpectSuccess(t, ok, i)
		test.ExpectEquality(t, x, float64(i), i)
	}

	e := p.Entries()
	test.ExpectEquality(t, len(e), capacity)
	test.ExpectEquality(t, e[0].ID, uint64(1))
	test.ExpectEquality(t, e[capacity-1].ID, uint64(capacity))
}

func TestWraparoundNewestAfterCursor(t *testing.T) {
	p, err := history.NewPool(3)
	test.DemandSuccess(t, err)

	p.Record(history.Entry{Category: userinput.Touch, ID: 9, X: 1})
	p.Record(history.Entry{Category: userinput.Touch, ID: 8, X: 2})
	p.Record(history.Entry{Category: userinput.Touch, ID: 9, X: 3})

	// overwrites the first entry for id 9. the cursor is now at index one
	p.Record(history.Entry{Category: userinput.Touch, ID: 7, X: 4})

	x, _, ok := p.FindPrevious(userinput.Touch, 9)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, x, 3.0)
}
