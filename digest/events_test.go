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

package digest_test

import (
	"testing"

	"github.com/tactile-go/tactile/curated"
	"github.com/tactile-go/tactile/digest"
	"github.com/tactile-go/tactile/test"
	"github.com/tactile-go/tactile/userinput"
)

func feed(t *testing.T, dig *digest.Events, x float64) {
	t.Helper()
	test.ExpectSuccess(t, dig.HandleEvent(userinput.EventPointer{
		Source:   userinput.Touch,
		Phase:    userinput.PhaseMove,
		Contacts: []userinput.Contact{{Slot: 1, ID: 5, X: x}},
	}))
	test.ExpectSuccess(t, dig.HandleEvent(userinput.EventKeyboard{Key: "a", Down: true}))
	dig.NewFrame()
}

func TestEventsDigest(t *testing.T) {
	var _ digest.Digest = digest.NewEvents()

	a := digest.NewEvents()
	b := digest.NewEvents()
	empty := a.Hash()

	feed(t, a, 1)
	feed(t, b, 1)
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), empty)

	// a different event changes the hash
	feed(t, a, 2)
	feed(t, b, 3)
	test.ExpectInequality(t, a.Hash(), b.Hash())
	test.ExpectEquality(t, a.Frame(), 2)

	// the hash is chained so the order of frames matters
	a.ResetDigest()
	b.ResetDigest()
	test.ExpectEquality(t, a.Hash(), empty)
	feed(t, a, 1)
	feed(t, a, 2)
	feed(t, b, 2)
	feed(t, b, 1)
	test.ExpectInequality(t, a.Hash(), b.Hash())
}

func TestEmptyFramesCount(t *testing.T) {
	a := digest.NewEvents()
	b := digest.NewEvents()

	feed(t, a, 1)
	feed(t, b, 1)

	// an empty frame still changes the chained hash
	a.NewFrame()
	test.ExpectInequality(t, a.Hash(), b.Hash())
}

func TestUnsupportedEvent(t *testing.T) {
	dig := digest.NewEvents()
	err := dig.HandleEvent("not an event")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, digest.UnsupportedEvent))
	test.ExpectEquality(t, err.Error(), "digest: unsupported event type (string)")
}
