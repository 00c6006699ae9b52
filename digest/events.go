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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/tactile-go/tactile/curated"
	"github.com/tactile-go/tactile/userinput"
)

// Sentinal error patterns.
const (
	UnsupportedEvent = "digest: unsupported event type (%T)"
)

// Events implements the userinput.Listener interface. Events received during
// a frame are accumulated and hashed when NewFrame() is called. The hash of
// the previous frame is included in the data for the next frame so that the
// final hash represents the entire sequence of events.
type Events struct {
	digest   [sha1.Size]byte
	buffer   []byte
	frameNum int
}

// NewEvents is the preferred method of initialisation for the Events type.
func NewEvents() *Events {
	dig := &Events{}
	dig.buffer = make([]byte, sha1.Size, 4096)
	return dig
}

// Hash implements digest.Digest interface.
func (dig *Events) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Events) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.buffer = dig.buffer[:sha1.Size]
	dig.frameNum = 0
}

// Frame returns the number of frames hashed so far.
func (dig *Events) Frame() int {
	return dig.frameNum
}

// NewFrame hashes the events received since the previous call.
func (dig *Events) NewFrame() {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the event data
	copy(dig.buffer, dig.digest[:])
	dig.digest = sha1.Sum(dig.buffer)
	dig.buffer = dig.buffer[:sha1.Size]
	dig.frameNum++
}

// HandleEvent implements the userinput.Listener interface.
func (dig *Events) HandleEvent(ev userinput.Event) error {
	b := dig.buffer

	switch ev := ev.(type) {
	case userinput.EventPointer:
		b = fmt.Appendf(b, "P %d %d %d %d|", ev.Source, ev.Phase, ev.Time, ev.Buttons)
		b = appendContacts(b, ev.Contacts)
		b = append(b, '|')
		b = appendContacts(b, ev.Active)
	case userinput.EventMouseWheel:
		b = fmt.Appendf(b, "W %d %g %g %g %g %d", ev.Time, ev.X, ev.Y, ev.DeltaX, ev.DeltaY, ev.Buttons)
	case userinput.EventKeyboard:
		b = fmt.Appendf(b, "K %d %q %v %d %v", ev.Time, ev.Key, ev.Down, ev.Mod, ev.Repeat)
	case userinput.EventMotion:
		b = fmt.Appendf(b, "M %d %g %g %g", ev.Time, ev.X, ev.Y, ev.Z)
	default:
		return curated.Errorf(UnsupportedEvent, ev)
	}

	dig.buffer = append(b, '\n')

	return nil
}

func appendContacts(b []byte, contacts []userinput.Contact) []byte {
	for _, c := range contacts {
		b = fmt.Appendf(b, "%d %d %g %g %g %g %d;", c.Slot, c.ID, c.X, c.Y, c.PrevX, c.PrevY, c.LastModified)
	}
	return b
}
