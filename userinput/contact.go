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

package userinput

import (
	"fmt"
	"time"
)

// MouseID is the external identifier of the one and only mouse contact.
const MouseID uint64 = 0

// Contact is a live touch or mouse contact tracked by the dispatcher.
type Contact struct {
	// slot is a small index in the range [0, MaxSlots) that is stable for the
	// lifetime of the contact. the mouse contact is always in slot zero
	Slot int

	// the identifier of the contact as supplied by the platform
	ID uint64

	X, Y         float64
	PrevX, PrevY float64

	// timestamp of the most recent sample for the contact
	LastModified time.Duration
}

func (c Contact) String() string {
	return fmt.Sprintf("slot %d (id %d) %.1f,%.1f [%.1f,%.1f]", c.Slot, c.ID, c.X, c.Y, c.PrevX, c.PrevY)
}

// Delta returns the distance moved since the previous position.
func (c Contact) Delta() (float64, float64) {
	return c.X - c.PrevX, c.Y - c.PrevY
}
