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

package dispatcher

import (
	"time"

	"github.com/tactile-go/tactile/userinput"
)

// batch collects the contacts that changed in one phase during a pass.
type batch struct {
	contacts []userinput.Contact
	time     time.Duration
	buttons  userinput.MouseButtons
}

func (b *batch) clear() {
	b.contacts = b.contacts[:0]
	b.time = 0
	b.buttons = 0
}

// add a snapshot of the contact to the batch.
func (b *batch) add(c userinput.Contact, s userinput.Sample) {
	b.contacts = append(b.contacts, c)
	b.time = s.Time
	b.buttons = s.Buttons
}

// replace an existing snapshot of the same contact, or add the contact if
// there is no snapshot. a contact is the same if it has the same slot and the
// same external ID.
func (b *batch) replace(c userinput.Contact, s userinput.Sample) {
	for i := range b.contacts {
		if b.contacts[i].Slot == c.Slot && b.contacts[i].ID == c.ID {
			b.contacts[i] = c
			b.time = s.Time
			b.buttons = s.Buttons
			return
		}
	}
	b.add(c, s)
}
