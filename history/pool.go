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

package history

import (
	"fmt"
	"time"

	"github.com/tactile-go/tactile/curated"
	"github.com/tactile-go/tactile/userinput"
)

// DefaultCapacity is the capacity of the pool used by the dispatcher if no
// other capacity is specified.
const DefaultCapacity = 50

// Sentinal error patterns.
const (
	InvalidCapacity = "history: capacity must be at least one (not %d)"
)

// Entry is a single snapshot of a contact position.
type Entry struct {
	Category userinput.Category
	ID       uint64
	X, Y     float64
	Time     time.Duration
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %d: %.1f,%.1f", e.Category, e.ID, e.X, e.Y)
}

// Pool is a ring of Entry values.
type Pool struct {
	entries []Entry

	// the index of the next entry to be written
	cursor int

	// whether the cursor has wrapped around at least once
	full bool
}

// NewPool is the preferred method of initialisation for the Pool type.
func NewPool(capacity int) (*Pool, error) {
	if capacity < 1 {
		return nil, curated.Errorf(InvalidCapacity, capacity)
	}
	return &Pool{
		entries: make([]Entry, capacity),
	}, nil
}

// Capacity returns the maximum number of entries in the pool.
func (p *Pool) Capacity() int {
	return len(p.entries)
}

// Len returns the number of entries currently in the pool.
func (p *Pool) Len() int {
	if p.full {
		return len(p.entries)
	}
	return p.cursor
}

// Record adds an entry to the pool, overwriting the oldest entry if the pool
// is full.
func (p *Pool) Record(e Entry) {
	p.entries[p.cursor] = e
	p.cursor++
	if p.cursor >= len(p.entries) {
		p.cursor = 0
		p.full = true
	}
}

// FindPrevious returns the most recently recorded position for the contact.
func (p *Pool) FindPrevious(cat userinput.Category, id uint64) (float64, float64, bool) {
	if e, ok := p.find(cat, id); ok {
		return e.X, e.Y, true
	}
	return 0, 0, false
}

func (p *Pool) find(cat userinput.Category, id uint64) (Entry, bool) {
	n := p.Len()
	i := p.cursor
	for range n {
		i--
		if i < 0 {
			i = len(p.entries) - 1
		}
		if p.entries[i].Category == cat && p.entries[i].ID == id {
			return p.entries[i], true
		}
	}
	return Entry{}, false
}

// Entries returns a copy of the entries in the pool, oldest first.
func (p *Pool) Entries() []Entry {
	if !p.full {
		return append([]Entry(nil), p.entries[:p.cursor]...)
	}
	e := make([]Entry, 0, len(p.entries))
	e = append(e, p.entries[p.cursor:]...)
	e = append(e, p.entries[:p.cursor]...)
	return e
}
