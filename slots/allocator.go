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

package slots

import (
	"math/bits"
	"strings"
	"time"

	"github.com/tactile-go/tactile/curated"
)

// MaxCapacity is the largest number of slots an allocator can have.
const MaxCapacity = 64

// NoSlot is returned by Acquire() when a slot could not be allocated.
const NoSlot = -1

// DefaultTimeout is the timeout used by a new allocator.
const DefaultTimeout = 5 * time.Second

// Sentinal error patterns.
const (
	InvalidCapacity = "slots: capacity must be between 1 and %d (not %d)"
)

type slot struct {
	id           uint64
	lastModified time.Duration
}

// Allocator assigns slots to external identifiers.
type Allocator struct {
	capacity int
	full     uint64

	// a bit is set for every occupied slot
	mask uint64

	arena [MaxCapacity]slot
	ids   map[uint64]int

	timeout time.Duration

	hookReclaim func(slot int, id uint64)
}

// NewAllocator is the preferred method of initialisation for the Allocator
// type.
func NewAllocator(capacity int) (*Allocator, error) {
	if capacity < 1 || capacity > MaxCapacity {
		return nil, curated.Errorf(InvalidCapacity, MaxCapacity, capacity)
	}

	a := &Allocator{
		capacity: capacity,
		ids:      make(map[uint64]int, capacity),
		timeout:  DefaultTimeout,
	}

	if capacity == MaxCapacity {
		a.full = ^uint64(0)
	} else {
		a.full = (uint64(1) << capacity) - 1
	}

	return a, nil
}

func (a *Allocator) String() string {
	s := strings.Builder{}
	for i := 0; i < a.capacity; i++ {
		if a.mask&(1<<i) != 0 {
			s.WriteRune('1')
		} else {
			s.WriteRune('0')
		}
	}
	return s.String()
}

// SetTimeout sets the duration after which an untouched slot can be
// reclaimed. A timeout of zero means that any slot not touched at the
// current time can be reclaimed.
func (a *Allocator) SetTimeout(d time.Duration) {
	a.timeout = d
}

// SetHookReclaim sets the function that is called when a slot is reclaimed
// from a stale contact. The function receives the slot and the identifier of
// the contact that was evicted.
func (a *Allocator) SetHookReclaim(hook func(slot int, id uint64)) {
	a.hookReclaim = hook
}

// Capacity returns the number of slots in the allocator.
func (a *Allocator) Capacity() int {
	return a.capacity
}

// Len returns the number of occupied slots.
func (a *Allocator) Len() int {
	return bits.OnesCount64(a.mask)
}

// Occupied returns true if the slot is occupied. Out of range slots are
// never occupied.
func (a *Allocator) Occupied(slot int) bool {
	if slot < 0 || slot >= a.capacity {
		return false
	}
	return a.mask&(1<<slot) != 0
}

// IsTracked returns the slot mapped to the identifier.
func (a *Allocator) IsTracked(id uint64) (int, bool) {
	s, ok := a.ids[id]
	return s, ok
}

// Acquire a slot for the identifier. The now argument is the time of the
// sample that caused the acquisition and is used both to stamp the new slot
// and to decide if an existing slot is stale.
//
// Returns NoSlot if the identifier is already mapped or if every slot is
// occupied and none of them are stale.
func (a *Allocator) Acquire(id uint64, now time.Duration) int {
	if _, ok := a.ids[id]; ok {
		return NoSlot
	}

	if a.mask == a.full {
		s := a.reclaim(now)
		if s == NoSlot {
			return NoSlot
		}
		a.bind(s, id, now)
		return s
	}

	s := bits.TrailingZeros64(^a.mask)
	a.mask |= 1 << s
	a.bind(s, id, now)
	return s
}

func (a *Allocator) bind(s int, id uint64, now time.Duration) {
	a.arena[s] = slot{id: id, lastModified: now}
	a.ids[id] = s
}

// reclaim scans occupied slots in ascending order and frees the first one
// that has been untouched for longer than the timeout. the bit for the slot
// remains set.
func (a *Allocator) reclaim(now time.Duration) int {
	for s := 0; s < a.capacity; s++ {
		if a.mask&(1<<s) == 0 {
			continue
		}
		if now-a.arena[s].lastModified <= a.timeout {
			continue
		}

		evicted := a.arena[s].id
		if m, ok := a.ids[evicted]; ok && m == s {
			delete(a.ids, evicted)
		}
		if a.hookReclaim != nil {
			a.hookReclaim(s, evicted)
		}
		return s
	}
	return NoSlot
}

// Touch refreshes the last modified time of an occupied slot.
func (a *Allocator) Touch(slot int, now time.Duration) {
	if !a.Occupied(slot) {
		return
	}
	a.arena[slot].lastModified = now
}

// Release the slot. The identifier mapping for the slot is kept and must be
// removed with Forget().
func (a *Allocator) Release(slot int) {
	if slot < 0 || slot >= a.capacity {
		return
	}
	a.mask &^= 1 << slot
}

// Forget removes the mapping for the identifier.
func (a *Allocator) Forget(id uint64) {
	delete(a.ids, id)
}

// Reset frees every slot and removes every mapping. The timeout and reclaim
// hook are unchanged.
func (a *Allocator) Reset() {
	a.mask = 0
	clear(a.ids)
}
