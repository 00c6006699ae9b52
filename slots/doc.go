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

// Package slots allocates small, stable indexes to touch contacts.
//
// An Allocator has a fixed capacity of between one and MaxCapacity slots.
// Occupancy is a bitmask and the slot for an external identifier is found
// with a single map lookup. When every slot is occupied, Acquire() will
// reclaim the lowest numbered slot that has not been touched for longer than
// the timeout. A contact that never ends therefore cannot hold a slot
// forever.
//
// The Allocator is not safe for concurrent use. It is intended to be owned by
// the input dispatcher.
package slots
