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

// Package dispatcher turns the raw samples of a userinput.Source into
// semantic events for a userinput.Listener.
//
// A Dispatcher is created with NewDispatcher() and driven by calling Pass()
// once per frame. Each pass drains the source for every category in a fixed
// order (mouse, touch, keyboard and then accelerometer) and processes the
// samples of each category in the order they arrived.
//
// Touch contacts are given a slot from a fixed size slots.Allocator for as
// long as they are active. The slot index is stable for the life of the
// contact and can be used by application code to index per-finger state. If
// the platform loses the end of a contact, the slot is reclaimed when it is
// next needed and has not been touched for longer than the TouchTimeout
// preference.
//
// The previous position of a contact is used to calculate deltas. For a
// contact that is already being tracked it is the position before the
// current sample. For a new contact it is the position supplied by the
// platform if there is one, or else the last position remembered by the
// history.Pool for the contact's identifier.
//
// Events for pointer contacts are grouped by phase. After every sample for
// the category has been processed, one EventPointer is delivered for each
// phase that has changed contacts, in the order Begin, Move, End, Cancel.
// Keyboard and accelerometer samples each produce exactly one event.
//
// The Dispatcher is not safe for concurrent use. Samples should be produced
// concurrently into a queue.Queue, which is then drained by Pass().
package dispatcher
