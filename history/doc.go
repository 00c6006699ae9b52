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

// Package history remembers the last known positions of contacts that are no
// longer being tracked.
//
// The Pool is a fixed size ring. Entries are never replaced by identifier.
// Once the ring is full, every new entry overwrites the oldest entry. Lookups
// scan from the most recent entry backwards so that the newest position for
// an identifier is always the one found.
package history
