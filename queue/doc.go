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

// Package queue implements the userinput.Source interface with a buffer of
// samples for each input category.
//
// Platform code pushes samples from whichever goroutine receives them. The
// dispatcher drains each category once per frame. Drain() swaps the buffer
// for the category under a lock, so the dispatcher never sees a partially
// filled frame and producers never wait for the dispatcher to finish.
//
// A queue can be limited in size. Samples pushed to a full category are
// dropped and counted, rather than blocking the producer.
package queue
