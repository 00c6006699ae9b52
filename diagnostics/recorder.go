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

package diagnostics

import "sync"

// Recorder is a Reporter that keeps every notice it receives.
type Recorder struct {
	crit    sync.Mutex
	notices []Notice
}

// Report implements the Reporter interface.
func (r *Recorder) Report(code Code, values ...interface{}) {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.notices = append(r.notices, Notice{Code: code, Values: values})
}

// Notices returns a copy of the notices received so far.
func (r *Recorder) Notices() []Notice {
	r.crit.Lock()
	defer r.crit.Unlock()
	n := make([]Notice, len(r.notices))
	copy(n, r.notices)
	return n
}

// Count returns the number of notices received with the code.
func (r *Recorder) Count(code Code) int {
	r.crit.Lock()
	defer r.crit.Unlock()
	var n int
	for _, m := range r.notices {
		if m.Code == code {
			n++
		}
	}
	return n
}

// Clear forgets all notices.
func (r *Recorder) Clear() {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.notices = r.notices[:0]
}
