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

package queue

import (
	"sync"

	"github.com/tactile-go/tactile/diagnostics"
	"github.com/tactile-go/tactile/userinput"
)

// Unlimited can be used as the limit argument to NewQueue().
const Unlimited = 0

type buffer struct {
	samples []userinput.Sample
	spare   []userinput.Sample
	dropped int
}

// Queue is a thread safe implementation of userinput.Source.
type Queue struct {
	crit sync.Mutex

	limit   int
	buffers [userinput.NumCategories]buffer

	diag diagnostics.Reporter
}

// NewQueue is the preferred method of initialisation for the Queue type. The
// limit argument is the maximum number of samples held for each category.
// The diag argument can be nil.
func NewQueue(limit int, diag diagnostics.Reporter) *Queue {
	if limit < 0 {
		limit = Unlimited
	}
	if diag == nil {
		diag = diagnostics.Discard
	}
	return &Queue{
		limit: limit,
		diag:  diag,
	}
}

// Push a sample onto the end of the queue for the category. Returns false if
// the sample was dropped.
func (q *Queue) Push(cat userinput.Category, s userinput.Sample) bool {
	if cat < 0 || cat >= userinput.NumCategories {
		return false
	}

	q.crit.Lock()
	b := &q.buffers[cat]
	if q.limit != Unlimited && len(b.samples) >= q.limit {
		b.dropped++
		dropped := b.dropped
		q.crit.Unlock()

		// the reporter is called outside of the critical section because it
		// may do anything, including log to a slow writer
		q.diag.Report(diagnostics.DroppedSample, cat, dropped)
		return false
	}
	b.samples = append(b.samples, s)
	q.crit.Unlock()

	return true
}

// PushMany pushes every sample in order. Returns the number of samples that
// were queued.
func (q *Queue) PushMany(cat userinput.Category, s ...userinput.Sample) int {
	var n int
	for _, v := range s {
		if q.Push(cat, v) {
			n++
		}
	}
	return n
}

// Drain implements the userinput.Source interface. The returned slice is
// owned by the caller until the next call to Drain() for the same category.
func (q *Queue) Drain(cat userinput.Category) []userinput.Sample {
	if cat < 0 || cat >= userinput.NumCategories {
		return nil
	}

	q.crit.Lock()
	defer q.crit.Unlock()

	b := &q.buffers[cat]
	if len(b.samples) == 0 {
		return nil
	}

	// swap buffers. the slice previously returned by Drain() is reused as the
	// new backing array for pushing
	s := b.samples
	b.samples = b.spare[:0]
	b.spare = s

	return s
}

// Len returns the number of samples waiting for the category.
func (q *Queue) Len(cat userinput.Category) int {
	if cat < 0 || cat >= userinput.NumCategories {
		return 0
	}
	q.crit.Lock()
	defer q.crit.Unlock()
	return len(q.buffers[cat].samples)
}

// Dropped returns the number of samples that have been dropped for the
// category since the queue was created.
func (q *Queue) Dropped(cat userinput.Category) int {
	if cat < 0 || cat >= userinput.NumCategories {
		return 0
	}
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.buffers[cat].dropped
}
