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

import "fmt"

// Code identifies a diagnostic notice.
type Code int

// List of diagnostic codes.
const (
	// a Begin sample could not be given a slot. value is the external
	// contact ID
	SlotsExhausted Code = iota

	// a stale slot was reclaimed for a new contact. values are the slot
	// index, the evicted external ID and the new external ID
	SlotReclaimed

	// a sample was drained for a category that cannot handle the sample's
	// kind. values are the category and the kind
	UnknownSampleKind

	// a sample was not queued because the queue for its category was full.
	// values are the category and the number of samples dropped so far
	DroppedSample

	// a platform event could not be translated. value is a description of
	// the event
	UntranslatedEvent

	numCodes
)

var messages = map[Code]string{
	SlotsExhausted:    "slot pool exhausted: contact %d dropped",
	SlotReclaimed:     "slot %d reclaimed from stale contact %d for contact %d",
	UnknownSampleKind: "%v samples cannot be of kind %v",
	DroppedSample:     "%v queue full: sample dropped (%d dropped)",
	UntranslatedEvent: "untranslated platform event: %v",
}

// String returns the short name of the code.
func (c Code) String() string {
	if c < 0 || c >= numCodes {
		return fmt.Sprintf("Code(%d)", int(c))
	}

	switch c {
	case SlotsExhausted:
		return "SlotsExhausted"
	case SlotReclaimed:
		return "SlotReclaimed"
	case UnknownSampleKind:
		return "UnknownSampleKind"
	case DroppedSample:
		return "DroppedSample"
	case UntranslatedEvent:
		return "UntranslatedEvent"
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Notice is a single diagnostic notice.
type Notice struct {
	Code   Code
	Values []interface{}
}

// Message returns the formatted message for the notice.
func (n Notice) Message() string {
	if m, ok := messages[n.Code]; ok {
		return fmt.Sprintf(m, n.Values...)
	}
	return fmt.Sprintf("%v: %v", n.Code, n.Values)
}

func (n Notice) String() string {
	return n.Message()
}

// Reporter receives coded, parameterised diagnostic notices.
type Reporter interface {
	Report(code Code, values ...interface{})
}

type discard struct{}

func (discard) Report(Code, ...interface{}) {}

// Discard is a Reporter that ignores every notice.
var Discard Reporter = discard{}
