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
	"fmt"
	"time"

	"github.com/tactile-go/tactile/curated"
	"github.com/tactile-go/tactile/history"
	"github.com/tactile-go/tactile/paths"
	"github.com/tactile-go/tactile/prefs"
	"github.com/tactile-go/tactile/slots"
)

// Default preference values.
const (
	DefaultMaxSlots        = 8
	DefaultTouchTimeout    = slots.DefaultTimeout
	DefaultMultiContact    = false
	DefaultHistoryCapacity = history.DefaultCapacity
)

// Sentinal error patterns.
const (
	NoPreferencesFile = "dispatcher: preferences have no file"
)

// Preferences for the dispatcher. MaxSlots and HistoryCapacity are only read
// when a Dispatcher is created. TouchTimeout and MultiContact are read at the
// start of every pass.
type Preferences struct {
	dsk *prefs.Disk

	// maximum number of simultaneous touch contacts
	MaxSlots prefs.Int

	// how long a touch contact must be untouched before its slot can be
	// reclaimed for a new contact
	TouchTimeout prefs.Duration

	// whether pointer events carry every active contact or only the contacts
	// that changed
	MultiContact prefs.Bool

	// number of positions remembered for contacts that are no longer tracked
	HistoryCapacity prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("maxslots :: %s\ntimeout :: %s\nmulti :: %s\nhistory :: %s\n",
			p.MaxSlots.String(), p.TouchTimeout.String(), p.MultiContact.String(), p.HistoryCapacity.String())
	}
	return p.dsk.String()
}

// DefaultPreferences returns preferences with default values that are not
// backed by a file.
func DefaultPreferences() *Preferences {
	p := &Preferences{}
	p.installHooks()
	p.SetDefaults()
	return p
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences are backed by the file at path. If path
// is empty the default preferences file in the resource directory is used.
// Values in the file, and any values on the command line preferences stack,
// override the defaults.
func NewPreferences(path string) (*Preferences, error) {
	p := DefaultPreferences()

	if path == "" {
		var err error
		path, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("dispatcher.maxslots", &p.MaxSlots)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("dispatcher.touchtimeout", &p.TouchTimeout)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("dispatcher.multicontact", &p.MultiContact)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("dispatcher.historycapacity", &p.HistoryCapacity)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Preferences) installHooks() {
	p.MaxSlots.SetHookPre(func(v prefs.Value) error {
		if n := v.(int); n < 1 || n > slots.MaxCapacity {
			return curated.Errorf(slots.InvalidCapacity, slots.MaxCapacity, n)
		}
		return nil
	})
	p.HistoryCapacity.SetHookPre(func(v prefs.Value) error {
		if n := v.(int); n < 1 {
			return curated.Errorf(history.InvalidCapacity, n)
		}
		return nil
	})
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	// errors are impossible for the default values
	_ = p.MaxSlots.Set(DefaultMaxSlots)
	_ = p.TouchTimeout.Set(DefaultTouchTimeout)
	_ = p.MultiContact.Set(DefaultMultiContact)
	_ = p.HistoryCapacity.Set(DefaultHistoryCapacity)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return curated.Errorf(NoPreferencesFile)
	}
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return curated.Errorf(NoPreferencesFile)
	}
	return p.dsk.Save()
}

func (p *Preferences) maxSlots() int {
	return p.MaxSlots.Get().(int)
}

func (p *Preferences) touchTimeout() time.Duration {
	return p.TouchTimeout.Get().(time.Duration)
}

func (p *Preferences) multiContact() bool {
	return p.MultiContact.Get().(bool)
}

func (p *Preferences) historyCapacity() int {
	return p.HistoryCapacity.Get().(int)
}
