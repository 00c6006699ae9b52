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

package dispatcher_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tactile-go/tactile/curated"
	"github.com/tactile-go/tactile/dispatcher"
	"github.com/tactile-go/tactile/prefs"
	"github.com/tactile-go/tactile/test"
)

func TestDefaultPreferences(t *testing.T) {
	p := dispatcher.DefaultPreferences()
	test.ExpectEquality(t, p.MaxSlots.Get().(int), 8)
	test.ExpectEquality(t, p.TouchTimeout.Get().(time.Duration), 5*time.Second)
	test.ExpectEquality(t, p.MultiContact.Get().(bool), false)
	test.ExpectEquality(t, p.HistoryCapacity.Get().(int), 50)

	// preferences without a file cannot be saved
	err := p.Save()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, dispatcher.NoPreferencesFile))
}

func TestPreferenceLimits(t *testing.T) {
	p := dispatcher.DefaultPreferences()
	test.ExpectFailure(t, p.MaxSlots.Set(0))
	test.ExpectFailure(t, p.MaxSlots.Set(65))
	test.ExpectSuccess(t, p.MaxSlots.Set(64))
	test.ExpectFailure(t, p.HistoryCapacity.Set(0))
	test.ExpectFailure(t, p.TouchTimeout.Set(-time.Second))

	// a failed set leaves the previous value
	test.ExpectEquality(t, p.MaxSlots.Get().(int), 64)
	test.ExpectEquality(t, p.HistoryCapacity.Get().(int), 50)
}

func TestPreferencesFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := dispatcher.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.MaxSlots.Set(4))
	test.ExpectSuccess(t, p.TouchTimeout.Set("250ms"))
	test.ExpectSuccess(t, p.MultiContact.Set(true))
	test.ExpectSuccess(t, p.Save())

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "250ms"))

	q, err := dispatcher.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.MaxSlots.Get().(int), 4)
	test.ExpectEquality(t, q.TouchTimeout.Get().(time.Duration), 250*time.Millisecond)
	test.ExpectEquality(t, q.MultiContact.Get().(bool), true)
	test.ExpectEquality(t, q.HistoryCapacity.Get().(int), 50)

	q.SetDefaults()
	test.ExpectEquality(t, q.MaxSlots.Get().(int), 8)
	test.ExpectSuccess(t, q.Load())
	test.ExpectEquality(t, q.MaxSlots.Get().(int), 4)
}

func TestPreferencesCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	prefs.PushCommandLineStack("dispatcher.maxslots::2; dispatcher.multicontact::true")
	defer prefs.PopCommandLineStack()

	p, err := dispatcher.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.MaxSlots.Get().(int), 2)
	test.ExpectEquality(t, p.MultiContact.Get().(bool), true)

	// an invalid value on the command line is an error
	prefs.PushCommandLineStack("dispatcher.maxslots::100")
	defer prefs.PopCommandLineStack()
	_, err = dispatcher.NewPreferences(pth)
	test.ExpectFailure(t, err)
}
