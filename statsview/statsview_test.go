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

//go:build !statsview

package statsview_test

import (
	"testing"

	"github.com/tactile-go/tactile/statsview"
	"github.com/tactile-go/tactile/test"
)

func TestStub(t *testing.T) {
	test.ExpectFailure(t, statsview.Available())

	tw := &test.CompareWriter{}
	stop := statsview.Launch(tw, "")
	stop()
	test.ExpectSuccess(t, tw.Compare(""))
}
