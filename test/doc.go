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

// Package test contains helper functions to remove common boilerplate and to
// make testing easier.
//
// The Expect*() functions report a failure but allow the test to continue.
// The Demand*() functions stop the test immediately. Demand functions are
// useful when the value being tested is needed for the remainder of the test,
// for example, the length of a slice that is about to be indexed.
//
// How nil is handled by ExpectSuccess() and ExpectFailure() is worth
// explaining because it is not obvious. A nil value is considered a success.
// This is because of how error values work in Go (nil meaning no error) and
// is the interpretation we want in almost every case.
//
// The CompareWriter type implements io.Writer and should be used to capture
// output for comparison with an expected string.
package test
