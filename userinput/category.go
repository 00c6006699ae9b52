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

package userinput

import (
	"fmt"
	"strings"
)

// Category of input source.
type Category int

// List of valid categories. The order of the list is the order in which
// categories are processed by the dispatcher in every frame.
const (
	Mouse Category = iota
	Touch
	Keyboard
	Accelerometer
	NumCategories
)

// Categories lists the categories in processing order.
var Categories = [NumCategories]Category{Mouse, Touch, Keyboard, Accelerometer}

func (c Category) String() string {
	switch c {
	case Mouse:
		return "mouse"
	case Touch:
		return "touch"
	case Keyboard:
		return "keyboard"
	case Accelerometer:
		return "accelerometer"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// ParseCategory is the inverse of Category.String().
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return NumCategories, fmt.Errorf("unrecognised category (%s)", s)
}
