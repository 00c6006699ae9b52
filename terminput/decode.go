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

package terminput

import (
	"unicode/utf8"

	"github.com/tactile-go/tactile/userinput"
)

// Key is a single decoded key press.
type Key struct {
	Name string
	Mod  userinput.KeyMod
}

const escape = 0x1b

var cursorKeys = map[byte]string{
	'A': "Up",
	'B': "Down",
	'C': "Right",
	'D': "Left",
	'H': "Home",
	'F': "End",
}

// Decode the bytes read from a terminal. Returns the decoded keys and any
// trailing bytes that form an incomplete sequence. The trailing bytes should
// be prepended to the next read.
func Decode(b []byte) ([]Key, []byte) {
	var keys []Key

	for len(b) > 0 {
		c := b[0]

		switch {
		case c == escape:
			if len(b) == 1 {
				// a lone escape key
				keys = append(keys, Key{Name: "Escape"})
				b = b[1:]
				continue
			}
			if b[1] != '[' && b[1] != 'O' {
				// escape followed by a key is the alt modifier
				k, rest := Decode(b[1:2])
				if len(k) == 1 {
					k[0].Mod |= userinput.ModAlt
					keys = append(keys, k[0])
				}
				b = append(rest, b[2:]...)
				continue
			}
			if len(b) < 3 {
				return keys, b
			}
			if name, ok := cursorKeys[b[2]]; ok {
				keys = append(keys, Key{Name: name})
			}
			b = b[3:]

		case c == '\r' || c == '\n':
			keys = append(keys, Key{Name: "Enter"})
			b = b[1:]

		case c == '\t':
			keys = append(keys, Key{Name: "Tab"})
			b = b[1:]

		case c == 0x7f || c == 0x08:
			keys = append(keys, Key{Name: "Backspace"})
			b = b[1:]

		case c >= 0x01 && c <= 0x1a:
			keys = append(keys, Key{Name: string(rune('a' + c - 1)), Mod: userinput.ModCtrl})
			b = b[1:]

		case c < 0x20:
			// other control characters are ignored
			b = b[1:]

		default:
			if !utf8.FullRune(b) {
				return keys, b
			}
			r, n := utf8.DecodeRune(b)
			keys = append(keys, Key{Name: string(r)})
			b = b[n:]
		}
	}

	return keys, nil
}
