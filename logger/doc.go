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

// Package logger is the central log for the application. Entries are made up
// of a tag and a detail string. Consecutive identical entries are collapsed
// into a single entry with a repeat count.
//
// Log entries are made with the Log() and Logf() functions. The first
// argument to both is an implementation of the Permission interface, which
// allows the caller to suppress logging depending on the environment. Use
// logger.Allow when an entry should always be made.
//
//	logger.Log(logger.Allow, "dispatcher", "slot pool exhausted")
//
// The detail argument of Log() can be a string, an error, a fmt.Stringer or
// any other value. Other values are formatted with the %v verb.
//
// Instances of Logger other than the central logger can be created with
// NewLogger(). This is mostly useful for testing.
package logger
