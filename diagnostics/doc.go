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

// Package diagnostics defines the coded notices raised by the input
// dispatcher and the platform sources. Packages raising a notice do not
// format human readable strings themselves. They call the Report() function
// of a Reporter with a Code and the values that parameterise the message.
//
// The message for each code is found in a message table. The Log type is a
// Reporter that formats the message and forwards it to the logger package.
// The Recorder type keeps a copy of every notice and is useful for testing.
package diagnostics
