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

// Package userinput defines the values that pass through the input
// dispatcher: the raw samples produced by platform sources, the contacts the
// dispatcher tracks and the semantic events it delivers.
//
// It also defines the narrow interfaces of the dispatcher's collaborators. A
// Source is polled once per frame for the samples of each category. A View
// supplies the device pixel ratio. A Listener receives the semantic events.
//
// The package hides the details of any particular platform. Platform
// specific translation happens in packages like sdlinput and terminput.
package userinput
