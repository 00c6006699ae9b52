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

// Package recorder records the samples drained from a userinput.Source to a
// transcript file and plays them back.
//
// The Recorder type wraps another Source. Every sample it drains is written
// to the transcript along with the frame number. The Playback type reads a
// transcript and is itself a Source, returning the recorded samples for each
// frame in turn. Playing back a transcript through a dispatcher delivers the
// same events as the original run, which is the basis of regression testing
// with the digest package.
//
// Frame boundaries are marked by calling NextFrame() on either type once the
// dispatcher has finished a pass.
//
// The dispatcher preferences are recorded in the transcript header and are
// available to the playback dispatcher as Playback.Preferences. A digest
// attached to the Recorder with AttachDigest() has its hash recorded at the
// end of every frame with samples. A digest attached to the Playback is
// compared with the recorded hash, so a change in dispatcher behaviour is
// reported at the frame where it first appears. In both cases the digest
// must be advanced to the next frame before NextFrame() is called.
package recorder
