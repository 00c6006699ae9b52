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

package recorder

import (
	"fmt"
	"io"
	"os"

	"github.com/tactile-go/tactile/curated"
	"github.com/tactile-go/tactile/digest"
	"github.com/tactile-go/tactile/dispatcher"
	"github.com/tactile-go/tactile/userinput"
)

// Sentinal error patterns.
const (
	RecordingError = "recorder: %v"
)

// Recorder wraps a userinput.Source and writes every sample drained from it
// to a transcript.
type Recorder struct {
	src    userinput.Source
	output io.WriteCloser

	frame int

	// whether any samples have been written for the current frame
	written bool

	// the hash of the digest is written at the end of every frame with
	// samples. can be nil
	dig digest.Digest

	// the first error encountered while writing. once an error has occurred
	// no more samples are written but samples are still passed through
	err error
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The transcript file is created or truncated. The pixel ratio of the
// view and the dispatcher preferences are written to the transcript header.
// If prf is nil the default preferences are recorded.
func NewRecorder(transcript string, src userinput.Source, view userinput.View, prf *dispatcher.Preferences) (*Recorder, error) {
	if src == nil {
		return nil, curated.Errorf(RecordingError, "no source to record")
	}

	f, err := os.Create(transcript)
	if err != nil {
		return nil, curated.Errorf(RecordingError, err)
	}

	if prf == nil {
		prf = dispatcher.DefaultPreferences()
	}

	err = writeHeader(f, userinput.PixelRatio(view), prf)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Recorder{
		src:    src,
		output: f,
	}, nil
}

func (rec *Recorder) String() string {
	return fmt.Sprintf("recording frame %d", rec.frame)
}

// Drain implements the userinput.Source interface.
func (rec *Recorder) Drain(cat userinput.Category) []userinput.Sample {
	samples := rec.src.Drain(cat)

	if rec.err != nil {
		return samples
	}

	for _, s := range samples {
		line := fmt.Sprintf("%s\n", formatEntry(rec.frame, cat, s))
		if _, err := io.WriteString(rec.output, line); err != nil {
			rec.err = curated.Errorf(RecordingError, err)
			break
		}
		rec.written = true
	}

	return samples
}

// AttachDigest causes the hash of the digest to be written to the
// transcript. The digest should be listening to the events dispatched from
// the recorded samples.
func (rec *Recorder) AttachDigest(dig digest.Digest) {
	rec.dig = dig
}

// NextFrame marks the end of the current frame. If a digest is attached then
// it must have been advanced to the end of the frame before NextFrame is
// called.
func (rec *Recorder) NextFrame() {
	if rec.dig != nil && rec.written && rec.err == nil {
		line := fmt.Sprintf("%s\n", formatHash(rec.frame, rec.dig.Hash()))
		if _, err := io.WriteString(rec.output, line); err != nil {
			rec.err = curated.Errorf(RecordingError, err)
		}
	}
	rec.written = false
	rec.frame++
}

// Err returns the first error encountered while writing the transcript.
func (rec *Recorder) Err() error {
	return rec.err
}

// End the recording and close the transcript file. Returns the first error
// encountered while recording, if there was one.
func (rec *Recorder) End() error {
	if rec.output == nil {
		return rec.err
	}

	if rec.err == nil {
		line := fmt.Sprintf("%s%s%d\n", endMarker, fieldSep, rec.frame)
		if _, err := io.WriteString(rec.output, line); err != nil {
			rec.err = curated.Errorf(RecordingError, err)
		}
	}

	err := rec.output.Close()
	rec.output = nil
	if err != nil && rec.err == nil {
		rec.err = curated.Errorf(RecordingError, err)
	}

	return rec.err
}
