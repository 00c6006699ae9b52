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
	"strconv"
	"strings"

	"github.com/tactile-go/tactile/curated"
	"github.com/tactile-go/tactile/digest"
	"github.com/tactile-go/tactile/dispatcher"
	"github.com/tactile-go/tactile/userinput"
)

// Sentinal error patterns.
const (
	PlaybackError     = "playback: %v"
	TranscriptError   = "playback: line %d: %v"
	PlaybackHashError = "playback: unexpected events at frame %d (line %d)"
)

type playbackEntry struct {
	frame    int
	category userinput.Category
	sample   userinput.Sample

	// the line in the transcript the entry appears
	line int
}

type playbackHash struct {
	hash string
	line int
}

// Playback is used to reperform the input recorded in a transcript. It
// implements the userinput.Source interface.
type Playback struct {
	transcript string

	// pixel ratio of the view at the time of the recording
	PixelRatio float64

	// dispatcher preferences at the time of the recording. not backed by a
	// file
	Preferences *dispatcher.Preferences

	sequence []playbackEntry

	// recorded hashes indexed by frame
	hashes map[int]playbackHash
	dig    digest.Digest

	// index of the first entry for the current frame
	seqCt int

	frame int

	// the number of frames in the recording
	numFrames int
}

// NewPlayback is the preferred method of initialisation for the Playback
// type.
func NewPlayback(transcript string) (*Playback, error) {
	tf, err := os.Open(transcript)
	if err != nil {
		return nil, curated.Errorf(PlaybackError, err)
	}
	buffer, err := io.ReadAll(tf)
	if err != nil {
		tf.Close()
		return nil, curated.Errorf(PlaybackError, err)
	}
	err = tf.Close()
	if err != nil {
		return nil, curated.Errorf(PlaybackError, err)
	}

	plb := &Playback{
		transcript: transcript,
		hashes:     make(map[int]playbackHash),
	}

	// convert file contents to an array of lines
	lines := strings.Split(strings.TrimSuffix(string(buffer), "\n"), "\n")

	err = plb.readHeader(lines)
	if err != nil {
		return nil, err
	}

	ended := false

	// frames must be listed in order. hash lines and sample lines share the
	// ordering
	lastFrame := 0

	for i := numHeaderLines; i < len(lines); i++ {
		lineNum := i + 1

		if ended {
			return nil, curated.Errorf(TranscriptError, lineNum, "input after end of transcript")
		}

		if strings.HasPrefix(lines[i], endMarker+fieldSep) {
			n, err := strconv.Atoi(strings.TrimPrefix(lines[i], endMarker+fieldSep))
			if err != nil {
				return nil, curated.Errorf(TranscriptError, lineNum, err)
			}
			if n > plb.numFrames {
				plb.numFrames = n
			}
			ended = true
			continue
		}

		if strings.HasPrefix(lines[i], hashMarker+fieldSep) {
			frame, hash, err := parseHash(lines[i], lineNum)
			if err != nil {
				return nil, err
			}
			if frame < lastFrame {
				return nil, curated.Errorf(TranscriptError, lineNum, "frame out of order")
			}
			lastFrame = frame
			plb.hashes[frame] = playbackHash{hash: hash, line: lineNum}
			plb.numFrames = max(plb.numFrames, frame+1)
			continue
		}

		entry, err := parseEntry(lines[i], lineNum)
		if err != nil {
			return nil, err
		}

		if entry.frame < lastFrame {
			return nil, curated.Errorf(TranscriptError, lineNum, "frame out of order")
		}
		lastFrame = entry.frame

		plb.sequence = append(plb.sequence, entry)
		plb.numFrames = max(plb.numFrames, entry.frame+1)
	}

	return plb, nil
}

func (plb *Playback) String() string {
	if plb.numFrames == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", plb.frame, plb.numFrames, 100*(float64(plb.frame)/float64(plb.numFrames)))
}

// View returns a userinput.View with the pixel ratio of the recording.
func (plb *Playback) View() userinput.View {
	return userinput.FixedView(plb.PixelRatio)
}

// Drain implements the userinput.Source interface. It returns the samples
// recorded for the category in the current frame.
func (plb *Playback) Drain(cat userinput.Category) []userinput.Sample {
	var samples []userinput.Sample
	for i := plb.seqCt; i < len(plb.sequence) && plb.sequence[i].frame == plb.frame; i++ {
		if plb.sequence[i].category == cat {
			samples = append(samples, plb.sequence[i].sample)
		}
	}
	return samples
}

// AttachDigest causes the hashes in the transcript to be compared with the
// hash of the digest. The digest should be listening to the events
// dispatched from the playback samples.
func (plb *Playback) AttachDigest(dig digest.Digest) {
	plb.dig = dig
}

// NextFrame advances playback to the next frame. If a digest is attached
// then it must have been advanced to the end of the frame before NextFrame
// is called. An error is returned if the hash of the digest does not match
// the hash recorded for the frame.
func (plb *Playback) NextFrame() error {
	var err error
	if plb.dig != nil {
		if h, ok := plb.hashes[plb.frame]; ok && h.hash != plb.dig.Hash() {
			err = curated.Errorf(PlaybackHashError, plb.frame, h.line)
		}
	}

	plb.frame++
	for plb.seqCt < len(plb.sequence) && plb.sequence[plb.seqCt].frame < plb.frame {
		plb.seqCt++
	}

	return err
}

// EndFrame returns true if playback has gone past the last frame of the
// recording.
func (plb *Playback) EndFrame() bool {
	return plb.frame >= plb.numFrames
}

// NumFrames returns the number of frames in the recording.
func (plb *Playback) NumFrames() int {
	return plb.numFrames
}
