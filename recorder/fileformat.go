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
	"strconv"
	"strings"
	"time"

	"github.com/tactile-go/tactile/curated"
	"github.com/tactile-go/tactile/dispatcher"
	"github.com/tactile-go/tactile/prefs"
	"github.com/tactile-go/tactile/userinput"
)

// transcript sample line format
// -----------------------------
//
// frame, category, kind, id, x, y, prevx, prevy, hasprev, time, buttons,
// wheelx, wheely, mod, repeat, z, key
//
// the key is the last field and is quoted so that it may contain the field
// separator.

const (
	fieldFrame int = iota
	fieldCategory
	fieldKind
	fieldID
	fieldX
	fieldY
	fieldPrevX
	fieldPrevY
	fieldHasPrev
	fieldTime
	fieldButtons
	fieldWheelX
	fieldWheelY
	fieldMod
	fieldRepeat
	fieldZ
	fieldKey
	numFields
)

const fieldSep = ", "

// the final line of a complete transcript records the number of frames.
// frames with no samples are not otherwise represented in the transcript
const endMarker = "end"

// transcript file header format
// -----------------------------
//
// <magic>
// <version>
// <pixel ratio>
// <max slots>
// <touch timeout>
// <multi contact>
// <history capacity>
//
// the dispatcher preferences in effect at the time of the recording are part
// of the header because they change the events produced by the same input

const (
	lineMagic int = iota
	lineVersion
	linePixelRatio
	lineMaxSlots
	lineTouchTimeout
	lineMultiContact
	lineHistoryCapacity
	numHeaderLines
)

const (
	magic   = "tactile transcript"
	version = "2"
)

// hash line format
// ----------------
//
// hash, frame, digest
//
// written at the end of every frame in which samples were recorded. the
// digest is the hash of the events delivered up to and including the frame
const hashMarker = "hash"

func writeHeader(output io.Writer, ratio float64, prf *dispatcher.Preferences) error {
	lines := make([]string, numHeaderLines)
	lines[lineMagic] = magic
	lines[lineVersion] = version
	lines[linePixelRatio] = formatFloat(ratio)
	lines[lineMaxSlots] = strconv.Itoa(prf.MaxSlots.Get().(int))
	lines[lineTouchTimeout] = prf.TouchTimeout.Get().(time.Duration).String()
	lines[lineMultiContact] = strconv.FormatBool(prf.MultiContact.Get().(bool))
	lines[lineHistoryCapacity] = strconv.Itoa(prf.HistoryCapacity.Get().(int))

	line := fmt.Sprintf("%s\n", strings.Join(lines, "\n"))

	n, err := io.WriteString(output, line)
	if err != nil {
		return curated.Errorf(RecordingError, err)
	}
	if n != len(line) {
		return curated.Errorf(RecordingError, "output truncated")
	}

	return nil
}

func (plb *Playback) readHeader(lines []string) error {
	if len(lines) < numHeaderLines {
		return curated.Errorf(PlaybackError, "transcript too short")
	}
	if lines[lineMagic] != magic {
		return curated.Errorf(PlaybackError, "not a transcript file")
	}
	if lines[lineVersion] != version {
		return curated.Errorf(PlaybackError, fmt.Sprintf("unsupported transcript version (%s)", lines[lineVersion]))
	}

	var err error
	plb.PixelRatio, err = strconv.ParseFloat(lines[linePixelRatio], 64)
	if err != nil {
		return curated.Errorf(TranscriptError, linePixelRatio+1, err)
	}

	plb.Preferences = dispatcher.DefaultPreferences()

	// prefs.Bool accepts any string, treating anything other than "true" as
	// false. the multi contact line is checked here so that a corrupt value
	// is not silently accepted
	if _, err := strconv.ParseBool(lines[lineMultiContact]); err != nil {
		return curated.Errorf(TranscriptError, lineMultiContact+1, err)
	}

	for _, h := range []struct {
		line int
		pref interface{ Set(prefs.Value) error }
	}{
		{line: lineMaxSlots, pref: &plb.Preferences.MaxSlots},
		{line: lineTouchTimeout, pref: &plb.Preferences.TouchTimeout},
		{line: lineMultiContact, pref: &plb.Preferences.MultiContact},
		{line: lineHistoryCapacity, pref: &plb.Preferences.HistoryCapacity},
	} {
		if err := h.pref.Set(lines[h.line]); err != nil {
			return curated.Errorf(TranscriptError, h.line+1, err)
		}
	}

	return nil
}

func formatHash(frame int, hash string) string {
	return strings.Join([]string{hashMarker, strconv.Itoa(frame), hash}, fieldSep)
}

// parseHash is the inverse of formatHash(). the line number is used in error
// messages.
func parseHash(line string, lineNum int) (int, string, error) {
	toks := strings.Split(line, fieldSep)
	if len(toks) != 3 || toks[0] != hashMarker {
		return 0, "", curated.Errorf(TranscriptError, lineNum, "malformed hash line")
	}
	frame, err := strconv.Atoi(toks[1])
	if err != nil {
		return 0, "", curated.Errorf(TranscriptError, lineNum, fmt.Sprintf("frame: %v", err))
	}
	if frame < 0 {
		return 0, "", curated.Errorf(TranscriptError, lineNum, "negative frame number")
	}
	return frame, toks[2], nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func formatEntry(frame int, cat userinput.Category, s userinput.Sample) string {
	toks := make([]string, numFields)
	toks[fieldFrame] = strconv.Itoa(frame)
	toks[fieldCategory] = cat.String()
	toks[fieldKind] = s.Kind.String()
	toks[fieldID] = strconv.FormatUint(s.ID, 10)
	toks[fieldX] = formatFloat(s.X)
	toks[fieldY] = formatFloat(s.Y)
	toks[fieldPrevX] = formatFloat(s.PrevX)
	toks[fieldPrevY] = formatFloat(s.PrevY)
	toks[fieldHasPrev] = formatBool(s.HasPrev)
	toks[fieldTime] = strconv.FormatInt(int64(s.Time), 10)
	toks[fieldButtons] = strconv.Itoa(int(s.Buttons))
	toks[fieldWheelX] = formatFloat(s.WheelX)
	toks[fieldWheelY] = formatFloat(s.WheelY)
	toks[fieldMod] = strconv.Itoa(int(s.Mod))
	toks[fieldRepeat] = formatBool(s.Repeat)
	toks[fieldZ] = formatFloat(s.Z)
	toks[fieldKey] = strconv.Quote(s.Key)
	return strings.Join(toks, fieldSep)
}

// parseEntry is the inverse of formatEntry(). the line number is used in
// error messages.
func parseEntry(line string, lineNum int) (playbackEntry, error) {
	toks := strings.SplitN(line, fieldSep, numFields)
	if len(toks) != numFields {
		return playbackEntry{}, curated.Errorf(TranscriptError, lineNum, fmt.Sprintf("expected %d fields", numFields))
	}

	entry := playbackEntry{line: lineNum}

	// field parsing stops at the first error. the error is then annotated
	// with the name of the field
	var err error
	var field string

	parseFloat := func(f int, name string) float64 {
		if err != nil {
			return 0
		}
		var v float64
		v, err = strconv.ParseFloat(toks[f], 64)
		field = name
		return v
	}
	parseInt := func(f int, name string, bits int) int64 {
		if err != nil {
			return 0
		}
		var v int64
		v, err = strconv.ParseInt(toks[f], 10, bits)
		field = name
		return v
	}
	parseBool := func(f int, name string) bool {
		if err != nil {
			return false
		}
		field = name
		switch toks[f] {
		case "0":
			return false
		case "1":
			return true
		}
		err = fmt.Errorf("not a boolean (%s)", toks[f])
		return false
	}

	entry.frame = int(parseInt(fieldFrame, "frame", 0))
	if err == nil {
		field = "category"
		entry.category, err = userinput.ParseCategory(toks[fieldCategory])
	}
	if err == nil {
		field = "kind"
		entry.sample.Kind, err = userinput.ParseKind(toks[fieldKind])
	}
	if err == nil {
		field = "id"
		entry.sample.ID, err = strconv.ParseUint(toks[fieldID], 10, 64)
	}
	entry.sample.X = parseFloat(fieldX, "x")
	entry.sample.Y = parseFloat(fieldY, "y")
	entry.sample.PrevX = parseFloat(fieldPrevX, "prevx")
	entry.sample.PrevY = parseFloat(fieldPrevY, "prevy")
	entry.sample.HasPrev = parseBool(fieldHasPrev, "hasprev")
	entry.sample.Time = time.Duration(parseInt(fieldTime, "time", 64))
	entry.sample.Buttons = userinput.MouseButtons(parseInt(fieldButtons, "buttons", 8))
	entry.sample.WheelX = parseFloat(fieldWheelX, "wheelx")
	entry.sample.WheelY = parseFloat(fieldWheelY, "wheely")
	entry.sample.Mod = userinput.KeyMod(parseInt(fieldMod, "mod", 8))
	entry.sample.Repeat = parseBool(fieldRepeat, "repeat")
	entry.sample.Z = parseFloat(fieldZ, "z")
	if err == nil {
		field = "key"
		entry.sample.Key, err = strconv.Unquote(toks[fieldKey])
	}

	if err != nil {
		return playbackEntry{}, curated.Errorf(TranscriptError, lineNum, fmt.Sprintf("%s: %v", field, err))
	}

	if entry.frame < 0 {
		return playbackEntry{}, curated.Errorf(TranscriptError, lineNum, "negative frame number")
	}

	return entry, nil
}
