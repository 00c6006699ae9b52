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

package recorder_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tactile-go/tactile/curated"
	"github.com/tactile-go/tactile/digest"
	"github.com/tactile-go/tactile/dispatcher"
	"github.com/tactile-go/tactile/prefs"
	"github.com/tactile-go/tactile/queue"
	"github.com/tactile-go/tactile/recorder"
	"github.com/tactile-go/tactile/test"
	"github.com/tactile-go/tactile/userinput"
)

// the input for each frame of the regression test
var script = [][]struct {
	cat userinput.Category
	s   userinput.Sample
}{
	{
		{userinput.Mouse, userinput.Sample{Kind: userinput.Move, X: 10, Y: 10, Time: 1}},
		{userinput.Touch, userinput.Sample{Kind: userinput.Begin, ID: 5, X: 10, Y: 10, Time: 1}},
		{userinput.Touch, userinput.Sample{Kind: userinput.Begin, ID: 6, X: 0.1, Y: 1e-9, Time: 1}},
	},
	{
		{userinput.Touch, userinput.Sample{Kind: userinput.Move, ID: 5, X: 12, Y: 11, Time: 2}},
		{userinput.Keyboard, userinput.Sample{Kind: userinput.KeyDown, Key: ", \"x\"", Mod: userinput.ModShift}},
		{userinput.Mouse, userinput.Sample{Kind: userinput.Wheel, WheelY: -0.25, Time: 2}},
	},
	{},
	{
		{userinput.Touch, userinput.Sample{Kind: userinput.End, ID: 5, X: 12, Y: 11, Time: 4}},
		{userinput.Touch, userinput.Sample{Kind: userinput.Cancel, ID: 6, X: 3, Y: 3, PrevX: 2, PrevY: 2, HasPrev: true, Time: 4}},
		{userinput.Accelerometer, userinput.Sample{Kind: userinput.Motion, X: 0.5, Y: -0.5, Z: 9.81, Time: 4}},
	},
	{},
}

func TestRegression(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "transcript")
	view := userinput.FixedView(1.5)

	// original run, recording the input
	q := queue.NewQueue(queue.Unlimited, nil)
	rec, err := recorder.NewRecorder(transcript, q, view, nil)
	test.DemandSuccess(t, err)

	original := digest.NewEvents()
	rec.AttachDigest(original)
	d, err := dispatcher.NewDispatcher(rec, view, original, nil, nil)
	test.DemandSuccess(t, err)

	for _, frame := range script {
		for _, in := range frame {
			q.Push(in.cat, in.s)
		}
		test.DemandSuccess(t, d.Pass())
		original.NewFrame()
		rec.NextFrame()
	}
	test.DemandSuccess(t, rec.End())

	// playback
	plb, err := recorder.NewPlayback(transcript)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.PixelRatio, 1.5)
	test.ExpectEquality(t, plb.NumFrames(), len(script))

	playback := digest.NewEvents()
	plb.AttachDigest(playback)
	d, err = dispatcher.NewDispatcher(plb, plb.View(), playback, plb.Preferences, nil)
	test.DemandSuccess(t, err)

	for !plb.EndFrame() {
		test.DemandSuccess(t, d.Pass())
		playback.NewFrame()
		test.DemandSuccess(t, plb.NextFrame())
	}

	test.ExpectEquality(t, playback.Frame(), original.Frame())
	test.ExpectEquality(t, playback.Hash(), original.Hash())
}

// the dispatcher preferences in effect during the recording change the events
// produced by the recorded samples and must be restored for playback
func TestRecordedPreferences(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "transcript")

	prf := dispatcher.DefaultPreferences()
	test.DemandSuccess(t, prf.MaxSlots.Set(1))
	test.DemandSuccess(t, prf.TouchTimeout.Set(20*time.Millisecond))
	test.DemandSuccess(t, prf.MultiContact.Set(true))
	test.DemandSuccess(t, prf.HistoryCapacity.Set(3))

	q := queue.NewQueue(queue.Unlimited, nil)
	rec, err := recorder.NewRecorder(transcript, q, nil, prf)
	test.DemandSuccess(t, err)

	original := digest.NewEvents()
	rec.AttachDigest(original)
	d, err := dispatcher.NewDispatcher(rec, nil, original, prf, nil)
	test.DemandSuccess(t, err)

	// with one slot the second contact is dropped
	q.Push(userinput.Touch, userinput.Sample{Kind: userinput.Begin, ID: 1, X: 1, Y: 1, Time: time.Millisecond})
	q.Push(userinput.Touch, userinput.Sample{Kind: userinput.Begin, ID: 2, X: 2, Y: 2, Time: time.Millisecond})
	test.DemandSuccess(t, d.Pass())
	original.NewFrame()
	rec.NextFrame()
	test.DemandSuccess(t, rec.End())

	plb, err := recorder.NewPlayback(transcript)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.Preferences.MaxSlots.Get(), 1)
	test.ExpectEquality(t, plb.Preferences.TouchTimeout.Get(), prefs.Value(20*time.Millisecond))
	test.ExpectEquality(t, plb.Preferences.MultiContact.Get(), true)
	test.ExpectEquality(t, plb.Preferences.HistoryCapacity.Get(), 3)

	playback := digest.NewEvents()
	plb.AttachDigest(playback)
	d, err = dispatcher.NewDispatcher(plb, plb.View(), playback, plb.Preferences, nil)
	test.DemandSuccess(t, err)
	for !plb.EndFrame() {
		test.DemandSuccess(t, d.Pass())
		playback.NewFrame()
		test.DemandSuccess(t, plb.NextFrame())
	}
	test.ExpectEquality(t, playback.Hash(), original.Hash())

	// playing back with the default preferences produces different events
	// and the recorded hash no longer matches
	plb, err = recorder.NewPlayback(transcript)
	test.DemandSuccess(t, err)
	mismatch := digest.NewEvents()
	plb.AttachDigest(mismatch)
	d, err = dispatcher.NewDispatcher(plb, plb.View(), mismatch, nil, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, d.Pass())
	mismatch.NewFrame()
	err = plb.NextFrame()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, recorder.PlaybackHashError))
	test.ExpectInequality(t, mismatch.Hash(), original.Hash())
}

func TestPlaybackHash(t *testing.T) {
	dir := t.TempDir()
	transcript := filepath.Join(dir, "transcript")

	q := queue.NewQueue(queue.Unlimited, nil)
	rec, err := recorder.NewRecorder(transcript, q, nil, nil)
	test.DemandSuccess(t, err)

	original := digest.NewEvents()
	rec.AttachDigest(original)
	d, err := dispatcher.NewDispatcher(rec, nil, original, nil, nil)
	test.DemandSuccess(t, err)

	q.Push(userinput.Keyboard, userinput.Sample{Kind: userinput.KeyDown, Key: "a"})
	test.DemandSuccess(t, d.Pass())
	original.NewFrame()
	rec.NextFrame()

	// no samples and so no hash line for this frame
	test.DemandSuccess(t, d.Pass())
	original.NewFrame()
	rec.NextFrame()
	test.DemandSuccess(t, rec.End())

	data, err := os.ReadFile(transcript)
	test.DemandSuccess(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	test.DemandEquality(t, len(lines), 10)
	test.ExpectSuccess(t, strings.HasPrefix(lines[8], "hash, 0, "))
	test.ExpectEquality(t, lines[9], "end, 2")

	// alter the recorded key press. the transcript is still valid but the
	// events no longer match the recorded hash
	lines[7] = strings.Replace(lines[7], `"a"`, `"b"`, 1)
	altered := filepath.Join(dir, "altered")
	test.DemandSuccess(t, os.WriteFile(altered, []byte(strings.Join(lines, "\n")+"\n"), 0600))

	plb, err := recorder.NewPlayback(altered)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.NumFrames(), 2)

	playback := digest.NewEvents()
	plb.AttachDigest(playback)
	d, err = dispatcher.NewDispatcher(plb, plb.View(), playback, plb.Preferences, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, d.Pass())
	playback.NewFrame()
	err = plb.NextFrame()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, recorder.PlaybackHashError))
	test.ExpectEquality(t, err.Error(), "playback: unexpected events at frame 0 (line 9)")

	// without a digest the hashes are not checked
	plb, err = recorder.NewPlayback(altered)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, plb.NextFrame())
}

func TestPlaybackDrain(t *testing.T) {
	transcript := filepath.Join(t.TempDir(), "transcript")

	q := queue.NewQueue(queue.Unlimited, nil)
	rec, err := recorder.NewRecorder(transcript, q, nil, nil)
	test.DemandSuccess(t, err)

	q.Push(userinput.Touch, userinput.Sample{Kind: userinput.Begin, ID: 1, Time: time.Millisecond})
	q.Push(userinput.Keyboard, userinput.Sample{Kind: userinput.KeyDown, Key: "q"})

	// the recorder passes samples through unchanged
	test.ExpectEquality(t, len(rec.Drain(userinput.Touch)), 1)
	test.ExpectEquality(t, len(rec.Drain(userinput.Keyboard)), 1)
	rec.NextFrame()
	rec.NextFrame()
	q.Push(userinput.Touch, userinput.Sample{Kind: userinput.End, ID: 1, Time: 2 * time.Millisecond})
	rec.Drain(userinput.Touch)
	test.DemandSuccess(t, rec.End())

	plb, err := recorder.NewPlayback(transcript)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.PixelRatio, 1.0)
	test.ExpectEquality(t, plb.NumFrames(), 3)
	test.ExpectEquality(t, plb.Preferences.MaxSlots.Get(), dispatcher.DefaultMaxSlots)

	s := plb.Drain(userinput.Touch)
	test.DemandEquality(t, len(s), 1)
	test.ExpectEquality(t, s[0].Kind, userinput.Begin)
	test.ExpectEquality(t, s[0].Time, time.Millisecond)
	s = plb.Drain(userinput.Keyboard)
	test.DemandEquality(t, len(s), 1)
	test.ExpectEquality(t, s[0].Key, "q")
	test.ExpectEquality(t, len(plb.Drain(userinput.Mouse)), 0)

	// frame one is empty
	test.ExpectSuccess(t, plb.NextFrame())
	test.ExpectFailure(t, plb.EndFrame())
	test.ExpectEquality(t, len(plb.Drain(userinput.Touch)), 0)

	test.ExpectSuccess(t, plb.NextFrame())
	s = plb.Drain(userinput.Touch)
	test.DemandEquality(t, len(s), 1)
	test.ExpectEquality(t, s[0].Kind, userinput.End)

	// the recorder ended before the third frame was finished
	test.ExpectSuccess(t, plb.NextFrame())
	test.ExpectSuccess(t, plb.EndFrame())
}

const header = "tactile transcript\n2\n1\n8\n5s\nfalse\n50\n"

func TestTranscriptErrors(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, content string) string {
		pth := filepath.Join(dir, name)
		test.DemandSuccess(t, os.WriteFile(pth, []byte(content), 0600))
		return pth
	}

	_, err := recorder.NewPlayback(filepath.Join(dir, "missing"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, recorder.PlaybackError))

	_, err = recorder.NewPlayback(write("magic", "not a transcript\n1\n1\n"))
	test.ExpectFailure(t, err)

	_, err = recorder.NewPlayback(write("version", "tactile transcript\n99\n1\n8\n5s\nfalse\n50\n"))
	test.ExpectFailure(t, err)

	_, err = recorder.NewPlayback(write("fields", header+"0, touch, begin\n"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, recorder.TranscriptError))
	test.ExpectEquality(t, err.Error(), "playback: line 8: expected 17 fields")

	_, err = recorder.NewPlayback(write("kind", header+
		"0, touch, tap, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, \"\"\n"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, recorder.TranscriptError))

	_, err = recorder.NewPlayback(write("order", header+
		"1, touch, begin, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, \"\"\n"+
		"0, touch, end, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, \"\"\n"))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, err.Error(), "playback: line 9: frame out of order")

	plb, err := recorder.NewPlayback(write("ok", "tactile transcript\n2\n2\n1\n10ms\ntrue\n7\n"+
		"0, touch, begin, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, \"\"\n"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.PixelRatio, 2.0)
	test.ExpectEquality(t, plb.NumFrames(), 1)
	test.ExpectEquality(t, plb.Preferences.MaxSlots.Get(), 1)
	test.ExpectEquality(t, plb.Preferences.TouchTimeout.Get(), prefs.Value(10*time.Millisecond))
	test.ExpectEquality(t, plb.Preferences.MultiContact.Get(), true)
	test.ExpectEquality(t, plb.Preferences.HistoryCapacity.Get(), 7)

	// the preferences in the header are validated
	_, err = recorder.NewPlayback(write("maxslots", "tactile transcript\n2\n1\n0\n5s\nfalse\n50\n"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, recorder.TranscriptError))

	_, err = recorder.NewPlayback(write("timeout", "tactile transcript\n2\n1\n8\nsoon\nfalse\n50\n"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, recorder.TranscriptError))

	_, err = recorder.NewPlayback(write("multi", "tactile transcript\n2\n1\n8\n5s\nmaybe\n50\n"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, recorder.TranscriptError))

	// version one transcripts have no preferences
	_, err = recorder.NewPlayback(write("version1", "tactile transcript\n1\n1\n"))
	test.ExpectFailure(t, err)

	// hash lines
	_, err = recorder.NewPlayback(write("hash", header+"hash, x, 00\n"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, recorder.TranscriptError))

	_, err = recorder.NewPlayback(write("hashorder", header+
		"1, touch, begin, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, \"\"\n"+
		"hash, 0, 00\n"))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, err.Error(), "playback: line 9: frame out of order")

	plb, err = recorder.NewPlayback(write("hashonly", header+"hash, 4, 00\n"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.NumFrames(), 5)
}
