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
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/term"

	"github.com/tactile-go/tactile/curated"
	"github.com/tactile-go/tactile/logger"
	"github.com/tactile-go/tactile/queue"
	"github.com/tactile-go/tactile/userinput"
)

// DefaultDevice is the terminal device used if none is specified.
const DefaultDevice = "/dev/tty"

// Sentinal error patterns.
const (
	TerminalError = "terminal: %v"
)

// Terminal reads from a terminal device in cbreak mode.
type Terminal struct {
	term  *term.Term
	q     *queue.Queue
	start time.Time

	// the key that closes the terminal. an empty string means that no key
	// closes the terminal
	quitKey string
	quit    chan bool

	closeOnce sync.Once
	closeErr  error
}

// Open the terminal device and put it in cbreak mode. Keys read from the
// terminal are pushed to the queue once Run() is called.
func Open(device string, q *queue.Queue) (*Terminal, error) {
	if device == "" {
		device = DefaultDevice
	}

	t, err := term.Open(device, term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	logger.Logf(logger.Allow, "terminput", "opened %s in cbreak mode", device)

	return &Terminal{
		term:  t,
		q:     q,
		start: time.Now(),
		quit:  make(chan bool),
	}, nil
}

// SetQuitKey sets the key that causes Run() to return. The Done() channel is
// closed when the key is pressed.
func (trm *Terminal) SetQuitKey(key string) {
	trm.quitKey = key
}

// Done returns a channel that is closed when the quit key is pressed.
func (trm *Terminal) Done() <-chan bool {
	return trm.quit
}

// Run reads from the terminal until the terminal is closed or the quit key is
// pressed. It should be run in its own goroutine.
func (trm *Terminal) Run() error {
	b := make([]byte, 64)
	var pending []byte

	for {
		n, err := trm.term.Read(b)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
				return nil
			}
			return curated.Errorf(TerminalError, err)
		}

		var keys []Key
		keys, pending = Decode(append(pending, b[:n]...))

		now := time.Since(trm.start)
		for _, k := range keys {
			if trm.quitKey != "" && k.Name == trm.quitKey && k.Mod == 0 {
				close(trm.quit)
				return nil
			}
			trm.q.Push(userinput.Keyboard, userinput.Sample{Kind: userinput.KeyDown, Key: k.Name, Mod: k.Mod, Time: now})
			trm.q.Push(userinput.Keyboard, userinput.Sample{Kind: userinput.KeyUp, Key: k.Name, Mod: k.Mod, Time: now})
		}
	}
}

// Close restores the terminal to its original state and closes the device.
func (trm *Terminal) Close() error {
	trm.closeOnce.Do(func() {
		err := trm.term.Restore()
		if err != nil {
			trm.closeErr = curated.Errorf(TerminalError, err)
		}
		err = trm.term.Close()
		if err != nil && trm.closeErr == nil {
			trm.closeErr = curated.Errorf(TerminalError, err)
		}
	})
	return trm.closeErr
}
