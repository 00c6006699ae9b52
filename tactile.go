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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/tactile-go/tactile/diagnostics"
	"github.com/tactile-go/tactile/digest"
	"github.com/tactile-go/tactile/dispatcher"
	"github.com/tactile-go/tactile/imguiinput"
	"github.com/tactile-go/tactile/logger"
	"github.com/tactile-go/tactile/modalflag"
	"github.com/tactile-go/tactile/paths"
	"github.com/tactile-go/tactile/performance"
	"github.com/tactile-go/tactile/performance/limiter"
	"github.com/tactile-go/tactile/prefs"
	"github.com/tactile-go/tactile/queue"
	"github.com/tactile-go/tactile/recorder"
	"github.com/tactile-go/tactile/sdlinput"
	"github.com/tactile-go/tactile/statsview"
	"github.com/tactile-go/tactile/terminput"
	"github.com/tactile-go/tactile/userinput"
	"github.com/tactile-go/tactile/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode handles interrupts
	// itself.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// PlatformCreator facilitates the creation, servicing and destruction of
// platforms that need to be run in the main thread.
type PlatformCreator interface {
	// cleanup resources used by the platform
	Destroy()

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// by called as part of a larger loop from the main thread.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window event handling (including creation) to
// occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (PlatformCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan PlatformCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (PlatformCreator, error)),
		creation:      make(chan PlatformCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	done := false
	var plt PlatformCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			if plt != nil {
				plt.Destroy()
			}

			plt, err = creator()
			if err != nil {
				sync.creationError <- err
				plt = nil
			} else {
				sync.creation <- plt
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if plt != nil {
					plt.Destroy()
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if plt != nil {
				plt.Service()
			} else {
				time.Sleep(time.Millisecond)
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate platform creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("SDL", "TERM", "PLAYBACK", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "SDL":
		err = sdlMode(md, sync)

	case "TERM":
		err = termMode(md, sync)

	case "PLAYBACK":
		err = playback(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// options common to the live input modes.
type liveOptions struct {
	fps      *int
	record   *string
	maxSlots *int
	timeout  *time.Duration
	multi    *bool
	queueLen *int
	echo     *bool
	log      *bool
	prefs    *string
	stats    *bool
	memviz   *string
}

func addLiveOptions(md *modalflag.Modes) liveOptions {
	return liveOptions{
		fps:      md.AddInt("fps", 60, "dispatch passes per second"),
		record:   md.AddString("record", "", "record input to transcript file (AUTO for a generated name)"),
		maxSlots: md.AddInt("maxslots", dispatcher.DefaultMaxSlots, "maximum number of touch contacts"),
		timeout:  md.AddDuration("timeout", dispatcher.DefaultTouchTimeout, "time before a stale touch slot can be reclaimed"),
		multi:    md.AddBool("multi", dispatcher.DefaultMultiContact, "pointer events carry every active contact"),
		queueLen: md.AddInt("queue", queue.Unlimited, "maximum samples queued per category (0 is unlimited)"),
		echo:     md.AddBool("echo", true, "print events as they are dispatched"),
		log:      md.AddBool("log", false, "echo debugging log to stdout"),
		prefs:    md.AddString("prefs", "", "preferences override. eg. dispatcher.multicontact::true"),
		stats:    md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress)),
		memviz:   md.AddString("memviz", "", "write graphviz file of dispatcher memory on exit"),
	}
}

// preferences loads the preferences from disk and applies the command line
// options to them.
func (opts liveOptions) preferences(md *modalflag.Modes) (*dispatcher.Preferences, error) {
	if *opts.prefs != "" {
		prefs.PushCommandLineStack(*opts.prefs)
		defer prefs.PopCommandLineStack()
	}

	p, err := dispatcher.NewPreferences("")
	if err != nil {
		return nil, err
	}

	// flags only override the preferences if they were set on the command
	// line
	md.Visit(func(flg string) {
		if err != nil {
			return
		}
		switch flg {
		case "maxslots":
			err = p.MaxSlots.Set(*opts.maxSlots)
		case "timeout":
			err = p.TouchTimeout.Set(*opts.timeout)
		case "multi":
			err = p.MultiContact.Set(*opts.multi)
		}
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

// run the dispatcher until the quit channel is closed. returns the dispatcher
// so that it can be inspected.
func (opts liveOptions) run(md *modalflag.Modes, q *queue.Queue, view userinput.View,
	quit <-chan bool, extra ...userinput.Listener) (rerr error) {

	if *opts.log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *opts.stats {
		if statsview.Available() {
			stop := statsview.Launch(md.Output, statsview.DefaultAddress)
			defer stop()
		} else {
			fmt.Fprintln(md.Output, "! statsview not available in this build")
		}
	}

	prf, err := opts.preferences(md)
	if err != nil {
		return err
	}

	var src userinput.Source = q
	var rec *recorder.Recorder
	var dig *digest.Events
	if *opts.record != "" {
		if strings.ToUpper(*opts.record) == "AUTO" {
			*opts.record, err = paths.ResourcePath("recordings", paths.UniqueFilename("transcript", strings.ToLower(md.Mode())))
			if err != nil {
				return err
			}
		}

		rec, err = recorder.NewRecorder(*opts.record, q, view, prf)
		if err != nil {
			return err
		}
		src = rec

		// the hash of the dispatched events is recorded so that playback can
		// be verified
		dig = digest.NewEvents()
		rec.AttachDigest(dig)
		defer func() {
			err := rec.End()
			if rerr == nil {
				rerr = err
			}
			if rerr == nil {
				fmt.Fprintf(md.Output, "! recording written to %s\n", *opts.record)
			}
		}()
	}

	listeners := userinput.Listeners(extra)
	if *opts.echo {
		listeners = append(listeners, echoListener(md))
	}
	if dig != nil {
		listeners = append(listeners, dig)
	}

	dsp, err := dispatcher.NewDispatcher(src, view, listeners, prf, diagnostics.Log{Tag: "dispatcher"})
	if err != nil {
		return err
	}

	if *opts.memviz != "" {
		defer func() {
			f, err := os.Create(*opts.memviz)
			if err != nil {
				logger.Log(logger.Allow, "memviz", err)
				return
			}
			defer f.Close()
			memviz.Map(f, dsp)
		}()
	}

	lim, err := limiter.NewFPSLimiter(*opts.fps)
	if err != nil {
		return err
	}
	defer lim.Stop()

	for {
		select {
		case <-quit:
			return nil
		default:
		}

		err = dsp.Pass()
		if err != nil {
			return err
		}

		if rec != nil {
			dig.NewFrame()
			rec.NextFrame()
			if err := rec.Err(); err != nil {
				return err
			}
		}

		lim.Wait()
	}
}

func echoListener(md *modalflag.Modes) userinput.Listener {
	return userinput.ListenerFunc(func(ev userinput.Event) error {
		fmt.Fprintf(md.Output, "%v\n", ev)
		return nil
	})
}

// sdlPlatform is the PlatformCreator for the SDL mode.
type sdlPlatform struct {
	win  *sdlinput.Window
	quit chan bool
	once sync.Once
}

func (plt *sdlPlatform) Service() {
	if !plt.win.Poll() {
		plt.once.Do(func() { close(plt.quit) })
	}
	time.Sleep(time.Millisecond)
}

func (plt *sdlPlatform) Destroy() {
	plt.win.Destroy()
}

func sdlMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	opts := addLiveOptions(md)
	width := md.AddInt("width", 1280, "window width")
	height := md.AddInt("height", 720, "window height")
	useImgui := md.AddBool("imgui", false, "forward events to an imgui context")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	q := queue.NewQueue(*opts.queueLen, diagnostics.Log{Tag: "queue"})

	sync.creator <- func() (PlatformCreator, error) {
		win, err := sdlinput.NewWindow(version.ApplicationName, int32(*width), int32(*height), q, diagnostics.Log{Tag: "sdlinput"})
		if err != nil {
			return nil, err
		}
		return &sdlPlatform{win: win, quit: make(chan bool)}, nil
	}

	var plt *sdlPlatform
	select {
	case c := <-sync.creation:
		plt = c.(*sdlPlatform)
	case err := <-sync.creationError:
		return err
	}

	var extra []userinput.Listener
	if *useImgui {
		ctx := imgui.CreateContext(nil)
		defer ctx.Destroy()

		io := imgui.CurrentIO()
		_ = io.Fonts().TextureDataRGBA32()
		io.SetDisplaySize(imgui.Vec2{X: float32(*width), Y: float32(*height)})

		extra = append(extra, imguiinput.NewListener(io), imguiFrame(io, float32(*opts.fps)))
	}

	return opts.run(md, q, plt.win, plt.quit, extra...)
}

// imguiFrame returns a listener that begins a new imgui frame for every
// pointer event. The frame is rendered but the draw data is not used.
func imguiFrame(io imgui.IO, fps float32) userinput.Listener {
	if fps <= 0 {
		fps = 60
	}
	return userinput.ListenerFunc(func(ev userinput.Event) error {
		if _, ok := ev.(userinput.EventPointer); !ok {
			return nil
		}
		io.SetDeltaTime(1.0 / fps)
		imgui.NewFrame()
		if io.WantCaptureMouse() {
			logger.Log(logger.Allow, "imgui", "mouse captured")
		}
		imgui.Render()
		return nil
	})
}

func termMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	opts := addLiveOptions(md)
	device := md.AddString("device", terminput.DefaultDevice, "terminal device")
	quitKey := md.AddString("quit", "Escape", "key that ends the session")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	q := queue.NewQueue(*opts.queueLen, diagnostics.Log{Tag: "queue"})

	trm, err := terminput.Open(*device, q)
	if err != nil {
		return err
	}
	defer trm.Close()
	trm.SetQuitKey(*quitKey)

	// the terminal must be restored before the program ends so interrupts
	// are handled here rather than by main()
	sync.state <- stateRequest{req: reqNoIntSig}
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	quit := make(chan bool)
	go func() {
		select {
		case <-intChan:
		case <-trm.Done():
		}
		close(quit)
	}()

	go func() {
		err := trm.Run()
		if err != nil {
			logger.Log(logger.Allow, "terminput", err)
		}
	}()

	fmt.Fprintf(md.Output, "! press %s to quit\n", *quitKey)

	return opts.run(md, q, userinput.FixedView(1), quit)
}

func playback(md *modalflag.Modes) error {
	md.NewMode()

	echo := md.AddBool("echo", false, "print events as they are dispatched")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	fps := md.AddInt("fps", 0, "dispatch passes per second (0 is unlimited)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("transcript required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	plb, err := recorder.NewPlayback(md.GetArg(0))
	if err != nil {
		return err
	}

	dig := digest.NewEvents()
	plb.AttachDigest(dig)
	listeners := userinput.Listeners{dig}
	if *echo {
		listeners = append(listeners, echoListener(md))
	}

	dsp, err := dispatcher.NewDispatcher(plb, plb.View(), listeners, plb.Preferences, diagnostics.Log{Tag: "playback"})
	if err != nil {
		return err
	}

	var lim *limiter.FpsLimiter
	if *fps > 0 {
		lim, err = limiter.NewFPSLimiter(*fps)
		if err != nil {
			return err
		}
		defer lim.Stop()
	}

	for !plb.EndFrame() {
		err = dsp.Pass()
		if err != nil {
			return err
		}
		dig.NewFrame()
		err = plb.NextFrame()
		if err != nil {
			return err
		}

		if lim != nil {
			lim.Wait()
		}
	}

	fmt.Fprintf(md.Output, "%d frames: %s\n", dig.Frame(), dig.Hash())

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	contacts := md.AddInt("contacts", 5, "number of simultaneous touch contacts")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")
	seed := md.AddInt("seed", 0, "random number seed (0 uses the current time)")
	multi := md.AddBool("multi", dispatcher.DefaultMultiContact, "pointer events carry every active contact")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prof, err := performance.ParseProfile(strings.ToUpper(*profile))
	if err != nil {
		return err
	}

	prf := dispatcher.DefaultPreferences()
	err = prf.MaxSlots.Set(*contacts)
	if err != nil {
		return err
	}
	err = prf.MultiContact.Set(*multi)
	if err != nil {
		return err
	}

	s := uint64(*seed)
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}

	_, err = performance.Check(md.Output, prof, prf, *contacts, *duration, s)
	return err
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	inf := version.Version()
	fmt.Fprintln(md.Output, inf.Version)
	if *revision {
		fmt.Fprintln(md.Output, inf.Revision)
	}

	return nil
}
