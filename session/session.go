// Package session runs the interactive full-screen loop: a single
// thread polls for input with a bounded timeout, dispatches events,
// coalesces dirty signals and renders at most once per iteration.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kestrelsec/cybuddy/dispatch"
	"github.com/kestrelsec/cybuddy/terminal"
	"github.com/kestrelsec/cybuddy/terminal/tui"
	"github.com/kestrelsec/cybuddy/transcript"
)

// ErrTerminalLost means mid-session terminal I/O failed; the session
// restores and exits non-zero.
var ErrTerminalLost = errors.New("terminal lost")

const defaultTick = 50 * time.Millisecond

// Driver is the terminal surface the session runs on. Implemented by
// terminal.Service; faked in tests.
type Driver interface {
	Start() error
	Stop()
	Events() <-chan terminal.Event
	Post(terminal.Event)
	Size() (int, int)
	Flush(cells []terminal.Cell, width, height int) error
	Sync()
}

// Dispatcher executes one submitted line and returns the envelope the
// session renders
type Dispatcher interface {
	Execute(line string) dispatch.Result
}

// HistoryStore persists submitted commands and serves them back for
// navigation
type HistoryStore interface {
	HistoryProvider
	Add(command string) error
}

// Mode is the session input state, determined solely by whether any
// overlay is active
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeOverlayActive
)

// Options configures a session
type Options struct {
	Tick    time.Duration
	Theme   *tui.Theme
	History HistoryStore
	Logger  *slog.Logger
}

// Session owns all interactive state: the line editor, the transcript,
// the overlay stack and the dirty flag. Everything is mutated from the
// loop thread only.
type Session struct {
	driver  Driver
	disp    Dispatcher
	history HistoryStore
	log     *slog.Logger
	theme   *tui.Theme
	tick    time.Duration

	buf      *transcript.Buffer
	overlays *overlayStack
	ed       *editor

	width  int
	height int
	cells  []terminal.Cell

	dirty    bool
	running  bool
	exitCode int
	fatal    error

	// In-flight async dispatches; drives the input-row spinner
	pending   int
	spinFrame int

	ctx         context.Context
	completions chan []transcript.Line
}

// New builds a session over driver and dispatcher
func New(driver Driver, disp Dispatcher, opts Options) *Session {
	if opts.Tick <= 0 {
		opts.Tick = defaultTick
	}
	if opts.Theme == nil {
		opts.Theme = &tui.DefaultTheme
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Session{
		driver:      driver,
		disp:        disp,
		history:     opts.History,
		log:         opts.Logger,
		theme:       opts.Theme,
		tick:        opts.Tick,
		buf:         transcript.NewBuffer(),
		overlays:    newOverlayStack(opts.Logger),
		ed:          newEditor(opts.History),
		ctx:         context.Background(),
		completions: make(chan []transcript.Line, 8),
	}
}

// Transcript exposes the session transcript, for one-shot seeding and
// tests
func (s *Session) Transcript() *transcript.Buffer {
	return s.buf
}

// Mode reports Normal or OverlayActive
func (s *Session) Mode() Mode {
	if s.overlays.Empty() {
		return ModeNormal
	}
	return ModeOverlayActive
}

// Run drives the session until exit. The terminal is acquired once and
// restored exactly once on every exit path, including panics
// unwinding through here. Returns the process exit code and the fatal
// error, if any.
func (s *Session) Run(ctx context.Context) (int, error) {
	if err := s.driver.Start(); err != nil {
		return 1, fmt.Errorf("terminal unavailable: %w", err)
	}
	defer s.driver.Stop()

	s.ctx = ctx
	s.width, s.height = s.driver.Size()
	s.greet()
	s.running = true
	s.markDirty()

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for s.running {
		var ev *terminal.Event
		select {
		case e := <-s.driver.Events():
			ev = &e
		case <-ticker.C:
			if s.pending > 0 {
				s.spinFrame++
				s.markDirty()
			}
		case <-ctx.Done():
			s.running = false
		}
		s.step(ev)
	}

	return s.exitCode, s.fatal
}

// step processes at most one event, then performs the single coalesced
// render for this iteration if anything marked dirty
func (s *Session) step(ev *terminal.Event) {
	if ev != nil {
		s.handleEvent(*ev)
	}
	if s.dirty {
		s.render()
		s.dirty = false
	}
}

func (s *Session) markDirty() {
	s.dirty = true
}

func (s *Session) handleEvent(ev terminal.Event) {
	switch ev.Type {
	case terminal.EventKey:
		s.handleKey(ev)
	case terminal.EventResize:
		s.width, s.height = ev.Width, ev.Height
		s.driver.Sync()
		s.markDirty()
	case terminal.EventWake:
		s.drainCompletions()
	case terminal.EventError:
		s.log.Error("terminal I/O failed", "error", ev.Err)
		s.fatal = fmt.Errorf("%w: %v", ErrTerminalLost, ev.Err)
		s.exitCode = 1
		s.running = false
	case terminal.EventClosed:
		s.running = false
	}
}

func (s *Session) handleKey(ev terminal.Event) {
	if !s.overlays.Empty() {
		result := s.overlays.HandleKey(ev)
		s.markDirty()
		if result != PassThrough {
			return
		}
	}
	s.defaultKey(ev)
}

// defaultKey applies the session's own bindings. In OverlayActive this
// only runs when the overlay passed the event through.
func (s *Session) defaultKey(ev terminal.Event) {
	switch ev.Key {
	case terminal.KeyF2:
		s.togglePager()
	case terminal.KeyEscape:
		if !s.overlays.Empty() {
			s.overlays.Pop()
			s.markDirty()
		} else if !s.ed.Empty() {
			s.ed.Clear()
			s.markDirty()
		}
	case terminal.KeyEnter:
		s.submit()
	case terminal.KeyUp:
		if s.ed.HistoryUp() {
			s.markDirty()
		}
	case terminal.KeyDown:
		if s.ed.HistoryDown() {
			s.markDirty()
		}
	case terminal.KeyLeft:
		s.ed.Left()
		s.markDirty()
	case terminal.KeyRight:
		s.ed.Right()
		s.markDirty()
	case terminal.KeyHome:
		s.ed.Home()
		s.markDirty()
	case terminal.KeyEnd:
		s.ed.End()
		s.markDirty()
	case terminal.KeyBackspace:
		s.ed.Backspace()
		s.markDirty()
	case terminal.KeyDelete:
		s.ed.Delete()
		s.markDirty()
	case terminal.KeyCtrlU:
		s.ed.Clear()
		s.markDirty()
	case terminal.KeyCtrlL:
		s.driver.Sync()
		s.markDirty()
	case terminal.KeyCtrlC:
		s.exitCode = 0
		s.running = false
	case terminal.KeyRune:
		s.ed.Insert(ev.Rune)
		s.markDirty()
	}
}

func isPager(o Overlay) bool {
	_, ok := o.(*transcriptPager)
	return ok
}

// togglePager opens the transcript pager, or closes it if one is
// already in the stack. At most one pager instance ever exists.
func (s *Session) togglePager() {
	if existing := s.overlays.Find(isPager); existing != nil {
		s.overlays.Remove(existing)
	} else {
		s.overlays.Push(newTranscriptPager(s.buf))
	}
	s.markDirty()
}

// ShowMessage opens a banner overlay
func (s *Session) ShowMessage(title, text string, kind MessageKind) {
	s.overlays.Push(newMessageOverlay(title, text, kind))
	s.markDirty()
}

func (s *Session) submit() {
	line := strings.TrimSpace(s.ed.Text())
	if line == "" {
		return
	}

	if s.history != nil {
		if err := s.history.Add(line); err != nil {
			s.log.Warn("history save failed", "error", err)
		}
	}

	res := s.safeExecute(line)
	s.buf.Append(line, res.Lines, time.Now())
	s.ed.Clear()
	s.markDirty()

	if res.IsExit {
		s.exitCode = 0
		s.running = false
		return
	}
	if res.Async != nil {
		s.spawnAsync(res.Async)
	}
}

// safeExecute shields the loop from a panicking dispatcher; the
// failure becomes an error-styled transcript entry
func (s *Session) safeExecute(line string) (res dispatch.Result) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("dispatch panicked", "input", line, "panic", r)
			res = dispatch.Result{
				Lines: []transcript.Line{
					{Kind: transcript.KindError, Text: fmt.Sprintf("command failed: %v", r)},
				},
				IsError: true,
			}
		}
	}()
	return s.disp.Execute(line)
}

// spawnAsync runs a slow dispatch continuation off the loop; its
// result comes back through the completions channel and a wake event
func (s *Session) spawnAsync(fn func(context.Context) []transcript.Line) {
	s.pending++
	ctx := s.ctx
	go func() {
		lines := fn(ctx)
		select {
		case s.completions <- lines:
			s.driver.Post(terminal.Event{Type: terminal.EventWake})
		case <-ctx.Done():
		}
	}()
}

func (s *Session) drainCompletions() {
	for {
		select {
		case lines := <-s.completions:
			s.buf.Append("", lines, time.Now())
			if s.pending > 0 {
				s.pending--
			}
			s.markDirty()
		default:
			return
		}
	}
}

func (s *Session) greet() {
	s.buf.Append("", []transcript.Line{
		{Kind: transcript.KindTitle, Text: "cybuddy :: cybersecurity study assistant"},
		{Kind: transcript.KindDim, Text: "type a question or /help for commands, F2 for the transcript, exit to leave"},
	}, time.Now())
}
