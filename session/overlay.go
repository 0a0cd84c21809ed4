package session

import (
	"fmt"
	"log/slog"

	"github.com/kestrelsec/cybuddy/terminal"
	"github.com/kestrelsec/cybuddy/terminal/tui"
)

// KeyResult is an overlay's verdict on a key event
type KeyResult uint8

const (
	// Consumed stops further processing of the event
	Consumed KeyResult = iota
	// PassThrough lets the session apply its default bindings too
	PassThrough
	// Close asks the stack to pop this overlay
	Close
)

// Overlay is a modal surface above the primary view. The topmost
// overlay owns keyboard focus; lower overlays stay inert until they
// surface again.
type Overlay interface {
	Title() string
	OnOpen()
	OnClose()
	HandleKey(ev terminal.Event) KeyResult
	Render(r tui.Region, th *tui.Theme)
}

// overlayStack holds active overlays, last element topmost. Owned by
// the session loop; a misbehaving overlay is force-closed rather than
// allowed to take the loop down.
type overlayStack struct {
	overlays []Overlay
	log      *slog.Logger
}

func newOverlayStack(log *slog.Logger) *overlayStack {
	return &overlayStack{log: log}
}

func (s *overlayStack) Empty() bool {
	return len(s.overlays) == 0
}

func (s *overlayStack) Len() int {
	return len(s.overlays)
}

func (s *overlayStack) Top() Overlay {
	if len(s.overlays) == 0 {
		return nil
	}
	return s.overlays[len(s.overlays)-1]
}

func (s *overlayStack) Push(o Overlay) {
	s.protect(o, "on_open", func() { o.OnOpen() })
	s.overlays = append(s.overlays, o)
}

// Pop removes and closes the topmost overlay. Popping an empty stack
// is a no-op so duplicate close signals are harmless.
func (s *overlayStack) Pop() {
	if len(s.overlays) == 0 {
		return
	}
	top := s.overlays[len(s.overlays)-1]
	s.overlays = s.overlays[:len(s.overlays)-1]
	s.protect(top, "on_close", func() { top.OnClose() })
}

// Find returns the first overlay satisfying pred, or nil
func (s *overlayStack) Find(pred func(Overlay) bool) Overlay {
	for _, o := range s.overlays {
		if pred(o) {
			return o
		}
	}
	return nil
}

// Remove closes a specific overlay wherever it sits in the stack
func (s *overlayStack) Remove(target Overlay) {
	for i, o := range s.overlays {
		if o == target {
			s.overlays = append(s.overlays[:i], s.overlays[i+1:]...)
			s.protect(o, "on_close", func() { o.OnClose() })
			return
		}
	}
}

// HandleKey forwards the event to the topmost overlay. A panic inside
// the overlay force-closes it and reports Consumed so the loop
// continues.
func (s *overlayStack) HandleKey(ev terminal.Event) KeyResult {
	top := s.Top()
	if top == nil {
		return PassThrough
	}

	result := Consumed
	ok := s.protect(top, "handle_key", func() {
		result = top.HandleKey(ev)
	})
	if !ok {
		s.Remove(top)
		return Consumed
	}

	if result == Close {
		s.Pop()
	}
	return result
}

// Render draws the topmost overlay only; lower overlays are paused,
// not composited. A panicking overlay is force-closed.
func (s *overlayStack) Render(r tui.Region, th *tui.Theme) {
	top := s.Top()
	if top == nil {
		return
	}
	if ok := s.protect(top, "render", func() { top.Render(r, th) }); !ok {
		s.Remove(top)
	}
}

// protect runs fn, absorbing any panic. Returns false if fn panicked.
func (s *overlayStack) protect(o Overlay, op string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			s.log.Error("overlay protocol violation",
				"overlay", fmt.Sprintf("%T", o), "op", op, "panic", r)
		}
	}()
	fn()
	return true
}
