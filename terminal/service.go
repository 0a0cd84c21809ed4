package terminal

import (
	"sync"
	"sync/atomic"
)

// Service wraps a Terminal with a lifecycle and a channel-based event
// feed. Start acquires the terminal exactly once and Stop restores it
// exactly once, regardless of how many goroutines call them.
type Service struct {
	term    Terminal
	events  chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	started atomic.Bool
	stopped atomic.Bool
	stopMu  sync.Mutex
}

func NewService(term Terminal) *Service {
	return &Service{
		term:   term,
		events: make(chan Event, 64),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Start initializes the terminal and begins pumping events. It is an
// error to call Start twice.
func (s *Service) Start() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}
	if err := s.term.Init(); err != nil {
		return err
	}
	go s.pollLoop()
	return nil
}

func (s *Service) pollLoop() {
	defer close(s.doneCh)
	for {
		ev := s.term.PollEvent()
		if ev.Type == EventClosed {
			return
		}
		select {
		case s.events <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop restores the terminal. Safe to call multiple times and from
// deferred cleanup paths.
func (s *Service) Stop() {
	if !s.stopped.CompareAndSwap(false, true) {
		return
	}
	s.stopMu.Lock()
	defer s.stopMu.Unlock()

	close(s.stopCh)
	if s.started.Load() {
		s.term.PostEvent(Event{Type: EventClosed})
		<-s.doneCh
		s.term.Fini()
	}
}

// Events returns the event feed. The channel is never closed; callers
// multiplex it against their own timers and stop signals.
func (s *Service) Events() <-chan Event { return s.events }

// Post injects a synthetic event, typically a wake-up from a background
// worker. Safe to call from any goroutine.
func (s *Service) Post(ev Event) { s.term.PostEvent(ev) }

func (s *Service) Size() (int, int) { return s.term.Size() }

func (s *Service) ColorMode() ColorMode { return s.term.ColorMode() }

func (s *Service) Flush(cells []Cell, width, height int) error {
	return s.term.Flush(cells, width, height)
}

func (s *Service) Clear(bg RGB) { s.term.Clear(bg) }

func (s *Service) Sync() { s.term.Sync() }
