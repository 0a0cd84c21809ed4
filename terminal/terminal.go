package terminal

import (
	"errors"
	"io"
	"os"
	"sync"
)

// ErrNotInteractive is returned by Init when stdin or stdout is not a TTY.
// The surrounding CLI falls back to plain line mode when it sees this.
var ErrNotInteractive = errors.New("terminal: stdin/stdout is not an interactive terminal")

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrReverse   Attr = 1 << 4
)

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Terminal provides low-level terminal access. It owns the physical
// terminal: raw mode, alternate screen, input parsing, frame writes.
// It carries no application semantics.
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor.
	// Fails with ErrNotInteractive when not attached to a TTY.
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// ColorMode returns detected color capability
	ColorMode() ColorMode

	// Flush writes a full frame to the terminal, diffing against the
	// previously written frame. Cells are row-major: cells[y*width + x].
	// Returns an error when the terminal can no longer be written to.
	Flush(cells []Cell, width, height int) error

	// Clear fills screen with specified background color
	Clear(bg RGB)

	// Sync forces full redraw on the next Flush
	Sync()

	// PollEvent blocks until the next input, resize, or synthetic event
	PollEvent() Event

	// PostEvent injects a synthetic event
	PostEvent(Event)
}

// termImpl implements Terminal using the Backend interface
type termImpl struct {
	backend Backend

	output      *outputBuffer
	input       *inputReader
	resizeCh    chan Event
	syntheticCh chan Event

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal with the platform backend. Color capability is
// detected from the environment unless an explicit mode is given.
func New(colorMode ...ColorMode) Terminal {
	b := newBackend()

	var c ColorMode
	if len(colorMode) == 0 {
		c = DetectColorMode()
	} else {
		c = colorMode[0]
	}

	t := &termImpl{
		backend:     b,
		syntheticCh: make(chan Event, 16),
		resizeCh:    make(chan Event, 1),
	}
	t.output = newOutputBuffer(b, c)
	return t
}

func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	w, h := t.backend.Size()
	t.output.resize(w, h)

	t.input = newInputReader(t.backend)

	t.backend.SetResizeHandler(func(w, h int) {
		ev := Event{Type: EventResize, Width: w, Height: h}
		// Keep only the latest pending size
		select {
		case t.resizeCh <- ev:
		default:
			select {
			case <-t.resizeCh:
			default:
			}
			select {
			case t.resizeCh <- ev:
			default:
			}
		}
	})

	t.writeRaw(csiAltScreenEnter)
	t.writeRaw(csiCursorHide)

	// DECAWM off: prevents scroll on bottom-right corner write
	t.writeRaw(csiAutoWrapOff)

	t.output.clear(RGBBlack)

	t.input.start()

	t.initialized = true
	return nil
}

func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	if t.input != nil {
		t.input.stop()
	}

	t.writeRaw(csiCursorShow)
	t.writeRaw(csiAltScreenExit)
	// Re-enable auto-wrap after leaving the alt screen so the main
	// buffer keeps wrapping
	t.writeRaw(csiAutoWrapOn)
	t.writeRaw(csiSGR0)

	t.backend.Fini()

	t.finalized = true
}

func (t *termImpl) Size() (int, int) {
	return t.backend.Size()
}

func (t *termImpl) ColorMode() ColorMode {
	return t.output.colorMode
}

// Flush writes the frame, holding the lock to prevent interleaving with
// Clear/Fini. A frame whose dimensions no longer match the backend is
// dropped whole; the pending resize event re-renders at the new size.
func (t *termImpl) Flush(cells []Cell, width, height int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}

	currW, currH := t.backend.Size()
	if currW != width || currH != height {
		return nil
	}

	return t.output.flush(cells, width, height)
}

func (t *termImpl) Clear(bg RGB) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.output.clear(bg)
}

func (t *termImpl) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	// Diff rendering assumes the physical terminal matches the front
	// buffer; clear first so the full redraw starts from a known state
	t.output.clear(RGBBlack)
	t.output.forceFullRedraw()
}

func (t *termImpl) PollEvent() Event {
	select {
	case ev := <-t.syntheticCh:
		return ev
	default:
	}

	select {
	case ev := <-t.syntheticCh:
		return ev
	case ev := <-t.input.events():
		return ev
	case ev := <-t.resizeCh:
		return ev
	}
}

func (t *termImpl) PostEvent(ev Event) {
	select {
	case t.syntheticCh <- ev:
	default:
		// Channel full, drop
	}
}

func (t *termImpl) writeRaw(data []byte) {
	t.backend.Write(data)
}

// EmergencyReset writes the sequences that return a terminal to a sane
// state. Called from panic recovery when Fini cannot run normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort reset
	resetTerminalMode()
}
