package terminal

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// memBackend captures written bytes for output assertions
type memBackend struct {
	buf      bytes.Buffer
	writeErr error
}

func (m *memBackend) Init() error      { return nil }
func (m *memBackend) Fini()            {}
func (m *memBackend) Size() (int, int) { return 80, 24 }

func (m *memBackend) Write(p []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.buf.Write(p)
	return nil
}
func (m *memBackend) Read(stopCh <-chan struct{}) ([]byte, error) { return nil, nil }
func (m *memBackend) SetResizeHandler(func(int, int))             {}

func frame(w, h int) []Cell {
	return make([]Cell, w*h)
}

func TestFlushDiffsAgainstFront(t *testing.T) {
	be := &memBackend{}
	o := newOutputBuffer(be, ColorModeTrueColor)

	cells := frame(4, 2)
	cells[0] = Cell{Rune: 'h', Fg: RGB{255, 255, 255}}
	cells[1] = Cell{Rune: 'i', Fg: RGB{255, 255, 255}}

	if err := o.flush(cells, 4, 2); err != nil {
		t.Fatalf("first flush: %v", err)
	}
	first := be.buf.String()
	if !strings.Contains(first, "h") || !strings.Contains(first, "i") {
		t.Errorf("first flush missing cell content: %q", first)
	}

	// Identical frame writes no cells and moves no cursor
	be.buf.Reset()
	if err := o.flush(cells, 4, 2); err != nil {
		t.Fatalf("second flush: %v", err)
	}
	second := be.buf.String()
	if strings.Contains(second, "H") || strings.Contains(second, "h") {
		t.Errorf("identical frame produced output %q", second)
	}

	// Single changed cell repaints only that cell
	be.buf.Reset()
	cells[1] = Cell{Rune: '!', Fg: RGB{255, 255, 255}}
	if err := o.flush(cells, 4, 2); err != nil {
		t.Fatalf("third flush: %v", err)
	}
	third := be.buf.String()
	if !strings.Contains(third, "!") {
		t.Errorf("changed cell not written: %q", third)
	}
	if strings.Contains(third, "h") {
		t.Errorf("unchanged cell rewritten: %q", third)
	}
}

func TestFlushWideRuneCursorTracking(t *testing.T) {
	be := &memBackend{}
	o := newOutputBuffer(be, ColorModeTrueColor)

	white := RGB{255, 255, 255}
	cells := frame(5, 1)
	cells[0] = Cell{Rune: '你', Fg: white}
	cells[1] = Cell{Rune: ' ', Fg: white} // continuation cell under the wide rune
	cells[2] = Cell{Rune: 'A', Fg: white}

	if err := o.flush(cells, 5, 1); err != nil {
		t.Fatalf("flush: %v", err)
	}
	// The wide rune occupies two columns, so its continuation cell is
	// skipped and A follows the rune directly
	if !strings.Contains(be.buf.String(), "你A") {
		t.Errorf("wide rune output %q, want 你 immediately followed by A", be.buf.String())
	}

	// After the wide rune the tracked cursor must match the physical
	// one: painting the next column needs no repositioning
	be.buf.Reset()
	cells[3] = Cell{Rune: 'B', Fg: white}
	if err := o.flush(cells, 5, 1); err != nil {
		t.Fatalf("second flush: %v", err)
	}
	second := be.buf.String()
	if !strings.Contains(second, "B") {
		t.Errorf("changed cell not written: %q", second)
	}
	if strings.Contains(second, "H") || strings.Contains(second, "C") {
		t.Errorf("cursor drifted after wide rune, repositioned with %q", second)
	}
}

func TestFlushResizeForcesRepaint(t *testing.T) {
	be := &memBackend{}
	o := newOutputBuffer(be, ColorModeTrueColor)

	cells := frame(4, 2)
	cells[0] = Cell{Rune: 'x', Fg: RGB{255, 0, 0}}
	if err := o.flush(cells, 4, 2); err != nil {
		t.Fatalf("flush: %v", err)
	}

	// Same content at a new size must be written again
	be.buf.Reset()
	wide := frame(6, 2)
	wide[0] = Cell{Rune: 'x', Fg: RGB{255, 0, 0}}
	if err := o.flush(wide, 6, 2); err != nil {
		t.Fatalf("flush after resize: %v", err)
	}
	if !strings.Contains(be.buf.String(), "x") {
		t.Errorf("resize did not repaint: %q", be.buf.String())
	}
}

func TestFlushShortFrameIgnored(t *testing.T) {
	be := &memBackend{}
	o := newOutputBuffer(be, ColorMode256)

	// A frame smaller than the area is dropped, not partially drawn
	if err := o.flush(frame(2, 2), 4, 2); err != nil {
		t.Fatalf("short frame flush: %v", err)
	}
	if got := be.buf.Len(); got != 0 {
		t.Errorf("short frame wrote %d bytes, want 0", got)
	}
}

func TestFlushReportsWriteFailure(t *testing.T) {
	be := &memBackend{writeErr: errors.New("broken pipe")}
	o := newOutputBuffer(be, ColorMode256)

	cells := frame(4, 2)
	cells[0] = Cell{Rune: 'x'}
	if err := o.flush(cells, 4, 2); err == nil {
		t.Error("flush on a failing backend returned nil error")
	}
}

func TestColorModeSGR(t *testing.T) {
	red := RGB{255, 0, 0}

	be := &memBackend{}
	o := newOutputBuffer(be, ColorModeTrueColor)
	cells := frame(2, 1)
	cells[0] = Cell{Rune: 'r', Fg: red}
	if err := o.flush(cells, 2, 1); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if !strings.Contains(be.buf.String(), "38;2;") {
		t.Errorf("truecolor mode output %q, want 38;2; sequence", be.buf.String())
	}

	be2 := &memBackend{}
	o2 := newOutputBuffer(be2, ColorMode256)
	cells2 := frame(2, 1)
	cells2[0] = Cell{Rune: 'r', Fg: red}
	if err := o2.flush(cells2, 2, 1); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if !strings.Contains(be2.buf.String(), "38;5;") {
		t.Errorf("256 mode output %q, want 38;5; sequence", be2.buf.String())
	}
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want uint8
	}{
		{"Black", RGB{0, 0, 0}, 16},
		{"White", RGB{255, 255, 255}, 231},
		{"Pure red", RGB{255, 0, 0}, 196},
		{"Pure green", RGB{0, 255, 0}, 46},
		{"Pure blue", RGB{0, 0, 255}, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.in); got != tt.want {
				t.Errorf("RGBTo256(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
