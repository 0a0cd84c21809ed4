package terminal

import (
	"bufio"
	"fmt"

	"github.com/mattn/go-runewidth"
)

// backendWriter adapts Backend.Write to io.Writer for bufio
type backendWriter struct {
	b   Backend
	err error
}

func (w *backendWriter) Write(p []byte) (int, error) {
	if err := w.b.Write(p); err != nil {
		w.err = err
		return 0, err
	}
	return len(p), nil
}

// outputBuffer manages double-buffered terminal output with diffing
type outputBuffer struct {
	front     []Cell
	width     int
	height    int
	colorMode ColorMode
	sink      *backendWriter
	writer    *bufio.Writer

	cursorX     int
	cursorY     int
	cursorValid bool

	// Style state for coalescing SGR sequences
	lastFg    RGB
	lastBg    RGB
	lastAttr  Attr
	lastValid bool
}

func newOutputBuffer(b Backend, colorMode ColorMode) *outputBuffer {
	sink := &backendWriter{b: b}
	return &outputBuffer{
		sink:      sink,
		writer:    bufio.NewWriterSize(sink, 131072),
		colorMode: colorMode,
	}
}

func (o *outputBuffer) resize(width, height int) {
	size := width * height
	if cap(o.front) < size {
		o.front = make([]Cell, size)
	} else {
		o.front = o.front[:size]
	}
	o.width = width
	o.height = height

	for i := range o.front {
		o.front[i] = Cell{Rune: 0}
	}
	o.lastValid = false
	o.cursorValid = false
}

// cellEqual compares cells; a zero rune renders as space so only its
// background matters
func cellEqual(a, b Cell) bool {
	if a.Rune != b.Rune || a.Attrs != b.Attrs {
		return false
	}
	if a.Rune == 0 {
		return a.Bg == b.Bg
	}
	return a.Fg == b.Fg && a.Bg == b.Bg
}

// flush writes the new frame, diffing against the front buffer. A write
// failure aborts the flush and is reported to the caller.
func (o *outputBuffer) flush(cells []Cell, width, height int) error {
	if width != o.width || height != o.height {
		o.resize(width, height)
	}

	if len(cells) < width*height {
		return nil
	}

	w := o.writer

	for y := 0; y < height; y++ {
		rowStart := y * width
		x := 0

		for x < width {
			idx := rowStart + x
			newCell := cells[idx]

			if cellEqual(newCell, o.front[idx]) {
				x++
				continue
			}

			// Position cursor once per dirty run
			if !o.cursorValid || x != o.cursorX || y != o.cursorY {
				if o.cursorValid && y == o.cursorY && x > o.cursorX {
					writeCursorForward(w, x-o.cursorX)
				} else {
					writeCursorPos(w, x, y)
				}
				o.cursorX = x
				o.cursorY = y
				o.cursorValid = true
			}

			// Write contiguous dirty cells, emitting style only on change
			for x < width {
				cidx := rowStart + x
				c := cells[cidx]

				if cellEqual(c, o.front[cidx]) {
					break
				}

				o.writeStyle(w, c.Fg, c.Bg, c.Attrs)

				r := c.Rune
				if r == 0 {
					r = ' '
				}
				if r < 0x80 {
					w.WriteByte(byte(r))
					o.front[cidx] = c
					o.cursorX++
					x++
					continue
				}

				w.WriteRune(r)
				o.front[cidx] = c

				// A wide rune moves the physical cursor two columns and
				// covers the continuation cell, which is never emitted
				if runewidth.RuneWidth(r) == 2 {
					if x+1 < width {
						o.front[cidx+1] = cells[cidx+1]
						o.cursorX += 2
						x += 2
						continue
					}
					// Wide rune in the last column: the physical cursor
					// position is terminal-dependent, force a reposition
					o.cursorValid = false
					x++
					continue
				}

				o.cursorX++
				x++
			}
		}
	}

	w.Write(csiSGR0)
	o.lastValid = false

	if err := w.Flush(); err != nil || o.sink.err != nil {
		if err == nil {
			err = o.sink.err
		}
		return fmt.Errorf("terminal write: %w", err)
	}
	return nil
}

// writeStyle emits a combined SGR sequence when fg/bg/attrs changed
func (o *outputBuffer) writeStyle(w *bufio.Writer, fg, bg RGB, attr Attr) {
	fgChanged := !o.lastValid || fg != o.lastFg
	bgChanged := !o.lastValid || bg != o.lastBg
	attrChanged := !o.lastValid || attr != o.lastAttr

	if !fgChanged && !bgChanged && !attrChanged {
		return
	}

	w.Write(csi)

	if attrChanged {
		// Attribute change requires a reset first
		w.WriteByte('0')
		if attr&AttrBold != 0 {
			w.Write([]byte(";1"))
		}
		if attr&AttrDim != 0 {
			w.Write([]byte(";2"))
		}
		if attr&AttrItalic != 0 {
			w.Write([]byte(";3"))
		}
		if attr&AttrUnderline != 0 {
			w.Write([]byte(";4"))
		}
		if attr&AttrReverse != 0 {
			w.Write([]byte(";7"))
		}
		o.writeFg(w, fg)
		o.writeBg(w, bg)
	} else {
		first := true
		if fgChanged {
			o.writeFgBody(w, fg, &first)
		}
		if bgChanged {
			o.writeBgBody(w, bg, &first)
		}
	}

	w.WriteByte('m')

	o.lastFg = fg
	o.lastBg = bg
	o.lastAttr = attr
	o.lastValid = true
}

func (o *outputBuffer) writeFg(w *bufio.Writer, fg RGB) {
	w.WriteByte(';')
	if o.colorMode == ColorModeTrueColor {
		w.Write([]byte("38;2;"))
		writeInt(w, int(fg.R))
		w.WriteByte(';')
		writeInt(w, int(fg.G))
		w.WriteByte(';')
		writeInt(w, int(fg.B))
	} else {
		w.Write([]byte("38;5;"))
		writeInt(w, int(RGBTo256(fg)))
	}
}

func (o *outputBuffer) writeBg(w *bufio.Writer, bg RGB) {
	w.WriteByte(';')
	if o.colorMode == ColorModeTrueColor {
		w.Write([]byte("48;2;"))
		writeInt(w, int(bg.R))
		w.WriteByte(';')
		writeInt(w, int(bg.G))
		w.WriteByte(';')
		writeInt(w, int(bg.B))
	} else {
		w.Write([]byte("48;5;"))
		writeInt(w, int(RGBTo256(bg)))
	}
}

func (o *outputBuffer) writeFgBody(w *bufio.Writer, fg RGB, first *bool) {
	if !*first {
		w.WriteByte(';')
	}
	*first = false
	if o.colorMode == ColorModeTrueColor {
		w.Write([]byte("38;2;"))
		writeInt(w, int(fg.R))
		w.WriteByte(';')
		writeInt(w, int(fg.G))
		w.WriteByte(';')
		writeInt(w, int(fg.B))
	} else {
		w.Write([]byte("38;5;"))
		writeInt(w, int(RGBTo256(fg)))
	}
}

func (o *outputBuffer) writeBgBody(w *bufio.Writer, bg RGB, first *bool) {
	if !*first {
		w.WriteByte(';')
	}
	*first = false
	if o.colorMode == ColorModeTrueColor {
		w.Write([]byte("48;2;"))
		writeInt(w, int(bg.R))
		w.WriteByte(';')
		writeInt(w, int(bg.G))
		w.WriteByte(';')
		writeInt(w, int(bg.B))
	} else {
		w.Write([]byte("48;5;"))
		writeInt(w, int(RGBTo256(bg)))
	}
}

// forceFullRedraw clears the front buffer so the next flush rewrites
// every cell
func (o *outputBuffer) forceFullRedraw() {
	for i := range o.front {
		o.front[i] = Cell{Rune: 0}
	}
	o.lastValid = false
	o.cursorValid = false
}

// clear writes a clear screen with the given background
func (o *outputBuffer) clear(bg RGB) {
	w := o.writer
	w.Write(csiSGR0)
	w.Write(csiBg256)
	writeInt(w, int(RGBTo256(bg)))
	w.WriteByte('m')
	w.Write(csiClear)

	o.lastValid = false
	o.cursorValid = false
	w.Flush()

	for i := range o.front {
		o.front[i] = Cell{Rune: ' ', Bg: bg}
	}
}
