package tui

import (
	"github.com/kestrelsec/cybuddy/terminal"
	"github.com/mattn/go-runewidth"
)

// Spinner frames for in-progress indicators
var spinnerFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

// Text renders text at position, truncates at region edge. Wide runes
// advance the column by their display width.
func (r Region) Text(x, y int, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	if y < 0 || y >= r.H {
		return
	}
	col := 0
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if x+col >= r.W {
			break
		}
		if x+col >= 0 {
			r.Cell(x+col, y, ch, fg, bg, attr)
			// Pad the trailing half of a wide rune so stale cells
			// underneath do not show through
			if w == 2 && x+col+1 < r.W {
				r.Cell(x+col+1, y, ' ', fg, bg, attr)
			}
		}
		if w < 1 {
			w = 1
		}
		col += w
	}
}

// TextRight renders text right-aligned on row
func (r Region) TextRight(y int, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	x := r.W - DisplayWidth(s)
	r.Text(x, y, s, fg, bg, attr)
}

// TextCenter renders text centered on row
func (r Region) TextCenter(y int, s string, fg, bg terminal.RGB, attr terminal.Attr) {
	x := (r.W - DisplayWidth(s)) / 2
	r.Text(x, y, s, fg, bg, attr)
}

// Spinner draws spinner character based on frame counter
func (r Region) Spinner(x, y int, frame int, fg terminal.RGB) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	idx := frame % len(spinnerFrames)
	if idx < 0 {
		idx = -idx
	}
	r.Cell(x, y, spinnerFrames[idx], fg, terminal.RGB{}, terminal.AttrNone)
}
