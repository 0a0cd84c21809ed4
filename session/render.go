package session

import (
	"fmt"

	"github.com/kestrelsec/cybuddy/terminal"
	"github.com/kestrelsec/cybuddy/terminal/tui"
	"github.com/kestrelsec/cybuddy/transcript"
)

// render computes the full frame from current state and writes it. A
// write failure is the fatal TerminalLost path.
func (s *Session) render() {
	w, h := s.width, s.height
	if w <= 0 || h <= 0 {
		return
	}
	if len(s.cells) != w*h {
		s.cells = make([]terminal.Cell, w*h)
	}

	root := tui.NewRegion(s.cells, w, 0, 0, w, h)
	s.renderPrimary(root)
	if !s.overlays.Empty() {
		s.overlays.Render(root, s.theme)
	}

	if err := s.driver.Flush(s.cells, w, h); err != nil {
		s.log.Error("frame write failed", "error", err)
		s.fatal = fmt.Errorf("%w: %v", ErrTerminalLost, err)
		s.exitCode = 1
		s.running = false
	}
}

// renderPrimary draws the normal view: header, transcript tail, input
// line
func (s *Session) renderPrimary(r tui.Region) {
	th := s.theme
	r.Fill(th.Bg)

	// Header
	header := r.Sub(0, 0, r.W, 1)
	header.Fill(th.HeaderBg)
	header.Text(1, 0, "cybuddy", th.HeaderFg, th.HeaderBg, terminal.AttrBold)
	header.TextRight(0, "F2 transcript  /help  exit ", th.StatusFg, th.HeaderBg, terminal.AttrNone)

	// Input line at the bottom
	input := r.Sub(0, r.H-1, r.W, 1)
	s.renderInput(input)

	// Transcript tail fills the middle
	body := r.Sub(0, 1, r.W, r.H-2)
	s.renderTail(body)
}

func (s *Session) renderInput(r tui.Region) {
	th := s.theme
	r.Fill(th.InputBg)

	const prompt = "> "
	r.Text(0, 0, prompt, th.PromptFg, th.InputBg, terminal.AttrBold)

	avail := r.W - len(prompt) - 1
	if avail < 1 {
		return
	}

	text := []rune(s.ed.Text())
	cursor := s.ed.Cursor()

	// Horizontal scroll keeps the cursor visible on long lines
	start := 0
	if cursor >= avail {
		start = cursor - avail + 1
	}
	end := start + avail
	if end > len(text) {
		end = len(text)
	}

	x := len(prompt)
	for i := start; i < end; i++ {
		fg, bg := th.Fg, th.InputBg
		attr := terminal.AttrNone
		if i == cursor {
			attr = terminal.AttrReverse
		}
		r.Cell(x, 0, text[i], fg, bg, attr)
		x++
	}
	if cursor >= len(text) {
		r.Cell(x, 0, ' ', th.Fg, th.InputBg, terminal.AttrReverse)
	}

	if s.pending > 0 {
		r.Spinner(r.W-1, 0, s.spinFrame, th.AccentFg)
	}
}

// renderTail shows the most recent transcript lines, wrapped to width,
// bottom-aligned the way a scrolling terminal reads
func (s *Session) renderTail(r tui.Region) {
	if r.W < 2 || r.H < 1 {
		return
	}
	th := s.theme

	flat := s.buf.Lines()
	textW := r.W - 2

	var rows []transcript.Line
	// Walk entries backwards until the viewport is full
	for i := len(flat) - 1; i >= 0 && len(rows) < r.H; i-- {
		line := flat[i]
		if tui.DisplayWidth(line.Text) <= textW {
			rows = append(rows, line)
			continue
		}
		parts := tui.WrapText(line.Text, textW)
		for j := len(parts) - 1; j >= 0 && len(rows) < r.H; j-- {
			rows = append(rows, transcript.Line{Kind: line.Kind, Text: parts[j]})
		}
	}

	// rows is newest-first; draw bottom up
	y := r.H - 1
	for _, line := range rows {
		fg, attr := lineStyle(line.Kind, th)
		r.Text(1, y, line.Text, fg, th.Bg, attr)
		y--
	}
}
