package session

import (
	"github.com/kestrelsec/cybuddy/terminal"
	"github.com/kestrelsec/cybuddy/terminal/tui"
	"github.com/kestrelsec/cybuddy/transcript"
)

// transcriptPager is the scrollable full-transcript overlay. At most
// one instance lives in the stack; F2 toggles it.
type transcriptPager struct {
	buf    *transcript.Buffer
	scroll tui.ViewportScroll

	// wrap cache, rebuilt when width or transcript length changes
	wrapped   []transcript.Line
	wrapWidth int
	wrapLen   int
}

func newTranscriptPager(buf *transcript.Buffer) *transcriptPager {
	return &transcriptPager{buf: buf}
}

func (p *transcriptPager) Title() string { return "Transcript" }

func (p *transcriptPager) OnOpen() {
	// Start at the bottom, where the newest output is
	p.scroll.End()
}

func (p *transcriptPager) OnClose() {}

func (p *transcriptPager) HandleKey(ev terminal.Event) KeyResult {
	if ev.Type != terminal.EventKey {
		return Consumed
	}

	switch ev.Key {
	case terminal.KeyEscape, terminal.KeyRune:
		if ev.Key == terminal.KeyRune && ev.Rune != 'q' {
			return Consumed
		}
		return Close
	case terminal.KeyUp:
		p.scroll.ScrollBy(-1)
	case terminal.KeyDown:
		p.scroll.ScrollBy(1)
	case terminal.KeyPageUp:
		p.scroll.PageUp()
	case terminal.KeyPageDown:
		p.scroll.PageDown()
	case terminal.KeyHome:
		p.scroll.Home()
	case terminal.KeyEnd:
		p.scroll.End()
	default:
		// F2 reaches the session so the toggle binding works while open
		if ev.Key == terminal.KeyF2 {
			return PassThrough
		}
	}
	return Consumed
}

func (p *transcriptPager) Render(r tui.Region, th *tui.Theme) {
	result := r.Chrome(tui.ChromeOpts{
		Style:   tui.ChromeFullscreen,
		Title:   "Transcript",
		Hint:    "Esc close  ↑/↓ PgUp/PgDn scroll",
		Bg:      th.Bg,
		Fg:      th.Border,
		TitleBg: th.HeaderBg,
		TitleFg: th.HeaderFg,
	})

	content := result.Content
	if content.W < 3 || content.H < 1 {
		return
	}

	textW := content.W - 1 // rightmost column is the scrollbar
	lines := p.wrapLines(textW)

	wasBottom := p.scroll.AtBottom()
	p.scroll.SetDimensions(len(lines), content.H)
	if wasBottom {
		p.scroll.End()
	}

	for row := 0; row < content.H; row++ {
		idx := p.scroll.Offset + row
		if idx >= len(lines) {
			break
		}
		line := lines[idx]
		fg, attr := lineStyle(line.Kind, th)
		content.Text(0, row, line.Text, fg, th.Bg, attr)
	}

	tui.ScrollBar(content, content.W-1, p.scroll.Offset, content.H, len(lines), th.Border)
	tui.ScrollIndicator(result.Outer, result.Outer.H-1, p.scroll.Offset, content.H, len(lines), th.StatusFg)
}

// wrapLines flattens the transcript and wraps it to width, caching
// while neither width nor transcript length changed
func (p *transcriptPager) wrapLines(width int) []transcript.Line {
	if width < 1 {
		width = 1
	}
	if p.wrapped != nil && p.wrapWidth == width && p.wrapLen == p.buf.Len() {
		return p.wrapped
	}

	flat := p.buf.Lines()
	wrapped := make([]transcript.Line, 0, len(flat))
	for _, line := range flat {
		if tui.DisplayWidth(line.Text) <= width {
			wrapped = append(wrapped, line)
			continue
		}
		for _, part := range tui.WrapText(line.Text, width) {
			wrapped = append(wrapped, transcript.Line{Kind: line.Kind, Text: part})
		}
	}

	p.wrapped = wrapped
	p.wrapWidth = width
	p.wrapLen = p.buf.Len()
	return wrapped
}

// lineStyle maps a transcript line kind onto theme colors
func lineStyle(kind transcript.Kind, th *tui.Theme) (terminal.RGB, terminal.Attr) {
	switch kind {
	case transcript.KindTitle:
		return th.TitleFg, terminal.AttrBold
	case transcript.KindCommand:
		return th.CommandFg, terminal.AttrNone
	case transcript.KindSuccess:
		return th.SuccessFg, terminal.AttrNone
	case transcript.KindWarning:
		return th.WarningFg, terminal.AttrNone
	case transcript.KindError:
		return th.ErrorFg, terminal.AttrNone
	case transcript.KindDim:
		return th.DimFg, terminal.AttrDim
	case transcript.KindAccent:
		return th.AccentFg, terminal.AttrNone
	}
	return th.Fg, terminal.AttrNone
}
