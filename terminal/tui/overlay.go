package tui

import "github.com/kestrelsec/cybuddy/terminal"

// ChromeStyle specifies overlay window appearance
type ChromeStyle uint8

const (
	ChromeFullscreen ChromeStyle = iota // No border, fills region, title bar row
	ChromeModal                         // Centered box with border
)

// ChromeOpts configures overlay window rendering
type ChromeOpts struct {
	Style   ChromeStyle
	Title   string
	Hint    string // Right-aligned in the title row
	Border  LineType
	Bg      terminal.RGB
	Fg      terminal.RGB // Border color
	TitleBg terminal.RGB
	TitleFg terminal.RGB

	// Modal sizing, ignored for Fullscreen. Zero means 80% of region.
	Width  int
	Height int
}

// ChromeResult contains the regions produced by Chrome rendering
type ChromeResult struct {
	Outer   Region // Full window bounds including border and title
	Content Region // Inner content area
	TitleY  int    // Row of title bar within Outer, -1 if none
}

// Chrome renders overlay window dressing and returns the content
// region for the caller to populate
func (r Region) Chrome(opts ChromeOpts) ChromeResult {
	if r.W < 3 || r.H < 3 {
		return ChromeResult{TitleY: -1}
	}

	if opts.Style == ChromeFullscreen {
		return r.fullscreenChrome(opts)
	}
	return r.modalChrome(opts)
}

func (r Region) fullscreenChrome(opts ChromeOpts) ChromeResult {
	r.Fill(opts.Bg)

	result := ChromeResult{Outer: r, TitleY: -1}

	contentY := 0
	contentH := r.H

	if opts.Title != "" {
		r.titleBar(r.Sub(0, 0, r.W, 1), opts)
		result.TitleY = 0
		contentY = 1
		contentH = r.H - 1
	}

	result.Content = r.Sub(0, contentY, r.W, contentH)
	return result
}

func (r Region) modalChrome(opts ChromeOpts) ChromeResult {
	w := opts.Width
	if w <= 0 {
		w = r.W * 80 / 100
	}
	h := opts.Height
	if h <= 0 {
		h = r.H * 80 / 100
	}

	if w > r.W-2 {
		w = r.W - 2
	}
	if h > r.H-2 {
		h = r.H - 2
	}
	if w < 5 {
		w = 5
	}
	if h < 3 {
		h = 3
	}

	x := (r.W - w) / 2
	y := (r.H - h) / 2

	outer := r.Sub(x, y, w, h)
	outer.BoxFilled(opts.Border, opts.Fg, opts.Bg)

	result := ChromeResult{Outer: outer, TitleY: -1}

	contentY := 1
	contentH := h - 2

	if opts.Title != "" && w > 4 {
		outer.titleBar(outer.Sub(1, 1, w-2, 1), opts)
		result.TitleY = 1
		contentY = 2
		contentH--
	}

	if contentH < 1 {
		contentH = 1
	}

	result.Content = outer.Sub(1, contentY, w-2, contentH)
	return result
}

// titleBar fills a one-row region with the title colors, centers the
// title and right-aligns the hint
func (r Region) titleBar(row Region, opts ChromeOpts) {
	titleBg := opts.TitleBg
	if titleBg == (terminal.RGB{}) {
		titleBg = opts.Fg
	}
	titleFg := opts.TitleFg
	if titleFg == (terminal.RGB{}) {
		titleFg = opts.Bg
	}

	for x := 0; x < row.W; x++ {
		row.Cell(x, 0, ' ', titleFg, titleBg, terminal.AttrNone)
	}

	title := opts.Title
	if DisplayWidth(title) > row.W-4 {
		title = Truncate(title, row.W-4)
	}
	row.TextCenter(0, title, titleFg, titleBg, terminal.AttrBold)

	if opts.Hint != "" {
		hint := opts.Hint
		maxHint := row.W / 3
		if DisplayWidth(hint) > maxHint {
			hint = Truncate(hint, maxHint)
		}
		row.TextRight(0, hint+" ", titleFg, titleBg, terminal.AttrDim)
	}
}
