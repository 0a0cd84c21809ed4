package tui

// ViewportScroll manages row-based scroll state for content taller
// than its viewport
type ViewportScroll struct {
	Offset    int // Row offset from top of content
	ContentH  int // Total content height in rows
	ViewportH int // Visible viewport height
}

// SetDimensions updates content and viewport heights, clamps offset
func (v *ViewportScroll) SetDimensions(contentH, viewportH int) {
	v.ContentH = contentH
	v.ViewportH = viewportH
	v.clamp()
}

// MaxOffset returns maximum valid scroll offset
func (v *ViewportScroll) MaxOffset() int {
	maxOffset := v.ContentH - v.ViewportH
	if maxOffset < 0 {
		return 0
	}
	return maxOffset
}

// CanScroll returns true if content exceeds viewport
func (v *ViewportScroll) CanScroll() bool {
	return v.ContentH > v.ViewportH
}

// AtBottom returns true if scrolled all the way down
func (v *ViewportScroll) AtBottom() bool {
	return v.Offset >= v.MaxOffset()
}

// ScrollBy adjusts offset by delta
func (v *ViewportScroll) ScrollBy(delta int) {
	v.Offset += delta
	v.clamp()
}

// PageUp scrolls up by viewport height
func (v *ViewportScroll) PageUp() {
	v.ScrollBy(-v.ViewportH)
}

// PageDown scrolls down by viewport height
func (v *ViewportScroll) PageDown() {
	v.ScrollBy(v.ViewportH)
}

// Home scrolls to top
func (v *ViewportScroll) Home() {
	v.Offset = 0
}

// End scrolls to bottom
func (v *ViewportScroll) End() {
	v.Offset = v.MaxOffset()
}

func (v *ViewportScroll) clamp() {
	max := v.MaxOffset()
	if v.Offset > max {
		v.Offset = max
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}
