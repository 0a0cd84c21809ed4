package session

// HistoryProvider supplies past commands for Up/Down navigation,
// oldest first
type HistoryProvider interface {
	Entries() []string
}

// editor is the primary input line: a rune buffer with a cursor and
// history navigation state
type editor struct {
	buf    []rune
	cursor int

	history  HistoryProvider
	histIdx  int // -1 means not navigating
	savedBuf []rune
}

func newEditor(history HistoryProvider) *editor {
	return &editor{history: history, histIdx: -1}
}

func (e *editor) Text() string {
	return string(e.buf)
}

func (e *editor) Empty() bool {
	return len(e.buf) == 0
}

func (e *editor) Cursor() int {
	return e.cursor
}

func (e *editor) Insert(r rune) {
	e.buf = append(e.buf, 0)
	copy(e.buf[e.cursor+1:], e.buf[e.cursor:])
	e.buf[e.cursor] = r
	e.cursor++
	e.stopNavigating()
}

func (e *editor) Backspace() {
	if e.cursor == 0 {
		return
	}
	e.buf = append(e.buf[:e.cursor-1], e.buf[e.cursor:]...)
	e.cursor--
	e.stopNavigating()
}

func (e *editor) Delete() {
	if e.cursor >= len(e.buf) {
		return
	}
	e.buf = append(e.buf[:e.cursor], e.buf[e.cursor+1:]...)
	e.stopNavigating()
}

func (e *editor) Left() {
	if e.cursor > 0 {
		e.cursor--
	}
}

func (e *editor) Right() {
	if e.cursor < len(e.buf) {
		e.cursor++
	}
}

func (e *editor) Home() {
	e.cursor = 0
}

func (e *editor) End() {
	e.cursor = len(e.buf)
}

func (e *editor) Clear() {
	e.buf = e.buf[:0]
	e.cursor = 0
	e.histIdx = -1
	e.savedBuf = nil
}

// HistoryUp replaces the line with the previous history entry, saving
// the in-progress line on first use
func (e *editor) HistoryUp() bool {
	if e.history == nil {
		return false
	}
	entries := e.history.Entries()
	if len(entries) == 0 {
		return false
	}

	if e.histIdx == -1 {
		e.savedBuf = append([]rune(nil), e.buf...)
		e.histIdx = len(entries) - 1
	} else if e.histIdx > 0 {
		e.histIdx--
	} else {
		return false
	}

	e.setLine(entries[e.histIdx])
	return true
}

// HistoryDown moves toward the saved in-progress line
func (e *editor) HistoryDown() bool {
	if e.history == nil || e.histIdx == -1 {
		return false
	}
	entries := e.history.Entries()

	if e.histIdx < len(entries)-1 {
		e.histIdx++
		e.setLine(entries[e.histIdx])
		return true
	}

	e.buf = append(e.buf[:0], e.savedBuf...)
	e.cursor = len(e.buf)
	e.histIdx = -1
	e.savedBuf = nil
	return true
}

func (e *editor) setLine(s string) {
	e.buf = append(e.buf[:0], []rune(s)...)
	e.cursor = len(e.buf)
}

// stopNavigating commits the current text as a fresh line so further
// edits no longer track history
func (e *editor) stopNavigating() {
	e.histIdx = -1
	e.savedBuf = nil
}
