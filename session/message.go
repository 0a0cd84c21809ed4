package session

import (
	"github.com/kestrelsec/cybuddy/terminal"
	"github.com/kestrelsec/cybuddy/terminal/tui"
)

// MessageKind selects the banner styling
type MessageKind uint8

const (
	MessageInfo MessageKind = iota
	MessageWarning
	MessageError
)

// messageOverlay is a dismissable centered banner
type messageOverlay struct {
	title string
	text  string
	kind  MessageKind
}

func newMessageOverlay(title, text string, kind MessageKind) *messageOverlay {
	return &messageOverlay{title: title, text: text, kind: kind}
}

func (m *messageOverlay) Title() string { return m.title }
func (m *messageOverlay) OnOpen()       {}
func (m *messageOverlay) OnClose()      {}

func (m *messageOverlay) HandleKey(ev terminal.Event) KeyResult {
	if ev.Type != terminal.EventKey {
		return Consumed
	}
	switch ev.Key {
	case terminal.KeyEscape, terminal.KeyEnter:
		return Close
	case terminal.KeyRune:
		return Close
	}
	return Consumed
}

func (m *messageOverlay) Render(r tui.Region, th *tui.Theme) {
	borderFg := th.Border
	switch m.kind {
	case MessageWarning:
		borderFg = th.WarningFg
	case MessageError:
		borderFg = th.ErrorFg
	}

	wrapW := r.W * 2 / 3
	if wrapW < 20 {
		wrapW = r.W - 4
	}
	lines := tui.WrapText(m.text, wrapW-4)

	h := len(lines) + 4
	if h > r.H-2 {
		h = r.H - 2
	}

	result := r.Chrome(tui.ChromeOpts{
		Style:   tui.ChromeModal,
		Title:   m.title,
		Border:  tui.LineRounded,
		Bg:      th.Bg,
		Fg:      borderFg,
		TitleBg: th.HeaderBg,
		TitleFg: th.HeaderFg,
		Width:   wrapW,
		Height:  h,
	})

	content := result.Content
	for i, line := range lines {
		if i >= content.H-1 {
			break
		}
		content.Text(1, i, line, th.Fg, th.Bg, terminal.AttrNone)
	}
	content.TextCenter(content.H-1, "press any key", th.DimFg, th.Bg, terminal.AttrDim)
}
