package terminal

import (
	"errors"
	"io"
	"testing"
	"time"
)

// drain collects everything currently buffered on the reader's channel
func drain(r *inputReader) []Event {
	var out []Event
	for {
		select {
		case ev := <-r.eventCh:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func TestParseInputSequences(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []Event
	}{
		{"Printable", []byte("ab"), []Event{
			{Type: EventKey, Key: KeyRune, Rune: 'a'},
			{Type: EventKey, Key: KeyRune, Rune: 'b'},
		}},
		{"Enter CR", []byte{0x0d}, []Event{{Type: EventKey, Key: KeyEnter}}},
		{"Enter LF", []byte{0x0a}, []Event{{Type: EventKey, Key: KeyEnter}}},
		{"Tab", []byte{0x09}, []Event{{Type: EventKey, Key: KeyTab}}},
		{"DEL is backspace", []byte{0x7f}, []Event{{Type: EventKey, Key: KeyBackspace}}},
		{"Ctrl+H is backspace", []byte{0x08}, []Event{{Type: EventKey, Key: KeyBackspace}}},
		{"Ctrl+C", []byte{0x03}, []Event{{Type: EventKey, Key: KeyCtrlC}}},
		{"Ctrl+U", []byte{0x15}, []Event{{Type: EventKey, Key: KeyCtrlU}}},
		{"Ctrl+Space", []byte{0x00}, []Event{{Type: EventKey, Key: KeyCtrlSpace}}},
		{"Arrow up CSI", []byte("\x1b[A"), []Event{{Type: EventKey, Key: KeyUp}}},
		{"Arrow left CSI", []byte("\x1b[D"), []Event{{Type: EventKey, Key: KeyLeft}}},
		{"Home CSI", []byte("\x1b[H"), []Event{{Type: EventKey, Key: KeyHome}}},
		{"PageUp tilde", []byte("\x1b[5~"), []Event{{Type: EventKey, Key: KeyPageUp}}},
		{"Delete tilde", []byte("\x1b[3~"), []Event{{Type: EventKey, Key: KeyDelete}}},
		{"F2 xterm", []byte("\x1b[12~"), []Event{{Type: EventKey, Key: KeyF2}}},
		{"F2 SS3", []byte("\x1bOQ"), []Event{{Type: EventKey, Key: KeyF2}}},
		{"Arrow up SS3", []byte("\x1bOA"), []Event{{Type: EventKey, Key: KeyUp}}},
		{"Shift+Tab", []byte("\x1b[Z"), []Event{{Type: EventKey, Key: KeyBacktab, Modifiers: ModShift}}},
		{"Ctrl+Right", []byte("\x1b[1;5C"), []Event{{Type: EventKey, Key: KeyRight, Modifiers: ModCtrl}}},
		{"Alt+x", []byte{0x1b, 'x'}, []Event{{Type: EventKey, Key: KeyRune, Rune: 'x', Modifiers: ModAlt}}},
		{"UTF-8 two byte", []byte("é"), []Event{{Type: EventKey, Key: KeyRune, Rune: 'é'}}},
		{"UTF-8 three byte", []byte("→"), []Event{{Type: EventKey, Key: KeyRune, Rune: '→'}}},
		{"Mixed text and arrow", []byte("a\x1b[Bb"), []Event{
			{Type: EventKey, Key: KeyRune, Rune: 'a'},
			{Type: EventKey, Key: KeyDown},
			{Type: EventKey, Key: KeyRune, Rune: 'b'},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newInputReader(nil)
			consumed := r.parseInput(tt.in)
			if consumed != len(tt.in) {
				t.Errorf("consumed %d bytes, want %d", consumed, len(tt.in))
			}
			got := drain(r)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d events %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseInputIncompleteEscape(t *testing.T) {
	r := newInputReader(nil)

	// A bare ESC could start a sequence, so nothing is consumed yet
	consumed := r.parseInput([]byte{0x1b})
	if consumed != 0 {
		t.Errorf("lone ESC consumed %d bytes, want 0", consumed)
	}
	if got := drain(r); len(got) != 0 {
		t.Errorf("lone ESC emitted %v, want nothing", got)
	}

	// Partial CSI stays buffered until the terminator arrives
	consumed = r.parseInput([]byte("\x1b[1;5"))
	if consumed != 0 {
		t.Errorf("partial CSI consumed %d bytes, want 0", consumed)
	}

	consumed = r.parseInput([]byte("\x1b[1;5C"))
	if consumed != 6 {
		t.Errorf("complete CSI consumed %d bytes, want 6", consumed)
	}
	got := drain(r)
	if len(got) != 1 || got[0].Key != KeyRight || got[0].Modifiers != ModCtrl {
		t.Errorf("got %v, want Ctrl+Right", got)
	}
}

func TestParseInputIncompleteUTF8(t *testing.T) {
	r := newInputReader(nil)

	full := []byte("世") // 3 bytes
	consumed := r.parseInput(full[:2])
	if consumed != 0 {
		t.Errorf("partial rune consumed %d bytes, want 0", consumed)
	}
	consumed = r.parseInput(full)
	if consumed != 3 {
		t.Errorf("full rune consumed %d bytes, want 3", consumed)
	}
	got := drain(r)
	if len(got) != 1 || got[0].Rune != '世' {
		t.Errorf("got %v, want rune event for 世", got)
	}
}

// eofBackend simulates input hangup on the first read
type eofBackend struct{}

func (eofBackend) Init() error          { return nil }
func (eofBackend) Fini()                {}
func (eofBackend) Size() (int, int)     { return 80, 24 }
func (eofBackend) Write(p []byte) error { return nil }

func (eofBackend) Read(stopCh <-chan struct{}) ([]byte, error) { return nil, io.EOF }
func (eofBackend) SetResizeHandler(handler func(int, int))     {}

func TestReadLoopSurfacesHangup(t *testing.T) {
	r := newInputReader(eofBackend{})
	r.start()
	defer r.stop()

	select {
	case ev := <-r.events():
		if ev.Type != EventError {
			t.Fatalf("event type = %v, want EventError", ev.Type)
		}
		if !errors.Is(ev.Err, io.EOF) {
			t.Errorf("event error = %v, want io.EOF", ev.Err)
		}
	case <-time.After(time.Second):
		t.Fatal("hangup produced no error event")
	}
}

func TestParseInputUnknownCSISwallowed(t *testing.T) {
	r := newInputReader(nil)

	in := []byte("\x1b[99Xa")
	consumed := r.parseInput(in)
	if consumed != len(in) {
		t.Errorf("consumed %d bytes, want %d", consumed, len(in))
	}
	got := drain(r)
	if len(got) != 1 || got[0].Rune != 'a' {
		t.Errorf("got %v, want only the trailing rune", got)
	}
}
