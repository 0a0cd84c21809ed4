package transcript

import (
	"testing"
	"time"
)

func TestAppendOnly(t *testing.T) {
	b := NewBuffer()
	now := time.Now()

	prev := 0
	for i := 0; i < 5; i++ {
		b.Append("cmd", []Line{Plain("out")}, now)
		if b.Len() <= prev {
			t.Fatalf("Len() = %d after append, want > %d", b.Len(), prev)
		}
		prev = b.Len()
	}
}

func TestAppendCopiesOutput(t *testing.T) {
	b := NewBuffer()
	out := []Line{Plain("original")}
	b.Append("cmd", out, time.Now())

	out[0].Text = "mutated"

	got := b.Entry(0).Output[0].Text
	if got != "original" {
		t.Errorf("entry output = %q, want %q", got, "original")
	}
}

func TestSliceBounds(t *testing.T) {
	b := NewBuffer()
	for i := 0; i < 3; i++ {
		b.Append("cmd", nil, time.Now())
	}

	tests := []struct {
		name     string
		from, to int
		want     int
	}{
		{"full", 0, 3, 3},
		{"clampLow", -5, 2, 2},
		{"clampHigh", 1, 99, 2},
		{"empty", 2, 2, 0},
		{"inverted", 3, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := len(b.Slice(tt.from, tt.to))
			if got != tt.want {
				t.Errorf("Slice(%d, %d) len = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestLinesFlattening(t *testing.T) {
	b := NewBuffer()
	b.Append("explain nmap", []Line{Plain("nmap is a port scanner")}, time.Now())
	b.Append("", []Line{{Kind: KindTitle, Text: "Welcome"}}, time.Now())

	lines := b.Lines()
	if len(lines) != 3 {
		t.Fatalf("Lines() len = %d, want 3", len(lines))
	}
	if lines[0].Kind != KindCommand || lines[0].Text != "> explain nmap" {
		t.Errorf("echo line = %+v, want command echo", lines[0])
	}
	if lines[1].Text != "nmap is a port scanner" {
		t.Errorf("output line = %q", lines[1].Text)
	}
	if lines[2].Kind != KindTitle {
		t.Errorf("entry with empty input should contribute output only, got %+v", lines[2])
	}
}
