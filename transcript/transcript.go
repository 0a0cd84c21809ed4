// Package transcript holds the append-only log of submitted commands
// and their rendered output lines.
package transcript

import "time"

// Kind classifies a line for styling. Renderers map kinds to colors.
type Kind uint8

const (
	KindPlain Kind = iota
	KindTitle
	KindCommand
	KindSuccess
	KindWarning
	KindError
	KindDim
	KindAccent
)

// Line is one styled row of output
type Line struct {
	Kind Kind
	Text string
}

// Plain wraps text as an unstyled line
func Plain(text string) Line { return Line{Kind: KindPlain, Text: text} }

// Entry records one submitted command and its output. Entries are
// immutable after creation.
type Entry struct {
	Input     string
	Output    []Line
	Timestamp time.Time
}

// Buffer is an ordered append-only sequence of entries. It is owned by
// the session loop and not safe for concurrent use.
type Buffer struct {
	entries []Entry
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// Append adds an entry. The output slice is copied so later mutation
// by the caller cannot alter the recorded entry.
func (b *Buffer) Append(input string, output []Line, ts time.Time) {
	out := make([]Line, len(output))
	copy(out, output)
	b.entries = append(b.entries, Entry{Input: input, Output: out, Timestamp: ts})
}

// Len returns the entry count
func (b *Buffer) Len() int {
	return len(b.entries)
}

// Entry returns the entry at index i
func (b *Buffer) Entry(i int) Entry {
	return b.entries[i]
}

// Slice returns a read-only view of entries in [from, to). Bounds are
// clamped to the valid range.
func (b *Buffer) Slice(from, to int) []Entry {
	if from < 0 {
		from = 0
	}
	if to > len(b.entries) {
		to = len(b.entries)
	}
	if from >= to {
		return nil
	}
	return b.entries[from:to:to]
}

// Lines flattens the buffer into the styled rows the pager shows: each
// entry contributes a prompt-echo line followed by its output lines.
func (b *Buffer) Lines() []Line {
	var lines []Line
	for _, e := range b.entries {
		if e.Input != "" {
			lines = append(lines, Line{Kind: KindCommand, Text: "> " + e.Input})
		}
		lines = append(lines, e.Output...)
	}
	return lines
}
