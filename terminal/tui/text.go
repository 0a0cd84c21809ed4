package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns terminal column width of s, accounting for
// wide runes
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate truncates string with … suffix if it exceeds maxW columns
func Truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxW {
		return s
	}
	if maxW == 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxW, "…")
}

// WrapText wraps text at word boundaries to fit width
// Returns slice of lines, each no wider than width columns
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var line strings.Builder
	lineW := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineW = 0
	}

	for _, word := range words {
		wordW := runewidth.StringWidth(word)

		// Split a word that can never fit on one line
		for wordW > width {
			if lineW > 0 {
				flush()
			}
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				// A rune wider than the line still has to advance
				_, n := utf8.DecodeRuneInString(word)
				head = word[:n]
			}
			line.WriteString(head)
			flush()
			word = word[len(head):]
			wordW = runewidth.StringWidth(word)
		}
		if wordW == 0 {
			continue
		}

		sep := 0
		if lineW > 0 {
			sep = 1
		}
		if lineW+sep+wordW > width {
			flush()
			sep = 0
		}
		if sep == 1 {
			line.WriteByte(' ')
			lineW++
		}
		line.WriteString(word)
		lineW += wordW
	}
	if lineW > 0 {
		flush()
	}

	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// RepeatRune returns a string of n repeated runes
func RepeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = r
	}
	return string(runes)
}
