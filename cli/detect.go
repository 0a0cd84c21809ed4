// Package cli provides the plain line-mode interface and the logic
// that picks between it and the full-screen session.
package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// UIMode is the chosen interface
type UIMode uint8

const (
	ModeTUI UIMode = iota
	ModeCLI
)

const (
	minCols = 60
	minRows = 12
)

// Detect picks the interface for this terminal and explains the
// choice when falling back to line mode.
func Detect() (UIMode, string) {
	inFd := int(os.Stdin.Fd())
	outFd := int(os.Stdout.Fd())

	if !term.IsTerminal(inFd) || !term.IsTerminal(outFd) {
		return ModeCLI, "not an interactive terminal"
	}
	if os.Getenv("TERM") == "dumb" {
		return ModeCLI, "TERM=dumb lacks cursor control"
	}

	w, h, err := term.GetSize(outFd)
	if err != nil {
		return ModeCLI, fmt.Sprintf("cannot determine terminal size: %v", err)
	}
	if w < minCols || h < minRows {
		return ModeCLI, fmt.Sprintf("terminal %dx%d below the %dx%d minimum", w, h, minCols, minRows)
	}

	return ModeTUI, ""
}
