package tui

import "github.com/kestrelsec/cybuddy/terminal"

// Theme defines semantic colors for session rendering
type Theme struct {
	Bg      terminal.RGB
	Fg      terminal.RGB
	InputBg terminal.RGB
	Border  terminal.RGB

	HeaderBg terminal.RGB
	HeaderFg terminal.RGB
	StatusFg terminal.RGB
	HintFg   terminal.RGB

	PromptFg terminal.RGB

	// Transcript line categories
	TitleFg   terminal.RGB
	CommandFg terminal.RGB
	SuccessFg terminal.RGB
	WarningFg terminal.RGB
	ErrorFg   terminal.RGB
	DimFg     terminal.RGB
	AccentFg  terminal.RGB
}

// DefaultTheme provides the stock dark palette
var DefaultTheme = Theme{
	Bg:        terminal.RGB{R: 16, G: 18, B: 24},
	Fg:        terminal.RGB{R: 205, G: 209, B: 214},
	InputBg:   terminal.RGB{R: 26, G: 30, B: 40},
	Border:    terminal.RGB{R: 60, G: 90, B: 110},
	HeaderBg:  terminal.RGB{R: 24, G: 52, B: 64},
	HeaderFg:  terminal.RGB{R: 240, G: 248, B: 255},
	StatusFg:  terminal.RGB{R: 130, G: 140, B: 150},
	HintFg:    terminal.RGB{R: 95, G: 175, B: 200},
	PromptFg:  terminal.RGB{R: 80, G: 220, B: 130},
	TitleFg:   terminal.RGB{R: 95, G: 200, B: 255},
	CommandFg: terminal.RGB{R: 235, G: 203, B: 139},
	SuccessFg: terminal.RGB{R: 130, G: 220, B: 130},
	WarningFg: terminal.RGB{R: 250, G: 190, B: 90},
	ErrorFg:   terminal.RGB{R: 245, G: 100, B: 100},
	DimFg:     terminal.RGB{R: 110, G: 118, B: 126},
	AccentFg:  terminal.RGB{R: 190, G: 140, B: 240},
}
