// Package config loads the cybuddy TOML configuration, writing a
// commented default file on first run.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the top-level TOML structure
type Config struct {
	Session sessionSettings `toml:"session"`
	History historySettings `toml:"history"`
	AI      aiSettings      `toml:"ai"`
}

type sessionSettings struct {
	// TickMillis bounds input polling so scheduled renders stay
	// responsive without keystrokes
	TickMillis int    `toml:"tick_millis"`
	Color      string `toml:"color"` // auto, 256, truecolor
	Mode       string `toml:"mode"`  // auto, tui, cli
}

type historySettings struct {
	MaxEntries int `toml:"max_entries"`
}

type aiSettings struct {
	Provider string `toml:"provider"` // none, openai, anthropic
	Model    string `toml:"model"`
	// API keys come from OPENAI_API_KEY / ANTHROPIC_API_KEY, never
	// from this file
	TimeoutSeconds int `toml:"timeout_seconds"`
}

const defaultConfigTOML = `# cybuddy configuration

[session]
# Input poll timeout in milliseconds; lower is more responsive.
tick_millis = 50
# Color depth: "auto", "256" or "truecolor".
color = "auto"
# Interface: "auto" picks tui on a capable terminal, cli otherwise.
mode = "auto"

[history]
max_entries = 500

[ai]
# Provider for the /ai command: "none", "openai" or "anthropic".
# API keys are read from OPENAI_API_KEY / ANTHROPIC_API_KEY.
provider = "none"
model = ""
timeout_seconds = 30
`

// Dir returns the cybuddy config directory
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "cybuddy"), nil
}

// Path returns the full path to the config file
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// HistoryPath returns the command history file location
func HistoryPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.json"), nil
}

// TodoPath returns the todo list file location
func TodoPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "todo.json"), nil
}

// LogPath returns the diagnostic log file location
func LogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cybuddy.log"), nil
}

// Load reads the config file, creating it with defaults when missing.
// Parse failures fall back to defaults with the error returned so the
// caller can warn without aborting.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads config from an explicit path
func LoadFrom(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			return Default(), fmt.Errorf("create config dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultConfigTOML), 0o644); wErr != nil {
			return Default(), fmt.Errorf("write default config: %w", wErr)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and normalizes TOML bytes
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config.toml: %w", err)
	}
	return normalize(cfg), nil
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Session: sessionSettings{TickMillis: 50, Color: "auto", Mode: "auto"},
		History: historySettings{MaxEntries: 500},
		AI:      aiSettings{Provider: "none", TimeoutSeconds: 30},
	}
}

func normalize(cfg Config) Config {
	out := Default()

	if cfg.Session.TickMillis >= 10 && cfg.Session.TickMillis <= 500 {
		out.Session.TickMillis = cfg.Session.TickMillis
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Session.Color)) {
	case "256":
		out.Session.Color = "256"
	case "truecolor":
		out.Session.Color = "truecolor"
	default:
		out.Session.Color = "auto"
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Session.Mode)) {
	case "tui":
		out.Session.Mode = "tui"
	case "cli":
		out.Session.Mode = "cli"
	default:
		out.Session.Mode = "auto"
	}

	if cfg.History.MaxEntries > 0 && cfg.History.MaxEntries <= 10000 {
		out.History.MaxEntries = cfg.History.MaxEntries
	}

	switch strings.ToLower(strings.TrimSpace(cfg.AI.Provider)) {
	case "openai":
		out.AI.Provider = "openai"
	case "anthropic":
		out.AI.Provider = "anthropic"
	default:
		out.AI.Provider = "none"
	}
	out.AI.Model = strings.TrimSpace(cfg.AI.Model)
	if cfg.AI.TimeoutSeconds >= 5 && cfg.AI.TimeoutSeconds <= 300 {
		out.AI.TimeoutSeconds = cfg.AI.TimeoutSeconds
	}

	return out
}
