package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromWritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cybuddy", "config.toml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Session.TickMillis != 50 {
		t.Errorf("TickMillis = %d, want 50", cfg.Session.TickMillis)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config file not written: %v", err)
	}
}

func TestParseNormalizes(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want func(Config) bool
	}{
		{
			"validTick",
			"[session]\ntick_millis = 100",
			func(c Config) bool { return c.Session.TickMillis == 100 },
		},
		{
			"tickTooLow",
			"[session]\ntick_millis = 1",
			func(c Config) bool { return c.Session.TickMillis == 50 },
		},
		{
			"colorCase",
			"[session]\ncolor = \"TrueColor\"",
			func(c Config) bool { return c.Session.Color == "truecolor" },
		},
		{
			"badMode",
			"[session]\nmode = \"gui\"",
			func(c Config) bool { return c.Session.Mode == "auto" },
		},
		{
			"provider",
			"[ai]\nprovider = \"OpenAI\"\nmodel = \" gpt-4o \"",
			func(c Config) bool { return c.AI.Provider == "openai" && c.AI.Model == "gpt-4o" },
		},
		{
			"historyCap",
			"[history]\nmax_entries = 100",
			func(c Config) bool { return c.History.MaxEntries == 100 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.toml))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !tt.want(cfg) {
				t.Errorf("normalization failed for %q: %+v", tt.toml, cfg)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	cfg, err := Parse([]byte("[session\nbroken"))
	if err == nil {
		t.Error("Parse(broken toml) error = nil, want error")
	}
	if cfg.Session.TickMillis != 50 {
		t.Error("broken parse should fall back to defaults")
	}
}
