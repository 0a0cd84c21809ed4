package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kestrelsec/cybuddy/config"
)

func TestFromConfigUnconfigured(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	cfg := config.Default()
	if _, err := FromConfig(cfg); err != ErrNotConfigured {
		t.Errorf("FromConfig(none) error = %v, want ErrNotConfigured", err)
	}

	cfg.AI.Provider = "openai"
	if _, err := FromConfig(cfg); err != ErrNotConfigured {
		t.Errorf("FromConfig(openai, no key) error = %v, want ErrNotConfigured", err)
	}
}

func TestOpenAIAsk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"use -sV"}}]}`))
	}))
	defer srv.Close()

	p := newOpenAI("test-key", "", time.Second)
	p.baseURL = srv.URL

	got, err := p.Ask(context.Background(), "nmap version scan flag?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if got != "use -sV" {
		t.Errorf("Ask = %q, want %q", got, "use -sV")
	}
}

func TestOpenAIErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer srv.Close()

	p := newOpenAI("test-key", "", time.Second)
	p.baseURL = srv.URL

	if _, err := p.Ask(context.Background(), "q"); err == nil {
		t.Error("Ask on error response = nil error, want error")
	}
}

func TestAnthropicAsk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("x-api-key = %q", got)
		}
		w.Write([]byte(`{"content":[{"text":"445"}]}`))
	}))
	defer srv.Close()

	p := newAnthropic("test-key", "", time.Second)
	p.baseURL = srv.URL

	got, err := p.Ask(context.Background(), "smb port?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if got != "445" {
		t.Errorf("Ask = %q, want %q", got, "445")
	}
}
