package dispatch

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kestrelsec/cybuddy/knowledge"
	"github.com/kestrelsec/cybuddy/logging"
	"github.com/kestrelsec/cybuddy/todo"
	"github.com/kestrelsec/cybuddy/transcript"
)

func newDispatcher() *Dispatcher {
	return New(knowledge.New(), nil, nil, logging.Nop())
}

func joined(lines []transcript.Line) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestExitCommands(t *testing.T) {
	d := newDispatcher()
	for _, cmd := range []string{"exit", "quit", "EXIT", "/quit", "q"} {
		res := d.Execute(cmd)
		if !res.IsExit {
			t.Errorf("Execute(%q).IsExit = false, want true", cmd)
		}
		if res.IsError {
			t.Errorf("Execute(%q).IsError = true, want false", cmd)
		}
	}
}

func TestEmptyLine(t *testing.T) {
	d := newDispatcher()
	res := d.Execute("   ")
	if len(res.Lines) != 0 || res.IsExit || res.IsError {
		t.Errorf("Execute(blank) = %+v, want empty result", res)
	}
}

func TestExplainSlash(t *testing.T) {
	d := newDispatcher()
	res := d.Execute("/explain nmap")
	if res.IsError {
		t.Fatalf("IsError = true, lines: %s", joined(res.Lines))
	}
	out := joined(res.Lines)
	if !strings.Contains(out, "nmap") || !strings.Contains(out, "port") {
		t.Errorf("explain output missing content: %s", out)
	}
}

func TestNaturalLanguage(t *testing.T) {
	d := newDispatcher()
	res := d.Execute("what is gobuster?")
	if res.IsError {
		t.Fatalf("natural language explain errored: %s", joined(res.Lines))
	}
	if !strings.Contains(joined(res.Lines), "gobuster") {
		t.Errorf("output missing topic: %s", joined(res.Lines))
	}
}

func TestUnknownTopicSuggests(t *testing.T) {
	d := newDispatcher()
	res := d.Execute("/explain nmpa")
	if !res.IsError {
		t.Error("IsError = false for unknown topic")
	}
	if !strings.Contains(joined(res.Lines), "did you mean") {
		t.Errorf("no suggestion offered: %s", joined(res.Lines))
	}
}

func TestUnknownSlashCommand(t *testing.T) {
	d := newDispatcher()
	res := d.Execute("/frobnicate")
	if !res.IsError {
		t.Error("IsError = false for unknown command")
	}
}

func TestQuizAnswerFlow(t *testing.T) {
	d := newDispatcher()

	res := d.Execute("/quiz networking")
	if res.IsError {
		t.Fatalf("quiz errored: %s", joined(res.Lines))
	}
	if !strings.Contains(joined(res.Lines), "answer") {
		t.Errorf("quiz should hint at the answer command: %s", joined(res.Lines))
	}

	res = d.Execute("answer")
	if res.IsError {
		t.Fatalf("answer errored: %s", joined(res.Lines))
	}
	if !strings.Contains(joined(res.Lines), "answer:") {
		t.Errorf("answer output: %s", joined(res.Lines))
	}

	// Second reveal with nothing pending is an error
	res = d.Execute("answer")
	if !res.IsError {
		t.Error("answer with no pending quiz should error")
	}
}

func TestHelp(t *testing.T) {
	d := newDispatcher()
	res := d.Execute("help")
	if res.IsError || len(res.Lines) == 0 {
		t.Fatal("help produced no output")
	}
	if !strings.Contains(joined(res.Lines), "/explain") {
		t.Error("help missing command list")
	}
}

func TestAIWithoutProvider(t *testing.T) {
	d := newDispatcher()
	res := d.Execute("/ai what is smb?")
	if !res.IsError {
		t.Error("IsError = false with no provider")
	}
	if res.Async != nil {
		t.Error("Async set with no provider")
	}
}

type fakeProvider struct {
	answer string
	err    error
}

func (f fakeProvider) Name() string { return "fake" }
func (f fakeProvider) Ask(ctx context.Context, q string) (string, error) {
	return f.answer, f.err
}

func TestAIAsync(t *testing.T) {
	d := New(knowledge.New(), fakeProvider{answer: "port 445"}, nil, logging.Nop())

	res := d.Execute("/ai smb port?")
	if res.IsError {
		t.Fatalf("ai dispatch errored: %s", joined(res.Lines))
	}
	if res.Async == nil {
		t.Fatal("Async = nil, want continuation")
	}
	if len(res.Lines) == 0 {
		t.Error("expected immediate placeholder lines")
	}

	lines := res.Async(context.Background())
	if !strings.Contains(joined(lines), "port 445") {
		t.Errorf("async lines = %s", joined(lines))
	}
}

func TestAIAsyncError(t *testing.T) {
	d := New(knowledge.New(), fakeProvider{err: errors.New("boom")}, nil, logging.Nop())

	res := d.Execute("/ai q")
	lines := res.Async(context.Background())
	if !strings.Contains(joined(lines), "boom") {
		t.Errorf("async error lines = %s", joined(lines))
	}
}

func TestTodoLifecycle(t *testing.T) {
	store, err := todo.Open(filepath.Join(t.TempDir(), "todo.json"))
	if err != nil {
		t.Fatalf("todo.Open: %v", err)
	}
	d := New(knowledge.New(), nil, store, logging.Nop())

	res := d.Execute("/todo")
	if res.IsError || !strings.Contains(joined(res.Lines), "no todo items") {
		t.Errorf("empty list output: %s", joined(res.Lines))
	}

	res = d.Execute("/todo add practice pivoting")
	if res.IsError {
		t.Fatalf("add failed: %s", joined(res.Lines))
	}

	res = d.Execute("/todo")
	out := joined(res.Lines)
	if !strings.Contains(out, "1. [pending] practice pivoting") {
		t.Errorf("list output = %s, want the pending item", out)
	}

	res = d.Execute("/todo done 1")
	if res.IsError {
		t.Fatalf("done failed: %s", joined(res.Lines))
	}
	if out := joined(d.Execute("/todo").Lines); !strings.Contains(out, "[completed]") {
		t.Errorf("list after done = %s, want completed status", out)
	}

	if res := d.Execute("/todo done 9"); !res.IsError {
		t.Error("done out of range not flagged as error")
	}

	res = d.Execute("/todo clear")
	if res.IsError {
		t.Fatalf("clear failed: %s", joined(res.Lines))
	}
	if store.Len() != 0 {
		t.Errorf("store has %d items after clear, want 0", store.Len())
	}
}

func TestTodoWithoutStore(t *testing.T) {
	d := newDispatcher()
	res := d.Execute("/todo add x")
	if !res.IsError {
		t.Error("todo without a store not flagged as error")
	}
}

func TestRunReview(t *testing.T) {
	d := newDispatcher()

	res := d.Execute("/run nmap -T4 -A 10.0.0.5")
	if res.IsError {
		t.Fatalf("IsError = true, lines: %s", joined(res.Lines))
	}
	out := joined(res.Lines)
	if !strings.Contains(out, "aggressive") {
		t.Errorf("review missing timing warning: %s", out)
	}
	if !strings.Contains(out, "nmap -t4 -a 10.0.0.5") && !strings.Contains(out, "nmap -T4 -A 10.0.0.5") {
		t.Errorf("review does not echo the command: %s", out)
	}
	if !strings.Contains(out, "not executed") {
		t.Errorf("review missing the dry-run notice: %s", out)
	}

	if res := d.Execute("/run"); !res.IsError {
		t.Error("bare /run not flagged as usage error")
	}
}
