package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/kestrelsec/cybuddy/dispatch"
	"github.com/kestrelsec/cybuddy/knowledge"
	"github.com/kestrelsec/cybuddy/logging"
)

func TestREPLExecutesAndExits(t *testing.T) {
	d := dispatch.New(knowledge.New(), nil, nil, logging.Nop())
	in := strings.NewReader("explain nmap\nexit\n")
	var out bytes.Buffer

	repl := NewREPL(d, nil, in, &out)
	code := repl.Run(context.Background(), "")

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "nmap") {
		t.Errorf("output missing lookup result: %s", out.String())
	}
}

func TestREPLExitsOnEOF(t *testing.T) {
	d := dispatch.New(knowledge.New(), nil, nil, logging.Nop())
	var out bytes.Buffer

	repl := NewREPL(d, nil, strings.NewReader(""), &out)
	if code := repl.Run(context.Background(), "small terminal"); code != 0 {
		t.Errorf("exit code on EOF = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "line mode") {
		t.Error("fallback reason not printed")
	}
}

func TestREPLRecordsHistory(t *testing.T) {
	d := dispatch.New(knowledge.New(), nil, nil, logging.Nop())
	rec := &recordingHistory{}
	in := strings.NewReader("quiz\nexit\n")
	var out bytes.Buffer

	NewREPL(d, rec, in, &out).Run(context.Background(), "")

	if len(rec.cmds) != 2 {
		t.Errorf("recorded commands = %v, want 2", rec.cmds)
	}
}

type recordingHistory struct {
	cmds []string
}

func (r *recordingHistory) Add(cmd string) error {
	r.cmds = append(r.cmds, cmd)
	return nil
}
