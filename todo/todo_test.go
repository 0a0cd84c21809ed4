package todo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddDoneReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Add("practice nmap scripting"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add("read sqlmap docs"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	item, err := s.Done(1)
	if err != nil {
		t.Fatalf("Done: %v", err)
	}
	if item.Status != StatusCompleted || item.Completed == nil {
		t.Errorf("Done item = %+v, want completed with timestamp", item)
	}

	reloaded, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	items := reloaded.Items()
	if len(items) != 2 {
		t.Fatalf("reloaded %d items, want 2", len(items))
	}
	if items[0].Status != StatusCompleted {
		t.Errorf("item 0 status = %q, want completed", items[0].Status)
	}
	if items[1].Status != StatusPending {
		t.Errorf("item 1 status = %q, want pending", items[1].Status)
	}
}

func TestDoneOutOfRange(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "todo.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := s.Done(1); err == nil {
		t.Error("Done(1) on empty list returned nil error")
	}
	if _, err := s.Done(0); err == nil {
		t.Error("Done(0) returned nil error")
	}
}

func TestAddEmptyRejected(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "todo.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Add("   "); err == nil {
		t.Error("Add(blank) returned nil error")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after rejected add, want 0", s.Len())
	}
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Add("task"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after clear, want 0", s.Len())
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("todo file still exists after clear")
	}
}

func TestCorruptFileDiscarded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open on corrupt file: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d from corrupt file, want 0", s.Len())
	}
}
