package history

import (
	"os"
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T, cap int) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.json")
	s, err := Open(path, cap)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestAddAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	s, err := Open(path, 0)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	for _, cmd := range []string{"explain nmap", "quiz", "exit"} {
		if err := s.Add(cmd); err != nil {
			t.Fatalf("Add(%q): %v", cmd, err)
		}
	}

	reloaded, err := Open(path, 0)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got := reloaded.Entries()
	want := []string{"explain nmap", "quiz", "exit"}
	if len(got) != len(want) {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entries()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestConsecutiveDedup(t *testing.T) {
	s := tempStore(t, 0)
	s.Add("quiz")
	s.Add("quiz")
	s.Add("quiz")
	s.Add("exit")
	s.Add("quiz")

	if s.Len() != 3 {
		t.Errorf("Len() = %d after consecutive repeats, want 3", s.Len())
	}
}

func TestSkipsBlank(t *testing.T) {
	s := tempStore(t, 0)
	s.Add("  ")
	s.Add("")
	if s.Len() != 0 {
		t.Errorf("Len() = %d after blank adds, want 0", s.Len())
	}
}

func TestCap(t *testing.T) {
	s := tempStore(t, 3)
	for _, cmd := range []string{"a", "b", "c", "d", "e"} {
		s.Add(cmd)
	}
	got := s.Entries()
	want := []string{"c", "d", "e"}
	if len(got) != 3 {
		t.Fatalf("Entries() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entries()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSearch(t *testing.T) {
	s := tempStore(t, 0)
	s.Add("explain nmap")
	s.Add("tips for xss")
	s.Add("explain gobuster")

	got := s.Search("EXPLAIN")
	if len(got) != 2 {
		t.Errorf("Search(EXPLAIN) = %v, want 2 results", got)
	}
}

func TestCorruptFileIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	s, err := Open(path, 0)
	if err != nil {
		t.Fatalf("Open on corrupt file: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d from corrupt file, want 0", s.Len())
	}
}
