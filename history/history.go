// Package history persists submitted commands to a JSON file and
// serves them back for Up/Down navigation in the session.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const defaultCap = 500

// Record is one persisted command
type Record struct {
	Command string    `json:"command"`
	Time    time.Time `json:"time"`
}

type fileFormat struct {
	Records []Record `json:"records"`
}

// Store holds command history backed by a JSON file. Not safe for
// concurrent use; the session loop is the only writer.
type Store struct {
	path    string
	cap     int
	records []Record
}

// Open loads history from path, creating parent directories as
// needed. A missing file yields an empty store; a corrupt file is
// discarded rather than blocking startup.
func Open(path string, cap int) (*Store, error) {
	if cap <= 0 {
		cap = defaultCap
	}
	s := &Store{path: path, cap: cap}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return s, nil
	}
	s.records = f.Records
	s.trim()
	return s, nil
}

// Add appends a command, skipping empty input and consecutive
// repeats, and saves the file.
func (s *Store) Add(command string) error {
	command = strings.TrimSpace(command)
	if command == "" {
		return nil
	}
	if n := len(s.records); n > 0 && s.records[n-1].Command == command {
		return nil
	}

	s.records = append(s.records, Record{Command: command, Time: time.Now()})
	s.trim()
	return s.save()
}

func (s *Store) trim() {
	if len(s.records) > s.cap {
		s.records = s.records[len(s.records)-s.cap:]
	}
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("history dir: %w", err)
	}
	data, err := json.MarshalIndent(fileFormat{Records: s.records}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// Entries returns commands oldest first
func (s *Store) Entries() []string {
	out := make([]string, len(s.records))
	for i, r := range s.records {
		out[i] = r.Command
	}
	return out
}

// Len returns the stored command count
func (s *Store) Len() int {
	return len(s.records)
}

// Search returns commands containing substr, oldest first
func (s *Store) Search(substr string) []string {
	substr = strings.ToLower(substr)
	var out []string
	for _, r := range s.records {
		if strings.Contains(strings.ToLower(r.Command), substr) {
			out = append(out, r.Command)
		}
	}
	return out
}

// Clear removes all records and deletes the file
func (s *Store) Clear() error {
	s.records = nil
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
