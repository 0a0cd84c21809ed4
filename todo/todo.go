// Package todo persists a small study task list to a JSON file,
// managed through the /todo command.
package todo

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

// Item statuses
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Item is one task
type Item struct {
	Text      string     `json:"text"`
	Status    string     `json:"status"`
	Added     time.Time  `json:"added"`
	Completed *time.Time `json:"completed,omitempty"`
}

type fileFormat struct {
	Items []Item `json:"items"`
}

// Store holds the task list backed by a JSON file. Not safe for
// concurrent use; the session loop is the only writer.
type Store struct {
	path  string
	items []Item
}

// Open loads the list from path. A missing file yields an empty
// store; a corrupt file is discarded rather than blocking startup.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read todo list: %w", err)
	}

	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return s, nil
	}
	s.items = f.Items
	return s, nil
}

// Add appends a pending task and saves the file
func (s *Store) Add(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errors.New("empty todo text")
	}
	s.items = append(s.items, Item{Text: text, Status: StatusPending, Added: time.Now()})
	return s.save()
}

// Done marks the 1-based item n completed and saves the file
func (s *Store) Done(n int) (Item, error) {
	if n < 1 || n > len(s.items) {
		return Item{}, fmt.Errorf("no todo item %d", n)
	}
	now := time.Now()
	s.items[n-1].Status = StatusCompleted
	s.items[n-1].Completed = &now
	return s.items[n-1], s.save()
}

// Items returns tasks oldest first
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the task count
func (s *Store) Len() int {
	return len(s.items)
}

// Clear removes all tasks and deletes the file
func (s *Store) Clear() error {
	s.items = nil
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear todo list: %w", err)
	}
	return nil
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("todo dir: %w", err)
	}
	data, err := json.MarshalIndent(fileFormat{Items: s.items}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode todo list: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write todo list: %w", err)
	}
	return nil
}
