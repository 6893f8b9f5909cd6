// Package store is the JSON-file entry store behind the editor's
// DataProvider capability.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"
)

// Entry is one journal entry. Content is newline-separated text.
type Entry struct {
	ID       int       `json:"id"`
	Date     time.Time `json:"date"`
	Title    string    `json:"title,omitempty"`
	Content  string    `json:"content"`
	Archived bool      `json:"archived,omitempty"`
}

// Store holds the entries of one journal file plus the currently selected
// entry id. The editor reads through it; only the UI layer writes.
type Store struct {
	path      string
	entries   []Entry
	currentID int // 0 = none selected
}

// Open reads the entries file at path. A missing file yields an empty
// store; a malformed one is an error.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		return nil, fmt.Errorf("parse entries JSON: %w", err)
	}
	return s, nil
}

func (s *Store) Path() string { return s.path }

// Entry returns the entry with the given id.
func (s *Store) Entry(id int) (Entry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Current returns the currently selected entry, if any.
func (s *Store) Current() (Entry, bool) {
	if s.currentID == 0 {
		return Entry{}, false
	}
	return s.Entry(s.currentID)
}

// SetCurrent selects the entry diffed against at dirty-recompute time.
// Passing 0 clears the selection.
func (s *Store) SetCurrent(id int) { s.currentID = id }

// Active lists the non-archived entries, newest first.
func (s *Store) Active() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if !e.Archived {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// SetContent replaces the content of the entry with the given id.
func (s *Store) SetContent(id int, content string) bool {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Content = content
			return true
		}
	}
	return false
}

// Add appends a new entry with the next free id and returns it.
func (s *Store) Add(title, content string, date time.Time) Entry {
	id := 1
	for _, e := range s.entries {
		if e.ID >= id {
			id = e.ID + 1
		}
	}
	entry := Entry{ID: id, Date: date, Title: title, Content: content}
	s.entries = append(s.entries, entry)
	return entry
}

// Save writes the entries file back to disk.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
