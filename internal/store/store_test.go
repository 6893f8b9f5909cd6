package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOpenMissingFileIsEmpty(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "entries.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if len(s.Active()) != 0 {
		t.Fatalf("expected empty store")
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	e := s.Add("first", "line one", time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC))
	if e.ID != 1 {
		t.Fatalf("id=%d", e.ID)
	}
	s.Add("second", "more", time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC))
	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, ok := s2.Entry(1)
	if !ok || got.Content != "line one" {
		t.Fatalf("entry=%+v ok=%v", got, ok)
	}
	active := s2.Active()
	if len(active) != 2 || active[0].Title != "second" {
		t.Fatalf("expected newest first, got %+v", active)
	}
}

func TestCurrentSelection(t *testing.T) {
	s := &Store{}
	s.Add("a", "x", time.Now())
	if _, ok := s.Current(); ok {
		t.Fatalf("no selection yet")
	}
	s.SetCurrent(1)
	cur, ok := s.Current()
	if !ok || cur.ID != 1 {
		t.Fatalf("cur=%+v ok=%v", cur, ok)
	}
	s.SetCurrent(0)
	if _, ok := s.Current(); ok {
		t.Fatalf("selection must clear")
	}
}

func TestSetContent(t *testing.T) {
	s := &Store{}
	s.Add("a", "old", time.Now())
	if !s.SetContent(1, "new") {
		t.Fatalf("expected update")
	}
	e, _ := s.Entry(1)
	if e.Content != "new" {
		t.Fatalf("content=%q", e.Content)
	}
	if s.SetContent(9, "x") {
		t.Fatalf("unknown id must report false")
	}
}

func TestMirrorCopiesDataFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "entries.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s.Add("a", "x", time.Now())
	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	backups := filepath.Join(dir, "backups")
	s.Mirror(backups, nil)
	deadline := time.Now().Add(2 * time.Second)
	for {
		if entries, err := os.ReadDir(backups); err == nil && len(entries) == 1 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("mirror never appeared in %s", backups)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestMirrorReportsErrors(t *testing.T) {
	s := &Store{path: filepath.Join(t.TempDir(), "missing.json")}
	errc := make(chan error, 1)
	s.Mirror(t.TempDir(), func(err error) { errc <- err })
	select {
	case err := <-errc:
		if err == nil {
			t.Fatalf("expected an error")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("error callback never fired")
	}
}

func TestActiveSkipsArchived(t *testing.T) {
	s := &Store{entries: []Entry{
		{ID: 1, Date: time.Now()},
		{ID: 2, Date: time.Now(), Archived: true},
	}}
	active := s.Active()
	if len(active) != 1 || active[0].ID != 1 {
		t.Fatalf("active=%+v", active)
	}
}
