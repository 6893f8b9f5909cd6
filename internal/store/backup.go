package store

import (
	"os"
	"path/filepath"
	"time"
)

// Mirror copies the entries file into dir in the background, named by
// timestamp. It is fire-and-forget: the input loop never waits on it and a
// failure must not touch any in-memory state, so errors only reach the
// optional callback.
func (s *Store) Mirror(dir string, onErr func(error)) {
	if dir == "" {
		return
	}
	path := s.path
	go func() {
		report := func(err error) {
			if onErr != nil {
				onErr(err)
			}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			report(err)
			return
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			report(err)
			return
		}
		name := time.Now().Format("20060102_150405") + ".json"
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			report(err)
		}
	}()
}
