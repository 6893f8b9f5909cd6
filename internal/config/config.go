// Package config loads and saves the daylog settings file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings is the user-facing configuration. The editing core only consumes
// SyncOSClipboard; the rest wires the store and backup collaborators.
type Settings struct {
	// SyncOSClipboard selects the clipboard policy: local yank register
	// only, or mirrored through the operating system clipboard.
	SyncOSClipboard bool `json:"sync_os_clipboard"`

	DataFile  string `json:"data_file,omitempty"`
	BackupDir string `json:"backup_dir,omitempty"`
}

// DefaultDir is the per-user state directory, ~/.daylog.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".daylog"
	}
	return filepath.Join(home, ".daylog")
}

func defaults() Settings {
	dir := DefaultDir()
	return Settings{
		DataFile:  filepath.Join(dir, "entries.json"),
		BackupDir: filepath.Join(dir, "backups"),
	}
}

// Load reads settings from path, filling unset fields with defaults. A
// missing file yields pure defaults.
func Load(path string) (Settings, error) {
	s := defaults()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings JSON: %w", err)
	}
	if s.DataFile == "" {
		s.DataFile = defaults().DataFile
	}
	if s.BackupDir == "" {
		s.BackupDir = defaults().BackupDir
	}
	return s, nil
}

// Save writes the settings file, creating its directory when needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
