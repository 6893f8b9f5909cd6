package ui

import (
	"fmt"
	"strings"

	"daylog/internal/editor"
)

// statusLine composes a concise status line reflecting the editor state.
func statusLine(ed *editor.Editor, notice string) string {
	mode := "[" + ed.Mode().String() + "]"
	if ed.EntryBoxActive() {
		mode = "[ENTRY]"
	}
	row, col := ed.Buffer().Cursor()
	pos := fmt.Sprintf("%d:%d", row+1, col+1)

	saved := "saved"
	if ed.HasUnsaved() {
		saved = "unsaved *"
	}

	parts := []string{mode, pos, saved, "shift+tab focus  ctrl+s save  f1 help"}
	if notice != "" {
		parts = append(parts, notice)
	}
	return faintStyle.Render(strings.Join(parts, "  "))
}
