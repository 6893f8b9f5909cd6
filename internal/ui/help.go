package ui

import (
	"fmt"
	"strings"

	"daylog/internal/editor"
)

// helpView returns grouped key help with the current mode indicated.
func helpView(mode editor.Mode) string {
	sections := []struct {
		title string
		keys  []string
	}{
		{"Focus", []string{"shift+tab: entry box <-> content", "esc: leave entry box / back to NORMAL"}},
		{"Movement", []string{"h/j/k/l: left/down/up/right", "w/e b: word forward/back", "^/$: line head/end", "arrows, Home/End, PgUp/PgDn everywhere"}},
		{"Modes", []string{"i/a/A/I: insert", "o/O: open line below/above", "v: visual", "esc: normal"}},
		{"Edit", []string{"D: delete to line end", "C: change to line end", "x: delete char", "p: paste", "u: undo", "ctrl+r: redo"}},
		{"Visual", []string{"d: cut selection", "y: copy selection", "c: change selection"}},
		{"Scroll", []string{"ctrl+d/u: half page", "ctrl+f/b: full page"}},
		{"Journal", []string{"enter in entry box: append timestamped note", "ctrl+s: save", "ctrl+g: unsaved diff", "ctrl+o: entry list", "ctrl+c: quit"}},
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Help (Mode: %s)\n", mode)
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.title)
		for _, k := range sec.keys {
			fmt.Fprintf(&b, "  %s\n", k)
		}
	}
	b.WriteString("\nany key to close\n")
	return b.String()
}
