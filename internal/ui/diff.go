package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	diffDelLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
	diffAddLine = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
	diffDelChar = diffDelLine.Underline(true)
	diffAddChar = diffAddLine.Underline(true)
)

// renderUnsavedDiff shows what the buffer changed against the stored entry
// content, with line- and char-level highlights. When line counts match the
// lines are paired for char-level diffing; otherwise raw blocks are shown.
func renderUnsavedDiff(stored, current string) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Unsaved changes (esc to close)") + "\n\n")
	if stored == current {
		sb.WriteString("No changes\n")
		return sb.String()
	}
	sLines := strings.Split(stored, "\n")
	cLines := strings.Split(current, "\n")
	if len(sLines) == len(cLines) && len(sLines) > 0 {
		for i := 0; i < len(sLines); i++ {
			sl := sLines[i]
			cl := cLines[i]
			if sl == cl {
				if strings.TrimSpace(sl) == "" {
					continue
				}
				sb.WriteString("  " + faintStyle.Render(sl) + "\n")
				continue
			}
			d := dmp.New()
			diffs := d.DiffMain(sl, cl, false)
			d.DiffCleanupSemantic(diffs)
			sb.WriteString(diffDelLine.Render("- "))
			for _, df := range diffs {
				switch df.Type {
				case dmp.DiffDelete:
					sb.WriteString(diffDelChar.Render(df.Text))
				case dmp.DiffEqual:
					sb.WriteString(diffDelLine.Render(df.Text))
				}
			}
			sb.WriteString("\n")
			sb.WriteString(diffAddLine.Render("+ "))
			for _, df := range diffs {
				switch df.Type {
				case dmp.DiffInsert:
					sb.WriteString(diffAddChar.Render(df.Text))
				case dmp.DiffEqual:
					sb.WriteString(diffAddLine.Render(df.Text))
				}
			}
			sb.WriteString("\n")
		}
		return sb.String()
	}
	sb.WriteString(titleStyle.Render("STORED") + "\n")
	for _, l := range sLines {
		sb.WriteString(diffDelLine.Render("- ") + l + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(titleStyle.Render("BUFFER") + "\n")
	for _, l := range cLines {
		sb.WriteString(diffAddLine.Render("+ ") + l + "\n")
	}
	return sb.String()
}
