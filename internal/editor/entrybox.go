package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// EntryBoxResult says what the box did with a key.
type EntryBoxResult int

const (
	// EntryConsumed: the key was absorbed by the input field.
	EntryConsumed EntryBoxResult = iota
	// EntrySubmitted: enter was pressed on non-blank content; the field has
	// already been cleared and the trimmed text is returned alongside.
	EntrySubmitted
)

// EntryBox is the single-line quick-capture field. It has its own micro
// input loop and no undo history; submitting always clears it.
type EntryBox struct {
	input  textinput.Model
	active bool
}

func NewEntryBox() EntryBox {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "quick note, enter to append"
	return EntryBox{input: ti}
}

func (eb *EntryBox) Active() bool { return eb.active }

func (eb *EntryBox) SetActive(active bool) {
	eb.active = active
	if active {
		eb.input.Focus()
	} else {
		eb.input.Blur()
	}
}

func (eb *EntryBox) Value() string { return eb.input.Value() }

func (eb *EntryBox) Reset() { eb.input.Reset() }

func (eb *EntryBox) View() string { return eb.input.View() }

// Handle feeds one key to the box. Enter yields EntrySubmitted with the
// trimmed text when it is non-blank; blank enter just clears the field.
// Everything else goes to the underlying single-line input.
func (eb *EntryBox) Handle(msg tea.KeyMsg) (EntryBoxResult, string) {
	if msg.Type == tea.KeyEnter {
		text := strings.TrimSpace(eb.input.Value())
		eb.input.Reset()
		if text == "" {
			return EntryConsumed, ""
		}
		return EntrySubmitted, text
	}
	eb.input, _ = eb.input.Update(msg)
	return EntryConsumed, ""
}
