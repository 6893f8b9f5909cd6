// Package editor is the input-dispatch and editing-state core of daylog:
// a Normal/Insert/Visual modal editor over the current entry's content plus
// a single-line capture box for timestamped quick notes. It owns no
// rendering; the UI layer reads mode, cursor and dirty state and draws.
package editor

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"daylog/internal/store"
)

// DataProvider is the narrow read capability the editor consumes. The
// editor never writes through it; it surfaces content and the unsaved flag
// for the caller to persist.
type DataProvider interface {
	Entry(id int) (store.Entry, bool)
	Current() (store.Entry, bool)
}

// HandleResult reports whether an input path consumed the event.
type HandleResult int

const (
	Handled HandleResult = iota
	NotFound
)

// Editor composes the buffer, the capture box, the mode state machine and
// the clipboard bridge. One input event is fully processed, dirty state
// recomputed last, before the next is accepted.
type Editor struct {
	buf    *Buffer
	box    EntryBox
	mode   Mode
	bridge *ClipboardBridge

	provider DataProvider
	dt       dirtyTracker

	active   bool
	hasEntry bool
	pageSize int

	// now is injectable for tests of the timestamp format.
	now func() time.Time
}

func New(provider DataProvider, clip Clipboard, syncOSClipboard bool) *Editor {
	return &Editor{
		buf:      NewBuffer(),
		box:      NewEntryBox(),
		mode:     ModeNormal,
		bridge:   NewClipboardBridge(clip, syncOSClipboard),
		provider: provider,
		now:      time.Now,
	}
}

// Load discards the buffer and rebuilds it from the store: cursor at end of
// content, mode Normal, capture box cleared and inactive, dirty state reset.
// A nil id or an unknown id leaves an empty buffer; the unknown id is also
// reported as ErrEntryNotFound. This is the only place undo history is
// legitimately discarded.
func (e *Editor) Load(id *int) error {
	var loadErr error
	content := ""
	e.hasEntry = false
	if id != nil {
		if entry, ok := e.provider.Entry(*id); ok {
			content = entry.Content
			e.hasEntry = true
		} else {
			loadErr = ErrEntryNotFound
		}
	}
	e.buf = NewBufferFromContent(content)
	e.buf.SetPageSize(e.pageSize)
	e.box.Reset()
	e.box.SetActive(false)
	e.mode = ModeNormal
	e.dt.reset()
	e.refreshUnsaved()
	return loadErr
}

// HandlePrioritized is the first-refusal path: the active capture box and
// Insert mode consume raw character input and the clipboard shortcuts here,
// before the motion tables ever see the event.
func (e *Editor) HandlePrioritized(msg tea.KeyMsg) (HandleResult, error) {
	if e.box.Active() {
		switch msg.String() {
		case "esc", "shift+tab":
			// focus returns to the content pane, which resumes in Normal
			e.box.SetActive(false)
			e.SetMode(ModeNormal)
			return Handled, nil
		}
		if res, text := e.box.Handle(msg); res == EntrySubmitted {
			e.appendTimestamped(text)
		}
		return Handled, nil
	}

	if e.mode != ModeInsert {
		return NotFound, nil
	}

	k := msg.String()
	if k == "esc" {
		e.SetMode(ModeNormal)
		e.refreshUnsaved()
		return Handled, nil
	}
	// clipboard shortcuts only exist here under the OS-sync policy; without
	// it ctrl+v falls through to default navigation below
	if e.bridge.syncOS {
		if op, ok := insertClipboardOp(k); ok {
			mutated, err := e.bridge.Execute(op, e.buf)
			if mutated {
				e.dt.markDirty()
			}
			e.refreshUnsaved()
			return Handled, err
		}
	}
	if isDefaultNavigation(k) {
		e.navigate(k)
		e.refreshUnsaved()
		return Handled, nil
	}
	if e.insertKey(msg) {
		e.dt.markDirty()
	}
	e.refreshUnsaved()
	return Handled, nil
}

func insertClipboardOp(k string) (ClipboardOp, bool) {
	switch k {
	case "ctrl+x":
		return ClipCut, true
	case "ctrl+c":
		return ClipCopy, true
	case "ctrl+v":
		return ClipPaste, true
	}
	return 0, false
}

// insertKey applies one Insert-mode editing key and reports whether the
// buffer was mutated.
func (e *Editor) insertKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return false
		}
		for _, r := range msg.Runes {
			e.buf.InsertRune(r)
		}
		return len(msg.Runes) > 0
	case tea.KeySpace:
		e.buf.InsertRune(' ')
		return true
	case tea.KeyTab:
		e.buf.InsertRune('\t')
		return true
	case tea.KeyEnter:
		e.buf.InsertNewline()
		return true
	case tea.KeyBackspace:
		return e.buf.Backspace()
	case tea.KeyDelete:
		return e.buf.DeleteForward()
	}
	return false
}

// Handle is the general navigation/motion path, called only after
// HandlePrioritized returned NotFound. With no entry loaded all input is
// swallowed with no effect.
func (e *Editor) Handle(msg tea.KeyMsg) (HandleResult, error) {
	if !e.hasEntry {
		return Handled, nil
	}

	k := msg.String()
	if k == "shift+tab" {
		// the box-active direction is handled by HandlePrioritized
		e.box.SetActive(true)
		return Handled, nil
	}

	switch k {
	case "v":
		if e.mode == ModeNormal {
			e.SetMode(ModeVisual)
		}
		return Handled, nil
	case "esc":
		e.SetMode(ModeNormal)
		return Handled, nil
	}

	mutated, err := e.dispatch(k)
	// a visual-only command may have consumed the selection
	e.reconcileMode()
	if mutated {
		e.dt.markDirty()
	}
	e.refreshUnsaved()
	return Handled, err
}

// appendTimestamped adds a "<HH:MM> text" line at the end of the buffer.
func (e *Editor) appendTimestamped(text string) {
	e.buf.AppendLine(e.now().Format("15:04") + " " + text)
	e.dt.markDirty()
	e.refreshUnsaved()
}

// refreshUnsaved recomputes the unsaved flag against the stored entry. It
// runs as the last step of every event so callers never observe a stale
// value.
func (e *Editor) refreshUnsaved() {
	entry, ok := e.provider.Current()
	e.dt.recompute(e.buf.Content(), entry.Content, ok && e.hasEntry)
}

// SetActive is the lifecycle hook for screen switches. Activation focuses
// the capture box; deactivation cancels any open selection and closes the
// box so neither leaks into the next activation.
func (e *Editor) SetActive(active bool) {
	if !active && e.mode == ModeVisual {
		e.SetMode(ModeNormal)
	}
	e.active = active
	e.box.SetActive(active)
}

// Saved resets the dirty flag after the caller persisted the content.
func (e *Editor) Saved() {
	e.dt.reset()
	e.refreshUnsaved()
}

func (e *Editor) Active() bool { return e.active }

func (e *Editor) EntryBoxActive() bool { return e.box.Active() }

func (e *Editor) EntryBoxView() string { return e.box.View() }

// Content returns the newline-joined buffer snapshot for persisting.
func (e *Editor) Content() string { return e.buf.Content() }

func (e *Editor) HasUnsaved() bool { return e.dt.unsaved }

func (e *Editor) Dirty() bool { return e.dt.dirty }

func (e *Editor) HasEntry() bool { return e.hasEntry }

// Buffer exposes the buffer for read-only presentation use.
func (e *Editor) Buffer() *Buffer { return e.buf }

// SetPageSize forwards the visible page height for page motions. It
// survives entry switches.
func (e *Editor) SetPageSize(n int) {
	e.pageSize = n
	e.buf.SetPageSize(n)
}
