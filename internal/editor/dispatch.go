package editor

// Input classification, first match wins:
//
//  1. default navigation: arrows, home/end, page keys and the Emacs-style
//     chords, routed to plain cursor movement in every mode so they behave
//     identically while editing and while navigating;
//  2. visual-only commands d/y/c, reachable only in Visual mode with no
//     modifier held;
//  3. the vim motion/command table for Normal and Visual mode.
//
// Anything unmatched is a silent no-op. Keys are the normalized
// tea.KeyMsg.String() form ("ctrl+d", "alt+f", "left", ...), so a modified
// chord can never collide with a plain letter binding.

func isDefaultNavigation(k string) bool {
	switch k {
	case "up", "down", "left", "right", "home", "end", "pgup", "pgdown":
		return true
	case "ctrl+p", "alt+p", "ctrl+n", "alt+n", "alt+f", "alt+b",
		"ctrl+e", "alt+e", "ctrl+a", "alt+a", "ctrl+v", "alt+v":
		return true
	}
	return false
}

func (e *Editor) navigate(k string) {
	switch k {
	case "up", "ctrl+p", "alt+p":
		e.buf.MoveUp()
	case "down", "ctrl+n", "alt+n":
		e.buf.MoveDown()
	case "left":
		e.buf.MoveLeft()
	case "right":
		e.buf.MoveRight()
	case "home", "ctrl+a", "alt+a":
		e.buf.LineHead()
	case "end", "ctrl+e", "alt+e":
		e.buf.LineEnd()
	case "pgup":
		e.buf.PageUp()
	case "pgdown", "ctrl+v", "alt+v":
		e.buf.PageDown()
	case "alt+f":
		e.buf.WordForward()
	case "alt+b":
		e.buf.WordBack()
	}
}

// dispatch routes one classified key to a buffer or clipboard operation and
// reports whether the buffer content was mutated.
func (e *Editor) dispatch(k string) (mutated bool, err error) {
	if isDefaultNavigation(k) {
		e.navigate(k)
		return false, nil
	}
	if e.mode == ModeVisual {
		if handled, mutated, err := e.dispatchVisual(k); handled {
			return mutated, err
		}
	}
	return e.dispatchMotion(k)
}

// dispatchVisual handles the visual-only commands. Modified chords never
// reach this tier: their String() form carries the modifier prefix.
func (e *Editor) dispatchVisual(k string) (handled, mutated bool, err error) {
	switch k {
	case "d":
		mutated, err = e.bridge.Execute(ClipCut, e.buf)
		return true, mutated, err
	case "y":
		mutated, err = e.bridge.Execute(ClipCopy, e.buf)
		e.SetMode(ModeNormal)
		return true, mutated, err
	case "c":
		mutated, err = e.bridge.Execute(ClipCut, e.buf)
		e.SetMode(ModeInsert)
		return true, mutated, err
	}
	return false, false, nil
}

// dispatchMotion is the fixed vim-like subset shared by Normal and Visual
// mode. In Visual mode movement extends the selection because the anchor
// stays put.
func (e *Editor) dispatchMotion(k string) (mutated bool, err error) {
	switch k {
	case "h":
		e.buf.MoveLeft()
	case "j":
		e.buf.MoveDown()
	case "k":
		e.buf.MoveUp()
	case "l":
		e.buf.MoveRight()
	case "w", "e":
		e.buf.WordForward()
	case "b":
		e.buf.WordBack()
	case "^":
		e.buf.LineHead()
	case "$":
		e.buf.LineEnd()

	case "D":
		if cut := e.buf.DeleteToLineEnd(); cut != "" {
			mutated = true
		}
		_, err = e.bridge.Execute(ClipCopy, e.buf)
	case "C":
		if cut := e.buf.DeleteToLineEnd(); cut != "" {
			mutated = true
		}
		_, err = e.bridge.Execute(ClipCopy, e.buf)
		e.SetMode(ModeInsert)
	case "x":
		if cut := e.buf.DeleteChar(); cut != "" {
			mutated = true
		}
		_, err = e.bridge.Execute(ClipCopy, e.buf)
	case "p":
		mutated, err = e.bridge.Execute(ClipPaste, e.buf)

	case "u":
		mutated = e.buf.Undo()
	case "ctrl+r":
		mutated = e.buf.Redo()

	case "i":
		e.SetMode(ModeInsert)
	case "a":
		e.buf.MoveRight()
		e.SetMode(ModeInsert)
	case "A":
		e.buf.LineEnd()
		e.SetMode(ModeInsert)
	case "o":
		e.buf.LineEnd()
		e.buf.InsertNewline()
		e.SetMode(ModeInsert)
		mutated = true
	case "O":
		e.buf.LineHead()
		e.buf.InsertNewline()
		e.buf.MoveUp()
		e.SetMode(ModeInsert)
		mutated = true
	case "I":
		e.buf.LineHead()
		e.SetMode(ModeInsert)

	case "ctrl+d":
		e.buf.HalfPageDown()
	case "ctrl+u":
		e.buf.HalfPageUp()
	case "ctrl+f":
		e.buf.PageDown()
	case "ctrl+b":
		e.buf.PageUp()
	}
	return mutated, err
}
