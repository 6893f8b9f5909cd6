package editor

// Mode is the modal editing state gating which commands are active.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "EDIT"
	case ModeVisual:
		return "Visual"
	default:
		return "NORMAL"
	}
}

// Mode returns the current editing mode.
func (e *Editor) Mode() Mode { return e.mode }

// SetMode applies a mode transition with its selection side effects:
// entering Visual anchors a selection at the cursor, leaving Visual
// discards it.
func (e *Editor) SetMode(mode Mode) {
	switch {
	case e.mode == ModeNormal && mode == ModeVisual:
		e.buf.StartSelection()
	case e.mode == ModeVisual && mode != ModeVisual:
		e.buf.CancelSelection()
	}
	e.mode = mode
}

// reconcileMode forces Visual back to Normal when a command has cleared the
// selection out from under the mode. No other implicit transitions exist.
func (e *Editor) reconcileMode() {
	if e.mode == ModeVisual && !e.buf.Selecting() {
		e.SetMode(ModeNormal)
	}
}
