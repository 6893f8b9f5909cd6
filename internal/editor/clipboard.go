package editor

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// ClipboardOp is one of the three operations the bridge mediates.
type ClipboardOp int

const (
	ClipCopy ClipboardOp = iota
	ClipCut
	ClipPaste
)

// Clipboard is the OS clipboard capability consumed by the bridge.
type Clipboard interface {
	GetText() (string, error)
	SetText(text string) error
}

type systemClipboard struct{}

func (systemClipboard) GetText() (string, error) { return clipboard.ReadAll() }

func (systemClipboard) SetText(text string) error { return clipboard.WriteAll(text) }

// SystemClipboard returns the real OS clipboard.
func SystemClipboard() Clipboard { return systemClipboard{} }

// ClipboardBridge mediates between in-buffer yank/selection state and the OS
// clipboard. With syncOS off everything goes through the buffer's local yank
// register and no operation can fail; with it on, Copy and Cut additionally
// push the text to the OS clipboard and Paste reads from it.
type ClipboardBridge struct {
	clip   Clipboard
	syncOS bool
}

func NewClipboardBridge(clip Clipboard, syncOS bool) *ClipboardBridge {
	return &ClipboardBridge{clip: clip, syncOS: syncOS}
}

// Execute runs op against buf. It reports whether the buffer content was
// mutated. A cut mutates the buffer before the OS write is attempted and is
// not rolled back when that write fails.
func (cb *ClipboardBridge) Execute(op ClipboardOp, buf *Buffer) (mutated bool, err error) {
	switch op {
	case ClipCopy:
		text := buf.YankRegister()
		if buf.Selecting() {
			text = buf.CopySelection()
		}
		if cb.syncOS {
			if werr := cb.clip.SetText(text); werr != nil {
				return false, fmt.Errorf("%w: %v", ErrClipboardAccess, werr)
			}
		}
		return false, nil

	case ClipCut:
		text := buf.YankRegister()
		if buf.Selecting() {
			text = buf.CutSelection()
			mutated = true
		}
		if cb.syncOS {
			if werr := cb.clip.SetText(text); werr != nil {
				return mutated, fmt.Errorf("%w: %v", ErrClipboardAccess, werr)
			}
		}
		return mutated, nil

	case ClipPaste:
		text := buf.YankRegister()
		if cb.syncOS {
			text, err = cb.clip.GetText()
			if err != nil {
				return false, fmt.Errorf("%w: %v", ErrClipboardAccess, err)
			}
		}
		if text == "" {
			// empty paste source is a no-op, not an error
			return false, nil
		}
		if !buf.InsertText(text) {
			return false, ErrPasteRejected
		}
		return true, nil
	}
	return false, nil
}
