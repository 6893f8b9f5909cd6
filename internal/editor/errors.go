package editor

import "errors"

// None of these are fatal: the caller surfaces them as a status message and
// the in-memory state stays at its last known good value.
var (
	// ErrClipboardAccess wraps failures to reach the operating system
	// clipboard. A cut that already removed text from the buffer is not
	// rolled back when the OS write fails afterwards.
	ErrClipboardAccess = errors.New("error while communicating with the operating system clipboard")

	// ErrPasteRejected means the paste source was readable but its content
	// could not be inserted into the buffer.
	ErrPasteRejected = errors.New("text can't be pasted into the editor")

	// ErrEntryNotFound is reported when a load request names an entry the
	// store does not have. The editor treats it as "no entry".
	ErrEntryNotFound = errors.New("entry not found")
)
