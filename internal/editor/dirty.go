package editor

// dirtyTracker reconciles "buffer differs from the loaded entry" into the
// unsaved flag. dirty means "touched since load or save"; unsaved means the
// content actually differs from what the store holds. unsaved is recomputed
// wholesale after every event rather than patched incrementally, so a
// type-then-undo round trip cleanly reads as saved again.
type dirtyTracker struct {
	dirty   bool
	unsaved bool
}

func (d *dirtyTracker) reset() {
	d.dirty = false
	d.unsaved = false
}

func (d *dirtyTracker) markDirty() { d.dirty = true }

// recompute derives unsaved from the current buffer content and the stored
// entry content. With no entry loaded there is nothing to be unsaved against.
func (d *dirtyTracker) recompute(content string, stored string, haveEntry bool) {
	if !d.dirty || !haveEntry {
		d.unsaved = false
		return
	}
	d.unsaved = content != stored
}
