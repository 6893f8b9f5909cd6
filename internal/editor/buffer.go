package editor

import (
	"strings"
	"unicode"
)

// defaultPageSize is used for page motions until the UI reports a real height.
const defaultPageSize = 20

type position struct {
	row, col int
}

type snapshot struct {
	lines []string
	row   int
	col   int
}

// Buffer owns the text of the current entry as an ordered slice of lines,
// plus cursor, selection anchor, yank register and undo/redo history.
// It is always at least one line long; an empty buffer is one empty line.
// Columns are rune offsets; col == len(line) means "after the last character".
type Buffer struct {
	lines    []string
	row, col int
	anchor   *position
	yank     string
	pageSize int

	undo []snapshot
	redo []snapshot
}

func NewBuffer() *Buffer {
	return &Buffer{lines: []string{""}, pageSize: defaultPageSize}
}

// NewBufferFromContent splits content on newlines and places the cursor at
// the end of the last line.
func NewBufferFromContent(content string) *Buffer {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	b := &Buffer{lines: lines, pageSize: defaultPageSize}
	b.row = len(lines) - 1
	b.col = len([]rune(lines[b.row]))
	return b
}

func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Content returns the newline-joined buffer text.
func (b *Buffer) Content() string {
	return strings.Join(b.lines, "\n")
}

func (b *Buffer) Cursor() (row, col int) { return b.row, b.col }

func (b *Buffer) LineCount() int { return len(b.lines) }

// SetPageSize sets the number of rows a full-page motion covers.
func (b *Buffer) SetPageSize(n int) {
	if n > 0 {
		b.pageSize = n
	}
}

func (b *Buffer) line(row int) []rune { return []rune(b.lines[row]) }

func (b *Buffer) clampCol() {
	if n := len(b.line(b.row)); b.col > n {
		b.col = n
	}
}

/* ---------- movement ---------- */

func (b *Buffer) MoveLeft() {
	if b.col > 0 {
		b.col--
	} else if b.row > 0 {
		b.row--
		b.col = len(b.line(b.row))
	}
}

func (b *Buffer) MoveRight() {
	if b.col < len(b.line(b.row)) {
		b.col++
	} else if b.row < len(b.lines)-1 {
		b.row++
		b.col = 0
	}
}

func (b *Buffer) MoveUp() {
	if b.row > 0 {
		b.row--
		b.clampCol()
	}
}

func (b *Buffer) MoveDown() {
	if b.row < len(b.lines)-1 {
		b.row++
		b.clampCol()
	}
}

func (b *Buffer) LineHead() { b.col = 0 }

func (b *Buffer) LineEnd() { b.col = len(b.line(b.row)) }

// MoveBottom places the cursor on the last line, keeping the column clamped.
func (b *Buffer) MoveBottom() {
	b.row = len(b.lines) - 1
	b.clampCol()
}

func (b *Buffer) MoveTop() {
	b.row = 0
	b.clampCol()
}

// PageDown moves the cursor down by a full page, HalfPageDown by half of one.
func (b *Buffer) PageDown() { b.moveRows(b.pageSize) }

func (b *Buffer) PageUp() { b.moveRows(-b.pageSize) }

func (b *Buffer) HalfPageDown() { b.moveRows(b.pageSize / 2) }

func (b *Buffer) HalfPageUp() { b.moveRows(-b.pageSize / 2) }

func (b *Buffer) moveRows(delta int) {
	b.row += delta
	if b.row < 0 {
		b.row = 0
	}
	if b.row > len(b.lines)-1 {
		b.row = len(b.lines) - 1
	}
	b.clampCol()
}

func isWordRune(r rune) bool {
	return !unicode.IsSpace(r) && !unicode.IsPunct(r) || r == '_'
}

// WordForward moves to the start of the next word, crossing line boundaries.
func (b *Buffer) WordForward() {
	line := b.line(b.row)
	col := b.col
	// leave the current word
	for col < len(line) && isWordRune(line[col]) {
		col++
	}
	// skip separators to the next word start
	for {
		for col < len(line) && !isWordRune(line[col]) {
			col++
		}
		if col < len(line) || b.row == len(b.lines)-1 {
			break
		}
		b.row++
		line = b.line(b.row)
		col = 0
		if len(line) == 0 {
			break
		}
	}
	b.col = col
}

// WordBack moves to the start of the previous word, crossing line boundaries.
func (b *Buffer) WordBack() {
	line := b.line(b.row)
	col := b.col
	for {
		for col > 0 && !isWordRune(line[col-1]) {
			col--
		}
		if col > 0 || b.row == 0 {
			break
		}
		b.row--
		line = b.line(b.row)
		col = len(line)
	}
	for col > 0 && isWordRune(line[col-1]) {
		col--
	}
	b.col = col
}

/* ---------- selection ---------- */

func (b *Buffer) StartSelection() {
	b.anchor = &position{row: b.row, col: b.col}
}

func (b *Buffer) CancelSelection() { b.anchor = nil }

func (b *Buffer) Selecting() bool { return b.anchor != nil }

// clampPos pulls a position back inside current buffer bounds. The anchor
// needs this: mutations while a selection is open can shorten or remove the
// line it sits on.
func (b *Buffer) clampPos(p position) position {
	if p.row > len(b.lines)-1 {
		p.row = len(b.lines) - 1
	}
	if n := len(b.line(p.row)); p.col > n {
		p.col = n
	}
	return p
}

// selectionSpan returns the ordered selection endpoints, both clamped to
// buffer bounds. The end column is exclusive: it covers the character under
// the later endpoint when there is one, clamped at end of line otherwise.
func (b *Buffer) selectionSpan() (start, end position) {
	start = b.clampPos(position{row: b.anchor.row, col: b.anchor.col})
	end = b.clampPos(position{row: b.row, col: b.col})
	if end.row < start.row || (end.row == start.row && end.col < start.col) {
		start, end = end, start
	}
	if n := len(b.line(end.row)); end.col < n {
		end.col++
	}
	return start, end
}

// SelectedText returns the text in the active selection, or "" without one.
func (b *Buffer) SelectedText() string {
	if b.anchor == nil {
		return ""
	}
	start, end := b.selectionSpan()
	if start.row == end.row {
		return string(b.line(start.row)[start.col:end.col])
	}
	var sb strings.Builder
	sb.WriteString(string(b.line(start.row)[start.col:]))
	for r := start.row + 1; r < end.row; r++ {
		sb.WriteByte('\n')
		sb.WriteString(b.lines[r])
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.line(end.row)[:end.col]))
	return sb.String()
}

// CopySelection stores the selected text in the yank register and clears the
// selection, leaving the content untouched.
func (b *Buffer) CopySelection() string {
	text := b.SelectedText()
	if b.anchor == nil {
		return ""
	}
	b.yank = text
	b.anchor = nil
	return text
}

// CutSelection removes the selected text, stores it in the yank register and
// places the cursor at the start of the removed span.
func (b *Buffer) CutSelection() string {
	if b.anchor == nil {
		return ""
	}
	text := b.SelectedText()
	b.pushUndo()
	start, end := b.selectionSpan()
	head := string(b.line(start.row)[:start.col])
	tail := string(b.line(end.row)[end.col:])
	b.lines = append(b.lines[:start.row], append([]string{head + tail}, b.lines[end.row+1:]...)...)
	b.row = start.row
	b.col = start.col
	b.anchor = nil
	b.yank = text
	return text
}

/* ---------- editing ---------- */

func (b *Buffer) InsertRune(r rune) {
	b.pushUndo()
	line := b.line(b.row)
	b.lines[b.row] = string(line[:b.col]) + string(r) + string(line[b.col:])
	b.col++
}

// InsertNewline splits the current line at the cursor.
func (b *Buffer) InsertNewline() {
	b.pushUndo()
	line := b.line(b.row)
	head, tail := string(line[:b.col]), string(line[b.col:])
	b.lines[b.row] = head
	rest := append([]string{tail}, b.lines[b.row+1:]...)
	b.lines = append(b.lines[:b.row+1], rest...)
	b.row++
	b.col = 0
}

// InsertText inserts possibly multi-line text at the cursor and moves the
// cursor past it. It reports false, leaving the buffer untouched, when the
// text cannot be represented as buffer content.
func (b *Buffer) InsertText(text string) bool {
	if strings.ContainsRune(text, 0) {
		return false
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	b.pushUndo()
	parts := strings.Split(text, "\n")
	line := b.line(b.row)
	head, tail := string(line[:b.col]), string(line[b.col:])
	if len(parts) == 1 {
		b.lines[b.row] = head + parts[0] + tail
		b.col += len([]rune(parts[0]))
		return true
	}
	b.lines[b.row] = head + parts[0]
	last := parts[len(parts)-1]
	mid := make([]string, 0, len(parts)-1)
	mid = append(mid, parts[1:len(parts)-1]...)
	mid = append(mid, last+tail)
	rest := append(mid, b.lines[b.row+1:]...)
	b.lines = append(b.lines[:b.row+1], rest...)
	b.row += len(parts) - 1
	b.col = len([]rune(last))
	return true
}

// DeleteToLineEnd removes from the cursor to the end of the line and stores
// the removed text in the yank register.
func (b *Buffer) DeleteToLineEnd() string {
	line := b.line(b.row)
	if b.col >= len(line) {
		return ""
	}
	b.pushUndo()
	cut := string(line[b.col:])
	b.lines[b.row] = string(line[:b.col])
	b.yank = cut
	return cut
}

// DeleteChar removes the character under the cursor and stores it in the
// yank register. At end of line it is a no-op.
func (b *Buffer) DeleteChar() string {
	line := b.line(b.row)
	if b.col >= len(line) {
		return ""
	}
	b.pushUndo()
	cut := string(line[b.col])
	b.lines[b.row] = string(line[:b.col]) + string(line[b.col+1:])
	b.yank = cut
	return cut
}

// DeleteForward removes the character under the cursor without touching the
// yank register. Used by Insert-mode delete.
func (b *Buffer) DeleteForward() bool {
	line := b.line(b.row)
	if b.col >= len(line) {
		if b.row == len(b.lines)-1 {
			return false
		}
		// join with the next line
		b.pushUndo()
		b.lines[b.row] = string(line) + b.lines[b.row+1]
		b.lines = append(b.lines[:b.row+1], b.lines[b.row+2:]...)
		return true
	}
	b.pushUndo()
	b.lines[b.row] = string(line[:b.col]) + string(line[b.col+1:])
	return true
}

// AppendLine adds a line at the end of the buffer and moves the cursor to
// its end.
func (b *Buffer) AppendLine(line string) {
	b.pushUndo()
	b.lines = append(b.lines, line)
	b.row = len(b.lines) - 1
	b.col = len([]rune(line))
}

// Backspace removes the character before the cursor, joining with the
// previous line at column zero.
func (b *Buffer) Backspace() bool {
	if b.col > 0 {
		b.pushUndo()
		line := b.line(b.row)
		b.lines[b.row] = string(line[:b.col-1]) + string(line[b.col:])
		b.col--
		return true
	}
	if b.row == 0 {
		return false
	}
	b.pushUndo()
	prev := b.line(b.row - 1)
	b.col = len(prev)
	b.lines[b.row-1] = string(prev) + b.lines[b.row]
	b.lines = append(b.lines[:b.row], b.lines[b.row+1:]...)
	b.row--
	return true
}

/* ---------- yank register ---------- */

func (b *Buffer) YankRegister() string { return b.yank }

func (b *Buffer) SetYankRegister(text string) { b.yank = text }

/* ---------- history ---------- */

func (b *Buffer) capture() snapshot {
	lines := make([]string, len(b.lines))
	copy(lines, b.lines)
	return snapshot{lines: lines, row: b.row, col: b.col}
}

func (b *Buffer) restore(s snapshot) {
	b.lines = s.lines
	b.row = s.row
	b.col = s.col
	b.anchor = nil
}

// pushUndo records the current state before a mutation. Any new mutation
// invalidates the redo stack.
func (b *Buffer) pushUndo() {
	b.undo = append(b.undo, b.capture())
	b.redo = nil
}

// Undo restores the state before the last mutation. It reports whether
// anything changed.
func (b *Buffer) Undo() bool {
	if len(b.undo) == 0 {
		return false
	}
	top := b.undo[len(b.undo)-1]
	b.undo = b.undo[:len(b.undo)-1]
	b.redo = append(b.redo, b.capture())
	b.restore(top)
	return true
}

// Redo re-applies the last undone mutation.
func (b *Buffer) Redo() bool {
	if len(b.redo) == 0 {
		return false
	}
	top := b.redo[len(b.redo)-1]
	b.redo = b.redo[:len(b.redo)-1]
	b.undo = append(b.undo, b.capture())
	b.restore(top)
	return true
}
