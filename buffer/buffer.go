package buffer

import "strings"

// Buffer is the document text plus its cursor.
//
// The line slice is never empty: an empty document is a single empty line.
type Buffer struct {
	lines   []string
	version uint64

	cursor Pos
}

// New returns a buffer holding text split on '\n'. Every separator starts a
// new line, so New(b.Text()) reproduces b exactly.
func New(text string) *Buffer {
	return FromLines(strings.Split(text, "\n"))
}

// FromLines returns a buffer holding a copy of lines.
func FromLines(lines []string) *Buffer {
	return &Buffer{lines: copyLines(lines)}
}

func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// Lines returns a copy of the document lines.
func (b *Buffer) Lines() []string {
	return copyLines(b.lines)
}

// Line returns the text of row, or "" when row is out of bounds.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// LineLen returns the rune length of row, or 0 when row is out of bounds.
func (b *Buffer) LineLen(row int) int {
	return b.lineLen(row)
}

// Version increments whenever text or cursor changes.
func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// Reset replaces the whole document and moves the cursor to the origin.
func (b *Buffer) Reset(lines []string) {
	b.lines = copyLines(lines)
	b.cursor = Pos{}
	b.version++
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return RuneCount(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func copyLines(lines []string) []string {
	if len(lines) == 0 {
		return []string{""}
	}
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}
