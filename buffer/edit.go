package buffer

import (
	"strings"
	"unicode/utf8"
)

// InsertRune inserts r before the cursor and advances the cursor by one.
//
// '\n' splits the line instead. Invalid runes are ignored. It reports whether
// the document changed.
func (b *Buffer) InsertRune(r rune) bool {
	if r == '\n' {
		return b.SplitLine()
	}
	if !utf8.ValidRune(r) {
		return false
	}

	row, col := b.cursor.Row, b.cursor.Col
	if row < 0 || row >= len(b.lines) {
		return false
	}

	line := b.lines[row]
	off := ByteOffset(line, col)
	b.lines[row] = line[:off] + string(r) + line[off:]
	b.cursor = Pos{Row: row, Col: RuneCount(line[:off]) + 1}
	b.version++
	return true
}

// InsertText inserts s at the cursor one rune at a time. Line breaks ("\n",
// "\r\n" or a lone "\r") split the line.
func (b *Buffer) InsertText(s string) bool {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	changed := false
	for _, r := range s {
		if b.InsertRune(r) {
			changed = true
		}
	}
	return changed
}

// SplitLine breaks the current line at the cursor. The text after the cursor
// moves to a new line below and the cursor moves to its start.
func (b *Buffer) SplitLine() bool {
	row, col := b.cursor.Row, b.cursor.Col
	if row < 0 || row >= len(b.lines) {
		return false
	}

	line := b.lines[row]
	off := ByteOffset(line, col)

	out := make([]string, 0, len(b.lines)+1)
	out = append(out, b.lines[:row]...)
	out = append(out, line[:off], line[off:])
	out = append(out, b.lines[row+1:]...)

	b.lines = out
	b.cursor = Pos{Row: row + 1, Col: 0}
	b.version++
	return true
}

// DeleteBackward applies backspace semantics.
//
// Inside a line the whole character before the cursor is removed. At the
// start of a line the line is joined onto the previous one and the cursor
// lands at the join point. At (0,0) nothing happens.
func (b *Buffer) DeleteBackward() bool {
	row, col := b.cursor.Row, b.cursor.Col
	if row < 0 || row >= len(b.lines) {
		return false
	}

	if col > 0 {
		line := b.lines[row]
		start := ByteOffset(line, col-1)
		end := ByteOffset(line, col)
		if start == end {
			return false
		}
		b.lines[row] = line[:start] + line[end:]
		b.cursor = Pos{Row: row, Col: RuneCount(line[:start])}
		b.version++
		return true
	}

	if row == 0 {
		return false
	}

	prevRow := row - 1
	prevLen := RuneCount(b.lines[prevRow])
	b.lines[prevRow] += b.lines[row]
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	b.cursor = Pos{Row: prevRow, Col: prevLen}
	b.version++
	return true
}
