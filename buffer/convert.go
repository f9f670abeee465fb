package buffer

import (
	"strings"
	"unicode/utf8"
)

// RuneCount returns the number of characters in line. Invalid UTF-8 bytes
// count as one character each, matching how range iterates a string.
func RuneCount(line string) int {
	return utf8.RuneCountInString(line)
}

// ByteOffset translates the rune column col of line into a byte offset.
//
// The offset is found by scanning rune boundaries from the start of line.
// Columns at or past the end map to len(line); negative columns map to 0.
func ByteOffset(line string, col int) int {
	if col <= 0 {
		return 0
	}
	n := 0
	for i := range line {
		if n == col {
			return i
		}
		n++
	}
	return len(line)
}

// ColFromByteOffset translates a byte offset of line back into a rune column.
//
// ok is false when off is out of range or points inside an encoded rune.
func ColFromByteOffset(line string, off int) (col int, ok bool) {
	if off < 0 || off > len(line) {
		return 0, false
	}
	if off == len(line) {
		return RuneCount(line), true
	}
	for i := range line {
		if i == off {
			return col, true
		}
		if i > off {
			return 0, false
		}
		col++
	}
	return 0, false
}

// SplitLines splits file content into lines.
//
// Lines end at '\n'; a '\r' before it is dropped. A terminator at the very end
// does not produce a trailing empty line. Empty content yields one empty line.
func SplitLines(text string) []string {
	if text == "" {
		return []string{""}
	}
	text = strings.TrimSuffix(text, "\n")
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}

// JoinLines serializes lines for writing to disk: every line, including the
// last, is terminated by '\n'. A document holding one empty line serializes
// to empty content.
func JoinLines(lines []string) string {
	if len(lines) == 0 || (len(lines) == 1 && lines[0] == "") {
		return ""
	}
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
