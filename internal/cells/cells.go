// Package cells measures text in terminal cells.
package cells

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// TabWidth is the number of cells a tab expands to.
const TabWidth = 4

var tabSpaces = strings.Repeat(" ", TabWidth)

// ExpandTabs replaces every tab in s with TabWidth spaces.
func ExpandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", tabSpaces)
}

// Width returns the number of cells s occupies once tabs are expanded.
// Wide characters (CJK, most emoji) count as two cells.
func Width(s string) int {
	if s == "" {
		return 0
	}
	return uniseg.StringWidth(ExpandTabs(s))
}

// Offset returns the cell offset of rune column col within line. Columns past
// the end of line map to the width of the whole line.
func Offset(line string, col int) int {
	if col <= 0 {
		return 0
	}
	n := 0
	for i := range line {
		if n == col {
			return Width(line[:i])
		}
		n++
	}
	return Width(line)
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// ColAt returns the rune column of line whose cells cover cell x. Cells past
// the end of line map to the rune count of line.
func ColAt(line string, x int) int {
	if x <= 0 {
		return 0
	}
	col := 0
	for i, r := range line {
		if x < Width(line[:i+utf8.RuneLen(r)]) {
			return col
		}
		col++
	}
	return col
}
