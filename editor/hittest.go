package editor

import (
	"github.com/iw2rmb/patina/buffer"
	"github.com/iw2rmb/patina/internal/cells"
)

// ScreenToDoc maps screen coordinates to a document position. It is the
// inverse of DocToScreen except that x includes the gutter.
//
// Mapping rules:
//   - gutter clicks map to column 0 of the row
//   - rows past the end of the document clamp to the last line
//   - cells past the end of a line clamp to the line end
//
// ok is false when y is outside the viewport or the text is hidden.
func (m Model) ScreenToDoc(x, y int) (pos buffer.Pos, ok bool) {
	if m.doc.Mode() == ModeHelp || m.showDashboard() {
		return buffer.Pos{}, false
	}
	if y < 0 || y >= m.doc.ViewportHeight() {
		return buffer.Pos{}, false
	}

	row := clampInt(m.doc.ScrollOffset()+y, 0, m.doc.LineCount()-1)
	x -= m.gutterWidth()
	if x < 0 {
		return buffer.Pos{Row: row}, true
	}
	return buffer.Pos{Row: row, Col: cells.ColAt(m.doc.Line(row), x)}, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
