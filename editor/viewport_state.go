package editor

import (
	"github.com/iw2rmb/patina/buffer"
	"github.com/iw2rmb/patina/internal/cells"
)

// ViewportState is a stable host-facing snapshot of the editor camera.
type ViewportState struct {
	// TopRow is the document row rendered at viewport screen row 0.
	TopRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// GutterWidth is the number of cells left of the text area.
	GutterWidth int
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	return ViewportState{
		TopRow:      m.doc.ScrollOffset(),
		VisibleRows: m.doc.ViewportHeight(),
		GutterWidth: m.gutterWidth(),
	}
}

// DocToScreen maps a document position to screen coordinates relative to the
// text area: x is the cell column after the gutter and y is the row within
// the viewport.
//
// ok is false when the row is outside the visible slice or when the help
// overlay or start screen hides the text.
func (m Model) DocToScreen(pos buffer.Pos) (x int, y int, ok bool) {
	if m.doc.Mode() == ModeHelp || m.showDashboard() {
		return 0, 0, false
	}
	top := m.doc.ScrollOffset()
	if pos.Row < top || pos.Row >= top+m.doc.ViewportHeight() || pos.Row >= m.doc.LineCount() {
		return 0, 0, false
	}
	return cells.Offset(m.doc.Line(pos.Row), pos.Col), pos.Row - top, true
}

// CursorScreenPos returns DocToScreen for the document cursor.
func (m Model) CursorScreenPos() (x int, y int, ok bool) {
	return m.DocToScreen(m.doc.Cursor())
}
