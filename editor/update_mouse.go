package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

// updateMouse moves the cursor on left clicks. The wheel moves the cursor a
// row at a time so scrolling still goes through the follow-cursor policy.
func (m Model) updateMouse(msg tea.MouseMsg) Model {
	if msg.Action != tea.MouseActionPress {
		return m
	}

	switch msg.Button { //nolint:exhaustive
	case tea.MouseButtonLeft:
		if p, ok := m.ScreenToDoc(msg.X, msg.Y); ok {
			m.doc.MoveCursorTo(p)
		}
	case tea.MouseButtonWheelUp:
		if m.doc.Mode() != ModeHelp {
			m.doc.MoveCursorUp()
		}
	case tea.MouseButtonWheelDown:
		if m.doc.Mode() != ModeHelp {
			m.doc.MoveCursorDown()
		}
	}
	return m
}
