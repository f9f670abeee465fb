package editor

import (
	"github.com/charmbracelet/lipgloss"
)

const helpTitle = "patina help"

// renderHelp draws the key reference centered in the viewport area.
func (m Model) renderHelp(h int) string {
	st := m.cfg.Style
	content := lipgloss.JoinVertical(lipgloss.Left,
		st.HelpTitle.Render(helpTitle),
		"",
		m.help.View(m.keys),
		"",
		st.Menu.Render("press "+m.keys.CloseHelp.Help().Key+" to close"),
	)
	box := st.HelpBox.Render(content)
	return fitBlock(lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, box), m.width, h)
}
