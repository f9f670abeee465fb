package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

const logo = `┏━┓┏━┓╺┳╸╻┏┓╻┏━┓
┣━┛┣━┫ ┃ ┃┃┗┫┣━┫
╹  ╹ ╹ ╹ ╹╹ ╹╹ ╹`

// showDashboard reports whether the start screen replaces the empty, unnamed
// document.
func (m Model) showDashboard() bool {
	return m.doc.Mode() == ModeNavigation && m.doc.IsPristine()
}

func (m Model) renderDashboard(h int) string {
	st := m.cfg.Style
	items := []struct {
		b    key.Binding
		desc string
	}{
		{m.keys.Insert, "new file / edit"},
		{m.keys.Help, "help / keymap"},
		{m.keys.Quit, "quit"},
	}

	menu := make([]string, 0, len(items))
	for _, it := range items {
		menu = append(menu, fmt.Sprintf("[%s]  %s", it.b.Help().Key, it.desc))
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		st.Logo.Render(logo),
		"",
		st.Menu.Render(strings.Join(menu, "\n")),
	)
	return fitBlock(lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, content), m.width, h)
}
