package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const noNamePlaceholder = "[No Name]"

type statusMessage struct {
	text string
	err  bool
}

func infoStatus(format string, args ...any) statusMessage {
	return statusMessage{text: fmt.Sprintf(format, args...)}
}

func errorStatus(format string, args ...any) statusMessage {
	return statusMessage{text: fmt.Sprintf(format, args...), err: true}
}

func (m Model) modeIndicator() string {
	st := m.cfg.Style
	label := " " + m.doc.Mode().String() + " "
	switch m.doc.Mode() {
	case ModeInsertion:
		return st.ModeInsertion.Render(label)
	case ModeHelp:
		return st.ModeHelp.Render(label)
	default:
		return st.ModeNavigation.Render(label)
	}
}

// renderStatus draws the single status row: mode, file name, 1-based cursor
// position and, right aligned, the last message.
func (m Model) renderStatus() string {
	st := m.cfg.Style

	name := m.doc.Filename()
	if name == "" {
		name = noNamePlaceholder
	}
	if m.doc.Dirty() {
		name += " [+]"
	}
	cur := m.doc.Cursor()
	left := m.modeIndicator() + st.Status.Render(fmt.Sprintf(" | %s | Ln %d, Col %d ", name, cur.Row+1, cur.Col+1))

	right := ""
	if m.status.text != "" {
		msgStyle := st.StatusMessage
		if m.status.err {
			msgStyle = st.StatusError
		}
		right = msgStyle.Render(m.status.text + " ")
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		return ansi.Truncate(left+right, m.width, "")
	}
	return left + st.Status.Render(strings.Repeat(" ", gap)) + right
}
