package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/patina/buffer"
	"github.com/iw2rmb/patina/internal/cells"
)

// View renders the document viewport followed by the status line. It only
// reads the document.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	h := m.doc.ViewportHeight()
	if h <= 0 {
		return m.renderStatus()
	}

	var body string
	switch {
	case m.doc.Mode() == ModeHelp:
		body = m.renderHelp(h)
	case m.showDashboard():
		body = m.renderDashboard(h)
	default:
		body = m.renderContent(h)
	}
	return body + "\n" + m.renderStatus()
}

// renderContent draws rows [scroll, scroll+h). Rows past the end of the
// document are blank. Long lines are clipped at the right edge.
func (m Model) renderContent(h int) string {
	textWidth := m.width - m.gutterWidth()
	if textWidth < 0 {
		textWidth = 0
	}

	cursor := m.doc.Cursor()
	top := m.doc.ScrollOffset()
	out := make([]string, 0, h)
	for i := 0; i < h; i++ {
		row := top + i
		if row >= m.doc.LineCount() {
			out = append(out, "")
			continue
		}

		var sb strings.Builder
		sb.WriteString(m.renderGutter(row))
		sb.WriteString(ansi.Truncate(m.renderLine(row, cursor), textWidth, ""))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m Model) renderLine(row int, cursor buffer.Pos) string {
	st := m.cfg.Style
	line := m.doc.Line(row)
	if row != cursor.Row {
		return renderText(st.Text, line)
	}

	start := buffer.ByteOffset(line, cursor.Col)
	end := buffer.ByteOffset(line, cursor.Col+1)
	at := cells.ExpandTabs(line[start:end])
	if at == "" {
		at = " "
	}

	cursorStyle := st.Cursor
	if m.doc.Mode() == ModeInsertion {
		cursorStyle = st.CursorInsert
	}
	return renderText(st.Text, line[:start]) + cursorStyle.Render(at) + renderText(st.Text, line[end:])
}

func renderText(st lipgloss.Style, s string) string {
	if s == "" {
		return ""
	}
	return st.Render(cells.ExpandTabs(s))
}

// fitBlock clips s to width cells per line and exactly h lines.
func fitBlock(s string, width, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
