package editor

import "fmt"

// minGutterDigits keeps short files from jittering as lines are added.
const minGutterDigits = 3

// LineNumberWidth returns the line-number gutter width for lineCount lines,
// including the separating space.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	n := len(fmt.Sprintf("%d", lineCount))
	if n < minGutterDigits {
		n = minGutterDigits
	}
	return n
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return LineNumberWidth(m.doc.LineCount())
}

func (m Model) renderGutter(row int) string {
	if !m.cfg.ShowLineNums {
		return ""
	}
	st := m.cfg.Style
	numStyle := st.LineNum
	if row == m.doc.Cursor().Row {
		numStyle = st.LineNumActive
	}
	num := fmt.Sprintf("%*d", gutterDigits(m.doc.LineCount()), row+1)
	return numStyle.Render(num) + st.Gutter.Render(" ")
}
