package editor

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/patina/internal/logger"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	m.status = statusMessage{}

	// Pasted text is literal input and never triggers shortcuts.
	if msg.Paste {
		if m.doc.Mode() == ModeInsertion && len(msg.Runes) > 0 {
			m.doc.InsertText(string(msg.Runes))
		}
		return m
	}

	km := m.keys
	switch {
	case key.Matches(msg, km.Save):
		return m.save()
	case key.Matches(msg, km.ForceQuit):
		m.doc.Quit()
		return m
	}

	switch m.doc.Mode() {
	case ModeNavigation:
		return m.updateNavigation(msg)
	case ModeInsertion:
		return m.updateInsertion(msg)
	case ModeHelp:
		return m.updateHelp(msg)
	default:
		return m
	}
}

func (m Model) updateNavigation(msg tea.KeyMsg) Model {
	km := m.keys
	switch {
	case key.Matches(msg, km.Quit):
		m.doc.Quit()
	case key.Matches(msg, km.Insert):
		m.switchMode(ModeInsertion)
	case key.Matches(msg, km.Help):
		m.switchMode(ModeHelp)

	case key.Matches(msg, km.Left):
		m.doc.MoveCursorLeft()
	case key.Matches(msg, km.Right):
		m.doc.MoveCursorRight()
	case key.Matches(msg, km.Up):
		m.doc.MoveCursorUp()
	case key.Matches(msg, km.Down):
		m.doc.MoveCursorDown()
	case key.Matches(msg, km.Home):
		m.doc.MoveCursorHome()
	case key.Matches(msg, km.End):
		m.doc.MoveCursorEnd()

	case key.Matches(msg, km.YankLine):
		return m.yankLine()
	}
	return m
}

func (m Model) updateInsertion(msg tea.KeyMsg) Model {
	km := m.keys
	switch {
	case key.Matches(msg, km.Normal):
		m.switchMode(ModeNavigation)
	case key.Matches(msg, km.Enter):
		m.doc.EnterKey()
	case key.Matches(msg, km.Backspace):
		m.doc.DeleteChar()
	case key.Matches(msg, km.Paste):
		return m.paste()

	case key.Matches(msg, km.ArrowLeft):
		m.doc.MoveCursorLeft()
	case key.Matches(msg, km.ArrowRight):
		m.doc.MoveCursorRight()
	case key.Matches(msg, km.ArrowUp):
		m.doc.MoveCursorUp()
	case key.Matches(msg, km.ArrowDown):
		m.doc.MoveCursorDown()
	case key.Matches(msg, km.Home):
		m.doc.MoveCursorHome()
	case key.Matches(msg, km.End):
		m.doc.MoveCursorEnd()

	default:
		if msg.Alt {
			return m
		}
		switch msg.Type {
		case tea.KeySpace:
			m.doc.InsertChar(' ')
		case tea.KeyTab:
			m.doc.InsertChar('\t')
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.doc.InsertChar(r)
			}
		}
	}
	return m
}

func (m Model) updateHelp(msg tea.KeyMsg) Model {
	if key.Matches(msg, m.keys.CloseHelp) {
		m.switchMode(ModeNavigation)
	}
	return m
}

func (m Model) switchMode(next Mode) {
	if !m.doc.Mode().CanTransition(next) {
		return
	}
	logger.Debug("mode %s -> %s", m.doc.Mode(), next)
	m.doc.SwitchMode(next)
}

func (m Model) save() Model {
	n, err := m.doc.Save()
	switch {
	case errors.Is(err, ErrNoFilename):
		m.status = errorStatus("no file name; start patina with a path to save")
	case err != nil:
		logger.Error("%v", err)
		m.status = errorStatus("%v", err)
	default:
		logger.Info("saved %s (%d bytes)", m.doc.Filename(), n)
		m.status = infoStatus("%q %dL, %dB written", m.doc.Filename(), m.doc.LineCount(), n)
	}
	return m
}

func (m Model) paste() Model {
	if m.cfg.Clipboard == nil {
		return m
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		logger.Error("paste: %v", err)
		m.status = errorStatus("paste failed: %v", err)
		return m
	}
	m.doc.InsertText(s)
	return m
}

func (m Model) yankLine() Model {
	if m.cfg.Clipboard == nil {
		return m
	}
	row := m.doc.Cursor().Row
	if err := m.cfg.Clipboard.WriteText(m.doc.Line(row)); err != nil {
		logger.Error("yank: %v", err)
		m.status = errorStatus("copy failed: %v", err)
		return m
	}
	m.status = infoStatus("copied line %d", row+1)
	return m
}
