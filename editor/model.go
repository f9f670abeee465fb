package editor

import (
	"errors"
	"io/fs"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/patina/internal/logger"
)

// Model is a Bubble Tea component that edits a Document.
type Model struct {
	cfg  Config
	doc  *Document
	keys KeyMap
	help help.Model

	width  int
	height int

	status statusMessage

	lastVersion uint64
	lastMode    Mode
}

func New(cfg Config) Model {
	doc := cfg.Document
	if doc == nil {
		doc = NewDocumentFromText(cfg.Text)
	}
	keys := DefaultKeyMap()
	if cfg.KeyMap != nil {
		keys = *cfg.KeyMap
	}

	h := help.New()
	h.ShowAll = true

	m := Model{
		cfg:  cfg,
		doc:  doc,
		keys: keys,
		help: h,
	}
	m.lastVersion = doc.Version()
	m.lastMode = doc.Mode()
	return m
}

func (m Model) Document() *Document { return m.doc }

func (m Model) KeyMap() KeyMap { return m.keys }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the terminal size. One row is reserved for the status line;
// the rest is the document viewport.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.doc.SetViewportHeight(height - 1)
	return m
}

// Load reads path into the document. Failures are shown in the status line;
// a missing file starts a new, named document.
func (m Model) Load(path string) Model {
	err := m.doc.Load(path)
	switch {
	case err == nil:
		logger.Info("loaded %s (%d lines)", path, m.doc.LineCount())
		m.status = statusMessage{}
	case errors.Is(err, fs.ErrNotExist):
		logger.Info("new file %s", path)
		m.status = infoStatus("[New File] %s", path)
	default:
		logger.Error("%v", err)
		m.status = errorStatus("%v", err)
	}
	m.lastVersion = m.doc.Version()
	return m
}

// StatusMessage returns the transient status line message and whether it
// reports an error.
func (m Model) StatusMessage() (text string, isErr bool) {
	return m.status.text, m.status.err
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		m = m.updateKey(msg)
	case tea.MouseMsg:
		m = m.updateMouse(msg)
	default:
		return m, nil
	}

	m.emitChange()
	if m.doc.ShouldQuit() {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) emitChange() {
	ver, mode := m.doc.Version(), m.doc.Mode()
	if ver == m.lastVersion && mode == m.lastMode {
		return
	}
	m.lastVersion = ver
	m.lastMode = mode
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.doc))
	}
}
