package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/patina"
	"github.com/iw2rmb/patina/editor"
	"github.com/iw2rmb/patina/internal/clipboard"
	"github.com/iw2rmb/patina/internal/logger"
)

const defaultLogFile = "patina.log"

type model struct {
	editor editor.Model
}

func newModel(path string) model {
	cfg := editor.Config{
		ShowLineNums: true,
		Style:        editor.DefaultStyle(),
		OnChange: func(ev editor.ChangeEvent) {
			logger.Debug("change v%d %s cursor=%d:%d scroll=%d", ev.Version, ev.Mode, ev.Cursor.Row, ev.Cursor.Col, ev.ScrollOffset)
		},
	}
	if clipboard.Available() {
		cfg.Clipboard = clipboard.System{}
	}

	m := model{editor: editor.New(cfg)}
	if path != "" {
		m.editor = m.editor.Load(path)
	}
	return m
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func main() {
	var (
		showVersion bool
		debug       bool
	)
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&debug, "debug", false, "Write a debug log to "+defaultLogFile)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: patina [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n  PATINA_LOG\tlog file path (enables logging)\n")
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("patina %s\n", patina.VersionTag())
		return
	}
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	logPath := os.Getenv("PATINA_LOG")
	if logPath == "" && debug {
		logPath = defaultLogFile
	}
	if logPath != "" {
		if err := logger.Init(logPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		defer func() { _ = logger.Close() }()
	}

	path := flag.Arg(0)
	logger.Info("starting patina %s file=%q", patina.Version(), path)

	p := tea.NewProgram(newModel(path), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program: %v", err)
		_ = logger.Close()
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
