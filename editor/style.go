package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering. The zero value renders plain text.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text         lipgloss.Style
	Cursor       lipgloss.Style
	CursorInsert lipgloss.Style

	Status        lipgloss.Style
	StatusMessage lipgloss.Style
	StatusError   lipgloss.Style

	ModeNavigation lipgloss.Style
	ModeInsertion  lipgloss.Style
	ModeHelp       lipgloss.Style

	HelpBox   lipgloss.Style
	HelpTitle lipgloss.Style

	Logo lipgloss.Style
	Menu lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	mode := lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Bold(true)
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),

		Text:         lipgloss.NewStyle(),
		Cursor:       lipgloss.NewStyle().Reverse(true),
		CursorInsert: lipgloss.NewStyle().Underline(true),

		Status:        lipgloss.NewStyle().Background(lipgloss.Color("234")).Foreground(lipgloss.Color("252")),
		StatusMessage: lipgloss.NewStyle().Background(lipgloss.Color("234")).Foreground(lipgloss.Color("246")),
		StatusError:   lipgloss.NewStyle().Background(lipgloss.Color("234")).Foreground(lipgloss.Color("196")),

		ModeNavigation: mode.Background(lipgloss.Color("4")),
		ModeInsertion:  mode.Background(lipgloss.Color("2")),
		ModeHelp:       mode.Background(lipgloss.Color("3")),

		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2),
		HelpTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),

		Logo: lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		Menu: lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
	}
}
