package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Save and ForceQuit are checked before any mode-specific binding.
type KeyMap struct {
	Save, ForceQuit key.Binding

	// Navigation mode.
	Quit, Insert, Help    key.Binding
	Left, Right, Up, Down key.Binding
	YankLine              key.Binding

	// Navigation and Insertion modes.
	Home, End key.Binding

	// Insertion mode.
	Normal                                    key.Binding
	Enter, Backspace, Paste                   key.Binding
	ArrowLeft, ArrowRight, ArrowUp, ArrowDown key.Binding

	// Help mode.
	CloseHelp key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit without saving")),

		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Insert: key.NewBinding(key.WithKeys("i", "I", "e"), key.WithHelp("i/e", "insert mode")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),

		Left:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "left")),
		Right: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "right")),
		Up:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),

		YankLine: key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "copy line")),

		Home: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),

		Normal:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal mode")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "split line")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		ArrowLeft:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		ArrowRight: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		ArrowUp:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		ArrowDown:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		CloseHelp: key.NewBinding(key.WithKeys("esc", "?", "q"), key.WithHelp("esc/?/q", "close help")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Insert, km.Help, km.Save, km.Quit}
}

// FullHelp implements help.KeyMap. Columns are grouped by mode.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Down, km.Up, km.Right, km.Home, km.End},
		{km.Insert, km.Help, km.YankLine, km.Quit},
		{km.Normal, km.Enter, km.Backspace, km.Paste},
		{km.Save, km.ForceQuit, km.CloseHelp},
	}
}
