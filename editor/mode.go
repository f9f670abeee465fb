package editor

// Mode selects how key presses are interpreted.
type Mode int

const (
	// ModeNavigation moves the cursor and switches modes. It is the start mode.
	ModeNavigation Mode = iota
	// ModeInsertion edits text.
	ModeInsertion
	// ModeHelp shows the key reference. The document cannot be edited.
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeNavigation:
		return "NORMAL"
	case ModeInsertion:
		return "INSERT"
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// CanTransition reports whether input dispatch may move from m to next.
// Insertion and Help are only reachable from Navigation.
func (m Mode) CanTransition(next Mode) bool {
	if m == next {
		return true
	}
	switch m {
	case ModeNavigation:
		return next == ModeInsertion || next == ModeHelp
	case ModeInsertion, ModeHelp:
		return next == ModeNavigation
	default:
		return false
	}
}
