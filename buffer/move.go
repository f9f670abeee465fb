package buffer

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start
	DirEnd  // line end
)

func (d MoveDir) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirHome:
		return "home"
	case DirEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Vertical reports whether moving in d can change the row.
func (d MoveDir) Vertical() bool {
	return d == DirUp || d == DirDown
}

// Move moves the cursor one step in dir. Horizontal moves never leave the
// current line. Vertical moves keep the column when the target line is long
// enough and snap it to the line end otherwise. It reports whether the cursor
// moved.
func (b *Buffer) Move(dir MoveDir) bool {
	next := b.clampPos(b.moveCursor(b.cursor, dir))
	if next == b.cursor {
		return false
	}
	b.cursor = next
	b.version++
	return true
}

func (b *Buffer) moveCursor(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.Col
	lastRow := len(b.lines) - 1

	switch dir {
	case DirLeft:
		if col > 0 {
			return Pos{Row: row, Col: col - 1}
		}
		return p
	case DirRight:
		if col < b.lineLen(row) {
			return Pos{Row: row, Col: col + 1}
		}
		return p
	case DirUp:
		if row <= 0 {
			return p
		}
		nr := row - 1
		return Pos{Row: nr, Col: minInt(col, b.lineLen(nr))}
	case DirDown:
		if row >= lastRow {
			return p
		}
		nr := row + 1
		return Pos{Row: nr, Col: minInt(col, b.lineLen(nr))}
	case DirHome:
		return Pos{Row: row, Col: 0}
	case DirEnd:
		return Pos{Row: row, Col: b.lineLen(row)}
	default:
		return p
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
