package editor

import "github.com/iw2rmb/patina/buffer"

// ChangeEvent describes the document after an update that edited text, moved
// the cursor or switched mode.
type ChangeEvent struct {
	Version      uint64
	Cursor       buffer.Pos
	Mode         Mode
	ScrollOffset int
	Dirty        bool
	LineCount    int
}

func buildChangeEvent(d *Document) ChangeEvent {
	return ChangeEvent{
		Version:      d.Version(),
		Cursor:       d.Cursor(),
		Mode:         d.Mode(),
		ScrollOffset: d.ScrollOffset(),
		Dirty:        d.Dirty(),
		LineCount:    d.LineCount(),
	}
}
