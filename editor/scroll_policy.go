package editor

// FollowCursor returns the scroll offset that keeps row visible in a viewport
// of height rows whose top row is currently offset.
//
// The adjustment is minimal: the offset only changes when row falls outside
// [offset, offset+height), and then just far enough to put row on the top or
// bottom edge. With height <= 0 nothing is visible yet, so only the upward
// rule applies.
//
// The result depends on its inputs alone; callers recompute it after every
// vertical move or resize rather than tracking deltas.
func FollowCursor(row, offset, height int) int {
	if row < 0 {
		row = 0
	}
	if offset < 0 {
		offset = 0
	}
	if row < offset {
		return row
	}
	if height <= 0 {
		return offset
	}
	if row >= offset+height {
		return row - height + 1
	}
	return offset
}
