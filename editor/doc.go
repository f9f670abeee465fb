// Package editor provides patina's modal editing model and its Bubble Tea
// component.
//
// Document holds the authoritative editor state: the line buffer, cursor,
// mode, file name and vertical scroll offset. Model wraps a Document for a
// Bubble Tea program: it routes key presses to Document operations according
// to the current mode and renders the visible slice, gutter and status line.
package editor
