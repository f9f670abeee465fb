package editor

import "github.com/iw2rmb/patina/buffer"

// Document is the editor state owned by the input loop.
//
// It is not safe for concurrent use. Every operation either completes or is a
// no-op; none of them block.
type Document struct {
	buf *buffer.Buffer

	mode     Mode
	filename string

	scroll         int
	viewportHeight int

	quit  bool
	dirty bool
}

// NewDocument returns an empty document: one empty line, cursor at the
// origin, Navigation mode, no file name.
func NewDocument() *Document {
	return NewDocumentFromText("")
}

// NewDocumentFromText returns an unnamed document holding text split on '\n'.
func NewDocumentFromText(text string) *Document {
	return &Document{buf: buffer.New(text)}
}

// Buffer exposes the underlying line buffer for read access.
func (d *Document) Buffer() *buffer.Buffer { return d.buf }

func (d *Document) Lines() []string     { return d.buf.Lines() }
func (d *Document) Line(row int) string { return d.buf.Line(row) }
func (d *Document) LineCount() int      { return d.buf.LineCount() }
func (d *Document) Text() string        { return d.buf.Text() }
func (d *Document) Cursor() buffer.Pos  { return d.buf.Cursor() }
func (d *Document) Version() uint64     { return d.buf.Version() }

func (d *Document) Mode() Mode { return d.mode }

// Filename returns the associated path, or "" when there is none.
func (d *Document) Filename() string { return d.filename }

func (d *Document) ScrollOffset() int   { return d.scroll }
func (d *Document) ViewportHeight() int { return d.viewportHeight }

// Dirty reports whether the text changed since the last load or save.
func (d *Document) Dirty() bool { return d.dirty }

func (d *Document) ShouldQuit() bool { return d.quit }

// IsPristine reports whether the document is unnamed and holds a single empty
// line.
func (d *Document) IsPristine() bool {
	return d.filename == "" && d.buf.LineCount() == 1 && d.buf.Line(0) == ""
}

// SwitchMode sets the mode unconditionally. Buffer and cursor are untouched.
func (d *Document) SwitchMode(m Mode) {
	d.mode = m
}

// Quit marks the session as finished.
func (d *Document) Quit() {
	d.quit = true
}

// InsertChar inserts r at the cursor and advances the cursor by one
// character. A '\n' behaves like EnterKey.
func (d *Document) InsertChar(r rune) {
	d.edit(func(b *buffer.Buffer) bool { return b.InsertRune(r) })
}

// InsertText inserts s character by character; line breaks split lines.
func (d *Document) InsertText(s string) {
	d.edit(func(b *buffer.Buffer) bool { return b.InsertText(s) })
}

// EnterKey splits the current line at the cursor and moves the cursor to the
// start of the new line.
func (d *Document) EnterKey() {
	d.edit((*buffer.Buffer).SplitLine)
}

// DeleteChar removes the character before the cursor, or joins the current
// line onto the previous one when the cursor is at column 0.
func (d *Document) DeleteChar() {
	d.edit((*buffer.Buffer).DeleteBackward)
}

func (d *Document) MoveCursorLeft()  { d.move(buffer.DirLeft) }
func (d *Document) MoveCursorRight() { d.move(buffer.DirRight) }
func (d *Document) MoveCursorUp()    { d.move(buffer.DirUp) }
func (d *Document) MoveCursorDown()  { d.move(buffer.DirDown) }
func (d *Document) MoveCursorHome()  { d.move(buffer.DirHome) }
func (d *Document) MoveCursorEnd()   { d.move(buffer.DirEnd) }

// MoveCursorTo places the cursor at p, clamped to the document, and
// recomputes the scroll offset when the row changed.
func (d *Document) MoveCursorTo(p buffer.Pos) {
	row := d.buf.Cursor().Row
	d.buf.SetCursor(p)
	if d.buf.Cursor().Row != row {
		d.followCursor()
	}
}

// SetViewportHeight records the number of text rows the presentation layer
// can show and recomputes the scroll offset for it.
func (d *Document) SetViewportHeight(h int) {
	if h < 0 {
		h = 0
	}
	d.viewportHeight = h
	d.followCursor()
}

func (d *Document) move(dir buffer.MoveDir) {
	d.buf.Move(dir)
	if dir.Vertical() {
		d.followCursor()
	}
}

func (d *Document) edit(fn func(b *buffer.Buffer) bool) {
	row := d.buf.Cursor().Row
	if !fn(d.buf) {
		return
	}
	d.dirty = true
	if d.buf.Cursor().Row != row {
		d.followCursor()
	}
}

func (d *Document) followCursor() {
	next := FollowCursor(d.buf.Cursor().Row, d.scroll, d.viewportHeight)
	maxScroll := d.buf.LineCount() - 1
	if maxScroll < 0 {
		maxScroll = 0
	}
	if next > maxScroll {
		next = maxScroll
	}
	d.scroll = next
}
