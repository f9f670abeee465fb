package editor

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; they are reported in the status line.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
