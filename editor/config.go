package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for a new document. Ignored when Document is set.
	Text string
	// Document to edit. When nil a document is created from Text.
	Document *Document

	// Rendering options.
	ShowLineNums bool
	Style        Style

	// KeyMap overrides DefaultKeyMap when non-nil.
	KeyMap *KeyMap

	// Clipboard backs the yank-line and paste bindings. Nil disables both.
	Clipboard Clipboard

	// OnChange is called after an update that changed the document version or
	// mode.
	OnChange func(ChangeEvent)
}
