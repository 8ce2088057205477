package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// DateEntry is a custom Entry widget for YYYY-MM-DD input.
// It embeds widget.Entry to inherit all standard behavior.
type DateEntry struct {
	widget.Entry
}

// NewDateEntry creates a new instance of DateEntry.
func NewDateEntry() *DateEntry {
	entry := &DateEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune intercepts text input events.
// It filters characters to allow only digits (0-9) and the hyphen.
func (e *DateEntry) TypedRune(r rune) {
	if (r >= '0' && r <= '9') || r == '-' {
		e.Entry.TypedRune(r)
	}
	// Ignore everything else.
	// Note: Shortcuts like Ctrl+V (Paste) are handled by TypedShortcut/TypedKey,
	// so arbitrary data could still be pasted. Parsing catches that case.
}

// Keyboard overrides the default keyboard type.
// This ensures that on mobile devices, a numeric keypad is shown.
func (e *DateEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
