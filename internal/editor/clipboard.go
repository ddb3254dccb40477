package editor

import "strings"

// Copy returns the line-joined concatenation of every cursor's selected
// text, in cursor order.
func (e *Editor) Copy() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var parts []string
	for _, c := range e.cursors.Cursors() {
		if c.HasSelection() {
			parts = append(parts, e.buf.TextRange(c.Start(), c.End()))
		}
	}
	return strings.Join(parts, "\n")
}

// Cut returns Copy's result and additionally deletes every selection.
func (e *Editor) Cut() (string, error) {
	text := e.Copy()
	if text == "" {
		return "", ErrNoSelection
	}
	if err := e.DeleteSelection(); err != nil {
		return "", err
	}
	return text, nil
}

// Paste behaves like InsertText: s is broadcast to every cursor.
func (e *Editor) Paste(s string) error {
	return e.InsertText(s)
}
