package editor

import (
	"os"

	"github.com/dshills/texture/internal/buffer"
	"github.com/dshills/texture/internal/highlight"
)

// LoadFile replaces the buffer's content with path's contents, detects its
// language from the extension, and emits FileLoaded.
func (e *Editor) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		log.Error("load %s: %v", path, err)
		return err
	}
	defer f.Close()

	buf, err := buffer.NewBufferFromReader(f, buffer.WithDetectedLineEnding())
	if err != nil {
		log.Error("load %s: %v", path, err)
		return err
	}

	lang := highlight.DetectLanguage(path)

	e.mu.Lock()
	prevPath := e.path
	e.buf = buf
	e.cursors.RestoreCursors(nil)
	e.history.Clear()
	e.path = path
	e.language = lang
	e.mu.Unlock()

	if prevPath != "" && prevPath != path {
		e.notifyClose(prevPath)
	}
	e.emit(Event{Type: EventFileLoaded, Path: path, Language: lang})
	e.notifyOpen()
	return nil
}

// SaveFile writes the buffer's content to path, applying
// TrimTrailingWhitespace/EnsureFinalNewline per configuration, and emits
// FileSaved on success.
func (e *Editor) SaveFile(path string) error {
	e.mu.Lock()
	opts := buffer.SaveOptions{
		TrimTrailingWhitespace: e.config.TrimTrailingWhitespace,
		EnsureFinalNewline:     e.config.EnsureFinalNewline,
	}
	out := e.buf.Serialize(opts)
	e.mu.Unlock()

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		log.Error("save %s: %v", path, err)
		return err
	}

	e.mu.Lock()
	e.buf.MarkSaved()
	e.path = path
	e.mu.Unlock()

	e.emit(Event{Type: EventFileSaved, Path: path})
	e.notifySave()
	return nil
}

// Path returns the path the editor was last loaded from or saved to.
func (e *Editor) Path() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.path
}
