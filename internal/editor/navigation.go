package editor

import (
	"github.com/dshills/texture/internal/buffer"
	"github.com/dshills/texture/internal/cursor"
)

// GotoPosition clears secondary cursors, moves the primary cursor to pos,
// and scrolls the viewport so the target line is visible.
func (e *Editor) GotoPosition(pos buffer.Position) error {
	return timed(e, func() error {
		e.mu.Lock()
		defer e.mu.Unlock()
		if err := e.cursors.GotoPosition(e.buf, pos); err != nil {
			return ErrInvalidPosition
		}
		e.scrollToLineLocked(pos.Line)
		return nil
	})
}

// GotoLine clears secondary cursors and moves the primary cursor to the
// start of the given one-based line number.
func (e *Editor) GotoLine(line uint32) error {
	return timed(e, func() error {
		e.mu.Lock()
		defer e.mu.Unlock()
		if line == 0 || line > e.buf.LineCount() {
			return ErrInvalidPosition
		}
		if err := e.cursors.GotoPosition(e.buf, buffer.Position{Line: line - 1, Column: 0}); err != nil {
			return ErrInvalidPosition
		}
		e.scrollToLineLocked(line - 1)
		return nil
	})
}

// scrollToLineLocked adjusts the tracked view state so line falls inside
// the visible window. Callers hold e.mu.
func (e *Editor) scrollToLineLocked(line uint32) {
	visible := e.view.VisibleLines
	if visible == 0 {
		visible = e.config.PageSize
	}
	if visible == 0 {
		visible = 1
	}
	if line < e.view.ScrollLine {
		e.view.ScrollLine = line
	} else if line >= e.view.ScrollLine+visible {
		e.view.ScrollLine = line - visible + 1
	}
}

// SelectAll clears secondary cursors and selects the whole document.
func (e *Editor) SelectAll() {
	e.mu.Lock()
	e.cursors.SelectAll(e.buf)
	e.mu.Unlock()
	e.emit(Event{Type: EventSelectionChanged})
}

// Move moves every cursor by one unit in the given direction, optionally
// extending the selection.
func (e *Editor) Move(dir cursor.Direction, unit cursor.Unit, extend bool) {
	e.mu.Lock()
	e.cursors.Move(e.buf, dir, unit, extend)
	e.mu.Unlock()
	e.emit(Event{Type: EventCursorMoved})
}

// AddCursor adds a secondary cursor at pos.
func (e *Editor) AddCursor(pos buffer.Position) error {
	e.mu.Lock()
	err := e.cursors.AddCursor(e.buf, pos)
	e.mu.Unlock()
	if err != nil {
		return ErrInvalidPosition
	}
	e.emit(Event{Type: EventCursorMoved})
	return nil
}

// AddCursorWithSelection adds a secondary cursor selecting from anchor to
// pos.
func (e *Editor) AddCursorWithSelection(anchor, pos buffer.Position) error {
	e.mu.Lock()
	err := e.cursors.AddCursorWithSelection(e.buf, anchor, pos)
	e.mu.Unlock()
	if err != nil {
		return ErrInvalidPosition
	}
	e.emit(Event{Type: EventSelectionChanged})
	return nil
}

// ClearSecondaryCursors drops every cursor but the primary.
func (e *Editor) ClearSecondaryCursors() {
	e.mu.Lock()
	e.cursors.ClearSecondary()
	e.mu.Unlock()
	e.emit(Event{Type: EventCursorMoved})
}

// SelectLines expands every cursor's selection to whole lines.
func (e *Editor) SelectLines() {
	e.mu.Lock()
	e.cursors.SelectLines(e.buf)
	e.mu.Unlock()
	e.emit(Event{Type: EventSelectionChanged})
}

// ExpandToWords expands every cursor to the word run it touches.
func (e *Editor) ExpandToWords() {
	e.mu.Lock()
	e.cursors.ExpandToWords(e.buf)
	e.mu.Unlock()
	e.emit(Event{Type: EventSelectionChanged})
}
