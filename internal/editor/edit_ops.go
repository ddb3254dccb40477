package editor

import (
	"sort"

	"github.com/dshills/texture/internal/buffer"
	"github.com/dshills/texture/internal/cursor"
)

// commit applies edits (which must already be in descending-offset order),
// rebases cursors, records history, and emits TextChanged. It holds the
// write lock for its duration; callers must not hold e.mu.
func (e *Editor) commit(edits []buffer.Edit) error {
	e.mu.Lock()
	if e.readonly {
		e.mu.Unlock()
		return ErrReadOnly
	}
	before := e.cursors.Cursors()
	results, err := e.buf.ApplyEdits(edits)
	if err != nil {
		e.mu.Unlock()
		return err
	}
	e.cursors.RebaseAfterEdits(edits)
	after := e.cursors.Cursors()
	e.history.Record(edits, results, before, after)
	version := e.buf.Version()
	e.mu.Unlock()

	e.emit(Event{Type: EventTextChanged, Version: version})
	e.emit(Event{Type: EventCursorMoved})
	e.notifyChange()
	return nil
}

// editsDescending sorts edits by descending Range.Start so Buffer.ApplyEdits
// can apply them without earlier edits invalidating later offsets.
func editsDescending(edits []buffer.Edit) []buffer.Edit {
	sort.Slice(edits, func(i, j int) bool { return edits[i].Range.Start > edits[j].Range.Start })
	return edits
}

// InsertText builds one insertion edit per cursor at its current position
// and applies them.
func (e *Editor) InsertText(text string) error {
	return timed(e, func() error {
		e.mu.RLock()
		cursors := e.cursors.Cursors()
		e.mu.RUnlock()

		edits := make([]buffer.Edit, len(cursors))
		for i, c := range cursors {
			edits[i] = buffer.NewInsert(c.Head, text)
		}
		return e.commit(editsDescending(edits))
	})
}

// TypeChar inserts a single character, applying auto-indent and
// auto-close-bracket behavior per configuration.
//
// Auto-indent is two edit batches under the hood: the newline itself,
// then the copied leading whitespace once the new line exists to measure
// indentation against. Left as two separate commits they'd also be two
// separate undo entries, so a single undo would only remove the indent
// and leave a bare newline behind. BeginGroup/EndGroup folds both batches
// into the one UndoEntry a user expects from typing one Enter.
func (e *Editor) TypeChar(c rune) error {
	return timed(e, func() error {
		e.mu.RLock()
		cfg := e.config
		cursors := e.cursors.Cursors()
		buf := e.buf
		e.mu.RUnlock()

		closer, autoClose := bracketCloser[c]
		autoClose = autoClose && cfg.AutoCloseBrackets
		autoIndent := c == '\n' && cfg.AutoIndent

		indentFor := make(map[uint64]string, len(cursors))
		if autoIndent {
			for _, cur := range cursors {
				if ws := leadingWhitespaceOfLineAt(buf, cur.Head); ws != "" {
					indentFor[cur.ID] = ws
				}
			}
		}

		if autoIndent && len(indentFor) > 0 {
			e.history.BeginGroup()
		}

		edits := make([]buffer.Edit, len(cursors))
		for i, cur := range cursors {
			text := string(c)
			if autoClose {
				text += closer
			}
			edits[i] = buffer.NewInsert(cur.Head, text)
		}
		if err := e.commit(editsDescending(edits)); err != nil {
			if autoIndent && len(indentFor) > 0 {
				e.history.CancelGroup()
			}
			return err
		}

		if autoClose {
			e.mu.Lock()
			cursors := e.cursors.Cursors()
			moved := make([]cursor.Cursor, len(cursors))
			for i, cur := range cursors {
				moved[i] = cur.MoveTo(cur.Head-1, false)
			}
			e.cursors.RestoreCursors(moved)
			e.mu.Unlock()
		}

		if autoIndent && len(indentFor) > 0 {
			e.mu.RLock()
			rebased := e.cursors.Cursors()
			e.mu.RUnlock()

			indentEdits := make([]buffer.Edit, 0, len(indentFor))
			for _, cur := range rebased {
				if ws, ok := indentFor[cur.ID]; ok {
					indentEdits = append(indentEdits, buffer.NewInsert(cur.Head, ws))
				}
			}
			if len(indentEdits) > 0 {
				if err := e.commit(editsDescending(indentEdits)); err != nil {
					e.history.EndGroup(rebased)
					return err
				}
			}

			e.mu.RLock()
			after := e.cursors.Cursors()
			e.mu.RUnlock()
			e.history.EndGroup(after)
		}
		return nil
	})
}

var bracketCloser = map[rune]string{
	'(':  ")",
	'[':  "]",
	'{':  "}",
	'"':  "\"",
	'\'': "'",
}

func leadingWhitespaceOfLineAt(buf *buffer.Buffer, offset buffer.ByteOffset) string {
	pos, err := buf.OffsetToPosition(offset)
	if err != nil {
		return ""
	}
	line := buf.LineText(pos.Line)
	end := 0
	for end < len(line) && (line[end] == ' ' || line[end] == '\t') {
		end++
	}
	return line[:end]
}

// DeleteSelection deletes every cursor's selection. Returns ErrNoSelection
// if no cursor has one.
func (e *Editor) DeleteSelection() error {
	return timed(e, func() error {
		e.mu.RLock()
		cursors := e.cursors.Cursors()
		e.mu.RUnlock()

		var edits []buffer.Edit
		for _, c := range cursors {
			if c.HasSelection() {
				edits = append(edits, buffer.NewDelete(c.Start(), c.End()))
			}
		}
		if len(edits) == 0 {
			return ErrNoSelection
		}
		return e.commit(editsDescending(edits))
	})
}

// Backspace deletes each cursor's selection, or the character to its left.
func (e *Editor) Backspace() error {
	return timed(e, func() error {
		e.mu.RLock()
		cursors := e.cursors.Cursors()
		buf := e.buf
		e.mu.RUnlock()

		edits := make([]buffer.Edit, 0, len(cursors))
		for _, c := range cursors {
			if c.HasSelection() {
				edits = append(edits, buffer.NewDelete(c.Start(), c.End()))
				continue
			}
			if c.Head == 0 {
				continue
			}
			start := prevCharBoundary(buf, c.Head)
			edits = append(edits, buffer.NewDelete(start, c.Head))
		}
		if len(edits) == 0 {
			return nil
		}
		return e.commit(editsDescending(edits))
	})
}

// ForwardDelete deletes each cursor's selection, or the character at the
// cursor.
func (e *Editor) ForwardDelete() error {
	return timed(e, func() error {
		e.mu.RLock()
		cursors := e.cursors.Cursors()
		buf := e.buf
		e.mu.RUnlock()

		edits := make([]buffer.Edit, 0, len(cursors))
		for _, c := range cursors {
			if c.HasSelection() {
				edits = append(edits, buffer.NewDelete(c.Start(), c.End()))
				continue
			}
			end := nextCharBoundary(buf, c.Head)
			if end == c.Head {
				continue
			}
			edits = append(edits, buffer.NewDelete(c.Head, end))
		}
		if len(edits) == 0 {
			return nil
		}
		return e.commit(editsDescending(edits))
	})
}

// prevCharBoundary and nextCharBoundary step the rope's own cursor by
// one rune instead of materializing the buffer, so a plain
// Backspace/ForwardDelete at a single cursor costs O(1) amortized
// rather than a full-document copy.
func prevCharBoundary(buf *buffer.Buffer, offset buffer.ByteOffset) buffer.ByteOffset {
	if offset <= 0 {
		return 0
	}
	rc := buf.RuneCursorAt(offset)
	rc.Prev()
	return rc.Offset()
}

func nextCharBoundary(buf *buffer.Buffer, offset buffer.ByteOffset) buffer.ByteOffset {
	rc := buf.RuneCursorAt(offset)
	if rc.AtEnd() {
		return offset
	}
	rc.Next()
	return rc.Offset()
}
