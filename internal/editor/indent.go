package editor

import (
	"github.com/dshills/texture/internal/buffer"
)

// touchedLines returns the sorted, deduplicated set of line numbers any
// cursor's range touches.
func (e *Editor) touchedLines() []uint32 {
	seen := make(map[uint32]bool)
	var lines []uint32
	for _, c := range e.cursors.Cursors() {
		startPos, err := e.buf.OffsetToPosition(c.Start())
		if err != nil {
			continue
		}
		endPos, err := e.buf.OffsetToPosition(c.End())
		if err != nil {
			continue
		}
		for l := startPos.Line; l <= endPos.Line; l++ {
			if !seen[l] {
				seen[l] = true
				lines = append(lines, l)
			}
		}
	}
	return lines
}

// IndentLines inserts one indentation unit at column 0 of every line any
// cursor touches.
func (e *Editor) IndentLines() error {
	return timed(e, func() error {
		e.mu.RLock()
		lines := e.touchedLines()
		unit := e.config.IndentUnit()
		e.mu.RUnlock()

		edits := make([]buffer.Edit, 0, len(lines))
		e.mu.RLock()
		for _, l := range lines {
			edits = append(edits, buffer.NewInsert(e.buf.LineStartOffset(l), unit))
		}
		e.mu.RUnlock()
		if len(edits) == 0 {
			return nil
		}
		return e.commit(editsDescending(edits))
	})
}

// UnindentLines removes up to one indentation unit's worth of leading
// whitespace from every line any cursor touches: one leading tab, or up
// to IndentWidth leading spaces.
func (e *Editor) UnindentLines() error {
	return timed(e, func() error {
		e.mu.RLock()
		lines := e.touchedLines()
		width := e.config.IndentWidth
		if width <= 0 {
			width = 4
		}
		var edits []buffer.Edit
		for _, l := range lines {
			start := e.buf.LineStartOffset(l)
			text := e.buf.LineText(l)
			n := 0
			switch {
			case len(text) > 0 && text[0] == '\t':
				n = 1
			default:
				for n < len(text) && n < width && text[n] == ' ' {
					n++
				}
			}
			if n > 0 {
				edits = append(edits, buffer.NewDelete(start, start+buffer.ByteOffset(n)))
			}
		}
		e.mu.RUnlock()
		if len(edits) == 0 {
			return nil
		}
		return e.commit(editsDescending(edits))
	})
}
