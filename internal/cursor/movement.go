package cursor

import (
	"unicode"

	"github.com/dshills/texture/internal/buffer"
)

// Direction is the horizontal or vertical direction of a movement.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Unit is the granularity a movement covers.
type Unit uint8

const (
	UnitCharacter Unit = iota
	UnitWord
	UnitLine
	UnitPage
	UnitDocument
)

// Move applies the (direction, unit) movement to every cursor. When extend
// is false each cursor's anchor follows its new head (selection cleared);
// when true the anchor is preserved and HasSelection is recomputed. The
// cursor list is re-sorted and overlap-merged afterward.
func (m *Manager) Move(buf *buffer.Buffer, dir Direction, unit Unit, extend bool) {
	for i, c := range m.cursors {
		head, preferred := moveOne(buf, c, dir, unit, m.pageSize)
		c.Head = head
		if extend {
			c.PreferredColumn = preferred
		} else {
			c.Anchor = head
			c.PreferredColumn = preferred
		}
		m.cursors[i] = c
	}
	m.normalize()
}

func moveOne(buf *buffer.Buffer, c Cursor, dir Direction, unit Unit, pageSize uint32) (head buffer.ByteOffset, preferred uint32) {
	switch unit {
	case UnitCharacter:
		return moveCharacter(buf, c.Head, dir)
	case UnitWord:
		off := moveWord(buf, c.Head, dir)
		return off, columnOf(buf, off)
	case UnitLine:
		return moveVertical(buf, c, dir, 1)
	case UnitPage:
		return moveVertical(buf, c, dir, pageSize)
	case UnitDocument:
		return moveDocument(buf, dir)
	default:
		return c.Head, c.PreferredColumn
	}
}

// moveCharacter moves by one scalar value, wrapping across line
// boundaries, clamped at the document's ends. preferred is recomputed
// from the resulting position's column since horizontal movement always
// refreshes it. It steps the rope's own cursor by a single rune rather
// than materializing the document, so one arrow-key press costs
// amortized O(1) instead of O(document length).
func moveCharacter(buf *buffer.Buffer, offset buffer.ByteOffset, dir Direction) (buffer.ByteOffset, uint32) {
	switch dir {
	case DirRight:
		rc := buf.RuneCursorAt(offset)
		if rc.AtEnd() {
			return offset, columnOf(buf, offset)
		}
		rc.Next()
		return rc.Offset(), columnOf(buf, rc.Offset())
	case DirLeft:
		if offset <= 0 {
			return 0, 0
		}
		rc := buf.RuneCursorAt(offset)
		rc.Prev()
		return rc.Offset(), columnOf(buf, rc.Offset())
	default:
		return offset, columnOf(buf, offset)
	}
}

// columnOf returns the scalar-value column of offset within its line,
// used to refresh PreferredColumn after a horizontal move or jump.
func columnOf(buf *buffer.Buffer, offset buffer.ByteOffset) uint32 {
	pos, err := buf.OffsetToPosition(offset)
	if err != nil {
		return 0
	}
	return pos.Column
}

// moveWord moves one word in the given direction, walking the rope's
// cursor one rune at a time instead of scanning a materialized copy of
// the text. Right advances until it sits on whitespace, having moved at
// least one rune, so it lands on the boundary just past the current word
// (or one rune forward through a whitespace run). Left steps back over
// whitespace, then over the word-char run, landing at its start.
func moveWord(buf *buffer.Buffer, offset buffer.ByteOffset, dir Direction) buffer.ByteOffset {
	if dir == DirRight {
		rc := buf.RuneCursorAt(offset)
		for !rc.AtEnd() {
			r, _ := rc.Rune()
			if rc.Offset() != offset && unicode.IsSpace(r) {
				break
			}
			rc.Next()
		}
		return rc.Offset()
	}

	if offset <= 0 {
		return 0
	}
	rc := buf.RuneCursorAt(offset)
	rc.Prev()
	for !rc.AtStart() {
		r, _ := rc.Rune()
		if !unicode.IsSpace(r) {
			break
		}
		rc.Prev()
	}
	for !rc.AtStart() {
		peek := rc.Clone()
		peek.Prev()
		r, _ := peek.Rune()
		if !isWordChar(r) {
			break
		}
		rc.Prev()
	}
	return rc.Offset()
}

// moveVertical moves step lines up or down, clamping at document ends,
// landing at min(PreferredColumn, targetLineLen). PreferredColumn itself
// is preserved, not refreshed.
func moveVertical(buf *buffer.Buffer, c Cursor, dir Direction, step uint32) (buffer.ByteOffset, uint32) {
	pos, err := buf.OffsetToPosition(c.Head)
	if err != nil {
		return c.Head, c.PreferredColumn
	}
	preferred := c.PreferredColumn

	lineCount := buf.LineCount()
	target := int64(pos.Line)
	if dir == DirUp {
		target -= int64(step)
	} else {
		target += int64(step)
	}
	if target < 0 {
		target = 0
	}
	if target >= int64(lineCount) {
		target = int64(lineCount) - 1
	}

	targetLen := buf.LineLenScalars(uint32(target))
	col := preferred
	if col > targetLen {
		col = targetLen
	}
	offset, err := buf.PositionToOffset(buffer.Position{Line: uint32(target), Column: col})
	if err != nil {
		return c.Head, preferred
	}
	return offset, preferred
}

func moveDocument(buf *buffer.Buffer, dir Direction) (buffer.ByteOffset, uint32) {
	if dir == DirUp {
		return 0, 0
	}
	end := buf.Len()
	pos, _ := buf.OffsetToPosition(end)
	return end, pos.Column
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
