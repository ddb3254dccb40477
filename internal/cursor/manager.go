package cursor

import (
	"sort"

	"github.com/dshills/texture/internal/buffer"
)

// SelectionMode is the shape new selections are created in.
type SelectionMode uint8

const (
	ModeNormal SelectionMode = iota
	ModeLine
	ModeBlock
)

const defaultHistoryCapacity = 50

// Manager owns the ordered, non-empty set of cursors for one editor: index
// 0 is always the primary cursor. Every mutating method re-sorts by
// leftmost position and coalesces overlapping cursors before returning.
type Manager struct {
	cursors  []Cursor
	nextID   uint64
	mode     SelectionMode
	pageSize uint32

	history [][]Cursor
}

// NewManager creates a manager with a single cursor at the document start.
func NewManager(pageSize uint32) *Manager {
	if pageSize == 0 {
		pageSize = 20
	}
	return &Manager{
		cursors:  []Cursor{NewCursorAt(1, 0)},
		nextID:   2,
		pageSize: pageSize,
	}
}

// Primary returns the primary (index 0) cursor.
func (m *Manager) Primary() Cursor { return m.cursors[0] }

// Cursors returns a copy of the current cursor list, primary first.
func (m *Manager) Cursors() []Cursor {
	out := make([]Cursor, len(m.cursors))
	copy(out, m.cursors)
	return out
}

// Count returns the number of cursors.
func (m *Manager) Count() int { return len(m.cursors) }

// Mode returns the current selection mode.
func (m *Manager) Mode() SelectionMode { return m.mode }

// SetMode sets the selection mode reported by Mode. SelectLines does not
// read it; it sets ModeLine itself.
func (m *Manager) SetMode(mode SelectionMode) { m.mode = mode }

// AddCursor adds a new cursor with no selection at pos.
func (m *Manager) AddCursor(buf *buffer.Buffer, pos buffer.Position) error {
	offset, err := buf.PositionToOffset(pos)
	if err != nil {
		return err
	}
	c := NewCursorAt(m.allocID(), offset)
	c.PreferredColumn = pos.Column
	m.cursors = append(m.cursors, c)
	m.normalize()
	return nil
}

// AddCursorWithSelection adds a new cursor selecting [anchor, pos).
func (m *Manager) AddCursorWithSelection(buf *buffer.Buffer, anchor, pos buffer.Position) error {
	a, err := buf.PositionToOffset(anchor)
	if err != nil {
		return err
	}
	h, err := buf.PositionToOffset(pos)
	if err != nil {
		return err
	}
	c := NewCursorWithSelection(m.allocID(), a, h)
	c.PreferredColumn = pos.Column
	m.cursors = append(m.cursors, c)
	m.normalize()
	return nil
}

// GotoPosition clears secondary cursors and places the primary cursor at
// pos with no selection. A direct jump refreshes the preferred column the
// same way horizontal movement does.
func (m *Manager) GotoPosition(buf *buffer.Buffer, pos buffer.Position) error {
	offset, err := buf.PositionToOffset(pos)
	if err != nil {
		return err
	}
	primary := m.cursors[0]
	m.cursors = []Cursor{{ID: primary.ID, Anchor: offset, Head: offset, PreferredColumn: pos.Column}}
	return nil
}

// ClearSecondary drops every cursor but the primary.
func (m *Manager) ClearSecondary() {
	if len(m.cursors) > 1 {
		m.cursors = m.cursors[:1]
	}
}

// SelectAll clears secondary cursors and selects the whole document.
func (m *Manager) SelectAll(buf *buffer.Buffer) {
	primary := m.cursors[0]
	m.cursors = []Cursor{{
		ID:     primary.ID,
		Anchor: 0,
		Head:   buf.Len(),
	}}
}

// SelectLines expands every cursor's selection (or bare position) to cover
// the full set of lines it touches, and switches selection mode to Line.
func (m *Manager) SelectLines(buf *buffer.Buffer) {
	m.mode = ModeLine
	for i, c := range m.cursors {
		startPos, _ := buf.OffsetToPosition(c.Start())
		endPos, _ := buf.OffsetToPosition(c.End())
		startOff := buf.LineStartOffset(startPos.Line)
		endOff := buf.LineEndOffset(endPos.Line)
		if endOff < buf.Len() {
			// include the line terminator so the whole line, including
			// its newline, is part of the selection
			if _, ok := buf.ByteAt(endOff); ok {
				endOff++
			}
		}
		m.cursors[i] = Cursor{ID: c.ID, Anchor: startOff, Head: endOff, PreferredColumn: c.PreferredColumn}
	}
	m.normalize()
}

// ExpandToWords expands every cursor's position (or selection) to the
// word-char run it sits within or overlaps.
func (m *Manager) ExpandToWords(buf *buffer.Buffer) {
	for i, c := range m.cursors {
		start := expandWordStart(buf, c.Start())
		end := expandWordEnd(buf, c.End())
		m.cursors[i] = Cursor{ID: c.ID, Anchor: start, Head: end, PreferredColumn: c.PreferredColumn}
	}
	m.normalize()
}

// RebaseAfterEdits folds edits — applied as they were committed, i.e.
// descending by Range.Start — across every cursor's anchor and head so
// they keep addressing the same logical content after the buffer has
// mutated underneath them.
func (m *Manager) RebaseAfterEdits(edits []buffer.Edit) {
	for i, c := range m.cursors {
		c.Anchor = rebaseOffset(c.Anchor, edits)
		c.Head = rebaseOffset(c.Head, edits)
		m.cursors[i] = c
	}
	m.normalize()
}

// PushSnapshot records the current cursor set on the bounded history.
func (m *Manager) PushSnapshot() {
	snap := m.Cursors()
	m.history = append(m.history, snap)
	if len(m.history) > defaultHistoryCapacity {
		m.history = m.history[len(m.history)-defaultHistoryCapacity:]
	}
}

// RestoreCursors replaces the cursor set verbatim (used by undo/redo to put
// cursors back where an UndoEntry recorded them). It does not merge or
// sort — the recorded snapshot is assumed already valid.
func (m *Manager) RestoreCursors(cursors []Cursor) {
	if len(cursors) == 0 {
		m.cursors = []Cursor{NewCursorAt(m.allocID(), 0)}
		return
	}
	m.cursors = make([]Cursor, len(cursors))
	copy(m.cursors, cursors)
}

func (m *Manager) allocID() uint64 {
	id := m.nextID
	m.nextID++
	return id
}

// normalize sorts by leftmost position and merges overlapping cursors.
func (m *Manager) normalize() {
	if len(m.cursors) <= 1 {
		return
	}
	sort.SliceStable(m.cursors, func(i, j int) bool {
		return m.cursors[i].Start() < m.cursors[j].Start()
	})

	merged := m.cursors[:1]
	for _, c := range m.cursors[1:] {
		last := merged[len(merged)-1]
		if overlaps(last, c) {
			merged[len(merged)-1] = merge(last, c)
		} else {
			merged = append(merged, c)
		}
	}
	m.cursors = merged
}

// expandWordStart and expandWordEnd walk the rope's own cursor one
// rune at a time, the same way moveWord does, rather than scanning a
// materialized copy of the document.
func expandWordStart(buf *buffer.Buffer, offset buffer.ByteOffset) buffer.ByteOffset {
	rc := buf.RuneCursorAt(offset)
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

func expandWordEnd(buf *buffer.Buffer, offset buffer.ByteOffset) buffer.ByteOffset {
	rc := buf.RuneCursorAt(offset)
	for !rc.AtEnd() {
		r, _ := rc.Rune()
		if !isWordChar(r) {
			break
		}
		rc.Next()
	}
	return rc.Offset()
}
