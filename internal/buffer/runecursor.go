package buffer

import "github.com/dshills/texture/internal/rope"

// RuneCursor steps through buffer content one scalar value at a time
// without materializing the document. It wraps the rope's own seekable
// cursor, which descends the tree once (O(log n)) and then moves
// between adjacent runes in amortized O(1); cursor/word movement used
// to call Text() and scan the resulting string, which made every
// arrow-key press an O(n) copy of the whole document.
//
// A RuneCursor holds its own snapshot of the rope value, so it stays
// valid and independent of later edits made through the Buffer that
// created it; ropes are immutable, so the snapshot never changes under
// it.
type RuneCursor struct {
	c *rope.Cursor
}

// RuneCursorAt returns a cursor positioned at offset. offset must be a
// valid rune boundary; callers that only ever derive offsets from
// other RuneCursor/Buffer methods satisfy this automatically.
func (b *Buffer) RuneCursorAt(offset ByteOffset) *RuneCursor {
	b.mu.RLock()
	r := b.rope
	b.mu.RUnlock()

	c := rope.NewCursor(r)
	c.SeekOffset(rope.ByteOffset(offset))
	return &RuneCursor{c: c}
}

// Offset returns the cursor's current byte offset.
func (rc *RuneCursor) Offset() ByteOffset { return ByteOffset(rc.c.Offset()) }

// AtEnd reports whether the cursor is at the end of the document.
func (rc *RuneCursor) AtEnd() bool { return rc.c.AtEnd() }

// AtStart reports whether the cursor is at the start of the document.
func (rc *RuneCursor) AtStart() bool { return rc.c.AtStart() }

// Rune returns the scalar value at the cursor's current position and
// its size in bytes, or (0, 0) at the end of the document.
func (rc *RuneCursor) Rune() (rune, int) { return rc.c.Rune() }

// Next advances the cursor by one rune. Returns false if already at
// the end.
func (rc *RuneCursor) Next() bool { return rc.c.Next() }

// Prev moves the cursor back by one rune. Returns false if already at
// the start.
func (rc *RuneCursor) Prev() bool { return rc.c.Prev() }

// Clone returns an independent copy of the cursor at the same
// position, for lookahead that may need to be abandoned.
func (rc *RuneCursor) Clone() *RuneCursor { return &RuneCursor{c: rc.c.Clone()} }
