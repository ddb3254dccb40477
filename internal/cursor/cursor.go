package cursor

import (
	"fmt"

	"github.com/dshills/texture/internal/buffer"
)

// ByteOffset and Range are re-exported for callers that only need the
// cursor package and don't want to import buffer directly for these.
type ByteOffset = buffer.ByteOffset
type Range = buffer.Range

// Cursor is one point of editing focus: a movable Head and a stationary
// Anchor (equal when there is no selection), a stable identity used by
// merge and rebase, and a PreferredColumn sticky target for vertical
// movement.
type Cursor struct {
	ID              uint64
	Anchor          ByteOffset
	Head            ByteOffset
	PreferredColumn uint32
}

// NewCursorAt creates a cursor with no selection at offset.
func NewCursorAt(id uint64, offset ByteOffset) Cursor {
	if offset < 0 {
		offset = 0
	}
	return Cursor{ID: id, Anchor: offset, Head: offset}
}

// NewCursorWithSelection creates a cursor whose anchor and head differ.
func NewCursorWithSelection(id uint64, anchor, head ByteOffset) Cursor {
	if anchor < 0 {
		anchor = 0
	}
	if head < 0 {
		head = 0
	}
	return Cursor{ID: id, Anchor: anchor, Head: head}
}

// HasSelection reports whether the cursor's anchor and head differ. A
// cursor has a selection exactly when they do; there is no separate flag
// to fall out of sync.
func (c Cursor) HasSelection() bool { return c.Anchor != c.Head }

// Range returns the cursor's selection normalized so Start <= End.
func (c Cursor) Range() Range {
	if c.Anchor <= c.Head {
		return Range{Start: c.Anchor, End: c.Head}
	}
	return Range{Start: c.Head, End: c.Anchor}
}

// Start and End are convenience accessors over Range().
func (c Cursor) Start() ByteOffset { return c.Range().Start }
func (c Cursor) End() ByteOffset   { return c.Range().End }

// IsForward reports whether the head is at or after the anchor.
func (c Cursor) IsForward() bool { return c.Head >= c.Anchor }

// Collapse drops the selection, moving the anchor to the head.
func (c Cursor) Collapse() Cursor {
	c.Anchor = c.Head
	return c
}

// MoveTo relocates the cursor to offset. If extend is false the
// selection is cleared (anchor follows head); if true the anchor is
// preserved.
func (c Cursor) MoveTo(offset ByteOffset, extend bool) Cursor {
	if offset < 0 {
		offset = 0
	}
	c.Head = offset
	if !extend {
		c.Anchor = offset
	}
	return c
}

// Clamp restricts both endpoints to [0, maxOffset].
func (c Cursor) Clamp(maxOffset ByteOffset) Cursor {
	if c.Anchor > maxOffset {
		c.Anchor = maxOffset
	}
	if c.Anchor < 0 {
		c.Anchor = 0
	}
	if c.Head > maxOffset {
		c.Head = maxOffset
	}
	if c.Head < 0 {
		c.Head = 0
	}
	return c
}

func (c Cursor) String() string {
	if !c.HasSelection() {
		return fmt.Sprintf("Cursor#%d@%d", c.ID, c.Head)
	}
	return fmt.Sprintf("Cursor#%d[%d,%d)", c.ID, c.Start(), c.End())
}

// overlaps reports whether a and b must be merged: (a) both have
// selections and the ranges intersect, endpoints touching counting as
// intersecting; (b) a selection-less cursor lies inside the other's
// selection; (c) neither has a selection and their positions coincide.
func overlaps(a, b Cursor) bool {
	aSel, bSel := a.HasSelection(), b.HasSelection()
	switch {
	case aSel && bSel:
		ar, br := a.Range(), b.Range()
		return ar.Start <= br.End && br.Start <= ar.End
	case aSel && !bSel:
		return a.Range().Contains(b.Head) || b.Head == a.Range().End
	case !aSel && bSel:
		return b.Range().Contains(a.Head) || a.Head == b.Range().End
	default:
		return a.Head == b.Head
	}
}

// merge combines two overlapping cursors: the smaller id survives, the
// selection is the union of any selection present
// (otherwise a point), and the merged cursor keeps the preferred column
// of whichever operand it took its id from.
func merge(a, b Cursor) Cursor {
	winner, other := a, b
	if b.ID < a.ID {
		winner, other = b, a
	}

	aSel, bSel := a.HasSelection(), b.HasSelection()
	if !aSel && !bSel {
		return Cursor{ID: winner.ID, Anchor: winner.Head, Head: winner.Head, PreferredColumn: winner.PreferredColumn}
	}

	ar, br := a.Range(), b.Range()
	start := ar.Start
	if br.Start < start {
		start = br.Start
	}
	end := ar.End
	if br.End > end {
		end = br.End
	}

	// Preserve the surviving cursor's direction where it had a
	// selection; otherwise adopt the other's direction.
	forward := winner.IsForward()
	if !winner.HasSelection() {
		forward = other.IsForward()
	}
	merged := Cursor{ID: winner.ID, PreferredColumn: winner.PreferredColumn}
	if forward {
		merged.Anchor, merged.Head = start, end
	} else {
		merged.Anchor, merged.Head = end, start
	}
	return merged
}
