package history

import (
	"time"

	"github.com/dshills/texture/internal/buffer"
	"github.com/dshills/texture/internal/cursor"
)

// batch is one committed edit batch and the results the buffer handed
// back, which is enough to compute the inverse without re-deriving it
// from buffer content.
type batch struct {
	edits   []buffer.Edit
	results []buffer.EditResult
}

// inverseEdits builds the edit batch that undoes b, in the order
// Buffer.ApplyEdits requires (descending by Range.Start). Each recorded
// NewRange is in the coordinates the buffer had when that edit was
// applied; edits applied after it sit at strictly lower offsets, so its
// range in the final buffer is shifted right by their accumulated delta.
func (b batch) inverseEdits() []buffer.Edit {
	out := make([]buffer.Edit, len(b.results))
	var shift int64
	for i := len(b.results) - 1; i >= 0; i-- {
		r := b.results[i]
		out[i] = buffer.Edit{
			Range: buffer.Range{
				Start: r.NewRange.Start + buffer.ByteOffset(shift),
				End:   r.NewRange.End + buffer.ByteOffset(shift),
			},
			NewText: r.OldText,
		}
		shift += r.Delta
	}
	return out
}

// UndoEntry is one atomic unit of undo/redo history: the edits applied
// (possibly several, when recorded inside a BeginGroup/EndGroup span),
// plus the cursor snapshots from immediately before and after.
type UndoEntry struct {
	batches       []batch
	CursorsBefore []cursor.Cursor
	CursorsAfter  []cursor.Cursor
	Timestamp     time.Time
}

// Edits returns every edit this entry applied, across all batches, in
// the order they were originally committed.
func (e UndoEntry) Edits() []buffer.Edit {
	var out []buffer.Edit
	for _, b := range e.batches {
		out = append(out, b.edits...)
	}
	return out
}
