package cursor

import "github.com/dshills/texture/internal/buffer"

// rebaseOffset folds edits — in the order they were committed, i.e.
// descending by Range.Start — across a single point.
//
//   - edit entirely before the point: shift by the edit's length delta;
//   - edit strictly after the point: no change;
//   - point inside the edit's range: snap to the edit's start (the new
//     text replacing that range did not exist when the point was
//     recorded, so the point collapses to where the replacement begins).
func rebaseOffset(offset buffer.ByteOffset, edits []buffer.Edit) buffer.ByteOffset {
	for _, edit := range edits {
		switch {
		case edit.Range.End <= offset:
			offset += edit.Delta()
		case edit.Range.Start > offset:
			// strictly after: no change
		default:
			// inside [Start, End): snap to start
			offset = edit.Range.Start
		}
	}
	return offset
}
