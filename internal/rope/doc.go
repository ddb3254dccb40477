// Package rope implements an immutable, B+-tree-backed rope for storing
// document text.
//
// Leaves hold text chunks, each with its newline positions; internal nodes
// cache aggregated metrics (byte count, line count) so that splicing and line/offset
// conversion both run in O(log n). Every mutating method returns a new
// Rope; the receiver is left untouched, which is what lets the buffer
// package hand out cheap snapshots for undo history and highlighter
// invalidation without copying text.
//
//	r := rope.FromString("line one\nline two")
//	r2 := r.Insert(8, "!")
//	r.String()  // "line one\nline two" (unchanged)
//	r2.String() // "line one!\nline two"
//
// Position conversion is byte-oriented (OffsetToPoint/PointToOffset work in
// bytes, not Unicode scalar values); the buffer package layers scalar-value
// columns on top where the editor-facing API requires them.
//
// A Cursor gives stateful sequential access (SeekOffset, SeekLine, Next/Prev)
// that is cheaper than repeated random-access calls when walking the rope
// linearly; buffer.RuneCursor wraps one for the cursor package's
// character and word movement.
//
// Ropes are safe for concurrent reads; constructing a new Rope from an
// existing one is the only way to mutate content, and that returns a
// distinct value rather than touching shared nodes.
package rope
