// Package buffer is the text buffer: a rope-backed document addressable
// both by byte offset and by (line, column) Position, where column counts
// Unicode scalar values rather than bytes or grapheme clusters.
//
// Buffer.ApplyEdits is the sole mutation entry point used by history and
// the editor facade: it validates a batch of edits, applies them in a
// single pass, and bumps the buffer's version exactly once. Version never
// decreases and is the key the syntax highlighter's cache and the LSP
// mirror both key off of.
//
// Position/offset conversion goes through PositionToOffset and
// OffsetToPosition; a second, internal Point/PointUTF16 pair exists only
// to bridge to the byte-oriented rope package and to the UTF-16 columns
// the LSP wire protocol expects.
package buffer
