package buffer

import "github.com/dshills/texture/internal/rope"

// Snapshot is an immutable, cheap-to-take view of a Buffer at a point in
// time. Because the underlying rope is itself immutable, creating a
// Snapshot never copies text; it is safe to read from any goroutine and
// is what the highlighter and the LSP mirror hold onto between edits.
type Snapshot struct {
	rope       rope.Rope
	version    uint64
	lineEnding LineEnding
	tabWidth   int
}

func (s *Snapshot) Text() string { return s.rope.String() }
func (s *Snapshot) TextRange(a, b ByteOffset) string {
	return s.rope.Slice(rope.ByteOffset(a), rope.ByteOffset(b))
}
func (s *Snapshot) Len() ByteOffset             { return ByteOffset(s.rope.Len()) }
func (s *Snapshot) LineCount() uint32           { return s.rope.LineCount() }
func (s *Snapshot) LineText(line uint32) string { return s.rope.LineText(line) }
func (s *Snapshot) Version() uint64             { return s.version }
func (s *Snapshot) LineEnding() LineEnding      { return s.lineEnding }
func (s *Snapshot) TabWidth() int               { return s.tabWidth }

func (s *Snapshot) OffsetToPosition(offset ByteOffset) (Position, error) {
	if offset < 0 || offset > ByteOffset(s.rope.Len()) {
		return Position{}, ErrOffsetOutOfRange
	}
	point := s.rope.OffsetToPoint(rope.ByteOffset(offset))
	lineStart := s.rope.LineStartOffset(point.Line)
	prefix := s.rope.Slice(lineStart, rope.ByteOffset(offset))
	return Position{Line: point.Line, Column: scalarColumnFromBytes(prefix)}, nil
}
