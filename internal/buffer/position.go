package buffer

import (
	"fmt"
	"unicode/utf8"
)

// ByteOffset indexes a byte within the buffer's rope storage.
type ByteOffset = int64

// Point is a line/byte-column position used internally for rope access and
// as the basis for the UTF-16 conversion the LSP client needs. It is not
// exposed past the buffer boundary; callers addressing the document the way
// a user does should use Position instead.
type Point struct {
	Line   uint32
	Column uint32 // byte offset within the line
}

func (p Point) String() string { return fmt.Sprintf("(%d:%d)", p.Line, p.Column) }

func (p Point) Compare(other Point) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Column != other.Column {
		if p.Column < other.Column {
			return -1
		}
		return 1
	}
	return 0
}

func (p Point) Before(other Point) bool { return p.Compare(other) < 0 }
func (p Point) After(other Point) bool  { return p.Compare(other) > 0 }
func (p Point) IsZero() bool            { return p.Line == 0 && p.Column == 0 }

// PointUTF16 is a line/column position where column counts UTF-16 code
// units. The LSP document mirror uses this exclusively; it never reaches
// the cursor manager or the editor facade. The column math itself lives
// in rope.Rope.OffsetToPointUTF16/PointUTF16ToOffset, which can take the
// whole-document ASCII fast path; this type just carries the result
// across the buffer boundary.
type PointUTF16 struct {
	Line   uint32
	Column uint32
}

func (p PointUTF16) String() string { return fmt.Sprintf("(%d:%d utf16)", p.Line, p.Column) }

func (p PointUTF16) Compare(other PointUTF16) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Column != other.Column {
		if p.Column < other.Column {
			return -1
		}
		return 1
	}
	return 0
}

func (p PointUTF16) Before(other PointUTF16) bool { return p.Compare(other) < 0 }
func (p PointUTF16) After(other PointUTF16) bool  { return p.Compare(other) > 0 }

// Position is the editor-facing line/column pair. Column counts Unicode
// scalar values (runes, excluding surrogate halves) since the start of the
// line, never bytes and never grapheme clusters.
type Position struct {
	Line   uint32
	Column uint32
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Line, p.Column) }

func (p Position) Compare(other Position) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Column != other.Column {
		if p.Column < other.Column {
			return -1
		}
		return 1
	}
	return 0
}

func (p Position) Before(other Position) bool { return p.Compare(other) < 0 }
func (p Position) After(other Position) bool  { return p.Compare(other) > 0 }
func (p Position) IsZero() bool               { return p.Line == 0 && p.Column == 0 }

// scalarColumnFromBytes counts the Unicode scalar values in s.
func scalarColumnFromBytes(s string) uint32 {
	var col uint32
	for range s {
		col++
	}
	return col
}

// byteColumnFromScalarColumn walks line, a byte string, advancing scalarCol
// runes and returning the corresponding byte offset within line. If
// scalarCol exceeds the number of runes in line, it returns len(line) and
// false.
func byteColumnFromScalarColumn(line string, scalarCol uint32) (int, bool) {
	if scalarCol == 0 {
		return 0, true
	}
	var n uint32
	byteOff := 0
	for _, r := range line {
		if n == scalarCol {
			return byteOff, true
		}
		n++
		byteOff += utf8.RuneLen(r)
	}
	if n == scalarCol {
		return byteOff, true
	}
	return len(line), false
}
