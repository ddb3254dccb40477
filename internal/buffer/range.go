package buffer

import "fmt"

// Range is a half-open byte range [Start, End) in the buffer.
type Range struct {
	Start ByteOffset
	End   ByteOffset
}

func NewRange(start, end ByteOffset) Range { return Range{Start: start, End: end} }

func (r Range) String() string      { return fmt.Sprintf("[%d:%d)", r.Start, r.End) }
func (r Range) Len() ByteOffset      { return r.End - r.Start }
func (r Range) IsEmpty() bool        { return r.Start == r.End }
func (r Range) IsValid() bool        { return r.Start <= r.End }
func (r Range) Contains(o ByteOffset) bool {
	return o >= r.Start && o < r.End
}
func (r Range) ContainsRange(other Range) bool {
	return other.Start >= r.Start && other.End <= r.End
}
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}
func (r Range) Intersect(other Range) Range {
	start := r.Start
	if other.Start > start {
		start = other.Start
	}
	end := r.End
	if other.End < end {
		end = other.End
	}
	if start >= end {
		return Range{Start: start, End: start}
	}
	return Range{Start: start, End: end}
}
func (r Range) Union(other Range) Range {
	start := r.Start
	if other.Start < start {
		start = other.Start
	}
	end := r.End
	if other.End > end {
		end = other.End
	}
	return Range{Start: start, End: end}
}
func (r Range) Shift(delta ByteOffset) Range {
	return Range{Start: r.Start + delta, End: r.End + delta}
}

// PointRange is a byte-column range, used internally.
type PointRange struct {
	Start Point
	End   Point
}

func (r PointRange) String() string { return fmt.Sprintf("[%s:%s)", r.Start, r.End) }
func (r PointRange) IsEmpty() bool  { return r.Start.Compare(r.End) == 0 }
func (r PointRange) IsValid() bool  { return r.Start.Compare(r.End) <= 0 }
func (r PointRange) Contains(p Point) bool {
	return p.Compare(r.Start) >= 0 && p.Compare(r.End) < 0
}
func (r PointRange) IsSingleLine() bool { return r.Start.Line == r.End.Line }

// PointRangeUTF16 is a UTF-16-column range, used by the LSP mirror.
type PointRangeUTF16 struct {
	Start PointUTF16
	End   PointUTF16
}

func (r PointRangeUTF16) String() string { return fmt.Sprintf("[%s:%s)", r.Start, r.End) }
func (r PointRangeUTF16) IsEmpty() bool  { return r.Start.Compare(r.End) == 0 }
func (r PointRangeUTF16) IsValid() bool  { return r.Start.Compare(r.End) <= 0 }
func (r PointRangeUTF16) IsSingleLine() bool { return r.Start.Line == r.End.Line }

// PositionRange is a scalar-value-column range: the one the editor facade
// and cursor manager work with.
type PositionRange struct {
	Start Position
	End   Position
}

func NewPositionRange(start, end Position) PositionRange {
	return PositionRange{Start: start, End: end}
}

func (r PositionRange) String() string { return fmt.Sprintf("[%s:%s)", r.Start, r.End) }
func (r PositionRange) IsEmpty() bool  { return r.Start.Compare(r.End) == 0 }
func (r PositionRange) IsValid() bool  { return r.Start.Compare(r.End) <= 0 }
func (r PositionRange) Contains(p Position) bool {
	return p.Compare(r.Start) >= 0 && p.Compare(r.End) < 0
}
func (r PositionRange) IsSingleLine() bool { return r.Start.Line == r.End.Line }
