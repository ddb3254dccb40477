package buffer

import "fmt"

// Edit is a declarative replacement of a byte range by new text. It is
// an insertion when Range is empty, a deletion when NewText is empty,
// and a replacement otherwise.
type Edit struct {
	Range   Range
	NewText string
}

func NewEdit(r Range, newText string) Edit { return Edit{Range: r, NewText: newText} }

func NewInsert(offset ByteOffset, text string) Edit {
	return Edit{Range: Range{Start: offset, End: offset}, NewText: text}
}

func NewDelete(start, end ByteOffset) Edit {
	return Edit{Range: Range{Start: start, End: end}, NewText: ""}
}

func (e Edit) String() string {
	if e.Range.IsEmpty() {
		return fmt.Sprintf("Insert(%d, %q)", e.Range.Start, e.NewText)
	}
	if e.NewText == "" {
		return fmt.Sprintf("Delete%s", e.Range)
	}
	return fmt.Sprintf("Replace%s with %q", e.Range, e.NewText)
}

func (e Edit) IsInsert() bool  { return e.Range.IsEmpty() && e.NewText != "" }
func (e Edit) IsDelete() bool  { return !e.Range.IsEmpty() && e.NewText == "" }
func (e Edit) IsReplace() bool { return !e.Range.IsEmpty() && e.NewText != "" }
func (e Edit) IsNoOp() bool    { return e.Range.IsEmpty() && e.NewText == "" }

// Delta is the change in buffer length this edit causes.
func (e Edit) Delta() ByteOffset { return ByteOffset(len(e.NewText)) - e.Range.Len() }

// EditResult reports what applying a single edit actually did.
type EditResult struct {
	OldRange Range
	NewRange Range
	OldText  string
	Delta    int64
}

type ChangeType uint8

const (
	ChangeInsert ChangeType = iota
	ChangeDelete
	ChangeReplace
)

func (c ChangeType) String() string {
	switch c {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Change records one committed modification, used for change tracking and
// for building the inverse edit an undo needs.
type Change struct {
	Type     ChangeType
	Range    Range
	NewRange Range
	OldText  string
	NewText  string
}

// Invert returns the Change that would undo this one.
func (c Change) Invert() Change {
	switch c.Type {
	case ChangeInsert:
		return Change{Type: ChangeDelete, Range: c.NewRange, OldText: c.NewText}
	case ChangeDelete:
		return Change{
			Type:     ChangeInsert,
			Range:    Range{Start: c.Range.Start, End: c.Range.Start},
			NewRange: c.Range,
			NewText:  c.OldText,
		}
	case ChangeReplace:
		return Change{
			Type:     ChangeReplace,
			Range:    c.NewRange,
			NewRange: c.Range,
			OldText:  c.NewText,
			NewText:  c.OldText,
		}
	default:
		return c
	}
}

func (c Change) ToEdit() Edit { return Edit{Range: c.Range, NewText: c.NewText} }
