package cursor

import (
	"testing"

	"github.com/dshills/texture/internal/buffer"
)

func posOf(t *testing.T, buf *buffer.Buffer, offset buffer.ByteOffset) buffer.Position {
	t.Helper()
	pos, err := buf.OffsetToPosition(offset)
	if err != nil {
		t.Fatalf("OffsetToPosition(%d): %v", offset, err)
	}
	return pos
}

func TestCharacterMovementWrapsLines(t *testing.T) {
	buf := buffer.NewBufferFromString("ab\ncd")
	m := NewManager(0)

	if err := m.GotoPosition(buf, buffer.Position{Line: 0, Column: 2}); err != nil {
		t.Fatalf("GotoPosition: %v", err)
	}
	m.Move(buf, DirRight, UnitCharacter, false)
	if got := posOf(t, buf, m.Primary().Head); got != (buffer.Position{Line: 1, Column: 0}) {
		t.Fatalf("right from end of line 0 = %v, want (1,0)", got)
	}
	m.Move(buf, DirLeft, UnitCharacter, false)
	if got := posOf(t, buf, m.Primary().Head); got != (buffer.Position{Line: 0, Column: 2}) {
		t.Fatalf("left from start of line 1 = %v, want (0,2)", got)
	}
}

func TestCharacterMovementClampsAtDocumentEnds(t *testing.T) {
	buf := buffer.NewBufferFromString("ab")
	m := NewManager(0)

	m.Move(buf, DirLeft, UnitCharacter, false)
	if m.Primary().Head != 0 {
		t.Fatalf("left at document start moved to %d", m.Primary().Head)
	}

	m.Move(buf, DirDown, UnitDocument, false)
	end := m.Primary().Head
	m.Move(buf, DirRight, UnitCharacter, false)
	if m.Primary().Head != end {
		t.Fatalf("right at document end moved to %d, want %d", m.Primary().Head, end)
	}
}

func TestWordMovement(t *testing.T) {
	buf := buffer.NewBufferFromString("hello world rust")
	m := NewManager(0)

	// Right stops at the first whitespace reached after moving, landing
	// just past each word.
	steps := []buffer.ByteOffset{5, 11, 16}
	for i, want := range steps {
		m.Move(buf, DirRight, UnitWord, false)
		if got := m.Primary().Head; got != want {
			t.Fatalf("right word step %d = %d, want %d", i+1, got, want)
		}
	}

	// Left is the mirror: back over whitespace, then to the start of the
	// word run.
	back := []buffer.ByteOffset{12, 6, 0}
	for i, want := range back {
		m.Move(buf, DirLeft, UnitWord, false)
		if got := m.Primary().Head; got != want {
			t.Fatalf("left word step %d = %d, want %d", i+1, got, want)
		}
	}
}

func TestWordMovementRefreshesPreferredColumn(t *testing.T) {
	buf := buffer.NewBufferFromString("hello world")
	m := NewManager(0)

	m.Move(buf, DirRight, UnitWord, false)
	c := m.Primary()
	if c.PreferredColumn != posOf(t, buf, c.Head).Column {
		t.Fatalf("preferred column = %d after word move to column %d",
			c.PreferredColumn, posOf(t, buf, c.Head).Column)
	}
}

func TestVerticalMovementPreservesPreferredColumn(t *testing.T) {
	buf := buffer.NewBufferFromString("Long line here\nShort\nAnother long line")
	m := NewManager(0)

	if err := m.GotoPosition(buf, buffer.Position{Line: 0, Column: 10}); err != nil {
		t.Fatalf("GotoPosition: %v", err)
	}

	m.Move(buf, DirDown, UnitLine, false)
	c := m.Primary()
	if got := posOf(t, buf, c.Head); got != (buffer.Position{Line: 1, Column: 5}) {
		t.Fatalf("down onto short line = %v, want (1,5)", got)
	}
	if c.PreferredColumn != 10 {
		t.Fatalf("preferred column = %d after clamping, want 10", c.PreferredColumn)
	}

	m.Move(buf, DirDown, UnitLine, false)
	if got := posOf(t, buf, m.Primary().Head); got != (buffer.Position{Line: 2, Column: 10}) {
		t.Fatalf("down onto long line = %v, want (2,10)", got)
	}
}

func TestPageMovementUsesPageSize(t *testing.T) {
	buf := buffer.NewBufferFromString("0\n1\n2\n3\n4\n5\n6\n7\n8\n9")
	m := NewManager(3)

	m.Move(buf, DirDown, UnitPage, false)
	if got := posOf(t, buf, m.Primary().Head); got.Line != 3 {
		t.Fatalf("page down landed on line %d, want 3", got.Line)
	}
	m.Move(buf, DirDown, UnitPage, false)
	m.Move(buf, DirDown, UnitPage, false)
	m.Move(buf, DirDown, UnitPage, false)
	if got := posOf(t, buf, m.Primary().Head); got.Line != 9 {
		t.Fatalf("page down past end landed on line %d, want 9 (clamped)", got.Line)
	}
}

func TestDocumentMovement(t *testing.T) {
	buf := buffer.NewBufferFromString("abc\ndef")
	m := NewManager(0)

	m.Move(buf, DirDown, UnitDocument, false)
	if m.Primary().Head != buf.Len() {
		t.Fatalf("document end = %d, want %d", m.Primary().Head, buf.Len())
	}
	m.Move(buf, DirUp, UnitDocument, false)
	if m.Primary().Head != 0 {
		t.Fatalf("document start = %d, want 0", m.Primary().Head)
	}
}

func TestExtendMovementPreservesAnchor(t *testing.T) {
	buf := buffer.NewBufferFromString("hello")
	m := NewManager(0)

	m.Move(buf, DirRight, UnitCharacter, true)
	m.Move(buf, DirRight, UnitCharacter, true)
	c := m.Primary()
	if !c.HasSelection() {
		t.Fatal("extending movement should produce a selection")
	}
	if c.Anchor != 0 || c.Head != 2 {
		t.Fatalf("selection = [%d,%d], want anchor 0 head 2", c.Anchor, c.Head)
	}

	m.Move(buf, DirRight, UnitCharacter, false)
	if m.Primary().HasSelection() {
		t.Fatal("non-extending movement should clear the selection")
	}
}

func TestAddCursorMergesCoincidentPoints(t *testing.T) {
	buf := buffer.NewBufferFromString("ab\ncd")
	m := NewManager(0)

	if err := m.AddCursor(buf, buffer.Position{Line: 1, Column: 0}); err != nil {
		t.Fatalf("AddCursor: %v", err)
	}
	if m.Count() != 2 {
		t.Fatalf("count = %d, want 2", m.Count())
	}

	// A second cursor at the same position collapses into the first.
	if err := m.AddCursor(buf, buffer.Position{Line: 1, Column: 0}); err != nil {
		t.Fatalf("AddCursor: %v", err)
	}
	if m.Count() != 2 {
		t.Fatalf("count after duplicate add = %d, want 2", m.Count())
	}
}

func TestOverlappingSelectionsMergeToUnion(t *testing.T) {
	buf := buffer.NewBufferFromString("abcdefgh")
	m := NewManager(0)

	if err := m.AddCursorWithSelection(buf,
		buffer.Position{Line: 0, Column: 0}, buffer.Position{Line: 0, Column: 4}); err != nil {
		t.Fatalf("AddCursorWithSelection: %v", err)
	}
	if err := m.AddCursorWithSelection(buf,
		buffer.Position{Line: 0, Column: 3}, buffer.Position{Line: 0, Column: 7}); err != nil {
		t.Fatalf("AddCursorWithSelection: %v", err)
	}

	var selected []Cursor
	for _, c := range m.Cursors() {
		if c.HasSelection() {
			selected = append(selected, c)
		}
	}
	if len(selected) != 1 {
		t.Fatalf("selection count = %d, want 1 merged selection", len(selected))
	}
	if selected[0].Start() != 0 || selected[0].End() != 7 {
		t.Fatalf("merged selection = [%d,%d), want [0,7)", selected[0].Start(), selected[0].End())
	}
}

func TestMergeKeepsSmallerID(t *testing.T) {
	a := NewCursorWithSelection(3, 0, 4)
	b := NewCursorWithSelection(2, 2, 6)
	got := merge(a, b)
	if got.ID != 2 {
		t.Fatalf("merged id = %d, want 2", got.ID)
	}
	if got.Start() != 0 || got.End() != 6 {
		t.Fatalf("merged range = [%d,%d), want [0,6)", got.Start(), got.End())
	}
}

func TestSelectAll(t *testing.T) {
	buf := buffer.NewBufferFromString("Hello\nWorld")
	m := NewManager(0)
	if err := m.AddCursor(buf, buffer.Position{Line: 1, Column: 2}); err != nil {
		t.Fatalf("AddCursor: %v", err)
	}

	m.SelectAll(buf)
	if m.Count() != 1 {
		t.Fatalf("count after select all = %d, want 1", m.Count())
	}
	c := m.Primary()
	if !c.HasSelection() || c.Anchor != 0 || c.Head != buf.Len() {
		t.Fatalf("selection = [%d,%d], want [0,%d]", c.Anchor, c.Head, buf.Len())
	}
	if got := posOf(t, buf, c.Head); got != (buffer.Position{Line: 1, Column: 5}) {
		t.Fatalf("selection end = %v, want (1,5)", got)
	}
}

func TestRebaseAfterEdits(t *testing.T) {
	tests := []struct {
		name  string
		at    buffer.ByteOffset
		edits []buffer.Edit
		want  buffer.ByteOffset
	}{
		{
			name:  "insert before shifts right",
			at:    5,
			edits: []buffer.Edit{buffer.NewInsert(2, "XY")},
			want:  7,
		},
		{
			name:  "insert after leaves alone",
			at:    2,
			edits: []buffer.Edit{buffer.NewInsert(5, "XY")},
			want:  2,
		},
		{
			name:  "delete before shifts left",
			at:    5,
			edits: []buffer.Edit{buffer.NewDelete(1, 3)},
			want:  3,
		},
		{
			name:  "point inside edit snaps to start",
			at:    4,
			edits: []buffer.Edit{buffer.NewDelete(2, 6)},
			want:  2,
		},
		{
			name: "batch applied in committed order",
			at:   8,
			edits: []buffer.Edit{
				buffer.NewInsert(6, "X"),
				buffer.NewInsert(1, "YZ"),
			},
			want: 11,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rebaseOffset(tt.at, tt.edits); got != tt.want {
				t.Fatalf("rebaseOffset(%d) = %d, want %d", tt.at, got, tt.want)
			}
		})
	}
}

func TestRebaseKeepsListNonEmptyAndMerged(t *testing.T) {
	buf := buffer.NewBufferFromString("abcdef")
	m := NewManager(0)
	if err := m.AddCursor(buf, buffer.Position{Line: 0, Column: 2}); err != nil {
		t.Fatalf("AddCursor: %v", err)
	}
	if err := m.AddCursor(buf, buffer.Position{Line: 0, Column: 4}); err != nil {
		t.Fatalf("AddCursor: %v", err)
	}

	// Deleting [0,6) lands every cursor on offset 0; they must merge to one.
	m.RebaseAfterEdits([]buffer.Edit{buffer.NewDelete(0, 6)})
	if m.Count() != 1 {
		t.Fatalf("count after collapsing rebase = %d, want 1", m.Count())
	}
	if m.Primary().Head != 0 {
		t.Fatalf("primary head = %d, want 0", m.Primary().Head)
	}
}

func TestSelectionConsistency(t *testing.T) {
	buf := buffer.NewBufferFromString("one two\nthree four")
	m := NewManager(0)
	m.Move(buf, DirRight, UnitWord, true)
	m.Move(buf, DirDown, UnitLine, false)
	m.Move(buf, DirRight, UnitCharacter, true)
	if err := m.AddCursor(buf, buffer.Position{Line: 0, Column: 1}); err != nil {
		t.Fatalf("AddCursor: %v", err)
	}
	for _, c := range m.Cursors() {
		if c.HasSelection() != (c.Anchor != c.Head) {
			t.Fatalf("cursor %v: HasSelection inconsistent with anchor/head", c)
		}
	}
	if m.Count() == 0 {
		t.Fatal("cursor list must never be empty")
	}
}

func TestExpandToWords(t *testing.T) {
	buf := buffer.NewBufferFromString("hello world")
	m := NewManager(0)
	if err := m.GotoPosition(buf, buffer.Position{Line: 0, Column: 2}); err != nil {
		t.Fatalf("GotoPosition: %v", err)
	}
	m.ExpandToWords(buf)
	c := m.Primary()
	if c.Start() != 0 || c.End() != 5 {
		t.Fatalf("expanded selection = [%d,%d), want [0,5)", c.Start(), c.End())
	}
}
