package history

import (
	"testing"

	"github.com/dshills/texture/internal/buffer"
	"github.com/dshills/texture/internal/cursor"
)

func applyAndRecord(t *testing.T, buf *buffer.Buffer, s *Stack, edits []buffer.Edit, before, after []cursor.Cursor) {
	t.Helper()
	results, err := buf.ApplyEdits(edits)
	if err != nil {
		t.Fatalf("ApplyEdits: %v", err)
	}
	s.Record(edits, results, before, after)
}

func TestStackUndoRedoInvolution(t *testing.T) {
	buf := buffer.NewBufferFromString("")
	s := NewStack(10)
	before := []cursor.Cursor{cursor.NewCursorAt(1, 0)}
	after := []cursor.Cursor{cursor.NewCursorAt(1, 13)}

	applyAndRecord(t, buf, s, []buffer.Edit{buffer.NewInsert(0, "Hello, World!")}, before, after)
	if buf.Text() != "Hello, World!" {
		t.Fatalf("got %q", buf.Text())
	}

	entry, ok, err := s.Undo(buf)
	if err != nil || !ok {
		t.Fatalf("undo: ok=%v err=%v", ok, err)
	}
	if buf.Text() != "" {
		t.Fatalf("after undo got %q", buf.Text())
	}
	if entry.CursorsBefore[0].Head != 0 {
		t.Fatalf("wrong cursors-before snapshot")
	}

	entry, ok, err = s.Redo(buf)
	if err != nil || !ok {
		t.Fatalf("redo: ok=%v err=%v", ok, err)
	}
	if buf.Text() != "Hello, World!" {
		t.Fatalf("after redo got %q", buf.Text())
	}
	if entry.CursorsAfter[0].Head != 13 {
		t.Fatalf("wrong cursors-after snapshot")
	}
}

func TestStackUndoEmptyIsNotError(t *testing.T) {
	buf := buffer.NewBufferFromString("x")
	s := NewStack(10)
	_, ok, err := s.Undo(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false on empty undo stack")
	}
}

func TestStackRecordClearsRedo(t *testing.T) {
	buf := buffer.NewBufferFromString("")
	s := NewStack(10)
	applyAndRecord(t, buf, s, []buffer.Edit{buffer.NewInsert(0, "a")}, nil, nil)
	if _, _, err := s.Undo(buf); err != nil {
		t.Fatal(err)
	}
	if !s.CanRedo() {
		t.Fatal("expected redo available")
	}
	applyAndRecord(t, buf, s, []buffer.Edit{buffer.NewInsert(0, "b")}, nil, nil)
	if s.CanRedo() {
		t.Fatal("expected redo cleared after a new edit")
	}
}

func TestStackBoundedCapacity(t *testing.T) {
	buf := buffer.NewBufferFromString("")
	s := NewStack(2)
	for i := 0; i < 5; i++ {
		applyAndRecord(t, buf, s, []buffer.Edit{buffer.NewInsert(buf.Len(), "x")}, nil, nil)
	}
	undone := 0
	for s.CanUndo() {
		if _, _, err := s.Undo(buf); err != nil {
			t.Fatal(err)
		}
		undone++
	}
	if undone != 2 {
		t.Fatalf("expected 2 retained undo entries, got %d", undone)
	}
}

func TestStackUndoMultiEditBatch(t *testing.T) {
	buf := buffer.NewBufferFromString("ab\ncd")
	s := NewStack(10)

	// Two inserts committed as one batch, highest offset first. The
	// second insert shifts the first one's final resting place, so the
	// inverse must account for the accumulated delta.
	edits := []buffer.Edit{
		buffer.NewInsert(3, "XY"),
		buffer.NewInsert(0, "XY"),
	}
	applyAndRecord(t, buf, s, edits, nil, nil)
	if buf.Text() != "XYab\nXYcd" {
		t.Fatalf("after batch got %q", buf.Text())
	}

	if _, ok, err := s.Undo(buf); err != nil || !ok {
		t.Fatalf("undo: ok=%v err=%v", ok, err)
	}
	if buf.Text() != "ab\ncd" {
		t.Fatalf("after undo got %q, want original text back", buf.Text())
	}

	if _, ok, err := s.Redo(buf); err != nil || !ok {
		t.Fatalf("redo: ok=%v err=%v", ok, err)
	}
	if buf.Text() != "XYab\nXYcd" {
		t.Fatalf("after redo got %q", buf.Text())
	}
}

func TestStackGroupCombinesIntoOneEntry(t *testing.T) {
	buf := buffer.NewBufferFromString("")
	s := NewStack(10)
	before := []cursor.Cursor{cursor.NewCursorAt(1, 0)}

	s.BeginGroup()
	applyAndRecord(t, buf, s, []buffer.Edit{buffer.NewInsert(0, "  ")}, before, nil)
	applyAndRecord(t, buf, s, []buffer.Edit{buffer.NewInsert(2, "\n")}, nil, nil)
	after := []cursor.Cursor{cursor.NewCursorAt(1, 3)}
	s.EndGroup(after)

	if buf.Text() != "  \n" {
		t.Fatalf("got %q", buf.Text())
	}

	undone := 0
	for s.CanUndo() {
		if _, _, err := s.Undo(buf); err != nil {
			t.Fatal(err)
		}
		undone++
	}
	if undone != 1 {
		t.Fatalf("expected one combined undo entry, got %d", undone)
	}
	if buf.Text() != "" {
		t.Fatalf("after group undo got %q", buf.Text())
	}
}
