package editor

import (
	"context"
	"strings"
	"testing"

	"github.com/dshills/texture/internal/buffer"
)

func TestInsertTextAndUndo(t *testing.T) {
	e := New(WithInitialContent("hello"))

	if err := e.InsertText(" world"); err != nil {
		t.Fatalf("InsertText: %v", err)
	}
	if got := e.Text(); got != "hello world" {
		t.Fatalf("Text() = %q", got)
	}

	if err := e.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got := e.Text(); got != "hello" {
		t.Fatalf("Text() after undo = %q", got)
	}

	if err := e.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if got := e.Text(); got != "hello world" {
		t.Fatalf("Text() after redo = %q", got)
	}
}

func TestTypeCharAutoCloseBracket(t *testing.T) {
	e := New()
	if err := e.TypeChar('('); err != nil {
		t.Fatalf("TypeChar: %v", err)
	}
	if got := e.Text(); got != "()" {
		t.Fatalf("Text() = %q, want ()", got)
	}
	primary := e.Cursors()[0]
	if primary.Head != 1 {
		t.Fatalf("cursor head = %d, want 1", primary.Head)
	}
}

func TestBackspaceMergesLines(t *testing.T) {
	e := New(WithInitialContent("ab\ncd"))
	if err := e.GotoPosition(buffer.Position{Line: 1, Column: 0}); err != nil {
		t.Fatalf("GotoPosition: %v", err)
	}
	if err := e.Backspace(); err != nil {
		t.Fatalf("Backspace: %v", err)
	}
	if got := e.Text(); got != "abcd" {
		t.Fatalf("Text() = %q, want abcd", got)
	}
}

func TestReadonlyBlocksMutation(t *testing.T) {
	e := New(WithInitialContent("hi"))
	e.SetReadonly(true)
	if err := e.InsertText("x"); err != ErrReadOnly {
		t.Fatalf("InsertText err = %v, want ErrReadOnly", err)
	}
}

func TestSearchLiteralAndReplaceAll(t *testing.T) {
	e := New(WithInitialContent("cat dog cat"))
	matches, err := e.Search(context.Background(), SearchOptions{Query: "cat", CaseSensitive: true})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}

	n, err := e.ReplaceAll("dog")
	if err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	if n != 2 {
		t.Fatalf("ReplaceAll replaced %d, want 2", n)
	}
	if got := e.Text(); got != "dog dog dog" {
		t.Fatalf("Text() = %q", got)
	}
}

func TestSearchCancellation(t *testing.T) {
	e := New(WithInitialContent(strings.Repeat("x", searchChunkScalars*2) + "needle"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Search(ctx, SearchOptions{Query: "needle", CaseSensitive: true})
	if err != context.Canceled {
		t.Fatalf("Search err = %v, want context.Canceled", err)
	}
}

func TestSearchWholeWord(t *testing.T) {
	e := New(WithInitialContent("cat catalog cat"))
	matches, err := e.Search(context.Background(), SearchOptions{Query: "cat", CaseSensitive: true, WholeWord: true})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2 (catalog excluded)", len(matches))
	}
}

func TestToggleLineComment(t *testing.T) {
	e := New(WithInitialContent("a\nb"))
	e.SetLanguage("go")
	e.SelectAll()
	if err := e.ToggleLineComment(); err != nil {
		t.Fatalf("ToggleLineComment: %v", err)
	}
	if got := e.Text(); got != "// a\n// b" {
		t.Fatalf("Text() = %q", got)
	}
	if err := e.ToggleLineComment(); err != nil {
		t.Fatalf("ToggleLineComment (strip): %v", err)
	}
	if got := e.Text(); got != "a\nb" {
		t.Fatalf("Text() after strip = %q", got)
	}
}

func TestTypeCharAutoIndentGroupsIntoOneUndo(t *testing.T) {
	e := New(WithInitialContent("    foo"))
	if err := e.GotoPosition(buffer.Position{Line: 0, Column: 7}); err != nil {
		t.Fatalf("GotoPosition: %v", err)
	}

	if err := e.TypeChar('\n'); err != nil {
		t.Fatalf("TypeChar: %v", err)
	}
	if got, want := e.Text(), "    foo\n    "; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}

	if err := e.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got, want := e.Text(), "    foo"; got != want {
		t.Fatalf("Text() after one undo = %q, want %q (newline and indent should undo together)", got, want)
	}
	if e.CanUndo() {
		t.Fatalf("CanUndo() true after undoing the only (grouped) entry")
	}

	if err := e.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if got, want := e.Text(), "    foo\n    "; got != want {
		t.Fatalf("Text() after redo = %q, want %q", got, want)
	}
}

func TestMultiCursorInsert(t *testing.T) {
	e := New(WithInitialContent("ab\ncd"))
	if err := e.AddCursor(buffer.Position{Line: 1, Column: 0}); err != nil {
		t.Fatalf("AddCursor: %v", err)
	}
	v := e.Version()

	if err := e.InsertText("X"); err != nil {
		t.Fatalf("InsertText: %v", err)
	}
	if got := e.Text(); got != "Xab\nXcd" {
		t.Fatalf("Text() = %q, want Xab\\nXcd", got)
	}
	if e.Version() != v+1 {
		t.Fatalf("version bumped %d times, want once", e.Version()-v)
	}

	cursors := e.Cursors()
	if len(cursors) != 2 {
		t.Fatalf("cursor count = %d, want 2", len(cursors))
	}
	if cursors[0].Head != 1 {
		t.Fatalf("first cursor head = %d, want 1", cursors[0].Head)
	}
	if cursors[1].Head != 5 {
		t.Fatalf("second cursor head = %d, want 5", cursors[1].Head)
	}
}

func TestMultiCursorInsertUndoRedo(t *testing.T) {
	e := New(WithInitialContent("ab\ncd"))
	if err := e.AddCursor(buffer.Position{Line: 1, Column: 0}); err != nil {
		t.Fatalf("AddCursor: %v", err)
	}
	if err := e.InsertText("XY"); err != nil {
		t.Fatalf("InsertText: %v", err)
	}
	if got := e.Text(); got != "XYab\nXYcd" {
		t.Fatalf("Text() = %q, want XYab\\nXYcd", got)
	}

	if err := e.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got := e.Text(); got != "ab\ncd" {
		t.Fatalf("Text() after undo = %q, want ab\\ncd", got)
	}
	cursors := e.Cursors()
	if len(cursors) != 2 || cursors[0].Head != 0 || cursors[1].Head != 3 {
		t.Fatalf("cursors after undo = %v, want heads 0 and 3", cursors)
	}

	if err := e.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if got := e.Text(); got != "XYab\nXYcd" {
		t.Fatalf("Text() after redo = %q, want XYab\\nXYcd", got)
	}
}

func TestCopyCutPaste(t *testing.T) {
	e := New(WithInitialContent("hello"))
	e.SelectAll()
	if got := e.Copy(); got != "hello" {
		t.Fatalf("Copy() = %q", got)
	}
	cut, err := e.Cut()
	if err != nil {
		t.Fatalf("Cut: %v", err)
	}
	if cut != "hello" {
		t.Fatalf("Cut() = %q", cut)
	}
	if got := e.Text(); got != "" {
		t.Fatalf("Text() after cut = %q", got)
	}
	if err := e.Paste("again"); err != nil {
		t.Fatalf("Paste: %v", err)
	}
	if got := e.Text(); got != "again" {
		t.Fatalf("Text() after paste = %q", got)
	}
}
