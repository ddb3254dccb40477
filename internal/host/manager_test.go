package host

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/dshills/texture/internal/config"
	"github.com/dshills/texture/internal/editor"
)

func newManager() *Manager {
	return NewManager(config.DefaultEditorConfig())
}

func TestCreateEditorThenCommands(t *testing.T) {
	m := newManager()
	id := m.CreateEditor(nil)

	if got := m.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}

	if err := m.InsertText(id, "hello"); err != nil {
		t.Fatalf("InsertText: %v", err)
	}

	content, err := m.GetEditorContent(id)
	if err != nil {
		t.Fatalf("GetEditorContent: %v", err)
	}
	if content.Text != "hello" {
		t.Fatalf("content.Text = %q, want %q", content.Text, "hello")
	}
	if content.Version != 1 {
		t.Fatalf("content.Version = %d, want 1", content.Version)
	}

	if err := m.CloseEditor(id); err != nil {
		t.Fatalf("CloseEditor: %v", err)
	}
	if got := m.Len(); got != 0 {
		t.Fatalf("Len() after close = %d, want 0", got)
	}
}

func TestUnknownEditorIDReturnsErrEditorNotFound(t *testing.T) {
	m := newManager()
	unknown := uuid.New()

	if _, err := m.GetEditorContent(unknown); !errors.Is(err, ErrEditorNotFound) {
		t.Fatalf("GetEditorContent err = %v, want ErrEditorNotFound", err)
	}
	if err := m.InsertText(unknown, "x"); !errors.Is(err, ErrEditorNotFound) {
		t.Fatalf("InsertText err = %v, want ErrEditorNotFound", err)
	}
	if err := m.CloseEditor(unknown); !errors.Is(err, ErrEditorNotFound) {
		t.Fatalf("CloseEditor err = %v, want ErrEditorNotFound", err)
	}
}

func TestOpenFileCreatesEditorWhenIDNil(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.go")
	if err := os.WriteFile(path, []byte("package main\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m := newManager()
	id, err := m.OpenFile(nil, path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}

	content, err := m.GetEditorContent(id)
	if err != nil {
		t.Fatalf("GetEditorContent: %v", err)
	}
	if content.Text != "package main\n" {
		t.Fatalf("content.Text = %q", content.Text)
	}
}

func TestSaveFileAsWritesToDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	m := newManager()
	id := m.CreateEditor(nil)
	if err := m.InsertText(id, "saved"); err != nil {
		t.Fatalf("InsertText: %v", err)
	}
	if err := m.SaveFileAs(id, path); err != nil {
		t.Fatalf("SaveFileAs: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	// The default configuration ensures a final newline on save.
	if string(got) != "saved\n" {
		t.Fatalf("file content = %q, want %q", got, "saved\n")
	}
}

func TestUndoRedoBoolContract(t *testing.T) {
	m := newManager()
	id := m.CreateEditor(nil)

	if performed, err := m.Undo(id); err != nil || performed {
		t.Fatalf("Undo on empty stack = (%v, %v), want (false, nil)", performed, err)
	}

	if err := m.InsertText(id, "x"); err != nil {
		t.Fatalf("InsertText: %v", err)
	}
	if performed, err := m.Undo(id); err != nil || !performed {
		t.Fatalf("Undo = (%v, %v), want (true, nil)", performed, err)
	}
	if performed, err := m.Redo(id); err != nil || !performed {
		t.Fatalf("Redo = (%v, %v), want (true, nil)", performed, err)
	}
}

func TestSearchThroughManager(t *testing.T) {
	m := newManager()
	id := m.CreateEditor(nil)
	if err := m.InsertText(id, "Hello World\nHello Rust"); err != nil {
		t.Fatalf("InsertText: %v", err)
	}

	matches, err := m.Search(context.Background(), id, editor.SearchOptions{
		Query:         "Hello",
		CaseSensitive: true,
		Forward:       true,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}

	replaced, err := m.ReplaceAll(id, "Hi")
	if err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	if replaced != 2 {
		t.Fatalf("ReplaceAll count = %d, want 2", replaced)
	}

	content, err := m.GetEditorContent(id)
	if err != nil {
		t.Fatalf("GetEditorContent: %v", err)
	}
	if content.Text != "Hi World\nHi Rust" {
		t.Fatalf("content.Text = %q", content.Text)
	}
}
