package host

import (
	"context"

	"github.com/google/uuid"

	"github.com/dshills/texture/internal/buffer"
	"github.com/dshills/texture/internal/config"
	"github.com/dshills/texture/internal/cursor"
	"github.com/dshills/texture/internal/editor"
	"github.com/dshills/texture/internal/lsp"
)

// EditorContent is the payload `get_editor_content` returns.
type EditorContent struct {
	Text      string
	Version   uint64
	LineCount uint32
	CharCount buffer.ByteOffset
}

// GetEditorContent implements `get_editor_content(id)`.
func (m *Manager) GetEditorContent(id uuid.UUID) (EditorContent, error) {
	e, err := m.lookup(id)
	if err != nil {
		return EditorContent{}, err
	}
	return EditorContent{
		Text:      e.Text(),
		Version:   e.Version(),
		LineCount: e.LineCount(),
		CharCount: e.CharCount(),
	}, nil
}

// GetTextRange implements `get_text_range(id, s_line, s_col, e_line, e_col)`.
func (m *Manager) GetTextRange(id uuid.UUID, startLine, startCol, endLine, endCol uint32) (string, error) {
	e, err := m.lookup(id)
	if err != nil {
		return "", err
	}
	start := buffer.Position{Line: startLine, Column: startCol}
	end := buffer.Position{Line: endLine, Column: endCol}
	return e.TextRange(start, end)
}

// SaveFile implements `save_file(id)`, writing back to the editor's
// current path.
func (m *Manager) SaveFile(id uuid.UUID) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	return e.SaveFile(e.Path())
}

// SaveFileAs implements `save_file_as(id, path)`.
func (m *Manager) SaveFileAs(id uuid.UUID, path string) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	return e.SaveFile(path)
}

// InsertText implements `insert_text(id, text)`.
func (m *Manager) InsertText(id uuid.UUID, text string) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	return e.InsertText(text)
}

// TypeCharacter implements `type_character(id, ch)`.
func (m *Manager) TypeCharacter(id uuid.UUID, ch rune) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	return e.TypeChar(ch)
}

// DeleteSelection implements `delete_selection(id)`.
func (m *Manager) DeleteSelection(id uuid.UUID) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	return e.DeleteSelection()
}

// Backspace implements `backspace(id)`.
func (m *Manager) Backspace(id uuid.UUID) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	return e.Backspace()
}

// ForwardDelete deletes the character at (or selection under) each
// cursor.
func (m *Manager) ForwardDelete(id uuid.UUID) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	return e.ForwardDelete()
}

// MoveCursors implements `move_cursors(id, direction, unit, extend)`.
func (m *Manager) MoveCursors(id uuid.UUID, direction cursor.Direction, unit cursor.Unit, extend bool) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	e.Move(direction, unit, extend)
	return nil
}

// AddCursor implements `add_cursor(id, line, col)`.
func (m *Manager) AddCursor(id uuid.UUID, line, col uint32) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	return e.AddCursor(buffer.Position{Line: line, Column: col})
}

// ClearSecondaryCursors implements `clear_secondary_cursors(id)`.
func (m *Manager) ClearSecondaryCursors(id uuid.UUID) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	e.ClearSecondaryCursors()
	return nil
}

// GotoPosition implements `goto_position(id, line, col)`.
func (m *Manager) GotoPosition(id uuid.UUID, line, col uint32) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	return e.GotoPosition(buffer.Position{Line: line, Column: col})
}

// GotoLine implements `goto_line(id, n)`; n is one-based.
func (m *Manager) GotoLine(id uuid.UUID, n uint32) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	return e.GotoLine(n)
}

// SelectAll implements `select_all(id)`.
func (m *Manager) SelectAll(id uuid.UUID) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	e.SelectAll()
	return nil
}

// Copy implements `copy(id)`.
func (m *Manager) Copy(id uuid.UUID) (string, error) {
	e, err := m.lookup(id)
	if err != nil {
		return "", err
	}
	return e.Copy(), nil
}

// Cut implements `cut(id)`.
func (m *Manager) Cut(id uuid.UUID) (string, error) {
	e, err := m.lookup(id)
	if err != nil {
		return "", err
	}
	return e.Cut()
}

// Paste implements `paste(id, text)`.
func (m *Manager) Paste(id uuid.UUID, text string) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	return e.Paste(text)
}

// Undo implements `undo(id)`; the bool result reports whether an entry
// was actually undone. An empty undo stack is not an error.
func (m *Manager) Undo(id uuid.UUID) (bool, error) {
	e, err := m.lookup(id)
	if err != nil {
		return false, err
	}
	if !e.CanUndo() {
		return false, nil
	}
	return true, e.Undo()
}

// Redo implements `redo(id)`, mirroring Undo's bool-result contract.
func (m *Manager) Redo(id uuid.UUID) (bool, error) {
	e, err := m.lookup(id)
	if err != nil {
		return false, err
	}
	if !e.CanRedo() {
		return false, nil
	}
	return true, e.Redo()
}

// IndentLines implements `indent_lines(id)`.
func (m *Manager) IndentLines(id uuid.UUID) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	return e.IndentLines()
}

// UnindentLines implements `unindent_lines(id)`.
func (m *Manager) UnindentLines(id uuid.UUID) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	return e.UnindentLines()
}

// ToggleLineComment implements `toggle_line_comment(id)`.
func (m *Manager) ToggleLineComment(id uuid.UUID) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	return e.ToggleLineComment()
}

// Search implements `search(id, options)`.
func (m *Manager) Search(ctx context.Context, id uuid.UUID, opts editor.SearchOptions) ([]editor.SearchMatch, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return e.Search(ctx, opts)
}

// FindNext implements `find_next(id, forward, wrap_around)`.
func (m *Manager) FindNext(id uuid.UUID, forward, wrapAround bool) (*editor.SearchMatch, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return e.FindNext(forward, wrapAround)
}

// Replace implements `replace(id, text)`.
func (m *Manager) Replace(id uuid.UUID, text string) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	return e.Replace(text)
}

// ReplaceAll implements `replace_all(id, text)`.
func (m *Manager) ReplaceAll(id uuid.UUID, text string) (int, error) {
	e, err := m.lookup(id)
	if err != nil {
		return 0, err
	}
	return e.ReplaceAll(text)
}

// UpdateEditorConfig implements `update_editor_config(id, config)`.
func (m *Manager) UpdateEditorConfig(id uuid.UUID, cfg config.EditorConfig) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	e.UpdateConfig(cfg)
	return nil
}

// SetReadonly implements `set_readonly(id, flag)`.
func (m *Manager) SetReadonly(id uuid.UUID, flag bool) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	e.SetReadonly(flag)
	return nil
}

// SetFocus implements `set_focus(id, flag)`.
func (m *Manager) SetFocus(id uuid.UUID, flag bool) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	e.SetFocus(flag)
	return nil
}

// UpdateViewState implements `update_view_state(id, vs)`.
func (m *Manager) UpdateViewState(id uuid.UUID, vs editor.ViewState) error {
	e, err := m.lookup(id)
	if err != nil {
		return err
	}
	e.UpdateViewState(vs)
	return nil
}

// Complete implements `complete(id)`: completions at the editor's primary
// cursor, via whatever language server is registered for its file type.
func (m *Manager) Complete(ctx context.Context, id uuid.UUID) (*lsp.CompletionResult, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return e.Completion(ctx)
}

// Hover implements `hover(id)`.
func (m *Manager) Hover(ctx context.Context, id uuid.UUID) (*lsp.Hover, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return e.Hover(ctx)
}

// GotoDefinition implements `goto_definition(id)`.
func (m *Manager) GotoDefinition(ctx context.Context, id uuid.UUID) (*lsp.NavigationResult, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return e.Definition(ctx)
}

// FindReferences implements `find_references(id)`.
func (m *Manager) FindReferences(ctx context.Context, id uuid.UUID) (*lsp.NavigationResult, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return e.References(ctx)
}

// Diagnostics implements `get_diagnostics(id)`.
func (m *Manager) Diagnostics(id uuid.UUID) ([]lsp.Diagnostic, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return e.Diagnostics(), nil
}

// FormatDocument implements `format_document(id)`.
func (m *Manager) FormatDocument(ctx context.Context, id uuid.UUID) (*lsp.FormatResult, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return e.Format(ctx)
}

// RenameSymbol implements `rename_symbol(id, new_name)`.
func (m *Manager) RenameSymbol(ctx context.Context, id uuid.UUID, newName string) (*lsp.RenameResult, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	return e.Rename(ctx, newName)
}
