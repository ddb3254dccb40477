package editor

import (
	"context"

	"github.com/dshills/texture/internal/buffer"
	"github.com/dshills/texture/internal/lsp"
)

// WithLSPManager wires an editor to an already-started LSP client so edits,
// loads, and saves are mirrored to the language server and completion,
// hover, and navigation requests can be routed through it. Editors without
// this option behave exactly as before: lspClient stays nil, the notify*
// mirroring calls do nothing, Diagnostics returns nil, and the request
// methods return ErrNoLSPServer.
func WithLSPManager(client *lsp.Client) Option {
	return func(e *Editor) { e.lspClient = client }
}

// notifyOpen mirrors the buffer's current content into the LSP client as an
// opened document. Called after LoadFile sets the path and language.
func (e *Editor) notifyOpen() {
	if e.lspClient == nil {
		return
	}
	e.mu.RLock()
	path := e.path
	text := e.buf.Text()
	e.mu.RUnlock()
	if path == "" {
		return
	}
	if err := e.lspClient.OpenDocument(context.Background(), path, text); err != nil {
		log.Error("lsp open %s: %v", path, err)
	}
}

// notifyClose tells the LSP client the previously open document is no
// longer tracked, used when LoadFile replaces the buffer with another file.
func (e *Editor) notifyClose(path string) {
	if e.lspClient == nil || path == "" {
		return
	}
	if err := e.lspClient.CloseDocument(context.Background(), path); err != nil {
		log.Error("lsp close %s: %v", path, err)
	}
}

// notifyChange mirrors a commit's edits to the LSP client as a full-document
// sync. The buffer's rope makes incremental diffing cheap to add later, but
// full sync keeps the server's mirror correct without tracking per-edit
// ranges through cursor rebasing.
func (e *Editor) notifyChange() {
	if e.lspClient == nil {
		return
	}
	e.mu.RLock()
	path := e.path
	text := e.buf.Text()
	e.mu.RUnlock()
	if path == "" {
		return
	}
	changes := []lsp.TextDocumentContentChangeEvent{{Text: text}}
	if err := e.lspClient.ChangeDocument(context.Background(), path, changes); err != nil {
		log.Error("lsp change %s: %v", path, err)
	}
}

// notifySave tells the LSP client the document was saved. Any
// format-on-save result the client returns is discarded; no edits are
// applied to the buffer.
func (e *Editor) notifySave() {
	if e.lspClient == nil {
		return
	}
	e.mu.RLock()
	path := e.path
	e.mu.RUnlock()
	if path == "" {
		return
	}
	if _, err := e.lspClient.SaveDocument(context.Background(), path); err != nil {
		log.Error("lsp save %s: %v", path, err)
	}
}

func (e *Editor) posToLSP(offset buffer.ByteOffset) lsp.Position {
	p := e.buf.OffsetToPointUTF16(offset)
	return lsp.Position{Line: int(p.Line), Character: int(p.Column)}
}

// HasLSP reports whether the editor has a language server client attached.
func (e *Editor) HasLSP() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lspClient != nil
}

// Completion requests completions at the primary cursor's position.
func (e *Editor) Completion(ctx context.Context) (*lsp.CompletionResult, error) {
	e.mu.RLock()
	client := e.lspClient
	path := e.path
	head := e.cursors.Primary().Head
	e.mu.RUnlock()
	if client == nil {
		return nil, ErrNoLSPServer
	}
	return client.Complete(ctx, path, e.posToLSP(head), "")
}

// Hover requests hover information at the primary cursor's position.
func (e *Editor) Hover(ctx context.Context) (*lsp.Hover, error) {
	e.mu.RLock()
	client := e.lspClient
	path := e.path
	head := e.cursors.Primary().Head
	e.mu.RUnlock()
	if client == nil {
		return nil, ErrNoLSPServer
	}
	return client.Hover(ctx, path, e.posToLSP(head))
}

// Definition requests the definition location(s) of the symbol at the
// primary cursor's position.
func (e *Editor) Definition(ctx context.Context) (*lsp.NavigationResult, error) {
	e.mu.RLock()
	client := e.lspClient
	path := e.path
	head := e.cursors.Primary().Head
	e.mu.RUnlock()
	if client == nil {
		return nil, ErrNoLSPServer
	}
	return client.GoToDefinition(ctx, path, e.posToLSP(head))
}

// References requests every reference to the symbol at the primary
// cursor's position.
func (e *Editor) References(ctx context.Context) (*lsp.NavigationResult, error) {
	e.mu.RLock()
	client := e.lspClient
	path := e.path
	head := e.cursors.Primary().Head
	e.mu.RUnlock()
	if client == nil {
		return nil, ErrNoLSPServer
	}
	return client.FindReferences(ctx, path, e.posToLSP(head))
}

// Diagnostics returns the LSP client's current diagnostics for this
// editor's file.
func (e *Editor) Diagnostics() []lsp.Diagnostic {
	e.mu.RLock()
	client := e.lspClient
	path := e.path
	e.mu.RUnlock()
	if client == nil {
		return nil
	}
	return client.Diagnostics(path)
}

// Format requests formatting edits for the whole document from the
// language server; callers apply the result through the editor's own edit
// operations so it goes through history and cursor rebasing like any other
// edit.
func (e *Editor) Format(ctx context.Context) (*lsp.FormatResult, error) {
	e.mu.RLock()
	client := e.lspClient
	path := e.path
	e.mu.RUnlock()
	if client == nil {
		return nil, ErrNoLSPServer
	}
	return client.Format(ctx, path)
}

// Rename requests a workspace-wide rename of the symbol at the primary
// cursor's position.
func (e *Editor) Rename(ctx context.Context, newName string) (*lsp.RenameResult, error) {
	e.mu.RLock()
	client := e.lspClient
	path := e.path
	head := e.cursors.Primary().Head
	e.mu.RUnlock()
	if client == nil {
		return nil, ErrNoLSPServer
	}
	return client.Rename(ctx, path, e.posToLSP(head), newName)
}
