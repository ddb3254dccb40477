package host

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/texture/internal/config"
	"github.com/dshills/texture/internal/editor"
	"github.com/dshills/texture/internal/highlight"
	"github.com/dshills/texture/internal/lsp"
	"github.com/dshills/texture/internal/logging"
)

var log = logging.New("host")

// Manager maps editor ids to *editor.Editor behind one reader-writer
// lock, shared by every editor the host opens.
// A Highlighter is shared across editors so the tree-sitter parser/query
// cache amortizes across documents of the same language. A single
// lsp.Client is shared too, the same way: one process per language, routed
// across every editor that touches a file of that language.
type Manager struct {
	mu          sync.RWMutex
	editors     map[uuid.UUID]*editor.Editor
	highlighter *highlight.Highlighter
	defaults    config.EditorConfig
	lspClient   *lsp.Client
}

// NewManager constructs an empty editor map using cfg as the default
// configuration for editors created without an explicit override. When
// cfg.LSPServers is non-empty an lsp.Client is started eagerly so editors
// created afterward can mirror their buffers to it immediately.
func NewManager(cfg config.EditorConfig) *Manager {
	m := &Manager{
		editors:     make(map[uuid.UUID]*editor.Editor),
		highlighter: highlight.NewHighlighter(),
		defaults:    cfg,
	}

	if len(cfg.LSPServers) > 0 {
		servers := make(map[string]lsp.ServerConfig, len(cfg.LSPServers))
		for lang, sc := range cfg.LSPServers {
			server := lsp.ServerConfig{Command: sc.Command, Args: sc.Args}
			for path, value := range sc.Options {
				server = server.WithInitializationOption(path, value)
			}
			servers[lang] = server
		}
		client := lsp.NewClient(lsp.WithServers(servers))
		if err := client.Start(context.Background()); err != nil {
			log.Error("start lsp client: %v", err)
		} else {
			m.lspClient = client
		}
	}

	return m
}

// Shutdown stops the shared LSP client, if one was started. Safe to call
// even when no client is running.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.RLock()
	client := m.lspClient
	m.mu.RUnlock()
	if client == nil {
		return nil
	}
	return client.Shutdown(ctx)
}

// lookup takes the map's read lock to fetch an editor by id; it does not
// hold the lock across the editor's own operation, since the editor
// serializes its own mutations independently.
func (m *Manager) lookup(id uuid.UUID) (*editor.Editor, error) {
	m.mu.RLock()
	e, ok := m.editors[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrEditorNotFound
	}
	return e, nil
}

// CreateEditor implements the `create_editor` command: it allocates a new
// Editor with an optional configuration override and registers it under
// its own id.
func (m *Manager) CreateEditor(cfg *config.EditorConfig) uuid.UUID {
	opts := []editor.Option{editor.WithHighlighter(m.highlighter)}
	if cfg != nil {
		opts = append(opts, editor.WithConfig(*cfg))
	} else {
		opts = append(opts, editor.WithConfig(m.defaults))
	}
	if m.lspClient != nil {
		opts = append(opts, editor.WithLSPManager(m.lspClient))
	}
	e := editor.New(opts...)

	m.mu.Lock()
	m.editors[e.ID] = e
	m.mu.Unlock()

	return e.ID
}

// OpenFile implements `open_file(id?, path)`: when id is nil a new editor
// is created first; the file is then loaded into it. The id used (new or
// existing) is always returned so the host can track it even on error.
func (m *Manager) OpenFile(id *uuid.UUID, path string) (uuid.UUID, error) {
	var e *editor.Editor
	var editorID uuid.UUID

	if id == nil {
		editorID = m.CreateEditor(nil)
		e, _ = m.lookup(editorID)
	} else {
		editorID = *id
		var err error
		e, err = m.lookup(editorID)
		if err != nil {
			return editorID, err
		}
	}

	if err := e.LoadFile(path); err != nil {
		return editorID, err
	}
	return editorID, nil
}

// CloseEditor implements `close_editor(id)`: it removes the editor from
// the map. Any in-flight operation already holding a *editor.Editor
// reference completes normally; the map simply stops handing out new
// references to it.
func (m *Manager) CloseEditor(id uuid.UUID) error {
	m.mu.Lock()
	_, ok := m.editors[id]
	delete(m.editors, id)
	m.mu.Unlock()
	if !ok {
		return ErrEditorNotFound
	}
	return nil
}

// Editor returns the live *editor.Editor for id, for callers (such as the
// LSP mirror wiring) that need the facade itself rather than one
// id-scoped command.
func (m *Manager) Editor(id uuid.UUID) (*editor.Editor, error) {
	return m.lookup(id)
}

// Ids returns a snapshot of the currently open editor ids.
func (m *Manager) Ids() []uuid.UUID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]uuid.UUID, 0, len(m.editors))
	for id := range m.editors {
		ids = append(ids, id)
	}
	return ids
}

// Len reports the number of currently open editors.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.editors)
}
