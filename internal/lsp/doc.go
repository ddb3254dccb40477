// Package lsp provides Language Server Protocol client integration: it
// enables intelligent code features by communicating with external
// language servers (gopls, pylsp, typescript-language-server, etc.),
// abstracting the JSON-RPC transport, server lifecycle, and protocol
// negotiation behind a small Provider surface.
//
// # Architecture
//
// The package is organized around these core components:
//
//   - Client: High-level interface for LSP operations
//   - Manager: Manages multiple language server lifecycles
//   - Server: Single server connection and communication
//   - Transport: JSON-RPC 2.0 protocol implementation
//
// # Quick Start
//
// Create and start the LSP client:
//
//	client := lsp.NewClient(lsp.WithWorkspaceRoot("/path/to/project"))
//
//	if err := client.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Shutdown(ctx)
//
//	// Open a document
//	client.OpenDocument(ctx, "/path/to/file.go", content)
//
//	// Request completions
//	result, err := client.Complete(ctx, "/path/to/file.go", lsp.Position{Line: 10, Character: 5}, "")
//
// # Server Configuration
//
// Servers are configured per language ID:
//
//	client := lsp.NewClient(lsp.WithServers(map[string]lsp.ServerConfig{
//	    "go": {
//	        Command: "gopls",
//	        Args:    []string{"serve"},
//	    },
//	    "rust": {
//	        Command: "rust-analyzer",
//	    },
//	}))
//
// # Features
//
// The LSP client supports:
//   - Code completion with filtering and sorting
//   - Hover information
//   - Go-to-definition/type-definition
//   - Find references
//   - Document and workspace symbols
//   - Real-time diagnostics (errors, warnings)
//   - Code actions (quick fixes, refactorings)
//   - Document formatting
//   - Symbol renaming
//   - Signature help
//
// # Multi-Server Support
//
// The Manager handles multiple concurrent language servers. Servers are started
// lazily by the first document open or request for their language, and are
// shut down together by Manager.Shutdown.
//
// # Crash Recovery
//
// A Manager built with WithSupervision runs each server under a Supervisor,
// which restarts a crashed server with exponential backoff and re-opens the
// documents tracked through Supervisor.OpenDocument. Manager opens documents
// on the Server directly, so none are tracked for re-opening, and Client
// builds its Manager without supervision.
//
// # Thread Safety
//
// The Client and Manager are safe for concurrent use. Individual Server instances
// use internal locking for thread safety.
//
// # Integration
//
// The editor facade holds a Client (editor.WithLSPManager): it opens the
// document on load, sends the whole buffer text through ChangeDocument
// after each change, and calls the Client's request methods on demand.
// Provider is a byte-offset wrapper over a Client; the editor does not use
// it.
package lsp
