// Package config provides the editor-facing settings surface: EditorConfig,
// its built-in defaults, and a TOML loader that merges a settings file over
// those defaults field by field (and table by table, for lsp_servers and
// comment_prefixes) rather than replacing them wholesale.
package config
