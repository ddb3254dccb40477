package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// IndentStyle chooses between tab and space indentation.
type IndentStyle string

const (
	IndentTabs   IndentStyle = "tabs"
	IndentSpaces IndentStyle = "spaces"
)

// LSPServerConfig is one entry of the `[lsp_servers.<language>]` table: the
// command used to spawn a language server for that language, plus any
// initialization options to send it. Option keys may be dotted paths into
// the server's option schema ("hints.assignVariableTypes").
type LSPServerConfig struct {
	Command string         `toml:"command"`
	Args    []string       `toml:"args"`
	Options map[string]any `toml:"options"`
}

// EditorConfig is the editor-facing configuration surface: everything an
// Editor Facade instance consults while running, as opposed to the host
// shell's own settings (which are out of scope here).
type EditorConfig struct {
	TabWidth               int                        `toml:"tab_width"`
	IndentStyle            IndentStyle                `toml:"indent_style"`
	IndentWidth            int                        `toml:"indent_width"`
	AutoIndent             bool                       `toml:"auto_indent"`
	AutoCloseBrackets      bool                       `toml:"auto_close_brackets"`
	TrimTrailingWhitespace bool                       `toml:"trim_trailing_whitespace"`
	EnsureFinalNewline     bool                       `toml:"ensure_final_newline"`
	Theme                  string                     `toml:"theme"`
	PageSize               uint32                     `toml:"page_size"`
	MaxUndoEntries         int                        `toml:"max_undo_entries"`
	WrapAroundSearch       bool                       `toml:"wrap_around_search"`
	LSPServers             map[string]LSPServerConfig `toml:"lsp_servers"`
	CommentPrefixes        map[string]string          `toml:"comment_prefixes"`
}

// DefaultEditorConfig returns the configuration an editor starts with
// before any file is loaded.
func DefaultEditorConfig() EditorConfig {
	return EditorConfig{
		TabWidth:               4,
		IndentStyle:            IndentSpaces,
		IndentWidth:            4,
		AutoIndent:             true,
		AutoCloseBrackets:      true,
		TrimTrailingWhitespace: false,
		EnsureFinalNewline:     true,
		Theme:                  "default-dark",
		PageSize:               20,
		MaxUndoEntries:         1000,
		WrapAroundSearch:       true,
		LSPServers: map[string]LSPServerConfig{
			"go":         {Command: "gopls"},
			"python":     {Command: "pylsp"},
			"javascript": {Command: "typescript-language-server", Args: []string{"--stdio"}},
			"typescript": {Command: "typescript-language-server", Args: []string{"--stdio"}},
		},
		CommentPrefixes: map[string]string{
			"go":         "//",
			"javascript": "//",
			"typescript": "//",
			"c":          "//",
			"python":     "#",
			"bash":       "#",
		},
	}
}

// LoadEditorConfig reads path as TOML and merges it over DefaultEditorConfig.
// A missing file is not an error — it yields the defaults unchanged.
// Table fields (lsp_servers, comment_prefixes) are merged key-by-key rather
// than replaced wholesale, so a file that overrides one language's server
// doesn't drop the rest of the defaults.
func LoadEditorConfig(path string) (EditorConfig, error) {
	cfg := DefaultEditorConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var overlay EditorConfig
	if err := toml.Unmarshal(data, &overlay); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	mergeEditorConfig(&cfg, overlay, data)
	return cfg, nil
}

// mergeEditorConfig applies overlay's scalar fields onto cfg wherever they
// were present in raw, and merges the two table fields key-by-key.
func mergeEditorConfig(cfg *EditorConfig, overlay EditorConfig, raw []byte) {
	present := presentKeys(raw)

	if present["tab_width"] {
		cfg.TabWidth = overlay.TabWidth
	}
	if present["indent_style"] {
		cfg.IndentStyle = overlay.IndentStyle
	}
	if present["indent_width"] {
		cfg.IndentWidth = overlay.IndentWidth
	}
	if present["auto_indent"] {
		cfg.AutoIndent = overlay.AutoIndent
	}
	if present["auto_close_brackets"] {
		cfg.AutoCloseBrackets = overlay.AutoCloseBrackets
	}
	if present["trim_trailing_whitespace"] {
		cfg.TrimTrailingWhitespace = overlay.TrimTrailingWhitespace
	}
	if present["ensure_final_newline"] {
		cfg.EnsureFinalNewline = overlay.EnsureFinalNewline
	}
	if present["theme"] {
		cfg.Theme = overlay.Theme
	}
	if present["page_size"] {
		cfg.PageSize = overlay.PageSize
	}
	if present["max_undo_entries"] {
		cfg.MaxUndoEntries = overlay.MaxUndoEntries
	}
	if present["wrap_around_search"] {
		cfg.WrapAroundSearch = overlay.WrapAroundSearch
	}

	if cfg.LSPServers == nil {
		cfg.LSPServers = make(map[string]LSPServerConfig)
	}
	for lang, server := range overlay.LSPServers {
		cfg.LSPServers[lang] = server
	}

	if cfg.CommentPrefixes == nil {
		cfg.CommentPrefixes = make(map[string]string)
	}
	for lang, prefix := range overlay.CommentPrefixes {
		cfg.CommentPrefixes[lang] = prefix
	}
}

// presentKeys does a shallow top-level-key scan of a TOML document,
// sufficient to distinguish "field explicitly set to its zero value" from
// "field absent" without round-tripping through reflection.
func presentKeys(raw []byte) map[string]bool {
	var generic map[string]any
	if err := toml.Unmarshal(raw, &generic); err != nil {
		return nil
	}
	present := make(map[string]bool, len(generic))
	for k := range generic {
		present[k] = true
	}
	return present
}

// CommentPrefix returns the configured line-comment prefix for language,
// falling back to "//" when the language has no registered entry.
func (c EditorConfig) CommentPrefix(language string) string {
	if p, ok := c.CommentPrefixes[language]; ok {
		return p
	}
	return "//"
}

// IndentUnit returns the literal text inserted by one level of indentation.
func (c EditorConfig) IndentUnit() string {
	if c.IndentStyle == IndentTabs {
		return "\t"
	}
	width := c.IndentWidth
	if width <= 0 {
		width = 4
	}
	out := make([]byte, width)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}
