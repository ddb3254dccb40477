package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultEditorConfig(t *testing.T) {
	cfg := DefaultEditorConfig()
	if cfg.TabWidth != 4 {
		t.Errorf("expected default tab width 4, got %d", cfg.TabWidth)
	}
	if cfg.IndentStyle != IndentSpaces {
		t.Errorf("expected default indent style spaces, got %v", cfg.IndentStyle)
	}
	if !cfg.AutoIndent {
		t.Error("expected auto indent enabled by default")
	}
}

func TestLoadEditorConfigMissingFileIsNotError(t *testing.T) {
	cfg, err := LoadEditorConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := DefaultEditorConfig()
	if cfg.TabWidth != want.TabWidth || cfg.Theme != want.Theme || cfg.IndentStyle != want.IndentStyle {
		t.Error("expected defaults when config file is missing")
	}
	if len(cfg.LSPServers) != len(want.LSPServers) || len(cfg.CommentPrefixes) != len(want.CommentPrefixes) {
		t.Error("expected default tables when config file is missing")
	}
}

func TestLoadEditorConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "editor.toml")
	contents := `
tab_width = 2
indent_style = "tabs"
theme = "default-light"

[lsp_servers.rust]
command = "rust-analyzer"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadEditorConfig(path)
	if err != nil {
		t.Fatalf("LoadEditorConfig: %v", err)
	}
	if cfg.TabWidth != 2 {
		t.Errorf("expected tab width 2, got %d", cfg.TabWidth)
	}
	if cfg.IndentStyle != IndentTabs {
		t.Errorf("expected indent style tabs, got %v", cfg.IndentStyle)
	}
	if cfg.Theme != "default-light" {
		t.Errorf("expected theme override, got %q", cfg.Theme)
	}
	if cfg.LSPServers["rust"].Command != "rust-analyzer" {
		t.Errorf("expected rust lsp server override, got %+v", cfg.LSPServers["rust"])
	}
	if cfg.LSPServers["go"].Command != "gopls" {
		t.Error("expected untouched default lsp servers to survive the merge")
	}
}

func TestEditorConfigIndentUnit(t *testing.T) {
	cfg := DefaultEditorConfig()
	cfg.IndentStyle = IndentTabs
	if cfg.IndentUnit() != "\t" {
		t.Errorf("expected tab indent unit, got %q", cfg.IndentUnit())
	}

	cfg.IndentStyle = IndentSpaces
	cfg.IndentWidth = 3
	if cfg.IndentUnit() != "   " {
		t.Errorf("expected 3-space indent unit, got %q", cfg.IndentUnit())
	}
}

func TestEditorConfigCommentPrefix(t *testing.T) {
	cfg := DefaultEditorConfig()
	if cfg.CommentPrefix("python") != "#" {
		t.Errorf("expected python comment prefix '#', got %q", cfg.CommentPrefix("python"))
	}
	if cfg.CommentPrefix("unknown-language") != "//" {
		t.Errorf("expected fallback comment prefix '//', got %q", cfg.CommentPrefix("unknown-language"))
	}
}
