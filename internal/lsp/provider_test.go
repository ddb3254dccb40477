package lsp

import (
	"testing"
	"time"
)

func TestNewProvider(t *testing.T) {
	client := NewClient()
	provider := NewProvider(client)

	if provider == nil {
		t.Fatal("expected non-nil provider")
	}
	if provider.client != client {
		t.Error("expected provider to wrap client")
	}
	if provider.timeout != 10*time.Second {
		t.Errorf("expected default timeout 10s, got %v", provider.timeout)
	}
}

func TestNewProviderNilClientPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil client")
		}
	}()
	NewProvider(nil)
}

func TestNewProviderWithOptions(t *testing.T) {
	client := NewClient()
	provider := NewProvider(client, WithProviderTimeout(30*time.Second))

	if provider.timeout != 30*time.Second {
		t.Errorf("expected timeout 30s, got %v", provider.timeout)
	}
}

func TestProviderSetDocumentContent(t *testing.T) {
	client := NewClient()
	provider := NewProvider(client)

	content := "package main\n\nfunc main() {}\n"
	provider.SetDocumentContent("/test/file.go", content)

	got := provider.getContent("/test/file.go")
	if got != content {
		t.Errorf("expected content %q, got %q", content, got)
	}
}

func TestProviderClearDocumentContent(t *testing.T) {
	client := NewClient()
	provider := NewProvider(client)

	provider.SetDocumentContent("/test/file.go", "content")
	provider.ClearDocumentContent("/test/file.go")

	got := provider.getContent("/test/file.go")
	if got != "" {
		t.Errorf("expected empty content after clear, got %q", got)
	}
}

func TestProviderIsAvailable(t *testing.T) {
	client := NewClient()
	provider := NewProvider(client)

	if provider.IsAvailable("/test/file.go") {
		t.Error("expected IsAvailable to return false for non-started client")
	}
}

func TestProviderExtractPrefix(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		offset   int
		expected string
	}{
		{"simple word", "hello world", 5, "hello"},
		{"partial word", "fmt.Print", 9, "Print"},
		{"empty at start", "hello", 0, ""},
		{"after dot", "obj.", 4, ""},
		{"with underscore", "my_var", 6, "my_var"},
		{"with numbers", "var123", 6, "var123"},
		{"empty content", "", 0, ""},
		{"offset beyond content", "short", 100, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := providerExtractPrefix(tt.content, tt.offset)
			if got != tt.expected {
				t.Errorf("providerExtractPrefix(%q, %d) = %q, want %q",
					tt.content, tt.offset, got, tt.expected)
			}
		})
	}
}

func TestProviderIsWordChar(t *testing.T) {
	tests := []struct {
		char     rune
		expected bool
	}{
		{'a', true}, {'z', true}, {'A', true}, {'Z', true},
		{'0', true}, {'9', true}, {'_', true},
		{'.', false}, {' ', false}, {'(', false}, {'-', false},
	}

	for _, tt := range tests {
		got := providerIsWordChar(tt.char)
		if got != tt.expected {
			t.Errorf("providerIsWordChar(%q) = %v, want %v", tt.char, got, tt.expected)
		}
	}
}

func TestParseTextEditFromMap(t *testing.T) {
	m := map[string]any{
		"newText": "replaced",
		"range": map[string]any{
			"start": map[string]any{"line": float64(10), "character": float64(5)},
			"end":   map[string]any{"line": float64(10), "character": float64(15)},
		},
	}

	edit := parseTextEditFromMap(m)

	if edit.NewText != "replaced" {
		t.Errorf("expected new text 'replaced', got %q", edit.NewText)
	}
	if edit.Range.Start.Line != 10 {
		t.Errorf("expected start line 10, got %d", edit.Range.Start.Line)
	}
	if edit.Range.Start.Character != 5 {
		t.Errorf("expected start character 5, got %d", edit.Range.Start.Character)
	}
}

func TestParsePositionFromMap(t *testing.T) {
	m := map[string]any{"line": float64(42), "character": float64(13)}

	pos := parsePositionFromMap(m)

	if pos.Line != 42 {
		t.Errorf("expected line 42, got %d", pos.Line)
	}
	if pos.Character != 13 {
		t.Errorf("expected character 13, got %d", pos.Character)
	}
}

func TestProviderContentCacheConcurrency(t *testing.T) {
	client := NewClient()
	provider := NewProvider(client)

	done := make(chan bool)

	go func() {
		for i := 0; i < 100; i++ {
			provider.SetDocumentContent("/file1.go", "content1")
		}
		done <- true
	}()
	go func() {
		for i := 0; i < 100; i++ {
			provider.SetDocumentContent("/file2.go", "content2")
		}
		done <- true
	}()
	go func() {
		for i := 0; i < 100; i++ {
			_ = provider.getContent("/file1.go")
			_ = provider.getContent("/file2.go")
		}
		done <- true
	}()
	go func() {
		for i := 0; i < 100; i++ {
			provider.ClearDocumentContent("/file1.go")
		}
		done <- true
	}()

	for i := 0; i < 4; i++ {
		<-done
	}
}
