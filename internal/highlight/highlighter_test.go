package highlight

import (
	"context"
	"testing"

	"github.com/dshills/texture/internal/buffer"
)

func TestHighlighterTokensGo(t *testing.T) {
	buf := buffer.NewBufferFromString("package main\n\nfunc main() {\n\treturn\n}\n")
	h := NewHighlighter()

	tokens, err := h.Tokens(context.Background(), "file:///main.go", LangGo, buf)
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	if len(tokens) == 0 {
		t.Fatal("expected at least one token for a non-trivial Go file")
	}

	foundFunc := false
	for _, tok := range tokens {
		if tok.Type == TypeFunction && tok.Text == "main" {
			foundFunc = true
		}
	}
	if !foundFunc {
		t.Fatal("expected a function token for main")
	}
}

func TestHighlighterCachesByVersion(t *testing.T) {
	buf := buffer.NewBufferFromString("package main\n")
	h := NewHighlighter()
	ctx := context.Background()

	first, err := h.Tokens(ctx, "file:///a.go", LangGo, buf)
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	second, ok := h.cache.Get("file:///a.go", buf.Version())
	if !ok {
		t.Fatal("expected cache hit after first Tokens call")
	}
	if len(first) != len(second) {
		t.Fatalf("cached token count mismatch: %d vs %d", len(first), len(second))
	}

	if _, err := buf.Insert(buf.Len(), "var x = 1\n"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, ok := h.cache.Get("file:///a.go", buf.Version()); ok {
		t.Fatal("expected cache miss after buffer version changed")
	}
}

func TestHighlighterUnsupportedLanguageReturnsEmpty(t *testing.T) {
	buf := buffer.NewBufferFromString("anything")
	h := NewHighlighter()
	tokens, err := h.Tokens(context.Background(), "file:///x.unknown", Language("cobol"), buf)
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	if len(tokens) != 0 {
		t.Fatalf("expected no tokens for unsupported language, got %d", len(tokens))
	}
}

func TestDetectLanguage(t *testing.T) {
	cases := map[string]Language{
		"main.go":      LangGo,
		"script.py":    LangPython,
		"app.ts":       LangTypeScript,
		"index.js":     LangJavaScript,
		"build.sh":     LangBash,
		"main.c":       LangC,
		"README.md":    "",
		"no-extension": "",
	}
	for name, want := range cases {
		if got := DetectLanguage(name); got != want {
			t.Errorf("DetectLanguage(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestResolveOverlapsPrefersHigherPrecedence(t *testing.T) {
	tokens := []Token{
		{ByteRange: buffer.Range{Start: 0, End: 10}, Type: TypeComment, Precedence: TypeComment.Precedence()},
		{ByteRange: buffer.Range{Start: 2, End: 5}, Type: TypeKeyword, Precedence: TypeKeyword.Precedence()},
	}
	resolved := resolveOverlaps(tokens)
	if len(resolved) != 1 {
		t.Fatalf("expected the lower-precedence overlapping token to be dropped, got %d tokens", len(resolved))
	}
	if resolved[0].Type != TypeComment {
		t.Fatalf("expected comment (higher precedence) to win, got %v", resolved[0].Type)
	}
}
