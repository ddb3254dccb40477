package highlight

import (
	sitter "github.com/mitjafelicijan/go-tree-sitter"
	"github.com/mitjafelicijan/go-tree-sitter/bash"
	"github.com/mitjafelicijan/go-tree-sitter/c"
	"github.com/mitjafelicijan/go-tree-sitter/golang"
	"github.com/mitjafelicijan/go-tree-sitter/javascript"
	"github.com/mitjafelicijan/go-tree-sitter/python"
	"github.com/mitjafelicijan/go-tree-sitter/typescript/typescript"
)

// Language identifies one of the grammars this package knows how to
// highlight. The set is representative, not exhaustive; an unrecognized
// filename extension or an unregistered language yields no tokens rather
// than an error (see Highlighter.Tokens).
type Language string

const (
	LangGo         Language = "go"
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangBash       Language = "bash"
	LangC          Language = "c"
)

type grammar struct {
	lang  *sitter.Language
	query string
}

var grammars = map[Language]grammar{
	LangGo:         {lang: golang.GetLanguage(), query: goQuery},
	LangPython:     {lang: python.GetLanguage(), query: pythonQuery},
	LangJavaScript: {lang: javascript.GetLanguage(), query: javascriptQuery},
	LangTypeScript: {lang: typescript.GetLanguage(), query: javascriptQuery},
	LangBash:       {lang: bash.GetLanguage(), query: bashQuery},
	LangC:          {lang: c.GetLanguage(), query: cQuery},
}

// Supported reports whether lang has a registered grammar and capture query.
func Supported(lang Language) bool {
	_, ok := grammars[lang]
	return ok
}

// DetectLanguage maps a filename extension to a Language, mirroring the
// common editor convention of dispatching on suffix. Returns "" (no
// highlighting) when the extension isn't recognized.
func DetectLanguage(filename string) Language {
	switch extOf(filename) {
	case "go":
		return LangGo
	case "py":
		return LangPython
	case "js", "jsx", "mjs", "cjs":
		return LangJavaScript
	case "ts", "tsx":
		return LangTypeScript
	case "sh", "bash":
		return LangBash
	case "c", "h":
		return LangC
	default:
		return ""
	}
}

func extOf(filename string) string {
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '.' {
			return filename[i+1:]
		}
		if filename[i] == '/' {
			break
		}
	}
	return ""
}
