package highlight

import (
	"context"
	"fmt"
	"sync"

	sitter "github.com/mitjafelicijan/go-tree-sitter"

	"github.com/dshills/texture/internal/buffer"
	"github.com/dshills/texture/internal/logging"
)

var log = logging.New("highlight")

// Highlighter produces syntax Tokens for a buffer's content, one language
// grammar at a time. A single Highlighter is shared across every open
// buffer; each buffer's results are cached independently by the key
// passed to Tokens.
type Highlighter struct {
	cache *cache

	mu      sync.Mutex
	parsers map[Language]*sitter.Parser
	queries map[Language]*sitter.Query
}

// NewHighlighter constructs a Highlighter with a default-sized token
// cache.
func NewHighlighter() *Highlighter {
	return &Highlighter{
		cache:   newCache(defaultCacheCapacity),
		parsers: make(map[Language]*sitter.Parser),
		queries: make(map[Language]*sitter.Query),
	}
}

// Tokens returns the resolved, non-overlapping token list for buf under
// lang, using key (typically the buffer's document URI) to address the
// per-buffer cache slot. An unsupported language yields an empty token
// list rather than an error — callers display plain text.
func (h *Highlighter) Tokens(ctx context.Context, key string, lang Language, buf *buffer.Buffer) ([]Token, error) {
	version := buf.Version()
	if tokens, ok := h.cache.Get(key, version); ok {
		return tokens, nil
	}

	if !Supported(lang) {
		h.cache.Put(key, version, nil)
		return nil, nil
	}

	query, err := h.queryFor(lang)
	if err != nil {
		return nil, err
	}

	source := []byte(buf.Text())
	tree, err := h.parse(ctx, lang, source)
	if err != nil {
		return nil, fmt.Errorf("highlight: parse %s: %w", lang, err)
	}

	tokens := extractTokens(buf, query, tree.RootNode(), source)
	tokens = resolveOverlaps(tokens)

	h.cache.Put(key, version, tokens)
	return tokens, nil
}

// InvalidateBuffer drops any cached tokens for key, e.g. when a buffer is
// closed.
func (h *Highlighter) InvalidateBuffer(key string) {
	h.cache.Invalidate(key)
}

func (h *Highlighter) parse(ctx context.Context, lang Language, source []byte) (*sitter.Tree, error) {
	h.mu.Lock()
	parser, ok := h.parsers[lang]
	if !ok {
		parser = sitter.NewParser()
		parser.SetLanguage(grammars[lang].lang)
		h.parsers[lang] = parser
	}
	h.mu.Unlock()

	// go-tree-sitter parsers aren't safe for concurrent ParseCtx calls on
	// the same instance; the highlighter is called from one editor's
	// command loop at a time in practice, but guard it anyway.
	h.mu.Lock()
	defer h.mu.Unlock()
	return parser.ParseCtx(ctx, nil, source)
}

func (h *Highlighter) queryFor(lang Language) (*sitter.Query, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if q, ok := h.queries[lang]; ok {
		return q, nil
	}
	g := grammars[lang]
	q, err := sitter.NewQuery([]byte(g.query), g.lang)
	if err != nil {
		return nil, fmt.Errorf("highlight: compile query for %s: %w", lang, err)
	}
	h.queries[lang] = q
	return q, nil
}

// extractTokens walks every match of query against root, mapping captures
// to Tokens via captureTypes. Unrecognized capture names are skipped.
func extractTokens(buf *buffer.Buffer, query *sitter.Query, root *sitter.Node, source []byte) []Token {
	qc := sitter.NewQueryCursor()
	qc.Exec(query, root)

	var tokens []Token
	warned := make(map[string]bool)
	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, capture := range match.Captures {
			name := query.CaptureNameForId(capture.Index)
			typ, ok := typeForCapture(name)
			if !ok {
				if !warned[name] {
					warned[name] = true
					log.Warn("skipping unknown capture %q", name)
				}
				continue
			}
			tokens = append(tokens, tokenFromNode(buf, capture.Node, typ, source))
		}
	}
	return tokens
}

func tokenFromNode(buf *buffer.Buffer, node *sitter.Node, typ Type, source []byte) Token {
	start := node.StartByte()
	end := node.EndByte()
	byteRange := buffer.Range{Start: buffer.ByteOffset(start), End: buffer.ByteOffset(end)}

	startPos, _ := buf.OffsetToPosition(byteRange.Start)
	endPos, _ := buf.OffsetToPosition(byteRange.End)

	text := ""
	if int(end) <= len(source) {
		text = string(source[start:end])
	}

	return Token{
		Range:      buffer.PositionRange{Start: startPos, End: endPos},
		ByteRange:  byteRange,
		Type:       typ,
		Text:       text,
		Precedence: typ.Precedence(),
	}
}
