package lsp

import (
	"context"
	"sync"
	"time"
	"unicode"
)

// Provider is the editor-facing surface of a Client: it accepts byte
// offsets into a cached document and returns native LSP result types,
// hiding the position-conversion and content-cache bookkeeping every
// call needs.
//
// Provider is safe for concurrent use.
type Provider struct {
	mu     sync.RWMutex
	client *Client

	// contentCache maps a buffer path to its last-known text, needed to
	// convert byte offsets to LSP line/character positions.
	contentCache map[string]string

	timeout time.Duration
}

// ProviderOption configures the Provider.
type ProviderOption func(*Provider)

// WithProviderTimeout sets the request timeout.
func WithProviderTimeout(d time.Duration) ProviderOption {
	return func(p *Provider) {
		p.timeout = d
	}
}

// NewProvider creates a new LSP provider wrapping the given client.
// Panics if client is nil.
func NewProvider(client *Client, opts ...ProviderOption) *Provider {
	if client == nil {
		panic("lsp: NewProvider called with nil client")
	}

	p := &Provider{
		client:       client,
		contentCache: make(map[string]string),
		timeout:      10 * time.Second,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// SetDocumentContent updates the cached content for a document. This is
// needed for accurate position/offset conversions.
func (p *Provider) SetDocumentContent(path, content string) {
	p.mu.Lock()
	p.contentCache[path] = content
	p.mu.Unlock()
}

// ClearDocumentContent removes cached content for a document.
func (p *Provider) ClearDocumentContent(path string) {
	p.mu.Lock()
	delete(p.contentCache, path)
	p.mu.Unlock()
}

func (p *Provider) getContent(path string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.contentCache[path]
}

func (p *Provider) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), p.timeout)
}

// Completions returns completion items at the given byte offset.
func (p *Provider) Completions(bufferPath string, offset int) ([]CompletionItem, error) {
	ctx, cancel := p.context()
	defer cancel()

	content := p.getContent(bufferPath)
	pos := ByteOffsetToLSPPosition(content, offset)
	prefix := providerExtractPrefix(content, offset)

	result, err := p.client.Complete(ctx, bufferPath, pos, prefix)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	return result.Items, nil
}

// Diagnostics returns the last-published diagnostics for the given file.
func (p *Provider) Diagnostics(bufferPath string) []Diagnostic {
	return p.client.Diagnostics(bufferPath)
}

// Definition returns the definition location for the symbol at offset.
func (p *Provider) Definition(bufferPath string, offset int) (*Location, error) {
	ctx, cancel := p.context()
	defer cancel()

	content := p.getContent(bufferPath)
	pos := ByteOffsetToLSPPosition(content, offset)

	result, err := p.client.GoToDefinition(ctx, bufferPath, pos)
	if err != nil {
		return nil, err
	}
	if result == nil || len(result.Locations) == 0 {
		return nil, nil
	}
	loc := result.Locations[0]
	return &loc, nil
}

// References returns all references to the symbol at offset.
func (p *Provider) References(bufferPath string, offset int) ([]Location, error) {
	ctx, cancel := p.context()
	defer cancel()

	content := p.getContent(bufferPath)
	pos := ByteOffsetToLSPPosition(content, offset)

	result, err := p.client.FindReferences(ctx, bufferPath, pos)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	return result.Locations, nil
}

// Hover returns hover information for the symbol at offset.
func (p *Provider) Hover(bufferPath string, offset int) (*Hover, error) {
	ctx, cancel := p.context()
	defer cancel()

	content := p.getContent(bufferPath)
	pos := ByteOffsetToLSPPosition(content, offset)
	return p.client.Hover(ctx, bufferPath, pos)
}

// SignatureHelp returns signature help for the call at offset.
func (p *Provider) SignatureHelp(bufferPath string, offset int) (*SignatureHelpResult, error) {
	ctx, cancel := p.context()
	defer cancel()

	content := p.getContent(bufferPath)
	pos := ByteOffsetToLSPPosition(content, offset)
	return p.client.SignatureHelp(ctx, bufferPath, pos)
}

// Format formats the whole document when either offset is negative, and
// the byte range between startOffset and endOffset otherwise.
func (p *Provider) Format(bufferPath string, startOffset, endOffset int) (*FormatResult, error) {
	ctx, cancel := p.context()
	defer cancel()

	if startOffset < 0 || endOffset < 0 {
		return p.client.Format(ctx, bufferPath)
	}

	content := p.getContent(bufferPath)
	rng := Range{
		Start: ByteOffsetToLSPPosition(content, startOffset),
		End:   ByteOffsetToLSPPosition(content, endOffset),
	}
	return p.client.FormatRange(ctx, bufferPath, rng)
}

// CodeActions returns available code actions for a byte range.
func (p *Provider) CodeActions(bufferPath string, startOffset, endOffset int, diagnostics []Diagnostic) (*CodeActionResult, error) {
	ctx, cancel := p.context()
	defer cancel()

	content := p.getContent(bufferPath)
	rng := Range{
		Start: ByteOffsetToLSPPosition(content, startOffset),
		End:   ByteOffsetToLSPPosition(content, endOffset),
	}
	return p.client.CodeActions(ctx, bufferPath, rng, diagnostics)
}

// Rename renames the symbol at offset to newName, returning the
// resulting workspace edit's per-file text edits.
func (p *Provider) Rename(bufferPath string, offset int, newName string) (map[string][]TextEdit, error) {
	ctx, cancel := p.context()
	defer cancel()

	content := p.getContent(bufferPath)
	pos := ByteOffsetToLSPPosition(content, offset)

	result, err := p.client.Rename(ctx, bufferPath, pos, newName)
	if err != nil {
		return nil, err
	}
	if result == nil || result.Edit == nil {
		return nil, nil
	}

	edits := make(map[string][]TextEdit)
	for uri, changes := range result.Edit.Changes {
		path := URIToFilePath(uri)
		edits[path] = append(edits[path], changes...)
	}
	for _, docEditAny := range result.Edit.DocumentChanges {
		docEditMap, ok := docEditAny.(map[string]any)
		if !ok {
			continue
		}
		textDoc, ok := docEditMap["textDocument"].(map[string]any)
		if !ok {
			continue
		}
		uriVal, ok := textDoc["uri"].(string)
		if !ok {
			continue
		}
		path := URIToFilePath(DocumentURI(uriVal))
		editsArr, ok := docEditMap["edits"].([]any)
		if !ok {
			continue
		}
		for _, editAny := range editsArr {
			if editMap, ok := editAny.(map[string]any); ok {
				edits[path] = append(edits[path], parseTextEditFromMap(editMap))
			}
		}
	}
	return edits, nil
}

// IsAvailable returns true if an LSP server is available for the given file.
func (p *Provider) IsAvailable(bufferPath string) bool {
	return p.client.IsAvailable(bufferPath)
}

// providerExtractPrefix extracts the word prefix before the cursor for
// completion filtering. offset is a byte offset into content.
func providerExtractPrefix(content string, offset int) string {
	if content == "" || offset <= 0 || offset > len(content) {
		return ""
	}

	runes := []rune(content)
	runeOffset := 0
	byteCount := 0
	for i, r := range runes {
		if byteCount >= offset {
			runeOffset = i
			break
		}
		byteCount += len(string(r))
		if byteCount >= offset {
			runeOffset = i + 1
			break
		}
	}
	if byteCount < offset {
		runeOffset = len(runes)
	}

	start := runeOffset
	for start > 0 {
		if !providerIsWordChar(runes[start-1]) {
			break
		}
		start--
	}
	if start >= runeOffset {
		return ""
	}
	return string(runes[start:runeOffset])
}

func providerIsWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func parseTextEditFromMap(m map[string]any) TextEdit {
	edit := TextEdit{}
	if newText, ok := m["newText"].(string); ok {
		edit.NewText = newText
	}
	if rangeMap, ok := m["range"].(map[string]any); ok {
		edit.Range = parseRangeFromMap(rangeMap)
	}
	return edit
}

func parseRangeFromMap(m map[string]any) Range {
	rng := Range{}
	if startMap, ok := m["start"].(map[string]any); ok {
		rng.Start = parsePositionFromMap(startMap)
	}
	if endMap, ok := m["end"].(map[string]any); ok {
		rng.End = parsePositionFromMap(endMap)
	}
	return rng
}

func parsePositionFromMap(m map[string]any) Position {
	pos := Position{}
	if line, ok := m["line"].(float64); ok {
		pos.Line = int(line)
	}
	if char, ok := m["character"].(float64); ok {
		pos.Character = int(char)
	}
	return pos
}
