package editor

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/texture/internal/buffer"
	"github.com/dshills/texture/internal/config"
	"github.com/dshills/texture/internal/cursor"
	"github.com/dshills/texture/internal/highlight"
	"github.com/dshills/texture/internal/history"
	"github.com/dshills/texture/internal/logging"
	"github.com/dshills/texture/internal/lsp"
)

const maxMetricSamples = 100

var log = logging.New("editor")

// ViewState is the portion of presentation state the facade tracks on the
// host's behalf (scroll position, visible line range) without itself
// rendering anything.
type ViewState struct {
	ScrollLine   uint32
	ScrollColumn uint32
	VisibleLines uint32
}

// Editor composes a Buffer, a Cursor Manager, a themed Highlighter, and an
// undo/redo History behind a single read-write-locked facade.
type Editor struct {
	mu sync.RWMutex

	ID uuid.UUID

	buf         *buffer.Buffer
	cursors     *cursor.Manager
	history     *history.Stack
	highlighter *highlight.Highlighter
	theme       highlight.Theme
	language    highlight.Language

	config   config.EditorConfig
	readonly bool
	focused  bool
	view     ViewState

	path string

	searchResults []SearchMatch
	searchIndex   int

	durations []time.Duration

	listeners []EventListener

	lspClient *lsp.Client
}

// Option configures a new Editor.
type Option func(*Editor)

// WithConfig sets the editor's configuration.
func WithConfig(cfg config.EditorConfig) Option {
	return func(e *Editor) { e.config = cfg }
}

// WithHighlighter shares a Highlighter (and its cache) across editors.
func WithHighlighter(h *highlight.Highlighter) Option {
	return func(e *Editor) { e.highlighter = h }
}

// WithInitialContent seeds the buffer with text instead of starting empty.
func WithInitialContent(text string) Option {
	return func(e *Editor) { e.buf = buffer.NewBufferFromString(text) }
}

// New constructs an Editor ready for use.
func New(opts ...Option) *Editor {
	e := &Editor{
		ID:      uuid.New(),
		config:  config.DefaultEditorConfig(),
		focused: false,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.buf == nil {
		e.buf = buffer.NewBuffer()
	}
	e.cursors = cursor.NewManager(e.config.PageSize)
	e.history = history.NewStack(e.config.MaxUndoEntries)
	if e.highlighter == nil {
		e.highlighter = highlight.NewHighlighter()
	}
	theme, ok := highlight.ThemeByName(e.config.Theme)
	if !ok {
		theme = highlight.DefaultTheme
	}
	e.theme = theme
	return e
}

// Text returns the full buffer content.
func (e *Editor) Text() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Text()
}

// Version returns the buffer's current version.
func (e *Editor) Version() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Version()
}

// LineCount returns the number of lines in the buffer.
func (e *Editor) LineCount() uint32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.LineCount()
}

// CharCount returns the buffer's length in bytes.
func (e *Editor) CharCount() buffer.ByteOffset {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Len()
}

// TextRange returns the text between two positions.
func (e *Editor) TextRange(start, end buffer.Position) (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s, err := e.buf.PositionToOffset(start)
	if err != nil {
		return "", ErrInvalidPosition
	}
	en, err := e.buf.PositionToOffset(end)
	if err != nil {
		return "", ErrInvalidPosition
	}
	return e.buf.TextRange(s, en), nil
}

// Cursors returns a snapshot of the current cursor list.
func (e *Editor) Cursors() []cursor.Cursor {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursors.Cursors()
}

// Config returns the editor's current configuration.
func (e *Editor) Config() config.EditorConfig {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.config
}

// UpdateConfig replaces the editor's configuration and emits ConfigChanged.
func (e *Editor) UpdateConfig(cfg config.EditorConfig) {
	e.mu.Lock()
	e.config = cfg
	if theme, ok := highlight.ThemeByName(cfg.Theme); ok {
		e.theme = theme
	}
	e.mu.Unlock()
	e.emit(Event{Type: EventConfigChanged, Config: cfg})
}

// SetReadonly toggles the readonly flag.
func (e *Editor) SetReadonly(flag bool) {
	e.mu.Lock()
	e.readonly = flag
	e.mu.Unlock()
}

// Readonly reports the current readonly flag.
func (e *Editor) Readonly() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.readonly
}

// SetFocus toggles the focus flag.
func (e *Editor) SetFocus(flag bool) {
	e.mu.Lock()
	e.focused = flag
	e.mu.Unlock()
}

// Focused reports the current focus flag.
func (e *Editor) Focused() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.focused
}

// UpdateViewState replaces the tracked view state.
func (e *Editor) UpdateViewState(vs ViewState) {
	e.mu.Lock()
	e.view = vs
	e.mu.Unlock()
}

// ViewState returns the tracked view state.
func (e *Editor) ViewState() ViewState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.view
}

// SetLanguage sets the language used for syntax highlighting and emits
// LanguageChanged.
func (e *Editor) SetLanguage(lang highlight.Language) {
	e.mu.Lock()
	e.language = lang
	e.mu.Unlock()
	e.emit(Event{Type: EventLanguageChanged, Language: lang})
}

// Language returns the editor's current highlighting language.
func (e *Editor) Language() highlight.Language {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.language
}

// Tokens returns the themed syntax tokens for the whole buffer.
func (e *Editor) Tokens(ctx context.Context) ([]highlight.ThemedToken, error) {
	e.mu.RLock()
	buf := e.buf
	lang := e.language
	theme := e.theme
	path := e.path
	e.mu.RUnlock()
	return e.highlighter.GetThemedTokens(ctx, path, lang, buf, theme)
}

// recordDuration appends d to the rolling metrics window.
func (e *Editor) recordDuration(d time.Duration) {
	e.mu.Lock()
	e.durations = append(e.durations, d)
	if len(e.durations) > maxMetricSamples {
		e.durations = e.durations[len(e.durations)-maxMetricSamples:]
	}
	e.mu.Unlock()
}

// AverageOperationDuration returns the rolling average of the last 100
// recorded operation durations.
func (e *Editor) AverageOperationDuration() time.Duration {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if len(e.durations) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range e.durations {
		total += d
	}
	return total / time.Duration(len(e.durations))
}

func timed(e *Editor, fn func() error) error {
	start := time.Now()
	err := fn()
	e.recordDuration(time.Since(start))
	return err
}
