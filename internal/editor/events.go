package editor

import (
	"github.com/dshills/texture/internal/config"
	"github.com/dshills/texture/internal/highlight"
)

// EventType identifies what kind of Event was emitted.
type EventType uint8

const (
	EventTextChanged EventType = iota
	EventCursorMoved
	EventSelectionChanged
	EventFileSaved
	EventFileLoaded
	EventLanguageChanged
	EventConfigChanged
	EventSearchResults
)

func (t EventType) String() string {
	switch t {
	case EventTextChanged:
		return "text_changed"
	case EventCursorMoved:
		return "cursor_moved"
	case EventSelectionChanged:
		return "selection_changed"
	case EventFileSaved:
		return "file_saved"
	case EventFileLoaded:
		return "file_loaded"
	case EventLanguageChanged:
		return "language_changed"
	case EventConfigChanged:
		return "config_changed"
	case EventSearchResults:
		return "search_results"
	default:
		return "unknown"
	}
}

// Event is a notification delivered to subscribers after a committed
// state change. Only the fields relevant to Type are populated.
type Event struct {
	Type EventType

	Version uint64

	Path string

	Language highlight.Language

	Config config.EditorConfig

	Matches []SearchMatch
}

// EventListener receives Events synchronously on the goroutine that
// committed the change; listeners that need to do slow work should hand
// off to their own goroutine.
type EventListener func(Event)

// Subscribe registers a listener and returns an unsubscribe function.
func (e *Editor) Subscribe(listener EventListener) (unsubscribe func()) {
	e.mu.Lock()
	e.listeners = append(e.listeners, listener)
	idx := len(e.listeners) - 1
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if idx < len(e.listeners) {
			e.listeners[idx] = nil
		}
	}
}

func (e *Editor) emit(ev Event) {
	e.mu.RLock()
	listeners := make([]EventListener, len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.RUnlock()

	for _, l := range listeners {
		if l != nil {
			l(ev)
		}
	}
}
