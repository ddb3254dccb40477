package editor

import (
	"context"
	"strings"

	"github.com/limetext/rubex"

	"github.com/dshills/texture/internal/buffer"
	"github.com/dshills/texture/internal/cursor"
)

// searchChunkScalars bounds how many bytes literalMatches scans between
// context cancellation checks.
const searchChunkScalars = 4096

// SearchOptions configures a Search call.
type SearchOptions struct {
	Query         string
	CaseSensitive bool
	WholeWord     bool
	UseRegex      bool
	Forward       bool
	WrapAround    bool
}

// SearchMatch is one located occurrence.
type SearchMatch struct {
	Range buffer.Range
	Text  string
	Index int
	Total int
}

// Search scans the buffer for every occurrence of opts.Query and records
// the ordered match list, emitting SearchResults. Long scans check ctx for
// cancellation between chunks.
func (e *Editor) Search(ctx context.Context, opts SearchOptions) ([]SearchMatch, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if opts.Query == "" {
		e.searchResults = nil
		e.searchIndex = -1
		return nil, ErrInvalidParameter
	}

	text := e.buf.Text()
	var ranges []buffer.Range
	var err error
	if opts.UseRegex {
		ranges, err = regexMatches(text, opts.Query, opts.CaseSensitive)
	} else {
		ranges, err = literalMatches(ctx, text, opts.Query, opts.CaseSensitive)
	}
	if err != nil {
		return nil, err
	}

	if opts.WholeWord {
		ranges = filterWholeWord(text, ranges)
	}

	matches := make([]SearchMatch, len(ranges))
	for i, r := range ranges {
		matches[i] = SearchMatch{
			Range: r,
			Text:  text[r.Start:r.End],
			Index: i,
			Total: len(ranges),
		}
	}

	e.searchResults = matches
	e.searchIndex = -1
	e.mu.Unlock()
	e.emit(Event{Type: EventSearchResults, Matches: matches})
	e.mu.Lock()
	return matches, nil
}

// regexMatches compiles query fresh (rubex does not cache) and returns
// every non-overlapping match as a byte range.
func regexMatches(text, query string, caseSensitive bool) ([]buffer.Range, error) {
	pattern := query
	if !caseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := rubex.Compile(pattern)
	if err != nil {
		return nil, err
	}
	idx := re.FindAllStringIndex(text, -1)
	ranges := make([]buffer.Range, len(idx))
	for i, pair := range idx {
		ranges[i] = buffer.Range{Start: buffer.ByteOffset(pair[0]), End: buffer.ByteOffset(pair[1])}
	}
	return ranges, nil
}

// literalMatches scans text once for every occurrence of query, comparing
// case-insensitively by lowercasing both sides when requested. It checks
// ctx for cancellation every searchChunkScalars bytes advanced, so a search
// over a very large buffer can be cancelled without waiting for it to
// finish.
func literalMatches(ctx context.Context, text, query string, caseSensitive bool) ([]buffer.Range, error) {
	haystack, needle := text, query
	if !caseSensitive {
		haystack = strings.ToLower(text)
		needle = strings.ToLower(query)
	}
	if needle == "" {
		return nil, nil
	}

	var ranges []buffer.Range
	start := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := start + searchChunkScalars + len(needle) - 1
		if end > len(haystack) {
			end = len(haystack)
		}
		i := strings.Index(haystack[start:end], needle)
		if i < 0 {
			if end >= len(haystack) {
				break
			}
			start = end - (len(needle) - 1)
			continue
		}
		s := start + i
		e := s + len(needle)
		ranges = append(ranges, buffer.Range{Start: buffer.ByteOffset(s), End: buffer.ByteOffset(e)})
		start = e
		if start >= len(haystack) {
			break
		}
	}
	return ranges, nil
}

// filterWholeWord keeps only matches whose surrounding scalars are absent
// or non-word characters.
func filterWholeWord(text string, ranges []buffer.Range) []buffer.Range {
	out := ranges[:0]
	for _, r := range ranges {
		if isWholeWord(text, r) {
			out = append(out, r)
		}
	}
	return out
}

func isWholeWord(text string, r buffer.Range) bool {
	before := r.Start == 0 || !isWordByte(text[r.Start-1])
	after := int(r.End) >= len(text) || !isWordByte(text[r.End])
	return before && after
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// FindNext moves the primary cursor to select the next match in the
// configured direction from its current position, wrapping if configured.
func (e *Editor) FindNext(forward, wrapAround bool) (*SearchMatch, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.searchResults) == 0 {
		return nil, ErrInvalidParameter
	}

	pos := e.cursors.Primary().Head
	var candidate *SearchMatch
	if forward {
		for i := range e.searchResults {
			m := e.searchResults[i]
			if m.Range.Start > pos {
				candidate = &e.searchResults[i]
				break
			}
		}
		if candidate == nil && wrapAround {
			candidate = &e.searchResults[0]
		}
	} else {
		for i := len(e.searchResults) - 1; i >= 0; i-- {
			m := e.searchResults[i]
			if m.Range.Start < pos {
				candidate = &e.searchResults[i]
				break
			}
		}
		if candidate == nil && wrapAround {
			candidate = &e.searchResults[len(e.searchResults)-1]
		}
	}
	if candidate == nil {
		return nil, nil
	}

	e.searchIndex = candidate.Index
	primary := e.cursors.Primary()
	e.cursors.RestoreCursors([]cursor.Cursor{
		cursor.NewCursorWithSelection(primary.ID, candidate.Range.Start, candidate.Range.End),
	})
	return candidate, nil
}

// Replace replaces the primary cursor's selection with s.
func (e *Editor) Replace(s string) error {
	e.mu.RLock()
	c := e.cursors.Primary()
	e.mu.RUnlock()
	if !c.HasSelection() {
		return ErrNoSelection
	}
	return e.commit(editsDescending([]buffer.Edit{buffer.NewEdit(buffer.Range{Start: c.Start(), End: c.End()}, s)}))
}

// ReplaceAll applies s to every current search match, right to left, and
// invalidates the search result list.
func (e *Editor) ReplaceAll(s string) (int, error) {
	e.mu.Lock()
	matches := e.searchResults
	e.mu.Unlock()

	if len(matches) == 0 {
		return 0, nil
	}
	edits := make([]buffer.Edit, len(matches))
	for i, m := range matches {
		edits[i] = buffer.NewEdit(m.Range, s)
	}
	if err := e.commit(editsDescending(edits)); err != nil {
		return 0, err
	}
	e.mu.Lock()
	e.searchResults = nil
	e.searchIndex = -1
	e.mu.Unlock()
	return len(matches), nil
}
