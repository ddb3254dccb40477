package history

import (
	"sync"
	"time"

	"github.com/dshills/texture/internal/buffer"
	"github.com/dshills/texture/internal/cursor"
)

const defaultMaxEntries = 1000

// Stack is a bounded undo/redo history for one editor. It is safe for
// concurrent use, matching the buffer it sits alongside.
type Stack struct {
	mu sync.Mutex

	undo []UndoEntry
	redo []UndoEntry
	max  int

	grouping     bool
	groupBatches []batch
	groupBefore  []cursor.Cursor
}

// NewStack creates a history stack bounded to max entries (the zero value
// falls back to a generous default so callers who forget to configure it
// don't get unbounded growth).
func NewStack(max int) *Stack {
	if max <= 0 {
		max = defaultMaxEntries
	}
	return &Stack{max: max}
}

// Record accepts one committed edit batch's worth of edits, results, and
// cursor snapshots. When inside a BeginGroup/EndGroup span it is folded
// into the group instead of becoming its own UndoEntry. Record always
// clears the redo stack, since it is never itself an undo/redo.
func (s *Stack) Record(edits []buffer.Edit, results []buffer.EditResult, before, after []cursor.Cursor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := batch{edits: edits, results: results}
	if s.grouping {
		if len(s.groupBatches) == 0 {
			s.groupBefore = before
		}
		s.groupBatches = append(s.groupBatches, b)
		s.redo = nil
		return
	}

	s.push(UndoEntry{
		batches:       []batch{b},
		CursorsBefore: before,
		CursorsAfter:  after,
		Timestamp:     time.Now(),
	})
}

// BeginGroup starts accumulating subsequent Record calls into a single
// UndoEntry, flushed by EndGroup. Nested calls are ignored.
func (s *Stack) BeginGroup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.grouping {
		return
	}
	s.grouping = true
	s.groupBatches = nil
	s.groupBefore = nil
}

// EndGroup flushes the accumulated group as one UndoEntry. A group with
// no recorded batches produces no entry.
func (s *Stack) EndGroup(after []cursor.Cursor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.grouping {
		return
	}
	s.grouping = false
	batches := s.groupBatches
	before := s.groupBefore
	s.groupBatches = nil
	s.groupBefore = nil
	if len(batches) == 0 {
		return
	}
	s.push(UndoEntry{batches: batches, CursorsBefore: before, CursorsAfter: after, Timestamp: time.Now()})
}

// CancelGroup discards the accumulated group without recording an entry.
// Edits already applied to the buffer are not rolled back by this call.
func (s *Stack) CancelGroup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grouping = false
	s.groupBatches = nil
	s.groupBefore = nil
}

func (s *Stack) push(entry UndoEntry) {
	s.undo = append(s.undo, entry)
	s.redo = nil
	if len(s.undo) > s.max {
		s.undo = s.undo[len(s.undo)-s.max:]
	}
}

// Undo pops the most recent UndoEntry, applies its inverse to buf, and
// pushes it onto the redo stack. Returns ok=false (and does nothing) if
// the undo stack is empty; that is not an error.
func (s *Stack) Undo(buf *buffer.Buffer) (UndoEntry, bool, error) {
	s.mu.Lock()
	if len(s.undo) == 0 {
		s.mu.Unlock()
		return UndoEntry{}, false, nil
	}
	entry := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.mu.Unlock()

	for i := len(entry.batches) - 1; i >= 0; i-- {
		if _, err := buf.ApplyEdits(entry.batches[i].inverseEdits()); err != nil {
			s.mu.Lock()
			s.undo = append(s.undo, entry)
			s.mu.Unlock()
			return UndoEntry{}, false, err
		}
	}

	s.mu.Lock()
	s.redo = append(s.redo, entry)
	s.mu.Unlock()
	return entry, true, nil
}

// Redo pops the most recent redone-eligible entry, reapplies its
// original edits, and pushes it back onto the undo stack.
func (s *Stack) Redo(buf *buffer.Buffer) (UndoEntry, bool, error) {
	s.mu.Lock()
	if len(s.redo) == 0 {
		s.mu.Unlock()
		return UndoEntry{}, false, nil
	}
	entry := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.mu.Unlock()

	for _, b := range entry.batches {
		if _, err := buf.ApplyEdits(b.edits); err != nil {
			s.mu.Lock()
			s.redo = append(s.redo, entry)
			s.mu.Unlock()
			return UndoEntry{}, false, err
		}
	}

	s.mu.Lock()
	s.undo = append(s.undo, entry)
	s.mu.Unlock()
	return entry, true, nil
}

func (s *Stack) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.undo) > 0
}

func (s *Stack) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.redo) > 0
}

// Clear discards all undo/redo history.
func (s *Stack) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.undo = nil
	s.redo = nil
	s.grouping = false
	s.groupBatches = nil
	s.groupBefore = nil
}
