package editor

// Undo reverts the most recent undo entry and restores the cursor
// snapshot recorded before it, if any history exists.
func (e *Editor) Undo() error {
	var changed *Event
	err := timed(e, func() error {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.readonly {
			return ErrReadOnly
		}
		entry, ok, err := e.history.Undo(e.buf)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		e.cursors.RestoreCursors(entry.CursorsBefore)
		changed = &Event{Type: EventTextChanged, Version: e.buf.Version()}
		return nil
	})
	if changed != nil {
		e.emit(*changed)
		e.emit(Event{Type: EventCursorMoved})
		e.notifyChange()
	}
	return err
}

// Redo reapplies the most recently undone entry and restores the cursor
// snapshot recorded after it, if any redo history exists.
func (e *Editor) Redo() error {
	var changed *Event
	err := timed(e, func() error {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.readonly {
			return ErrReadOnly
		}
		entry, ok, err := e.history.Redo(e.buf)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		e.cursors.RestoreCursors(entry.CursorsAfter)
		changed = &Event{Type: EventTextChanged, Version: e.buf.Version()}
		return nil
	})
	if changed != nil {
		e.emit(*changed)
		e.emit(Event{Type: EventCursorMoved})
		e.notifyChange()
	}
	return err
}

// CanUndo reports whether Undo would do anything.
func (e *Editor) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo reports whether Redo would do anything.
func (e *Editor) CanRedo() bool {
	return e.history.CanRedo()
}
