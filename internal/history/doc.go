// Package history implements the text buffer's bounded undo/redo stack:
// each committed edit batch (or, when grouped, each BeginGroup/EndGroup
// span) produces at most one UndoEntry; undoing and then redoing an entry
// returns the buffer to bit-identical content; the oldest entry is
// discarded once the stack exceeds its configured maximum; any new edit
// batch clears the redo stack.
package history
