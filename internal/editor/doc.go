// Package editor composes a text buffer, a cursor manager, a themed
// highlighter, and an undo/redo history into the single facade a host
// application drives: every user-visible editing command (insert, delete,
// navigate, search, indent, comment, undo/redo) is a method here, and each
// one that mutates state rebases cursors, records history, and emits an
// Event to subscribers after committing.
package editor
