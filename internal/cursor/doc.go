// Package cursor implements the cursor manager: a non-empty, ordered set
// of Cursors (index 0 is primary), movement primitives driven by a
// (Direction, Unit) pair, overlap-merging after every mutation, and
// edit-rebasing that keeps cursors valid as the buffer they address
// changes underneath them.
//
// A Cursor carries an id, a movable head and a stationary anchor — head
// and anchor coincide when there is no selection — plus a preferred
// column used to keep vertical movement visually stable across lines of
// different lengths. Cursor and selection live in one type because the
// manager state this package tracks (ids, preferred columns, selection
// mode, history) only makes sense attached to one selection-owning value
// per cursor.
package cursor
