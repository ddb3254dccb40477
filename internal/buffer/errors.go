package buffer

import "errors"

// Errors returned by buffer operations. These map onto the Validation and
// I/O kinds of the editor's error taxonomy.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
	ErrEditsOverlap     = errors.New("edits overlap or are not in reverse order")
	ErrInvalidPosition  = errors.New("invalid position")
	ErrNotUTF8          = errors.New("content is not valid UTF-8")
)
