package host

import "errors"

// ErrEditorNotFound is returned by every command that takes an editor id
// not present in the Manager's map.
var ErrEditorNotFound = errors.New("host: editor not found")
