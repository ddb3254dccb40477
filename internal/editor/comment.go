package editor

import (
	"strings"

	"github.com/dshills/texture/internal/buffer"
)

// ToggleLineComment comments or uncomments every line any cursor touches,
// using the prefix configured for the editor's current language. If every
// touched line is already commented, the comment is stripped; otherwise
// every touched line is commented.
func (e *Editor) ToggleLineComment() error {
	return timed(e, func() error {
		e.mu.RLock()
		lines := e.touchedLines()
		prefix := e.config.CommentPrefix(string(e.language))
		allCommented := true
		for _, l := range lines {
			text := e.buf.LineText(l)
			if !strings.HasPrefix(strings.TrimLeft(text, " \t"), prefix) {
				allCommented = false
				break
			}
		}

		var edits []buffer.Edit
		for _, l := range lines {
			start := e.buf.LineStartOffset(l)
			text := e.buf.LineText(l)
			lead := leadingWhitespaceLen(text)
			if allCommented {
				rest := text[lead:]
				if !strings.HasPrefix(rest, prefix) {
					continue
				}
				end := lead + len(prefix)
				if end < len(rest)+lead && rest[len(prefix)] == ' ' {
					end++
				}
				edits = append(edits, buffer.NewDelete(start+buffer.ByteOffset(lead), start+buffer.ByteOffset(end)))
			} else {
				edits = append(edits, buffer.NewInsert(start+buffer.ByteOffset(lead), prefix+" "))
			}
		}
		e.mu.RUnlock()
		if len(edits) == 0 {
			return nil
		}
		return e.commit(editsDescending(edits))
	})
}

func leadingWhitespaceLen(text string) int {
	n := 0
	for n < len(text) && (text[n] == ' ' || text[n] == '\t') {
		n++
	}
	return n
}
