package lsp

// PositionConverter turns a document's byte offsets into the line/UTF-16-column
// Positions the LSP wire protocol requires, by indexing line boundaries once
// up front. editor.Editor keeps its own byte-offset/UTF-16 conversion on
// rope.Rope for document-internal use (see internal/rope's OffsetToPointUTF16);
// this converter exists because the content handed across the LSP boundary
// (diagnostics, completion, navigation) is often a provider's own string, not
// always backed by a live buffer.
type PositionConverter struct {
	content string
	lines   []lineInfo
}

// lineInfo stores information about a line for efficient position conversion.
type lineInfo struct {
	byteOffset int // Byte offset of line start
	byteLen    int // Length in bytes
}

// NewPositionConverter creates a new converter for the given content.
func NewPositionConverter(content string) *PositionConverter {
	pc := &PositionConverter{
		content: content,
	}
	pc.buildLineIndex()
	return pc
}

// buildLineIndex creates an index of all lines for fast position lookup.
func (pc *PositionConverter) buildLineIndex() {
	pc.lines = nil
	lineStart := 0

	for i, r := range pc.content {
		if r == '\n' {
			pc.lines = append(pc.lines, lineInfo{
				byteOffset: lineStart,
				byteLen:    i - lineStart,
			})
			lineStart = i + 1
		}
	}

	pc.lines = append(pc.lines, lineInfo{
		byteOffset: lineStart,
		byteLen:    len(pc.content) - lineStart,
	})
}

// ByteOffsetToPosition converts a byte offset to an LSP Position.
func (pc *PositionConverter) ByteOffsetToPosition(byteOffset int) Position {
	if byteOffset < 0 {
		return Position{Line: 0, Character: 0}
	}

	// Find the line containing this offset
	lineNum := 0
	for i, line := range pc.lines {
		if byteOffset < line.byteOffset+line.byteLen+1 { // +1 for newline
			lineNum = i
			break
		}
		if i == len(pc.lines)-1 {
			lineNum = i
		}
	}

	line := pc.lines[lineNum]

	// Calculate character within line (UTF-16 offset)
	charOffset := byteOffset - line.byteOffset
	if charOffset < 0 {
		charOffset = 0
	}
	if charOffset > line.byteLen {
		charOffset = line.byteLen
	}

	// Convert byte offset within line to UTF-16 offset
	lineContent := pc.content[line.byteOffset : line.byteOffset+line.byteLen]
	utf16Char := byteToUTF16Offset(lineContent, charOffset)

	return Position{
		Line:      lineNum,
		Character: utf16Char,
	}
}

// LineCount returns the number of lines.
func (pc *PositionConverter) LineCount() int {
	return len(pc.lines)
}

// PositionToByteOffset converts an LSP Position back to a byte offset into
// content, the inverse of ByteOffsetToPosition. Used when applying a
// WorkspaceEdit's TextEdits, which arrive as Positions, against a file's
// raw bytes.
func (pc *PositionConverter) PositionToByteOffset(pos Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(pc.lines) {
		return len(pc.content)
	}
	line := pc.lines[pos.Line]
	lineContent := pc.content[line.byteOffset : line.byteOffset+line.byteLen]
	return line.byteOffset + byteOffsetForUTF16Column(lineContent, pos.Character)
}

// byteOffsetForUTF16Column walks s rune by rune until it has consumed
// utf16Col UTF-16 code units, returning the byte offset reached. A column
// past the end of s clamps to len(s).
func byteOffsetForUTF16Column(s string, utf16Col int) int {
	if utf16Col <= 0 {
		return 0
	}
	units := 0
	for i, r := range s {
		if units >= utf16Col {
			return i
		}
		if r >= 0x10000 {
			units += 2
		} else {
			units++
		}
	}
	return len(s)
}

// LineContent returns the content of a line (excluding newline).
func (pc *PositionConverter) LineContent(lineNum int) string {
	if lineNum < 0 || lineNum >= len(pc.lines) {
		return ""
	}
	line := pc.lines[lineNum]
	return pc.content[line.byteOffset : line.byteOffset+line.byteLen]
}

// --- UTF-16 conversion helpers ---

// utf16LenForString returns the length in UTF-16 code units.
func utf16LenForString(s string) int {
	count := 0
	for _, r := range s {
		if r >= 0x10000 {
			count += 2 // Surrogate pair
		} else {
			count++
		}
	}
	return count
}

// byteToUTF16Offset converts a byte offset within a string to UTF-16 offset.
func byteToUTF16Offset(s string, byteOff int) int {
	if byteOff <= 0 {
		return 0
	}
	if byteOff >= len(s) {
		return utf16LenForString(s)
	}

	utf16Off := 0
	for i, r := range s {
		if i >= byteOff {
			break
		}
		if r >= 0x10000 {
			utf16Off += 2
		} else {
			utf16Off++
		}
	}
	return utf16Off
}

// ByteOffsetToLSPPosition converts a byte offset in content to an LSP
// Position. This is the one conversion every provider call site actually
// needs: turning a byte offset from document content into the wire
// Position a request or response carries.
func ByteOffsetToLSPPosition(content string, byteOffset int) Position {
	pc := NewPositionConverter(content)
	return pc.ByteOffsetToPosition(byteOffset)
}
