package lsp

import (
	"testing"
)

func TestNewPositionConverter(t *testing.T) {
	pc := NewPositionConverter("hello\nworld")
	if pc == nil {
		t.Fatal("NewPositionConverter returned nil")
	}

	if pc.LineCount() != 2 {
		t.Errorf("Expected 2 lines, got %d", pc.LineCount())
	}
}

func TestPositionConverter_EmptyContent(t *testing.T) {
	pc := NewPositionConverter("")
	if pc.LineCount() != 1 {
		t.Errorf("Expected 1 line for empty content, got %d", pc.LineCount())
	}
}

func TestPositionConverter_SingleLine(t *testing.T) {
	pc := NewPositionConverter("hello")

	pos := pc.ByteOffsetToPosition(0)
	if pos.Line != 0 || pos.Character != 0 {
		t.Errorf("Expected (0,0), got (%d,%d)", pos.Line, pos.Character)
	}

	pos = pc.ByteOffsetToPosition(5)
	if pos.Line != 0 || pos.Character != 5 {
		t.Errorf("Expected (0,5), got (%d,%d)", pos.Line, pos.Character)
	}
}

func TestPositionConverter_MultiLine(t *testing.T) {
	pc := NewPositionConverter("line1\nline2\nline3")

	tests := []struct {
		byteOffset int
		line       int
		char       int
	}{
		{0, 0, 0},  // Start of line1
		{5, 0, 5},  // End of line1
		{6, 1, 0},  // Start of line2
		{11, 1, 5}, // End of line2
		{12, 2, 0}, // Start of line3
		{17, 2, 5}, // End of line3
	}

	for _, tt := range tests {
		pos := pc.ByteOffsetToPosition(tt.byteOffset)
		if pos.Line != tt.line || pos.Character != tt.char {
			t.Errorf("ByteOffset %d: expected (%d,%d), got (%d,%d)",
				tt.byteOffset, tt.line, tt.char, pos.Line, pos.Character)
		}
	}
}

func TestPositionConverter_UTF16(t *testing.T) {
	// Test with emoji (4 bytes in UTF-8, 2 UTF-16 code units)
	content := "a\U0001F600b"
	pc := NewPositionConverter(content)

	// 'a' is at byte 0, UTF-16 offset 0
	// the emoji is at byte 1, UTF-16 offset 1 (takes 2 UTF-16 code units)
	// 'b' is at byte 5, UTF-16 offset 3

	pos := pc.ByteOffsetToPosition(0)
	if pos.Character != 0 {
		t.Errorf("Expected UTF-16 char 0 for byte 0, got %d", pos.Character)
	}

	pos = pc.ByteOffsetToPosition(1)
	if pos.Character != 1 {
		t.Errorf("Expected UTF-16 char 1 for byte 1, got %d", pos.Character)
	}

	pos = pc.ByteOffsetToPosition(5)
	if pos.Character != 3 {
		t.Errorf("Expected UTF-16 char 3 for byte 5, got %d", pos.Character)
	}
}

func TestPositionConverter_LineContent(t *testing.T) {
	pc := NewPositionConverter("first\nsecond\nthird")

	tests := []struct {
		line    int
		content string
	}{
		{0, "first"},
		{1, "second"},
		{2, "third"},
		{-1, ""},
		{10, ""},
	}

	for _, tt := range tests {
		content := pc.LineContent(tt.line)
		if content != tt.content {
			t.Errorf("Line %d: expected %q, got %q", tt.line, tt.content, content)
		}
	}
}

func TestPositionConverter_BoundaryConditions(t *testing.T) {
	pc := NewPositionConverter("hello")

	// Negative offset
	pos := pc.ByteOffsetToPosition(-10)
	if pos.Line != 0 || pos.Character != 0 {
		t.Errorf("Negative offset: expected (0,0), got (%d,%d)", pos.Line, pos.Character)
	}

	// Offset beyond content
	pos = pc.ByteOffsetToPosition(100)
	if pos.Line != 0 {
		t.Errorf("Beyond content: expected line 0, got %d", pos.Line)
	}
}

func TestUTF16LenForString(t *testing.T) {
	tests := []struct {
		s        string
		expected int
	}{
		{"", 0},
		{"hello", 5},
		{"日本語", 3},  // 3 CJK characters, each 1 UTF-16 code unit
		{"\U0001F600", 2},          // Emoji is a surrogate pair (2 UTF-16 code units)
		{"a\U0001F600b", 4},        // 1 + 2 + 1
		{"hello\U0001F600world", 12}, // 5 + 2 + 5
	}

	for _, tt := range tests {
		result := utf16LenForString(tt.s)
		if result != tt.expected {
			t.Errorf("utf16LenForString(%q): expected %d, got %d", tt.s, tt.expected, result)
		}
	}
}

func TestByteToUTF16Offset(t *testing.T) {
	// "a<emoji>b" - 'a' is 1 byte, the emoji is 4 bytes, 'b' is 1 byte
	s := "a\U0001F600b"

	tests := []struct {
		byteOff  int
		expected int
	}{
		{0, 0}, // Before 'a'
		{1, 1}, // After 'a', before emoji
		{5, 3}, // After emoji, before 'b'
		{6, 4}, // After 'b'
	}

	for _, tt := range tests {
		result := byteToUTF16Offset(s, tt.byteOff)
		if result != tt.expected {
			t.Errorf("byteToUTF16Offset(%q, %d): expected %d, got %d",
				s, tt.byteOff, tt.expected, result)
		}
	}
}

func TestStandaloneConversionFunctions(t *testing.T) {
	content := "hello\nworld"

	pos := ByteOffsetToLSPPosition(content, 6)
	if pos.Line != 1 || pos.Character != 0 {
		t.Errorf("ByteOffsetToLSPPosition: expected (1,0), got (%d,%d)", pos.Line, pos.Character)
	}
}

func TestPositionConverter_TrailingNewline(t *testing.T) {
	// Content ending with newline
	pc := NewPositionConverter("line1\nline2\n")

	if pc.LineCount() != 3 {
		t.Errorf("Expected 3 lines (including empty line after trailing newline), got %d", pc.LineCount())
	}

	// Last line should be empty
	lastLine := pc.LineContent(2)
	if lastLine != "" {
		t.Errorf("Expected empty last line, got %q", lastLine)
	}
}

func TestPositionConverter_MultiByteCharacters(t *testing.T) {
	// Japanese text: 3 characters, 9 bytes
	pc := NewPositionConverter("日本語")

	if pc.LineCount() != 1 {
		t.Errorf("Expected 1 line, got %d", pc.LineCount())
	}

	// Each Japanese character is 3 bytes but 1 UTF-16 code unit
	// So byte 0 = char 0, byte 3 = char 1, byte 6 = char 2

	tests := []struct {
		byteOff int
		char    int
	}{
		{0, 0},
		{3, 1},
		{6, 2},
		{9, 3},
	}

	for _, tt := range tests {
		pos := pc.ByteOffsetToPosition(tt.byteOff)
		if pos.Character != tt.char {
			t.Errorf("ByteOffset %d: expected char %d, got %d", tt.byteOff, tt.char, pos.Character)
		}
	}
}
