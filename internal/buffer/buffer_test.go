package buffer

import (
	"bytes"
	"testing"
)

func TestPositionRoundTrip(t *testing.T) {
	b := NewBufferFromString("hello\nworld\nagain")
	for offset := ByteOffset(0); offset <= b.Len(); offset++ {
		pos, err := b.OffsetToPosition(offset)
		if err != nil {
			t.Fatalf("OffsetToPosition(%d): %v", offset, err)
		}
		back, err := b.PositionToOffset(pos)
		if err != nil {
			t.Fatalf("PositionToOffset(%v): %v", pos, err)
		}
		if back != offset {
			t.Fatalf("offset %d -> %v -> %d", offset, pos, back)
		}
	}
}

func TestPositionScalarColumnNotBytes(t *testing.T) {
	b := NewBufferFromString("日本語\nテキスト")
	// "日本語" is 3 scalar values but 9 bytes; column 3 is just past the
	// last character, column 4 is invalid.
	if _, err := b.PositionToOffset(Position{Line: 0, Column: 3}); err != nil {
		t.Fatalf("column 3 should be valid: %v", err)
	}
	if _, err := b.PositionToOffset(Position{Line: 0, Column: 4}); err == nil {
		t.Fatal("column 4 should be invalid (only 3 scalars on the line)")
	}
}

func TestApplyEditsReverseOrder(t *testing.T) {
	b := NewBufferFromString("abcdef")
	edits := []Edit{
		NewInsert(4, "X"), // later in the document, applied first
		NewInsert(0, "Y"),
	}
	if _, err := b.ApplyEdits(edits); err != nil {
		t.Fatalf("ApplyEdits: %v", err)
	}
	want := "Y" + "abcd" + "X" + "ef"
	if got := b.Text(); got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
}

func TestApplyEditsRejectsForwardOrder(t *testing.T) {
	b := NewBufferFromString("abcdef")
	edits := []Edit{
		NewInsert(0, "Y"),
		NewInsert(4, "X"),
	}
	if _, err := b.ApplyEdits(edits); err != ErrEditsOverlap {
		t.Fatalf("ApplyEdits forward order: err = %v, want ErrEditsOverlap", err)
	}
}

func TestVersionMonotonic(t *testing.T) {
	b := NewBuffer()
	if b.Version() != 0 {
		t.Fatalf("initial version = %d, want 0", b.Version())
	}
	if _, err := b.Insert(0, "Hello, World!"); err != nil {
		t.Fatal(err)
	}
	if b.Version() != 1 {
		t.Fatalf("version after insert = %d, want 1", b.Version())
	}
	if !b.Dirty() {
		t.Fatal("buffer should be dirty after edit")
	}
}

func TestLineEndingDetectionTiesFavorLF(t *testing.T) {
	if got := DetectLineEnding("a\nb\nc"); got != LineEndingLF {
		t.Fatalf("pure LF detected as %v", got)
	}
	if got := DetectLineEnding("a\nb"); got != LineEndingLF {
		t.Fatalf("single LF, no tie, detected as %v", got)
	}
	if got := DetectLineEnding("a\r\nb\n"); got != LineEndingLF {
		t.Fatalf("one CRLF and one LF tie, detected as %v", got)
	}
	if got := DetectLineEnding("plain text, no terminators"); got != LineEndingLF {
		t.Fatalf("no terminators should default to LF, got %v", got)
	}
}

func TestCRLFContentStoredAsLFAndSavedAsCRLF(t *testing.T) {
	b, err := NewBufferFromReader(bytes.NewReader([]byte("a\r\nb\r\nc")), WithDetectedLineEnding())
	if err != nil {
		t.Fatalf("NewBufferFromReader: %v", err)
	}
	if b.LineEnding() != LineEndingCRLF {
		t.Fatalf("detected line ending = %v, want CRLF", b.LineEnding())
	}
	if got := b.Text(); got != "a\nb\nc" {
		t.Fatalf("internal text = %q, want LF-normalized", got)
	}
	if got := b.LineText(0); got != "a" {
		t.Fatalf("LineText(0) = %q, want no carriage return", got)
	}
	if out := b.Serialize(SaveOptions{}); out != "a\r\nb\r\nc" {
		t.Fatalf("Serialize = %q, want CRLF restored", out)
	}
}

func TestSerializeTrimAndFinalNewline(t *testing.T) {
	b := NewBufferFromString("a   \nb\t\nc")
	out := b.Serialize(SaveOptions{TrimTrailingWhitespace: true, EnsureFinalNewline: true})
	if out != "a\nb\nc\n" {
		t.Fatalf("Serialize = %q", out)
	}
}

func TestNewBufferFromReaderRejectsInvalidUTF8(t *testing.T) {
	bad := []byte{0xff, 0xfe, 0x00}
	_, err := NewBufferFromReader(bytes.NewReader(bad))
	if err != ErrNotUTF8 {
		t.Fatalf("err = %v, want ErrNotUTF8", err)
	}
}
