package rope

import "testing"

func TestFromStringRoundTrip(t *testing.T) {
	cases := []string{"", "hello", "hello\nworld", "a\r\nb\r\nc", "日本語\nテキスト"}
	for _, text := range cases {
		r := FromString(text)
		if got := r.String(); got != text {
			t.Fatalf("FromString(%q).String() = %q", text, got)
		}
		if int(r.Len()) != len(text) {
			t.Fatalf("Len(%q) = %d, want %d", text, r.Len(), len(text))
		}
	}
}

func TestInsertDeleteReplaceImmutable(t *testing.T) {
	r := FromString("hello world")

	inserted := r.Insert(5, ",")
	if r.String() != "hello world" {
		t.Fatalf("original mutated: %q", r.String())
	}
	if inserted.String() != "hello, world" {
		t.Fatalf("Insert = %q", inserted.String())
	}

	deleted := inserted.Delete(0, 6)
	if deleted.String() != " world" {
		t.Fatalf("Delete = %q", deleted.String())
	}

	replaced := r.Replace(0, 5, "goodbye")
	if replaced.String() != "goodbye world" {
		t.Fatalf("Replace = %q", replaced.String())
	}
}

func TestLineOperations(t *testing.T) {
	r := FromString("line 1\nline 2\nline 3")
	if got := r.LineCount(); got != 3 {
		t.Fatalf("LineCount = %d, want 3", got)
	}
	if got := r.LineText(1); got != "line 2" {
		t.Fatalf("LineText(1) = %q", got)
	}
	if got := r.LineStartOffset(1); got != 7 {
		t.Fatalf("LineStartOffset(1) = %d, want 7", got)
	}
	if got := r.LineEndOffset(1); got != 13 {
		t.Fatalf("LineEndOffset(1) = %d, want 13", got)
	}
}

func TestOffsetPointRoundTrip(t *testing.T) {
	r := FromString("hello\nworld\nagain")
	for offset := ByteOffset(0); offset <= r.Len(); offset++ {
		p := r.OffsetToPoint(offset)
		back := r.PointToOffset(p)
		if back != offset {
			t.Fatalf("offset %d -> point %v -> offset %d", offset, p, back)
		}
	}
}

func TestSliceAndEquals(t *testing.T) {
	r := FromString("abcdefgh")
	if got := r.Slice(2, 5); got != "cde" {
		t.Fatalf("Slice(2,5) = %q", got)
	}
	a := FromString("same text")
	b := FromString("same text")
	if !a.Equals(b) {
		t.Fatal("Equals should be true for equal content")
	}
	if a.Equals(FromString("different")) {
		t.Fatal("Equals should be false for different content")
	}
}

func TestBuilder(t *testing.T) {
	var b Builder
	b.WriteString("hello ")
	b.WriteString("world")
	r := b.Build()
	if r.String() != "hello world" {
		t.Fatalf("Builder.Build() = %q", r.String())
	}
}

func TestCursorNavigation(t *testing.T) {
	r := FromString("hello world")
	c := NewCursor(r)
	var out []rune
	for {
		ru, size := c.Rune()
		if size == 0 {
			break
		}
		out = append(out, ru)
		if !c.Next() {
			break
		}
	}
	if string(out) != "hello world" {
		t.Fatalf("cursor iteration = %q", string(out))
	}
}
