package buffer

import (
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dshills/texture/internal/rope"
)

// Buffer is a rope-backed document. It tracks a monotonic version bumped
// on every accepted edit batch, a dirty flag cleared only by a successful
// save, and the line-ending style emitted on save (content is stored
// LF-terminated internally). All methods are safe for concurrent use.
type Buffer struct {
	mu         sync.RWMutex
	rope       rope.Rope
	version    uint64
	dirty      bool
	lineEnding LineEnding
	tabWidth   int

	autoDetectEnding bool // construction-time only; see WithDetectedLineEnding
}

// NewBuffer creates an empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		rope:       rope.New(),
		version:    0,
		lineEnding: LineEndingLF,
		tabWidth:   4,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewBufferFromString creates a buffer with initial content. Terminators
// are normalized to LF internally; the configured line ending applies on
// save.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.rope = rope.FromString(normalizeToLF(s))
	return b
}

// NewBufferFromReader creates a buffer from a UTF-8 text stream. It
// returns ErrNotUTF8 if the content is not valid UTF-8, matching the
// load-time encoding contract: files that are not valid UTF-8 fail to
// load rather than being silently mangled.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	b := NewBuffer(opts...)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, ErrNotUTF8
	}

	text := string(data)
	if hasAutoLineEnding(opts) {
		b.lineEnding = DetectLineEnding(text)
	}
	b.rope = rope.FromString(normalizeToLF(text))
	return b, nil
}

// Read operations

func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.String()
}

func (b *Buffer) TextRange(start, end ByteOffset) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.Slice(rope.ByteOffset(start), rope.ByteOffset(end))
}

func (b *Buffer) Len() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ByteOffset(b.rope.Len())
}

func (b *Buffer) LineCount() uint32 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.LineCount()
}

// LineText returns line's text without its trailing terminator.
func (b *Buffer) LineText(line uint32) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.LineText(line)
}

// LineLen returns the byte length of line, excluding its terminator.
func (b *Buffer) LineLen(line uint32) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start := b.rope.LineStartOffset(line)
	end := b.rope.LineEndOffset(line)
	return int(end - start)
}

// LineLenScalars returns the number of Unicode scalar values on line,
// excluding its terminator. This is the bound PositionToOffset validates
// a column against.
func (b *Buffer) LineLenScalars(line uint32) uint32 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return scalarColumnFromBytes(b.rope.LineText(line))
}

func (b *Buffer) ByteAt(offset ByteOffset) (byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.ByteAt(rope.ByteOffset(offset))
}

// RuneAt returns the scalar value starting at the given byte offset, and
// its length in bytes. Returns (utf8.RuneError, 0) out of range.
func (b *Buffer) RuneAt(offset ByteOffset) (rune, int) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	length := ByteOffset(b.rope.Len())
	if offset < 0 || offset >= length {
		return utf8.RuneError, 0
	}
	end := offset + 4
	if end > length {
		end = length
	}
	s := b.rope.Slice(rope.ByteOffset(offset), rope.ByteOffset(end))
	return utf8.DecodeRuneInString(s)
}

// Coordinate conversion

// OffsetToPoint converts a byte offset to a byte-column Point, for
// internal rope-adjacent use.
func (b *Buffer) OffsetToPoint(offset ByteOffset) Point {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p := b.rope.OffsetToPoint(rope.ByteOffset(offset))
	return Point{Line: p.Line, Column: p.Column}
}

// PointToOffset converts a byte-column Point to a byte offset.
func (b *Buffer) PointToOffset(point Point) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ByteOffset(b.rope.PointToOffset(rope.Point{Line: point.Line, Column: point.Column}))
}

// OffsetToPointUTF16 converts a byte offset to a UTF-16-column point, for
// the LSP document mirror. It delegates the UTF-16 column math to the
// rope itself, which can skip rune decoding entirely on an all-ASCII line.
func (b *Buffer) OffsetToPointUTF16(offset ByteOffset) PointUTF16 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p := b.rope.OffsetToPointUTF16(rope.ByteOffset(offset))
	return PointUTF16{Line: p.Line, Column: p.Column}
}

// PointUTF16ToOffset converts a UTF-16-column point to a byte offset.
func (b *Buffer) PointUTF16ToOffset(point PointUTF16) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ByteOffset(b.rope.PointUTF16ToOffset(rope.UTF16Point{Line: point.Line, Column: point.Column}))
}

// OffsetToPosition converts a byte offset to the editor-facing Position
// (scalar-value column). It requires offset <= Len().
func (b *Buffer) OffsetToPosition(offset ByteOffset) (Position, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if offset < 0 || offset > ByteOffset(b.rope.Len()) {
		return Position{}, ErrOffsetOutOfRange
	}
	point := b.rope.OffsetToPoint(rope.ByteOffset(offset))
	lineStart := b.rope.LineStartOffset(point.Line)
	prefix := b.rope.Slice(lineStart, rope.ByteOffset(offset))
	return Position{Line: point.Line, Column: scalarColumnFromBytes(prefix)}, nil
}

// PositionToOffset converts a Position to a byte offset. Line must be
// valid and column must be <= the line's scalar length, else it fails
// with ErrInvalidPosition.
func (b *Buffer) PositionToOffset(pos Position) (ByteOffset, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if pos.Line >= b.rope.LineCount() {
		return 0, ErrInvalidPosition
	}
	lineStart := b.rope.LineStartOffset(pos.Line)
	lineEnd := b.rope.LineEndOffset(pos.Line)
	line := b.rope.Slice(lineStart, lineEnd)
	byteCol, ok := byteColumnFromScalarColumn(line, pos.Column)
	if !ok {
		return 0, ErrInvalidPosition
	}
	return ByteOffset(lineStart) + ByteOffset(byteCol), nil
}

func (b *Buffer) LineStartOffset(line uint32) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ByteOffset(b.rope.LineStartOffset(line))
}

func (b *Buffer) LineEndOffset(line uint32) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ByteOffset(b.rope.LineEndOffset(line))
}

// Write operations

// Insert inserts text at offset and returns the offset just past it.
func (b *Buffer) Insert(offset ByteOffset, text string) (ByteOffset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if offset < 0 || offset > ByteOffset(b.rope.Len()) {
		return 0, ErrOffsetOutOfRange
	}
	text = normalizeToLF(text)
	b.rope = b.rope.Insert(rope.ByteOffset(offset), text)
	b.bumpVersionLocked()
	return offset + ByteOffset(len(text)), nil
}

// Delete removes [start, end).
func (b *Buffer) Delete(start, end ByteOffset) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if start < 0 || start > end || end > ByteOffset(b.rope.Len()) {
		return ErrRangeInvalid
	}
	b.rope = b.rope.Delete(rope.ByteOffset(start), rope.ByteOffset(end))
	b.bumpVersionLocked()
	return nil
}

// Replace replaces [start, end) with text and returns the offset just
// past the replacement.
func (b *Buffer) Replace(start, end ByteOffset, text string) (ByteOffset, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if start < 0 || start > end || end > ByteOffset(b.rope.Len()) {
		return 0, ErrRangeInvalid
	}
	text = normalizeToLF(text)
	b.rope = b.rope.Replace(rope.ByteOffset(start), rope.ByteOffset(end), text)
	b.bumpVersionLocked()
	return start + ByteOffset(len(text)), nil
}

// ApplyEdit applies a single edit and reports what changed.
func (b *Buffer) ApplyEdit(edit Edit) (EditResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if edit.Range.Start < 0 || edit.Range.Start > edit.Range.End || edit.Range.End > ByteOffset(b.rope.Len()) {
		return EditResult{}, ErrRangeInvalid
	}
	oldText := b.rope.Slice(rope.ByteOffset(edit.Range.Start), rope.ByteOffset(edit.Range.End))
	text := normalizeToLF(edit.NewText)
	b.rope = b.rope.Replace(rope.ByteOffset(edit.Range.Start), rope.ByteOffset(edit.Range.End), text)
	b.bumpVersionLocked()
	newEnd := edit.Range.Start + ByteOffset(len(text))
	return EditResult{
		OldRange: edit.Range,
		NewRange: Range{Start: edit.Range.Start, End: newEnd},
		OldText:  oldText,
		Delta:    int64(len(text)) - int64(edit.Range.Len()),
	}, nil
}

// ApplyEdits applies a batch of edits atomically: edits must be given in
// reverse order of Range.Start (highest offset first) and must not
// overlap, so that applying each one does not invalidate the ranges of
// the edits still to come. All edits are validated before any is
// applied; on success the buffer's version is bumped exactly once and
// the batch is considered one accepted edit for history purposes.
func (b *Buffer) ApplyEdits(edits []Edit) ([]EditResult, error) {
	if len(edits) == 0 {
		return nil, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i := 1; i < len(edits); i++ {
		if edits[i].Range.End > edits[i-1].Range.Start {
			return nil, ErrEditsOverlap
		}
	}
	length := ByteOffset(b.rope.Len())
	for _, edit := range edits {
		if edit.Range.Start < 0 || edit.Range.Start > edit.Range.End || edit.Range.End > length {
			return nil, ErrRangeInvalid
		}
	}

	results := make([]EditResult, len(edits))
	for i, edit := range edits {
		oldText := b.rope.Slice(rope.ByteOffset(edit.Range.Start), rope.ByteOffset(edit.Range.End))
		text := normalizeToLF(edit.NewText)
		b.rope = b.rope.Replace(rope.ByteOffset(edit.Range.Start), rope.ByteOffset(edit.Range.End), text)
		newEnd := edit.Range.Start + ByteOffset(len(text))
		results[i] = EditResult{
			OldRange: edit.Range,
			NewRange: Range{Start: edit.Range.Start, End: newEnd},
			OldText:  oldText,
			Delta:    int64(len(text)) - int64(edit.Range.Len()),
		}
	}
	b.bumpVersionLocked()
	return results, nil
}

func (b *Buffer) bumpVersionLocked() {
	b.version++
	b.dirty = true
}

// State

// Version returns the current monotonic revision counter. It never
// decreases and is bumped exactly once per accepted apply-edits batch.
func (b *Buffer) Version() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

// Dirty reports whether the buffer has unsaved edits.
func (b *Buffer) Dirty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.dirty
}

func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rope.IsEmpty()
}

func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

func (b *Buffer) TabWidth() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tabWidth
}

func (b *Buffer) SetLineEnding(le LineEnding) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lineEnding = le
}

func (b *Buffer) SetTabWidth(width int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if width > 0 {
		b.tabWidth = width
	}
}

// SaveOptions controls text emitted on write.
type SaveOptions struct {
	TrimTrailingWhitespace bool
	EnsureFinalNewline     bool
}

// Serialize renders the buffer for writing to disk: trailing whitespace
// per line is stripped and a final line terminator is appended, each only
// if requested, and the internal LF terminators are converted to the
// document's configured line ending.
func (b *Buffer) Serialize(opts SaveOptions) string {
	b.mu.RLock()
	text := b.rope.String()
	le := b.lineEnding
	b.mu.RUnlock()

	if opts.TrimTrailingWhitespace {
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimRight(line, " \t")
		}
		text = strings.Join(lines, "\n")
	}
	if opts.EnsureFinalNewline && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if seq := le.Sequence(); seq != "\n" {
		text = strings.ReplaceAll(text, "\n", seq)
	}
	return text
}

// MarkSaved clears the dirty flag after a successful write. It does not
// change version.
func (b *Buffer) MarkSaved() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dirty = false
}

// Snapshot returns a cheap, read-only snapshot of the current state.
// Because the rope is immutable, taking a snapshot never copies text.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return &Snapshot{
		rope:       b.rope,
		version:    b.version,
		lineEnding: b.lineEnding,
		tabWidth:   b.tabWidth,
	}
}
