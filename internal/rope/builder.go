package rope

import "strings"

// Builder accumulates streamed text (FromReader's read-buffer chunks) into
// Chunks without building rope tree nodes until the whole stream is in.
// It is the only way chunks get built incrementally rather than from one
// already-in-memory string; FromString skips it entirely.
type Builder struct {
	chunks   []Chunk
	buffer   strings.Builder
	totalLen int
}

// WriteString appends a string to the builder.
func (b *Builder) WriteString(s string) {
	if len(s) == 0 {
		return
	}

	b.totalLen += len(s)
	b.buffer.WriteString(s)

	if b.buffer.Len() >= MaxChunkSize*2 {
		b.flushBuffer()
	}
}

// flushBuffer converts the buffer contents to chunks.
func (b *Builder) flushBuffer() {
	if b.buffer.Len() == 0 {
		return
	}

	s := b.buffer.String()
	b.buffer.Reset()

	newChunks := splitIntoChunks(s)
	b.chunks = append(b.chunks, newChunks...)
}

func (b *Builder) reset() {
	b.chunks = b.chunks[:0]
	b.buffer.Reset()
	b.totalLen = 0
}

// Build creates the rope from accumulated data. After calling Build, the
// builder is reset.
func (b *Builder) Build() Rope {
	b.flushBuffer()

	if len(b.chunks) == 0 {
		b.reset()
		return New()
	}

	chunks := b.chunks
	b.reset()

	return buildFromChunks(chunks)
}
