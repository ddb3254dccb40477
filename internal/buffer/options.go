package buffer

// Option configures a Buffer at construction time.
type Option func(*Buffer)

func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) { b.lineEnding = le }
}

func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}

func WithLF() Option   { return WithLineEnding(LineEndingLF) }
func WithCRLF() Option { return WithLineEnding(LineEndingCRLF) }
func WithCR() Option   { return WithLineEnding(LineEndingCR) }

// WithDetectedLineEnding requests that NewBufferFromReader detect the
// line ending from loaded content (majority count, ties favor LF)
// instead of using the default or an explicitly configured one.
func WithDetectedLineEnding() Option {
	return func(b *Buffer) { b.autoDetectEnding = true }
}

func hasAutoLineEnding(opts []Option) bool {
	b := &Buffer{}
	for _, opt := range opts {
		opt(b)
	}
	return b.autoDetectEnding
}
