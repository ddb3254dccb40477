package highlight

import (
	"context"

	"github.com/dshills/texture/internal/buffer"
)

// GetThemedTokens returns every token for key/lang/buf with theme's Style
// attached, in byte order.
func (h *Highlighter) GetThemedTokens(ctx context.Context, key string, lang Language, buf *buffer.Buffer, theme Theme) ([]ThemedToken, error) {
	tokens, err := h.Tokens(ctx, key, lang, buf)
	if err != nil {
		return nil, err
	}
	out := make([]ThemedToken, len(tokens))
	for i, tok := range tokens {
		out[i] = ThemedToken{Token: tok, Style: theme.Style(tok.Type)}
	}
	return out, nil
}

// GetThemedTokensForRange narrows GetThemedTokens to tokens intersecting
// [start, end), trimming boundary tokens so a renderer never has to clip
// on its own.
func (h *Highlighter) GetThemedTokensForRange(ctx context.Context, key string, lang Language, buf *buffer.Buffer, theme Theme, start, end buffer.ByteOffset) ([]ThemedToken, error) {
	all, err := h.GetThemedTokens(ctx, key, lang, buf, theme)
	if err != nil {
		return nil, err
	}
	var out []ThemedToken
	for _, t := range all {
		if t.ByteRange.End <= start || t.ByteRange.Start >= end {
			continue
		}
		clipped := t
		if clipped.ByteRange.Start < start {
			clipped.ByteRange.Start = start
		}
		if clipped.ByteRange.End > end {
			clipped.ByteRange.End = end
		}
		out = append(out, clipped)
	}
	return out, nil
}
