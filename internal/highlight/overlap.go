package highlight

import (
	"sort"

	"github.com/dshills/texture/internal/buffer"
)

// resolveOverlaps sorts tokens by start position and discards any token
// that is fully or partially shadowed by an overlapping higher-precedence
// token; when two tokens tie on precedence, the one with the narrower
// range wins (rangeSpanLess), matching the convention a theme renderer
// needs: at any byte, at most one token applies.
func resolveOverlaps(tokens []Token) []Token {
	if len(tokens) <= 1 {
		return tokens
	}

	sort.SliceStable(tokens, func(i, j int) bool {
		if tokens[i].ByteRange.Start != tokens[j].ByteRange.Start {
			return tokens[i].ByteRange.Start < tokens[j].ByteRange.Start
		}
		return tokens[i].ByteRange.End > tokens[j].ByteRange.End
	})

	var result []Token
	for _, tok := range tokens {
		result = appendResolved(result, tok)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ByteRange.Start < result[j].ByteRange.Start
	})
	return result
}

// appendResolved inserts tok into result, dropping whichever of tok and
// its overlapping neighbors loses on precedence (then on range width, then
// first-seen wins as a stable final tiebreak). Tokens are never trimmed:
// a loser is removed whole.
func appendResolved(result []Token, tok Token) []Token {
	for i := 0; i < len(result); i++ {
		existing := result[i]
		if !overlaps(existing.ByteRange, tok.ByteRange) {
			continue
		}
		if winner(existing, tok) == existing {
			return result
		}
		result = append(result[:i], result[i+1:]...)
		i--
	}
	return append(result, tok)
}

func overlaps(a, b buffer.Range) bool {
	return a.Start < b.End && b.Start < a.End
}

func winner(a, b Token) Token {
	if a.Precedence != b.Precedence {
		if a.Precedence > b.Precedence {
			return a
		}
		return b
	}
	if rangeSpanLess(a, b) {
		return a
	}
	if rangeSpanLess(b, a) {
		return b
	}
	return a
}
