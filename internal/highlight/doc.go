// Package highlight turns buffer text into a deterministic, non-overlapping
// (at peak precedence) list of syntax Tokens: a tree-sitter parse produces a
// concrete syntax tree, a capture query extracts named spans from it, those
// captures are mapped to a closed set of token types and resolved where they
// overlap, and the result is cached per buffer key and version.
//
// Highlighter.Tokens always reparses from scratch — the source buffer does
// not yet hand the highlighter an edit delta to feed tree-sitter's
// incremental reparse, so every call is a full Parser.ParseCtx with a nil
// old tree. This keeps cache invalidation trivial (an entry whose version
// differs from the buffer's is a miss and is overwritten by the fresh
// result) at the cost of incremental-reparse speed.
package highlight
