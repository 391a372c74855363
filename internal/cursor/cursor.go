// Package cursor wraps the host-provided lookahead primitives (spec.md
// §4.1) in a small value type shared by every scanner component.
package cursor

import "github.com/tlaplus-lang/tlascan/internal/token"

// HostLexer is the subset of the tree-sitter-style external scanner
// interface (spec.md §6) that lookahead primitives need. The host parser
// implements it; tlascan never constructs one itself.
type HostLexer interface {
	// Peek returns the current codepoint, or 0 at EOF.
	Peek() rune
	// Advance consumes one codepoint. isWhitespace excludes the consumed
	// codepoint from the eventual token span.
	Advance(isWhitespace bool)
	// MarkEnd records the current position as the end of the token to be
	// returned. Advance calls made after the last MarkEnd are speculative:
	// if the scanner declines or re-marks an earlier position, the host
	// resumes tokenizing from the last marked position, not the raw
	// read position, so over-reading for lookahead is safe.
	MarkEnd()
	// Column returns the 0-based column of the lookahead cursor.
	Column() token.Column
}

// Cursor adapts a HostLexer. It carries no state of its own beyond the
// wrapped host: callers that need to know whether a span ended up
// non-empty track that themselves (see internal/extramodular and
// internal/blockcomment), since a naive advance-counter would over-report
// whenever a delimiter lookahead speculatively advances before declining.
type Cursor struct {
	host HostLexer
}

// New wraps host in a Cursor.
func New(host HostLexer) *Cursor {
	return &Cursor{host: host}
}

// Peek returns the current codepoint without consuming it.
func (c *Cursor) Peek() rune {
	return c.host.Peek()
}

// Advance consumes the current codepoint.
func (c *Cursor) Advance(isWhitespace bool) {
	c.host.Advance(isWhitespace)
}

// MarkEnd delimits the token span at the current position.
func (c *Cursor) MarkEnd() {
	c.host.MarkEnd()
}

// Column returns the current lookahead column.
func (c *Cursor) Column() token.Column {
	return c.host.Column()
}

// IsWhitespace reports whether r is whitespace for scanner purposes: space,
// tab, LF, or CR (spec.md §4.1).
func IsWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// SkipWhitespace advances over a run of whitespace, tagging each codepoint
// as whitespace so it is excluded from the eventual token span.
func (c *Cursor) SkipWhitespace() {
	for IsWhitespace(c.Peek()) {
		c.Advance(true)
	}
}
