// Package blockcomment implements the block-comment interior scanner
// (spec.md §4.5): characters inside `(* ... *)` that are neither a nested
// opener nor a closer.
package blockcomment

import "github.com/tlaplus-lang/tlascan/internal/cursor"

// Scan consumes block-comment interior text from c, stopping just before
// the next `(*` or `*)` lookahead, or at EOF. It reports whether anything
// was consumed, since returning true on an empty span would loop the host
// forever. Consumption is tracked locally rather than by counting cursor
// advances: atOpenerOrCloser's one-codepoint lookahead speculatively
// advances the cursor before it knows whether that codepoint opens a
// delimiter, so an advance count would over-report when the very first
// codepoint turns out to start "(*" or "*)".
func Scan(c *cursor.Cursor) bool {
	c.MarkEnd()

	consumedAny := false
	for {
		ch := c.Peek()
		if ch == 0 {
			return consumedAny
		}
		if ch == '(' || ch == '*' {
			if atOpenerOrCloser(c) {
				return consumedAny
			}
			consumedAny = true
			continue
		}
		c.Advance(false)
		c.MarkEnd()
		consumedAny = true
	}
}

// atOpenerOrCloser reports whether the two codepoints at c's current
// position form "(*" or "*)". On a real delimiter it leaves the cursor
// advanced past the first codepoint but does not call MarkEnd, so the
// committed token end stays pinned just before the delimiter. On a
// mismatch the first codepoint was ordinary interior text: commit it via
// MarkEnd and let the caller re-peek the second codepoint fresh, since it
// may itself start a delimiter.
func atOpenerOrCloser(c *cursor.Cursor) bool {
	first := c.Peek()
	c.Advance(false)
	second := c.Peek()

	isDelimiter := (first == '(' && second == '*') || (first == '*' && second == ')')
	if isDelimiter {
		return true
	}

	c.MarkEnd()
	return false
}
