// Package extramodular implements the extramodular text scanner (spec.md
// §4.4): the run of characters outside any module envelope, consumed until
// the lookahead matches `----(-)*[ ]*MODULE` or EOF is reached.
package extramodular

import (
	"golang.org/x/text/unicode/norm"

	"github.com/tlaplus-lang/tlascan/internal/cursor"
)

// Scan consumes extramodular text from c, stopping just before a module
// header (four or more dashes, optional spaces, then "MODULE") or at EOF.
// It reports whether any non-whitespace character was consumed, so
// EXTRAMODULAR_TEXT is declined when the body would be empty, and returns
// the raw text consumed so callers can normalize it for downstream
// consumers that expect a canonical Unicode form.
//
// The accept/decline decision is driven by len(text) rather than by
// counting cursor advances: atModuleHeader's multi-codepoint lookahead
// speculatively advances the cursor well past the current position before
// it knows whether the run is really a module header, so an advance count
// would over-report when the header starts at the very first
// non-whitespace codepoint.
func Scan(c *cursor.Cursor) (bool, string) {
	c.SkipWhitespace()
	c.MarkEnd()

	var text []rune
	for {
		if c.Peek() == 0 {
			return len(text) > 0, string(text)
		}
		if c.Peek() == '-' {
			matched, mismatchText := atModuleHeader(c)
			if matched {
				return len(text) > 0, string(text)
			}
			text = append(text, mismatchText...)
			continue
		}
		text = append(text, c.Peek())
		c.Advance(false)
		c.MarkEnd()
	}
}

// atModuleHeader speculatively advances over a dash run, a space run, and
// "MODULE". On a real match it returns (true, nil) without calling
// MarkEnd, so the token's end stays pinned just before the dashes. On a
// mismatch it marks the end past whatever was consumed (a short dash run,
// or a dash run not followed by MODULE, is itself ordinary extramodular
// text) and returns the codepoints consumed so the caller's text buffer
// stays accurate.
func atModuleHeader(c *cursor.Cursor) (bool, []rune) {
	var consumed []rune

	dashes := 0
	for c.Peek() == '-' {
		consumed = append(consumed, c.Peek())
		c.Advance(false)
		dashes++
	}
	if dashes < 4 {
		c.MarkEnd()
		return false, consumed
	}
	for c.Peek() == ' ' {
		consumed = append(consumed, c.Peek())
		c.Advance(false)
	}
	matched, partial := matchLiteral(c, "MODULE")
	if matched {
		return true, nil
	}
	consumed = append(consumed, partial...)
	c.MarkEnd()
	return false, consumed
}

// matchLiteral advances over lit codepoint by codepoint as long as they
// match. On a mismatch it leaves the non-matching codepoint unconsumed
// (for the caller's next iteration to re-examine) and returns the prefix
// that was actually consumed.
func matchLiteral(c *cursor.Cursor, lit string) (bool, []rune) {
	var consumed []rune
	for _, want := range lit {
		if c.Peek() != want {
			return false, consumed
		}
		consumed = append(consumed, c.Peek())
		c.Advance(false)
	}
	return true, nil
}

// NormalizeNFC returns text in Unicode Normalization Form C. Extramodular
// text carries no TLA+ semantics of its own (spec.md GLOSSARY), but hosts
// that diff or index it across incremental reparses expect a canonical
// form rather than whatever composed/decomposed mix the source file used.
func NormalizeNFC(text string) string {
	return norm.NFC.String(text)
}
