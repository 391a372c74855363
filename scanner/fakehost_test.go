package scanner_test

import (
	"strings"

	"github.com/tlaplus-lang/tlascan/scanner"
)

// fakeHost is a minimal in-memory stand-in for the tree-sitter-style host
// lexer the real parser would provide (spec.md §6). It tracks the
// lookahead position as a rune index plus a column that resets on '\n',
// and records the position of the latest mark_end call so tests can assert
// token spans.
type fakeHost struct {
	runes  []rune
	pos    int
	col    int
	markAt int
	result scanner.Kind
}

func newFakeHost(input string) *fakeHost {
	return &fakeHost{runes: []rune(input)}
}

func (h *fakeHost) Peek() rune {
	if h.pos >= len(h.runes) {
		return 0
	}
	return h.runes[h.pos]
}

func (h *fakeHost) Advance(isWhitespace bool) {
	if h.pos >= len(h.runes) {
		return
	}
	if h.runes[h.pos] == '\n' {
		h.col = 0
	} else {
		h.col++
	}
	h.pos++
}

func (h *fakeHost) MarkEnd() {
	h.markAt = h.pos
}

func (h *fakeHost) Column() int16 {
	return int16(h.col)
}

func (h *fakeHost) SetResultSymbol(k scanner.Kind) {
	h.result = k
}

// SetPos repositions the cursor at a rune index, recomputing the column by
// scanning from the start of input. Real hosts track column incrementally;
// tests use this to place the cursor at a known offset without replaying
// every intervening Scan call.
func (h *fakeHost) SetPos(pos int) {
	h.pos = pos
	col := 0
	for i := 0; i < pos; i++ {
		if h.runes[i] == '\n' {
			col = 0
		} else {
			col++
		}
	}
	h.col = col
	h.markAt = pos
}

// Sync repositions the raw cursor at the last committed MarkEnd position.
// Real hosts always resume lexing from the previous token's marked end;
// tests call this before re-invoking Scan on a host whose raw position may
// have drifted ahead during the previous call's speculative lookahead.
func (h *fakeHost) Sync() {
	h.SetPos(h.markAt)
}

// ResetToMark is an alias of Sync kept for readability at call sites that
// are asserting zero-width behavior rather than preparing the next call.
func (h *fakeHost) ResetToMark() {
	h.Sync()
}

// seekTo repositions the cursor at the nth (0-based) occurrence of marker.
func (h *fakeHost) seekTo(marker string, occurrence int) {
	s := string(h.runes)
	idx := -1
	from := 0
	for i := 0; i <= occurrence; i++ {
		rel := strings.Index(s[from:], marker)
		if rel < 0 {
			panic("fakehost: marker not found: " + marker)
		}
		idx = from + rel
		from = idx + 1
	}
	h.SetPos(idx)
}
