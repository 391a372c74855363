package junction

import (
	"testing"

	"github.com/tlaplus-lang/tlascan/internal/token"
)

func validWith(kinds ...token.Kind) token.ValidSet {
	return token.AllLayoutSet(kinds...)
}

func TestOnJunctPushesWhenIndentValid(t *testing.T) {
	var e Engine
	kind, ok := e.OnJunct(token.Conjunction, 4, validWith(token.Indent))
	if !ok || kind != token.Indent {
		t.Fatalf("got (%v, %v), want (INDENT, true)", kind, ok)
	}
	if e.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", e.Depth())
	}
	if got := e.Stack().Top(); got != 4 {
		t.Fatalf("top = %d, want 4", got)
	}
}

func TestOnJunctDeclinesWhenIndentNotValid(t *testing.T) {
	var e Engine
	kind, ok := e.OnJunct(token.Conjunction, 4, validWith(token.Newline))
	if ok {
		t.Fatalf("got (%v, true), want decline", kind)
	}
	if e.Depth() != 0 {
		t.Fatalf("depth = %d, want 0 (declined push must not mutate stack)", e.Depth())
	}
}

func TestOnJunctSameColumnSameKindEmitsNewline(t *testing.T) {
	var e Engine
	e.OnJunct(token.Conjunction, 2, validWith(token.Indent))
	kind, ok := e.OnJunct(token.Conjunction, 2, validWith(token.Newline))
	if !ok || kind != token.Newline {
		t.Fatalf("got (%v, %v), want (NEWLINE, true)", kind, ok)
	}
	if e.Depth() != 1 {
		t.Fatalf("depth = %d, want 1 (NEWLINE doesn't change depth)", e.Depth())
	}
}

func TestOnJunctSameColumnDifferentKindEmitsDedent(t *testing.T) {
	var e Engine
	e.OnJunct(token.Conjunction, 2, validWith(token.Indent))
	kind, ok := e.OnJunct(token.Disjunction, 2, validWith(token.Dedent))
	if !ok || kind != token.Dedent {
		t.Fatalf("got (%v, %v), want (DEDENT, true)", kind, ok)
	}
	if e.Depth() != 0 {
		t.Fatalf("depth = %d, want 0", e.Depth())
	}
}

func TestOnJunctLowerColumnEmitsDedent(t *testing.T) {
	var e Engine
	e.OnJunct(token.Conjunction, 4, validWith(token.Indent))
	e.OnJunct(token.Conjunction, 8, validWith(token.Indent))
	kind, ok := e.OnJunct(token.Conjunction, 4, validWith(token.Dedent))
	if !ok || kind != token.Dedent {
		t.Fatalf("got (%v, %v), want (DEDENT, true)", kind, ok)
	}
	if e.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", e.Depth())
	}
	// Re-entry at the same column now matches the remaining list.
	kind, ok = e.OnJunct(token.Conjunction, 4, validWith(token.Newline))
	if !ok || kind != token.Newline {
		t.Fatalf("got (%v, %v), want (NEWLINE, true) on re-entry", kind, ok)
	}
}

func TestOnJunctEmptyStackDeclines(t *testing.T) {
	var e Engine
	kind, ok := e.OnJunct(token.Conjunction, -1, validWith(token.Dedent))
	if ok {
		t.Fatalf("got (%v, true), want decline on empty stack", kind)
	}
}

func TestOnJunctStackOverflowDeclinesAndRecordsDiagnostic(t *testing.T) {
	var e Engine
	for i := 0; i < token.MaxDepth; i++ {
		kind, ok := e.OnJunct(token.Conjunction, token.Column(i), validWith(token.Indent))
		if !ok || kind != token.Indent {
			t.Fatalf("push %d: got (%v, %v), want (INDENT, true)", i, kind, ok)
		}
	}
	if e.Depth() != token.MaxDepth {
		t.Fatalf("depth = %d, want %d", e.Depth(), token.MaxDepth)
	}
	kind, ok := e.OnJunct(token.Conjunction, token.MaxDepth, validWith(token.Indent))
	if ok {
		t.Fatalf("got (%v, true), want decline at MaxDepth", kind)
	}
	if e.Depth() != token.MaxDepth {
		t.Fatalf("depth = %d, want unchanged %d", e.Depth(), token.MaxDepth)
	}
	col, overflowed := e.TakeOverflow()
	if !overflowed || col != token.MaxDepth {
		t.Fatalf("TakeOverflow() = (%v, %v), want (%d, true)", col, overflowed, token.MaxDepth)
	}
	if _, overflowed := e.TakeOverflow(); overflowed {
		t.Fatalf("TakeOverflow() must reset after being read")
	}
}

func TestOnRightDelimiterGatedOnDedentValid(t *testing.T) {
	var e Engine
	e.OnJunct(token.Conjunction, 0, validWith(token.Indent))

	if kind, ok := e.OnRightDelimiter(validWith(token.Newline)); ok {
		t.Fatalf("got (%v, true), want decline when DEDENT not valid", kind)
	}
	if e.Depth() != 1 {
		t.Fatalf("depth = %d, want unchanged 1", e.Depth())
	}

	kind, ok := e.OnRightDelimiter(validWith(token.Dedent))
	if !ok || kind != token.Dedent {
		t.Fatalf("got (%v, %v), want (DEDENT, true)", kind, ok)
	}
	if e.Depth() != 0 {
		t.Fatalf("depth = %d, want 0", e.Depth())
	}
}

func TestOnRightDelimiterEmptyStackDeclines(t *testing.T) {
	var e Engine
	if kind, ok := e.OnRightDelimiter(validWith(token.Dedent)); ok {
		t.Fatalf("got (%v, true), want decline on empty stack", kind)
	}
}

func TestOnTerminatorUnconditionallyDrainsOneLevel(t *testing.T) {
	var e Engine
	e.OnJunct(token.Conjunction, 0, validWith(token.Indent))
	e.OnJunct(token.Conjunction, 2, validWith(token.Indent))

	kind, ok := e.OnTerminator()
	if !ok || kind != token.Dedent {
		t.Fatalf("got (%v, %v), want (DEDENT, true)", kind, ok)
	}
	if e.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", e.Depth())
	}
}

func TestOnTerminatorEmptyStackDeclines(t *testing.T) {
	var e Engine
	if kind, ok := e.OnTerminator(); ok {
		t.Fatalf("got (%v, true), want decline on empty stack", kind)
	}
}

func TestOnOtherOutdentedEmitsDedent(t *testing.T) {
	var e Engine
	e.OnJunct(token.Conjunction, 4, validWith(token.Indent))

	kind, ok := e.OnOther(4) // aligned, e.g. an operator at the same column
	if !ok || kind != token.Dedent {
		t.Fatalf("got (%v, %v), want (DEDENT, true)", kind, ok)
	}
	if e.Depth() != 0 {
		t.Fatalf("depth = %d, want 0", e.Depth())
	}
}

func TestOnOtherIndentedDeclines(t *testing.T) {
	var e Engine
	e.OnJunct(token.Conjunction, 4, validWith(token.Indent))

	if kind, ok := e.OnOther(8); ok {
		t.Fatalf("got (%v, true), want decline when strictly indented past the list", kind)
	}
}

func TestOnOtherEmptyStackDeclines(t *testing.T) {
	var e Engine
	if kind, ok := e.OnOther(0); ok {
		t.Fatalf("got (%v, true), want decline on empty stack", kind)
	}
}

// TestMonotoneStackInvariant is spec.md §8 P2: after each successful INDENT
// push, alignment columns strictly increase bottom to top.
func TestMonotoneStackInvariant(t *testing.T) {
	var e Engine
	cols := []token.Column{0, 2, 5, 10}
	for _, c := range cols {
		if _, ok := e.OnJunct(token.Conjunction, c, validWith(token.Indent)); !ok {
			t.Fatalf("push at column %d declined", c)
		}
		assertMonotone(t, e.Stack())
	}
}

func assertMonotone(t *testing.T, s token.Stack) {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i].Column <= s[i-1].Column {
			t.Fatalf("stack not monotone: %+v", s)
		}
	}
}
