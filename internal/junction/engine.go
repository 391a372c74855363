// Package junction implements the junction-list layout engine (spec.md
// §4.3): the stack of (kind, alignment-column) records and the rules that
// turn a recognized token shape plus the host's valid-symbol mask into
// INDENT, NEWLINE, DEDENT, or no layout action at all.
package junction

import "github.com/tlaplus-lang/tlascan/internal/token"

// Engine holds the junction stack for one scanner instance. It has no other
// mutable state (spec.md §3 "Scanner state") besides a one-shot overflow
// flag that the driver drains after each call to surface a diagnostic
// (spec.md §7 "Stack overflow").
type Engine struct {
	stack       token.Stack
	overflowCol token.Column
	hadOverflow bool
}

// Stack returns the current junction stack, innermost last.
func (e *Engine) Stack() token.Stack {
	return e.stack
}

// SetStack replaces the junction stack wholesale, used by deserialization.
func (e *Engine) SetStack(s token.Stack) {
	e.stack = s
}

// Depth returns the number of open junction lists.
func (e *Engine) Depth() int {
	return len(e.stack)
}

// OnJunct implements spec.md §4.3's on_junct(kind_new, col_new) decision
// table. It returns the layout token to emit and whether to emit it at all;
// false means "fall through and let the DFA emit its own operator token".
func (e *Engine) OnJunct(kindNew token.JunctionKind, colNew token.Column, valid token.ValidSet) (token.Kind, bool) {
	colTop := e.stack.Top()

	switch {
	case colNew > colTop:
		if !valid.Valid(token.Indent) {
			return 0, false
		}
		if len(e.stack) >= token.MaxDepth {
			// Stack overflow (spec.md §7): decline the indent, emit
			// nothing, and let the grammar reject the input.
			e.overflowCol = colNew
			e.hadOverflow = true
			return 0, false
		}
		e.stack = append(e.stack, token.Record{Kind: kindNew, Column: colNew})
		return token.Indent, true

	case colNew == colTop:
		if len(e.stack) == 0 {
			return 0, false
		}
		kindTop := e.stack[len(e.stack)-1].Kind
		if kindTop == kindNew {
			return token.Newline, true
		}
		e.pop()
		return token.Dedent, true

	default: // colNew < colTop
		if len(e.stack) == 0 {
			return 0, false
		}
		e.pop()
		return token.Dedent, true
	}
}

// OnRightDelimiter implements spec.md §4.3's on_right_delimiter(col): a
// right delimiter whose matching left delimiter opened before the current
// list implies the list must close first, gated purely on whether the
// grammar is willing to accept a DEDENT here.
func (e *Engine) OnRightDelimiter(valid token.ValidSet) (token.Kind, bool) {
	if len(e.stack) == 0 || !valid.Valid(token.Dedent) {
		return 0, false
	}
	e.pop()
	return token.Dedent, true
}

// OnTerminator implements spec.md §4.3's on_terminator(col): module
// terminators, top-level unit keywords, and EOF unconditionally end every
// enclosing list.
func (e *Engine) OnTerminator() (token.Kind, bool) {
	if len(e.stack) == 0 {
		return 0, false
	}
	e.pop()
	return token.Dedent, true
}

// OnOther implements spec.md §4.3's on_other(col): an aligned or outdented
// non-junct operator token (e.g. an "=" at or left of the bullets' column)
// ends the list. THEN/ELSE/IN are classified as right delimiters by the DFA
// and go through OnRightDelimiter instead.
func (e *Engine) OnOther(col token.Column) (token.Kind, bool) {
	if len(e.stack) == 0 || col > e.stack.Top() {
		return 0, false
	}
	e.pop()
	return token.Dedent, true
}

func (e *Engine) pop() {
	e.stack = e.stack[:len(e.stack)-1]
}

// TakeOverflow reports whether the most recent OnJunct call declined an
// INDENT due to the depth bound, and the column it declined at. The flag is
// consumed (reset to false) by this call, so the driver can surface a
// diagnostic exactly once per overflowing call.
func (e *Engine) TakeOverflow() (token.Column, bool) {
	col, ok := e.overflowCol, e.hadOverflow
	e.hadOverflow = false
	return col, ok
}
