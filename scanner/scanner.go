// Package scanner is the public API of the external, stateful scanner that
// augments a grammar-based TLA+ parser: extramodular text, block-comment
// interior text, junction-list layout tokens, prefix-conflicting operators,
// and module terminators (spec.md §1). It has no AST, no CLI surface, and
// is driven entirely by a host implementing HostLexer.
package scanner

import (
	"github.com/tlaplus-lang/tlascan/internal/blockcomment"
	"github.com/tlaplus-lang/tlascan/internal/cursor"
	"github.com/tlaplus-lang/tlascan/internal/dfa"
	"github.com/tlaplus-lang/tlascan/internal/diagnostics"
	"github.com/tlaplus-lang/tlascan/internal/extramodular"
	"github.com/tlaplus-lang/tlascan/internal/junction"
	"github.com/tlaplus-lang/tlascan/internal/token"
)

// Kind re-exports the emitted token kind vocabulary (spec.md §3) so callers
// never need to import the internal token package directly.
type Kind = token.Kind

const (
	ExtramodularText = token.ExtramodularText
	BlockCommentText = token.BlockCommentText
	Indent           = token.Indent
	Newline          = token.Newline
	Dedent           = token.Dedent
	DoubleLine       = token.DoubleLine
	SingleLine       = token.SingleLine
	GtOp             = token.GtOp
	AsciiGeqOp       = token.AsciiGeqOp
	RAngleBracket    = token.RAngleBracket
	RAngleBracketSub = token.RAngleBracketSub
	EqOp             = token.EqOp
	AsciiDefEq       = token.AsciiDefEq
	AsciiImpliesOp   = token.AsciiImpliesOp
	AsciiEqltOp      = token.AsciiEqltOp
	AsciiLdttOp      = token.AsciiLdttOp
	Dash             = token.Dash
	MinusMinusOp     = token.MinusMinusOp
	AsciiPlusArrowOp = token.AsciiPlusArrowOp
	AsciiLsttOp      = token.AsciiLsttOp
	RArrow           = token.RArrow
)

// ValidSet is the host-provided mask of token kinds acceptable at the
// current lookahead position (spec.md §2, §9).
type ValidSet = token.ValidSet

// NewValidSet builds a ValidSet with exactly the given kinds accepted.
// Hosts (and tests standing in for one) use this instead of reaching into
// internal/token directly.
func NewValidSet(kinds ...Kind) ValidSet {
	return token.AllLayoutSet(kinds...)
}

// ErrorRecoverySet builds the valid-symbol mask that signals error-recovery
// mode (spec.md §4.7, §9 "Error-recovery mode"): every scanner-owned token
// kind simultaneously valid.
func ErrorRecoverySet() ValidSet {
	return NewValidSet(
		ExtramodularText, BlockCommentText, Indent, Newline, Dedent,
		DoubleLine, SingleLine, GtOp, AsciiGeqOp, RAngleBracket, RAngleBracketSub,
		EqOp, AsciiDefEq, AsciiImpliesOp, AsciiEqltOp, AsciiLdttOp, Dash,
		MinusMinusOp, AsciiPlusArrowOp, AsciiLsttOp, RArrow,
	)
}

// HostLexer is the lookahead cursor the host parser presents to the
// scanner on every call (spec.md §6). advance/mark_end/peek/column match
// the host-provided lexer interface verbatim; SetResultSymbol is the
// settable result_symbol field, expressed as a method since Go has no
// field-through-interface equivalent.
type HostLexer interface {
	cursor.HostLexer
	SetResultSymbol(Kind)
}

// Scanner is one scanner instance. The junction stack is the only state
// that survives between calls and influences scanning (spec.md §3 "Scanner
// state"); the last diagnostic and the last extramodular text are kept
// alongside it for observation only and never affect a Scan decision.
// A Scanner is not safe for concurrent use by multiple goroutines; the
// host may freely run many independent instances in parallel (spec.md §5).
type Scanner struct {
	engine   junction.Engine
	lastDiag *diagnostics.Diagnostic

	// lastExtramodularText is the NFC-normalized text of the most recently
	// accepted EXTRAMODULAR_TEXT token, for hosts that want a canonical
	// form alongside the raw span the host's own lexer already owns.
	lastExtramodularText string
}

// New allocates a scanner with an empty junction stack (spec.md §6
// "create"). Go's garbage collector retires the instance once the host
// drops its last reference; there is no explicit destroy.
func New() *Scanner {
	return &Scanner{}
}

// Depth returns the number of currently open junction lists. Exposed
// mainly for tests and host-side introspection; the scanner's own
// decisions never need it directly (the engine tracks it internally).
func (s *Scanner) Depth() int {
	return s.engine.Depth()
}

// LastDiagnostic returns the most recently recorded internal failure
// reason (stack overflow, malformed deserialized state). Deserialize and
// every Scan call that reaches the operator DFA replace it, with nil when
// they raise none; Scan calls answered by error recovery, the extramodular
// scanner or the block-comment scanner leave it unchanged. It is never
// consulted by Scan itself — it
// exists purely so a host or test harness can observe why a call declined,
// without scan's own return value ever carrying an error (spec.md §7).
func (s *Scanner) LastDiagnostic() *diagnostics.Diagnostic {
	return s.lastDiag
}

// LastExtramodularText returns the NFC-normalized text of the most recently
// accepted EXTRAMODULAR_TEXT token, or "" if none has been accepted yet.
func (s *Scanner) LastExtramodularText() string {
	return s.lastExtramodularText
}

// Serialize writes the scanner's junction stack into buf per spec.md §4.6
// and returns the number of bytes written. buf must have at least
// junction.MaxSerializedLen bytes of capacity.
func (s *Scanner) Serialize(buf []byte) int {
	return junction.Serialize(s.engine.Stack(), buf)
}

// Deserialize restores the scanner's junction stack from buf (spec.md §4.6,
// §6 "deserialize"). length == 0 yields the initial, empty state. A
// malformed buffer resets the scanner to the empty stack and records a
// diagnostic (spec.md §7 "Malformed serialized state") rather than
// panicking or trusting an invariant-violating stack.
func (s *Scanner) Deserialize(buf []byte) error {
	stack, err := junction.Deserialize(buf)
	if err != nil {
		s.engine.SetStack(nil)
		s.lastDiag = diagnostics.MalformedState(err.Error())
		return err
	}
	s.engine.SetStack(stack)
	s.lastDiag = nil
	return nil
}

// Scan implements the driver of spec.md §4.7: it inspects the valid-symbol
// mask and dispatches to error recovery, the extramodular scanner, the
// block-comment scanner, or the operator DFA coupled with the junction-list
// engine, in that order. It produces at most one token and reports whether
// it produced one at all; false means "this scanner declined, fall back to
// grammar rules" (spec.md §6 "scan").
func (s *Scanner) Scan(lexer HostLexer, valid token.ValidSet) bool {
	if valid.ErrorRecovery() {
		if kind, ok := s.engine.OnTerminator(); ok {
			lexer.SetResultSymbol(kind)
			lexer.MarkEnd()
			return true
		}
		return false
	}

	c := cursor.New(lexer)

	if valid.Valid(token.ExtramodularText) {
		if consumed, text := extramodular.Scan(c); consumed {
			s.lastExtramodularText = extramodular.NormalizeNFC(text)
			lexer.SetResultSymbol(token.ExtramodularText)
			return true
		}
		return false
	}

	if valid.Valid(token.BlockCommentText) {
		if blockcomment.Scan(c) {
			lexer.SetResultSymbol(token.BlockCommentText)
			return true
		}
		return false
	}

	return s.scanOperator(c, lexer, valid)
}

// scanOperator runs the operator DFA and dispatches its classification to
// the junction-list engine's four callbacks (spec.md §4.3, §4.7 step 4). A
// category with a layout action wins and is emitted as a zero-width token,
// so the shape itself is re-presented to the scanner on the host's next
// call; otherwise, if the DFA shape carries its own emittable Kind, that
// token is committed and returned.
func (s *Scanner) scanOperator(c *cursor.Cursor, lexer HostLexer, valid token.ValidSet) bool {
	result := dfa.Recognize(c)
	if !result.Recognized {
		return false
	}

	var layoutKind token.Kind
	var layoutOK bool
	switch result.Category {
	case token.CatLand:
		layoutKind, layoutOK = s.engine.OnJunct(token.Conjunction, result.Column, valid)
	case token.CatLor:
		layoutKind, layoutOK = s.engine.OnJunct(token.Disjunction, result.Column, valid)
	case token.CatRightDelimiter:
		layoutKind, layoutOK = s.engine.OnRightDelimiter(valid)
	case token.CatUnitStart, token.CatModuleEnd:
		layoutKind, layoutOK = s.engine.OnTerminator()
	case token.CatOther:
		layoutKind, layoutOK = s.engine.OnOther(result.Column)
	case token.CatComment:
		// Comment markers are ignored by the layout engine (spec.md §3);
		// the grammar's own lexer owns "(*" and "\*" entirely.
	}

	if col, overflowed := s.engine.TakeOverflow(); overflowed {
		s.lastDiag = diagnostics.StackOverflow(int(col))
	} else {
		s.lastDiag = nil
	}

	if layoutOK {
		// Zero-width: the cursor's marked end is still where Recognize
		// left it, just before the shape, so the host re-invokes the
		// scanner at the same position once the stack has adjusted.
		lexer.SetResultSymbol(layoutKind)
		return true
	}

	if result.HasKind {
		c.MarkEnd()
		lexer.SetResultSymbol(result.Kind)
		return true
	}

	return false
}
