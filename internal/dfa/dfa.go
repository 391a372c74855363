// Package dfa implements the operator DFA (spec.md §4.2): the prefix-tree
// recognizer for TLA+'s overlapping-prefix operator alphabet (=, ==, ===,
// ====; -, --, ---, ----, ->, -|, -+->; >, >=, >>, >>_), plus the
// classification of junction openers, right delimiters, unit/module
// terminators, and comment markers that the junction-list engine needs.
//
// Rather than four closures (spec.md §9 design note), Result is a tagged
// value: Recognize returns (category, column, kind, hasKind, ok) and the
// caller dispatches on category. This keeps the hot path free of
// polymorphic indirection and makes every state transition auditable in one
// switch cascade over runes rather than bytes.
package dfa

import (
	"github.com/tlaplus-lang/tlascan/internal/cursor"
	"github.com/tlaplus-lang/tlascan/internal/token"
)

const (
	landUnicode = '∧' // U+2227
	lorUnicode  = '∨' // U+2228
	rArrowUni   = '⟶' // U+27F6, unicode right arrow (also RIGHT_DELIMITER)
)

// Result is the tagged outcome of Recognize.
type Result struct {
	// Category classifies the recognized shape for the junction engine.
	// Zero value (CatLand) is meaningless unless Recognized is true.
	Category token.Category
	// Column is the host-reported column at the start of the shape.
	Column token.Column
	// Kind is the emittable token kind backing this shape, valid only if
	// HasKind is true. Shapes the scanner only classifies for layout but
	// never itself tokenizes (junction openers, plain closing punctuation,
	// THEN/ELSE/IN, bare unit-start keywords, comment markers) have no
	// backing Kind: the grammar's own lexer produces those tokens.
	Kind token.Kind
	HasKind bool
	// Recognized reports whether any shape was classified at all. If
	// false, nothing was consumed and the driver should decline outright.
	Recognized bool
}

// Recognize runs the DFA at c's current position. On a real match it
// leaves c positioned past the shape with the end NOT yet marked — MarkEnd
// was already called once, before any lookahead, per the longest-match
// contract (spec.md §4.2: "marks the end [...] so a no-match returns an
// empty span"). Callers decide whether to commit (MarkEnd again, for a
// shape this scanner itself tokenizes) or let the advance be speculative
// (never MarkEnd again, for a shape only classified for layout).
func Recognize(c *cursor.Cursor) Result {
	c.SkipWhitespace()
	c.MarkEnd()
	col := c.Column()

	switch c.Peek() {
	case '=':
		return eqFamily(c, col)
	case '-':
		return dashFamily(c, col)
	case '>':
		return gtFamily(c, col)
	case '/':
		return landAscii(c, col)
	case '\\':
		return lorOrComment(c, col)
	case landUnicode:
		c.Advance(false)
		return Result{Category: token.CatLand, Column: col, Recognized: true}
	case lorUnicode:
		c.Advance(false)
		return Result{Category: token.CatLor, Column: col, Recognized: true}
	case rArrowUni:
		c.Advance(false)
		return Result{Category: token.CatRightDelimiter, Column: col, Recognized: true}
	case '(':
		return blockCommentOpener(c, col)
	case ')', ']', '}':
		c.Advance(false)
		return Result{Category: token.CatRightDelimiter, Column: col, Recognized: true}
	default:
		if isIdentStart(c.Peek()) {
			return identifierFamily(c, col)
		}
		return Result{Recognized: false}
	}
}

// --- '=' family: =, ==, ===(no accept), ====+ -> DOUBLE_LINE; =>, =<, =| ---

func eqFamily(c *cursor.Cursor, col token.Column) Result {
	c.Advance(false) // first '='
	switch c.Peek() {
	case '=':
		c.Advance(false) // second '='
		if c.Peek() == '=' {
			c.Advance(false) // third '='
			if c.Peek() == '=' {
				for c.Peek() == '=' {
					c.Advance(false)
				}
				return Result{Category: token.CatModuleEnd, Column: col, Kind: token.DoubleLine, HasKind: true, Recognized: true}
			}
			// exactly "===": no accept state, a parse error at the
			// grammar level. Decline without committing.
			return Result{Recognized: false}
		}
		return Result{Category: token.CatOther, Column: col, Kind: token.AsciiDefEq, HasKind: true, Recognized: true}
	case '>':
		c.Advance(false)
		return Result{Category: token.CatOther, Column: col, Kind: token.AsciiImpliesOp, HasKind: true, Recognized: true}
	case '<':
		c.Advance(false)
		return Result{Category: token.CatOther, Column: col, Kind: token.AsciiEqltOp, HasKind: true, Recognized: true}
	case '|':
		c.Advance(false)
		return Result{Category: token.CatOther, Column: col, Kind: token.AsciiLdttOp, HasKind: true, Recognized: true}
	default:
		return Result{Category: token.CatOther, Column: col, Kind: token.EqOp, HasKind: true, Recognized: true}
	}
}

// --- '-' family: -, --, ---(no accept), ----+ -> SINGLE_LINE; ->; -|; -+-> ---

func dashFamily(c *cursor.Cursor, col token.Column) Result {
	c.Advance(false) // first '-'
	switch c.Peek() {
	case '-':
		c.Advance(false) // second '-'
		switch c.Peek() {
		case '-':
			c.Advance(false) // third '-'
			if c.Peek() == '-' {
				for c.Peek() == '-' {
					c.Advance(false)
				}
				return Result{Category: token.CatUnitStart, Column: col, Kind: token.SingleLine, HasKind: true, Recognized: true}
			}
			// exactly "---": no accept state.
			return Result{Recognized: false}
		default:
			return Result{Category: token.CatOther, Column: col, Kind: token.MinusMinusOp, HasKind: true, Recognized: true}
		}
	case '>':
		c.Advance(false)
		return Result{Category: token.CatRightDelimiter, Column: col, Kind: token.RArrow, HasKind: true, Recognized: true}
	case '|':
		c.Advance(false)
		return Result{Category: token.CatOther, Column: col, Kind: token.AsciiLsttOp, HasKind: true, Recognized: true}
	case '+':
		c.Advance(false)
		if c.Peek() == '-' {
			c.Advance(false)
			if c.Peek() == '>' {
				c.Advance(false)
				return Result{Category: token.CatOther, Column: col, Kind: token.AsciiPlusArrowOp, HasKind: true, Recognized: true}
			}
		}
		// Any other suffix of "-+" yields no token.
		return Result{Recognized: false}
	default:
		return Result{Category: token.CatOther, Column: col, Kind: token.Dash, HasKind: true, Recognized: true}
	}
}

// --- '>' family: >, >=; >>, >>_ (both RIGHT_DELIMITER: closing <<...>>) ---

func gtFamily(c *cursor.Cursor, col token.Column) Result {
	c.Advance(false) // first '>'
	switch c.Peek() {
	case '>':
		c.Advance(false) // second '>'
		if c.Peek() == '_' {
			c.Advance(false)
			return Result{Category: token.CatRightDelimiter, Column: col, Kind: token.RAngleBracketSub, HasKind: true, Recognized: true}
		}
		return Result{Category: token.CatRightDelimiter, Column: col, Kind: token.RAngleBracket, HasKind: true, Recognized: true}
	case '=':
		c.Advance(false)
		return Result{Category: token.CatOther, Column: col, Kind: token.AsciiGeqOp, HasKind: true, Recognized: true}
	default:
		return Result{Category: token.CatOther, Column: col, Kind: token.GtOp, HasKind: true, Recognized: true}
	}
}

// --- junction openers and comment markers ---

func landAscii(c *cursor.Cursor, col token.Column) Result {
	c.Advance(false) // '/'
	if c.Peek() == '\\' {
		c.Advance(false)
		return Result{Category: token.CatLand, Column: col, Recognized: true}
	}
	// Bare '/' (division etc.) is not this scanner's concern; the advance
	// above is discarded since we never MarkEnd.
	return Result{Recognized: false}
}

func lorOrComment(c *cursor.Cursor, col token.Column) Result {
	c.Advance(false) // '\\'
	switch c.Peek() {
	case '/':
		c.Advance(false)
		return Result{Category: token.CatLor, Column: col, Recognized: true}
	case '*':
		c.Advance(false)
		return Result{Category: token.CatComment, Column: col, Recognized: true}
	default:
		return Result{Recognized: false}
	}
}

func blockCommentOpener(c *cursor.Cursor, col token.Column) Result {
	c.Advance(false) // '('
	if c.Peek() == '*' {
		c.Advance(false)
		return Result{Category: token.CatComment, Column: col, Recognized: true}
	}
	return Result{Recognized: false}
}

// --- identifiers: THEN/ELSE/IN (RIGHT_DELIMITER) and unit-start keywords ---

func identifierFamily(c *cursor.Cursor, col token.Column) Result {
	var name []rune
	for isIdentPart(c.Peek()) {
		name = append(name, c.Peek())
		c.Advance(false)
	}
	ident := string(name)

	switch ident {
	case "THEN", "ELSE", "IN":
		return Result{Category: token.CatRightDelimiter, Column: col, Recognized: true}
	}
	if token.IsUnitStart(ident) {
		return Result{Category: token.CatUnitStart, Column: col, Recognized: true}
	}
	return Result{Recognized: false}
}

func isIdentStart(r rune) bool {
	return r == '_' || ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || ('0' <= r && r <= '9')
}
