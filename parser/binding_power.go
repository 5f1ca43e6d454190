package parser

import "github.com/aledsdavies/sable/syntax"

const (
	indexBindingPower = 22
	callBindingPower  = 22
)

// prefixBindingPower returns the binding power of a unary operator's
// operand. Every unary operator binds at the same strength.
func prefixBindingPower(op syntax.Kind) int {
	switch op {
	case syntax.Not, syntax.Plus, syntax.Minus, syntax.Hash, syntax.Tilde:
		return 21
	default:
		panic("prefixBindingPower called with non-unary operator " + op.String())
	}
}

// infixBindingPower returns the (left, right) binding power of a binary
// operator, or ok=false if op is not a binary operator. Concatenation
// (..), exponentiation (^) and the `.`/`:` selectors have right bp <
// left bp and so associate to the right; every other operator is
// left-associative.
func infixBindingPower(op syntax.Kind) (left, right int, ok bool) {
	switch op {
	case syntax.Or:
		return 1, 2, true
	case syntax.And:
		return 3, 4, true
	case syntax.LAngle, syntax.RAngle, syntax.LEq, syntax.GEq, syntax.NotEq, syntax.Eq:
		return 5, 6, true
	case syntax.Pipe:
		return 7, 8, true
	case syntax.Tilde:
		return 9, 10, true
	case syntax.Ampersand:
		return 11, 12, true
	case syntax.DLAngle, syntax.DRAngle:
		return 13, 14, true
	case syntax.DDot:
		return 16, 15, true
	case syntax.Plus, syntax.Minus:
		return 17, 18, true
	case syntax.Star, syntax.Slash, syntax.DSlash, syntax.Percent:
		return 19, 20, true
	case syntax.Caret:
		return 22, 21, true
	case syntax.Dot, syntax.Colon:
		return 24, 23, true
	default:
		return 0, 0, false
	}
}
