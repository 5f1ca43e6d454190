package parser

import "github.com/aledsdavies/sable/syntax"

// rSimpleExpr parses the "callable/indexable" subset of expressions used
// as assignment targets and call receivers: an identifier or a
// parenthesized expression, followed by any chain of calls, indexing, and
// dotted/colon field access.
//
// Dotted and colon access (a.b, a:b) are folded into an ordinary BinOp
// node rather than a dedicated Select kind, the same way the expression
// grammar treats `.`/`:` as just another infix operator pair.
func (p *Parser) rSimpleExpr(allowCall bool) (CompletedMarker, bool) {
	if p.at() == syntax.LParen {
		marker := p.start()
		p.rExpr()
		return marker.complete(p.state, syntax.SimpleExpr), true
	}

	lhs, ok := p.rIdent()
	if !ok {
		return CompletedMarker{}, false
	}

	for {
		t := p.at()

		if t == syntax.LParen && allowCall {
			n := lhs.precede(p.state)
			if _, ok := p.rFuncCallArgs(); !ok {
				return CompletedMarker{}, false
			}
			lhs = n.complete(p.state, syntax.FuncCall)
			continue
		}

		if t == syntax.LBracket {
			n := lhs.precede(p.state)
			p.expect(syntax.LBracket)
			if _, ok := p.rExpr(); !ok {
				return CompletedMarker{}, false
			}
			p.expect(syntax.RBracket)
			lhs = n.complete(p.state, syntax.Index)
			continue
		}

		if t == syntax.Dot || t == syntax.Colon {
			n := lhs.precede(p.state)
			p.expect(t)
			p.rIdent()
			lhs = n.complete(p.state, syntax.BinOp)
			continue
		}

		break
	}

	return lhs, true
}
