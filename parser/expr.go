package parser

import "github.com/aledsdavies/sable/syntax"

// rExprList parses a comma-separated run of one or more expressions,
// wrapping it in an ExprList node only when there is more than one —
// a single expression needs no wrapper of its own.
func (p *Parser) rExprList() {
	marker := p.start()
	count := 0

	for syntax.IsExprStart(p.at()) {
		count++
		p.rExpr()
		if p.at() != syntax.Comma {
			break
		}
		p.expect(syntax.Comma)
	}

	if count > 1 {
		marker.complete(p.state, syntax.ExprList)
	} else {
		marker.abandon(p.state)
	}
}

// rExpr parses a full expression via precedence climbing.
func (p *Parser) rExpr() (CompletedMarker, bool) {
	return p.rExprInner(0)
}

func (p *Parser) rExprInner(minBP int) (CompletedMarker, bool) {
	lhs, ok := p.rExprLHS()
	if !ok {
		return CompletedMarker{}, false
	}

	for {
		t := p.at()

		if t == syntax.LParen && callBindingPower >= minBP {
			n := lhs.precede(p.state)
			if _, ok := p.rFuncCallArgs(); !ok {
				return CompletedMarker{}, false
			}
			lhs = n.complete(p.state, syntax.FuncCall)
			continue
		}

		if t == syntax.LBracket && indexBindingPower >= minBP {
			n := lhs.precede(p.state)
			p.expect(syntax.LBracket)
			if _, ok := p.rExpr(); !ok {
				return CompletedMarker{}, false
			}
			p.expect(syntax.RBracket)
			lhs = n.complete(p.state, syntax.Index)
			continue
		}

		if lBP, rBP, ok := infixBindingPower(t); ok {
			if lBP < minBP {
				break
			}

			n := lhs.precede(p.state)
			p.expect(t)
			p.rExprInner(rBP)
			lhs = n.complete(p.state, syntax.BinOp)
			continue
		}

		break
	}

	return lhs, true
}

func (p *Parser) rExprLHS() (CompletedMarker, bool) {
	switch {
	case p.at() == syntax.Ident:
		return p.rIdent()
	case p.at() == syntax.TDot:
		return p.rVararg()
	case p.at() == syntax.LCurly:
		return p.rTable()
	case p.at() == syntax.LParen:
		return p.rParen()
	case p.at() == syntax.Function:
		return p.rFunc(true)
	case syntax.IsUnaryOp(p.at()):
		return p.rExprUnary()
	case syntax.IsLiteral(p.at()):
		return p.rLiteral()
	default:
		return CompletedMarker{}, false
	}
}

func (p *Parser) rExprUnary() (CompletedMarker, bool) {
	n := p.start()
	op := p.at()
	p.expect(op)
	rBP := prefixBindingPower(op)
	p.rExprInner(rBP)
	return n.complete(p.state, syntax.PrefixOp), true
}

func (p *Parser) rIdent() (CompletedMarker, bool) {
	marker := p.start()
	p.expect(syntax.Ident)
	return marker.complete(p.state, syntax.Ident), true
}

func (p *Parser) rVararg() (CompletedMarker, bool) {
	marker := p.start()
	p.expect(syntax.TDot)
	return marker.complete(p.state, syntax.VarArgExpr), true
}

func (p *Parser) rParen() (CompletedMarker, bool) {
	marker := p.start()
	p.expect(syntax.LParen)
	if _, ok := p.rExpr(); !ok {
		return CompletedMarker{}, false
	}
	p.expect(syntax.RParen)
	return marker.complete(p.state, syntax.Expr), true
}

func (p *Parser) rLiteral() (CompletedMarker, bool) {
	marker := p.start()
	kind := p.at()
	p.expect(kind)
	return marker.complete(p.state, syntax.LiteralExpr), true
}
