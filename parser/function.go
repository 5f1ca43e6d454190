package parser

import "github.com/aledsdavies/sable/syntax"

func (p *Parser) rFuncCallArgs() (CompletedMarker, bool) {
	marker := p.start()
	p.expect(syntax.LParen)

	for {
		if p.at() == syntax.RParen {
			p.expect(syntax.RParen)
			break
		}
		p.rExpr()

		if p.at() == syntax.Comma {
			p.expect(syntax.Comma)
		} else {
			p.expect(syntax.RParen)
			break
		}
	}

	return marker.complete(p.state, syntax.FuncArgs), true
}

// rFunc parses either a function statement (`function name(...) ... end`)
// or a function expression (`function(...) ... end`), selected by expr.
func (p *Parser) rFunc(expr bool) (CompletedMarker, bool) {
	marker := p.start()
	p.expect(syntax.Function)

	if !expr {
		p.rSimpleExpr(false)
	}

	p.rFuncDefArgs()
	p.rBlock(func(t syntax.Kind) bool { return t == syntax.End })
	p.expect(syntax.End)

	kind := syntax.FuncStmt
	if expr {
		kind = syntax.FuncExpr
	}
	return marker.complete(p.state, kind), true
}

func (p *Parser) rFuncDefArgs() (CompletedMarker, bool) {
	marker := p.start()
	p.expect(syntax.LParen)

	for {
		switch p.at() {
		case syntax.RParen:
			p.expect(syntax.RParen)
			return marker.complete(p.state, syntax.FuncArgs), true
		case syntax.TDot:
			p.expect(syntax.TDot)
		case syntax.Ident:
			p.expect(syntax.Ident)
		default:
			p.expect(syntax.Ident)
			return marker.complete(p.state, syntax.FuncArgs), true
		}

		if p.at() == syntax.Comma {
			p.expect(syntax.Comma)
		} else {
			p.expect(syntax.RParen)
			break
		}
	}

	return marker.complete(p.state, syntax.FuncArgs), true
}
