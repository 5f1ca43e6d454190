package parser

import "github.com/aledsdavies/sable/syntax"

func (p *Parser) rDo() (CompletedMarker, bool) {
	marker := p.start()
	p.expect(syntax.Do)
	p.rBlock(func(t syntax.Kind) bool { return t == syntax.End })
	p.expect(syntax.End)
	return marker.complete(p.state, syntax.BlockStmt), true
}

func (p *Parser) rWhile() (CompletedMarker, bool) {
	marker := p.start()
	p.expect(syntax.While)
	p.rExpr()
	p.rDo()
	return marker.complete(p.state, syntax.WhileStmt), true
}

func (p *Parser) rRepeat() (CompletedMarker, bool) {
	marker := p.start()
	p.expect(syntax.Repeat)
	p.rBlock(func(t syntax.Kind) bool { return t == syntax.Until })
	p.expect(syntax.Until)
	p.rExpr()
	return marker.complete(p.state, syntax.RepeatStmt), true
}

func (p *Parser) rIf(ifKind syntax.Kind) (CompletedMarker, bool) {
	marker := p.start()
	p.expect(ifKind)
	p.rExpr()
	p.expect(syntax.Then)
	p.rBlock(func(t syntax.Kind) bool {
		return t == syntax.End || t == syntax.ElseIf || t == syntax.Else
	})

	switch p.at() {
	case syntax.End:
		p.expect(syntax.End)
	case syntax.ElseIf, syntax.Else:
		p.rElse()
	}

	return marker.complete(p.state, syntax.IfStmt), true
}

func (p *Parser) rElse() (CompletedMarker, bool) {
	marker := p.start()

	switch p.at() {
	case syntax.Else:
		p.expect(syntax.Else)
		p.rBlock(func(t syntax.Kind) bool { return t == syntax.End })
		p.expect(syntax.End)
	case syntax.ElseIf:
		p.rIf(syntax.ElseIf)
	}

	return marker.complete(p.state, syntax.ElseChain), true
}

func (p *Parser) rFor() (CompletedMarker, bool) {
	marker := p.start()
	p.expect(syntax.For)
	p.expect(syntax.Ident)

	if p.at() == syntax.Assign {
		return p.rNumFor(marker)
	}
	return p.rGenFor(marker)
}

func (p *Parser) rNumFor(marker Marker) (CompletedMarker, bool) {
	p.expect(syntax.Assign)
	p.rExpr()
	p.expect(syntax.Comma)
	p.rExpr()
	if p.at() == syntax.Comma {
		p.expect(syntax.Comma)
		p.rExpr()
	}

	p.rDo()
	return marker.complete(p.state, syntax.ForNumStmt), true
}

func (p *Parser) rGenFor(marker Marker) (CompletedMarker, bool) {
	for p.at() == syntax.Comma {
		p.expect(syntax.Comma)
		p.expect(syntax.Ident)
	}

	p.expect(syntax.In)
	p.rExprList()
	p.rDo()
	return marker.complete(p.state, syntax.ForGenStmt), true
}

func (p *Parser) rReturn() (CompletedMarker, bool) {
	marker := p.start()
	p.expect(syntax.Return)
	p.rExprList()
	return marker.complete(p.state, syntax.ReturnStmt), true
}

func (p *Parser) rBreak() (CompletedMarker, bool) {
	marker := p.start()
	p.expect(syntax.Break)
	return marker.complete(p.state, syntax.BreakStmt), true
}

// rBlock parses statements until stop reports true of the upcoming token,
// without consuming that token.
func (p *Parser) rBlock(stop func(syntax.Kind) bool) (CompletedMarker, bool) {
	marker := p.start()
	for !stop(p.at()) {
		if _, ok := p.rStmt(); !ok {
			break
		}
	}
	return marker.complete(p.state, syntax.StmtList), true
}
