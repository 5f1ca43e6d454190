package parser

import "github.com/aledsdavies/sable/syntax"

// statementRecovery lists the token kinds rStmt's error branch scans
// forward to: each one safely starts a new statement, so stopping there
// gives the parser the best chance of resynchronizing after garbage
// input.
var statementRecovery = []syntax.Kind{
	syntax.Do,
	syntax.While,
	syntax.Repeat,
	syntax.If,
	syntax.For,
	syntax.Return,
	syntax.Break,
	syntax.Function,
	syntax.Local,
}

func (p *Parser) rStmt() (CompletedMarker, bool) {
	switch p.at() {
	case syntax.Do:
		return p.rDo()
	case syntax.While:
		return p.rWhile()
	case syntax.Repeat:
		return p.rRepeat()
	case syntax.If:
		return p.rIf(syntax.If)
	case syntax.For:
		return p.rFor()
	case syntax.Return:
		return p.rReturn()
	case syntax.Break:
		return p.rBreak()
	case syntax.Function:
		return p.rFunc(false)
	case syntax.Local:
		return p.rDecl()
	case syntax.Ident, syntax.LParen:
		return p.rMaybeAssign()
	case syntax.Semicolon:
		return p.rSemicolon()
	case syntax.Eof:
		return CompletedMarker{}, false
	default:
		span := p.errorEatUntil(statementRecovery)
		text := p.source(span)
		p.report(newErrorReport(span.Start).
			withMessage("expected a statement").
			withLabel(span, "expected a statement but got \""+text+"\"").
			finish())
		// The garbage was consumed, so the caller can resume at the
		// recovery token.
		return CompletedMarker{}, true
	}
}

// rSemicolon parses a bare `;` statement. It completes the marker with
// the Semicolon token kind itself rather than a dedicated empty-statement
// kind.
func (p *Parser) rSemicolon() (CompletedMarker, bool) {
	marker := p.start()
	p.expect(syntax.Semicolon)
	return marker.complete(p.state, syntax.Semicolon), true
}
