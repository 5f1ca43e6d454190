// Package lexer scans Lua 5.4 surface syntax into a flat token stream.
// It never raises errors: an unrecognized byte becomes a single Invalid
// token and scanning continues.
package lexer

import (
	"github.com/aledsdavies/sable/source"
	"github.com/aledsdavies/sable/syntax"
)

// rawToken is the lexer's internal working representation; Tokenize
// converts it to source.Token for external consumption.
type rawToken struct {
	kind  syntax.Kind
	start uint32
	end   uint32
}

// Byte classification tables, used as a fast-path lookup rather than
// calling into unicode/utf8 for every byte of a source that is
// overwhelmingly ASCII. Indexed by the full byte range so a stray
// non-ASCII byte classifies as "none of the above" instead of needing a
// bounds guard at every call site.
var (
	isSpace      [256]bool
	isDigit      [256]bool
	isIdentStart [256]bool
	isIdentPart  [256]bool
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)
		isSpace[i] = ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f' || ch == '\v'
		isDigit[i] = ch >= '0' && ch <= '9'
		isIdentStart[i] = (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
		isIdentPart[i] = isIdentStart[i] || isDigit[i]
	}
}

func isHexDigit(ch byte) bool {
	return isDigit[ch] || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// Lexer scans one source string into a token stream.
type Lexer struct {
	src string
	pos uint32
}

// New creates a Lexer over src.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// Tokenize scans the entire source and returns its token stream, always
// terminated by (Eof, 0..0).
func Tokenize(src string) []source.Token {
	return New(src).Tokenize()
}

// Tokenize runs the lexer to completion.
func (l *Lexer) Tokenize() []source.Token {
	scratch := getTokenSlice(len(l.src) / 3)
	defer putTokenSlice(scratch)

	for {
		tok, done := l.next()
		*scratch = append(*scratch, tok)
		if done {
			break
		}
	}

	out := make([]source.Token, len(*scratch))
	for i, rt := range *scratch {
		out[i] = source.Token{Kind: rt.kind, Span: source.NewSpan(rt.start, rt.end)}
	}
	return out
}

func (l *Lexer) byteAt(offset uint32) byte {
	p := l.pos + offset
	if int(p) >= len(l.src) {
		return 0
	}
	return l.src[p]
}

func (l *Lexer) cur() byte { return l.byteAt(0) }

// next scans a single token and reports whether it was the terminal EOF.
func (l *Lexer) next() (rawToken, bool) {
	start := l.pos

	if int(l.pos) >= len(l.src) {
		return rawToken{kind: syntax.Eof}, true
	}

	ch := l.cur()

	switch {
	case isSpace[ch]:
		return l.scanWhitespace(start), false
	case ch == '-' && l.byteAt(1) == '-':
		return l.scanComment(start), false
	case isIdentStart[ch]:
		return l.scanIdentOrKeyword(start), false
	case isDigit[ch]:
		return l.scanNumber(start), false
	case ch == '"' || ch == '\'':
		return l.scanQuotedString(start, ch), false
	case ch == '[' && (l.byteAt(1) == '[' || l.byteAt(1) == '='):
		if tok, ok := l.tryScanLongString(start); ok {
			return tok, false
		}
		fallthrough
	default:
		return l.scanOperatorOrInvalid(start), false
	}
}

func (l *Lexer) scanWhitespace(start uint32) rawToken {
	for int(l.pos) < len(l.src) && isSpace[l.cur()] {
		l.pos++
	}
	return rawToken{kind: syntax.Whitespace, start: start, end: l.pos}
}

// scanComment handles `-- ...` line comments and `--[[ ... ]]` long
// comments. An opener with '=' signs (`--[=[`) is scanned as a line
// comment; see startsWithLongDelimiter.
func (l *Lexer) scanComment(start uint32) rawToken {
	l.pos += 2 // consume "--"

	if delimLen, ok := l.startsWithLongDelimiter('['); ok {
		l.pos += uint32(delimLen)
		l.scanLongBracketBody(delimLen)
		return rawToken{kind: syntax.Comment, start: start, end: l.pos}
	}

	for int(l.pos) < len(l.src) {
		if l.cur() == '\n' {
			break
		}
		if l.cur() == '\r' && l.byteAt(1) == '\n' {
			break
		}
		l.pos++
	}
	return rawToken{kind: syntax.Comment, start: start, end: l.pos}
}

func (l *Lexer) scanIdentOrKeyword(start uint32) rawToken {
	for int(l.pos) < len(l.src) && isIdentPart[l.cur()] {
		l.pos++
	}
	text := l.src[start:l.pos]

	if kind, ok := syntax.Keywords[text]; ok {
		return rawToken{kind: kind, start: start, end: l.pos}
	}

	// `<const>` and `<close>` are lexed as attribute keywords; they are
	// not valid identifiers so there is no ambiguity with `<`.
	return rawToken{kind: syntax.Ident, start: start, end: l.pos}
}

// scanNumber scans integers, hex integers, floats, and hex floats. Plain
// integers are matched before floats of an otherwise ambiguous prefix: a
// bare digit run with no fractional part or exponent is always an Int,
// never a Float. A '.' only joins the number when digits follow it, so
// "1." is Int then Dot rather than a float.
func (l *Lexer) scanNumber(start uint32) rawToken {
	if l.cur() == '0' && (l.byteAt(1) == 'x' || l.byteAt(1) == 'X') {
		return l.scanHexNumber(start)
	}

	for isDigit[l.cur()] {
		l.pos++
	}

	isFloat := false
	if l.cur() == '.' && isDigit[l.byteAt(1)] {
		isFloat = true
		l.pos++
		for isDigit[l.cur()] {
			l.pos++
		}
	}
	if l.cur() == 'e' || l.cur() == 'E' {
		mark := l.pos
		l.pos++
		if l.cur() == '+' || l.cur() == '-' {
			l.pos++
		}
		if isDigit[l.cur()] {
			isFloat = true
			for isDigit[l.cur()] {
				l.pos++
			}
		} else {
			l.pos = mark // not actually an exponent; back off
		}
	}

	kind := syntax.Int
	if isFloat {
		kind = syntax.Float
	}
	return rawToken{kind: kind, start: start, end: l.pos}
}

// scanHexNumber scans `0x[hex]+` as HexInt and
// `0x[hex]*.[hex]+([pP][+-][hex]+)?` as HexFloat: the fractional part is
// what makes a hex float, and its exponent requires an explicit sign
// with hex digits.
func (l *Lexer) scanHexNumber(start uint32) rawToken {
	l.pos += 2 // consume "0x"/"0X"

	for isHexDigit(l.cur()) {
		l.pos++
	}

	isFloat := false
	if l.cur() == '.' && isHexDigit(l.byteAt(1)) {
		isFloat = true
		l.pos++
		for isHexDigit(l.cur()) {
			l.pos++
		}
	}

	if isFloat && (l.cur() == 'p' || l.cur() == 'P') {
		mark := l.pos
		l.pos++
		if l.cur() == '+' || l.cur() == '-' {
			l.pos++
			if isHexDigit(l.cur()) {
				for isHexDigit(l.cur()) {
					l.pos++
				}
			} else {
				l.pos = mark
			}
		} else {
			l.pos = mark
		}
	}

	kind := syntax.HexInt
	if isFloat {
		kind = syntax.HexFloat
	}
	return rawToken{kind: kind, start: start, end: l.pos}
}

// scanQuotedString scans a single- or double-quoted string literal,
// recognizing `\\` and matching-quote escapes.
func (l *Lexer) scanQuotedString(start uint32, quote byte) rawToken {
	l.pos++ // consume opening quote
	for int(l.pos) < len(l.src) {
		ch := l.cur()
		if ch == '\\' {
			l.pos += 2
			if int(l.pos) > len(l.src) {
				l.pos = uint32(len(l.src))
			}
			continue
		}
		l.pos++
		if ch == quote {
			break
		}
	}
	return rawToken{kind: syntax.String, start: start, end: l.pos}
}

// tryScanLongString attempts to scan a `[=*[ ... ]=*]` long string. It
// returns ok=false (consuming nothing) if the cursor is not in fact at a
// long-bracket opener, so the caller can fall back to operator scanning
// of a bare `[`. Unlike comments, strings recognize any `=` run in the
// opener.
func (l *Lexer) tryScanLongString(start uint32) (rawToken, bool) {
	rest := l.src[l.pos:]
	if len(rest) < 2 || rest[0] != '[' {
		return rawToken{}, false
	}
	i := 1
	for i < len(rest) && rest[i] == '=' {
		i++
	}
	if i >= len(rest) || rest[i] != '[' {
		return rawToken{}, false
	}
	delimLen := i + 1
	l.pos += uint32(delimLen)
	l.scanLongBracketBody(delimLen)
	return rawToken{kind: syntax.LongString, start: start, end: l.pos}, true
}

// startsWithLongDelimiter reports whether the cursor is positioned at a
// long-bracket opener `[=*[` and, if so, its length. Only the comment
// scanner consults it.
//
// This preserves a known quirk verbatim rather than silently fixing it:
// the fast-path guard checks the literal prefix "[=]" where it should
// check "[=" followed by a run of zero-or-more '=' and a closing '['.
// As written, the guard only ever succeeds for the bare "[[" case (zero
// '=' signs); a comment opener with one or more '=' signs (`--[=[`,
// `--[==[`, ...) fails the guard and the comment runs to end-of-line
// instead.
func (l *Lexer) startsWithLongDelimiter(delim byte) (int, bool) {
	rest := l.src[l.pos:]
	if hasPrefix2(rest, "[[") {
		return 2, true
	}
	if !hasPrefix2(rest, "[=]") {
		return 0, false
	}
	i := 1
	for i < len(rest) && rest[i] == '=' {
		i++
	}
	if i < len(rest) && rest[i] == delim {
		return i + 1, true
	}
	return 0, false
}

func hasPrefix2(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// scanLongBracketBody consumes the body of a long string/comment up to
// and including the first closing delimiter `]=*]` whose `=` count
// matches the opener's (delimLen-2). If no closing delimiter is found, it
// consumes to end of input rather than looping forever.
func (l *Lexer) scanLongBracketBody(delimLen int) {
	eqCount := delimLen - 2
	for int(l.pos) < len(l.src) {
		if l.cur() == ']' && l.closesLongDelimiter(eqCount) {
			l.pos += uint32(delimLen)
			return
		}
		l.pos++
	}
}

func (l *Lexer) closesLongDelimiter(eqCount int) bool {
	if int(l.pos)+eqCount+2 > len(l.src) {
		return false
	}
	for i := 0; i < eqCount; i++ {
		if l.byteAt(uint32(1+i)) != '=' {
			return false
		}
	}
	return l.byteAt(uint32(1+eqCount)) == ']'
}

// scanOperatorOrInvalid scans the longest matching operator/delimiter
// token, or a single-byte Invalid token if nothing matches.
func (l *Lexer) scanOperatorOrInvalid(start uint32) rawToken {
	three := l.peekString(3)
	if three == "..." {
		l.pos += 3
		return rawToken{kind: syntax.TDot, start: start, end: l.pos}
	}

	two := l.peekString(2)
	if kind, ok := twoCharOps[two]; ok {
		l.pos += 2
		return rawToken{kind: kind, start: start, end: l.pos}
	}

	if l.cur() == '<' {
		if attr, n, ok := l.tryScanAttribute(); ok {
			l.pos += uint32(n)
			return rawToken{kind: attr, start: start, end: l.pos}
		}
	}

	ch := l.cur()
	if kind, ok := oneCharOps[ch]; ok {
		l.pos++
		return rawToken{kind: kind, start: start, end: l.pos}
	}

	l.pos++
	return rawToken{kind: syntax.Invalid, start: start, end: l.pos}
}

// tryScanAttribute scans `<const>` or `<close>`.
func (l *Lexer) tryScanAttribute() (syntax.Kind, int, bool) {
	for _, attr := range []struct {
		text string
		kind syntax.Kind
	}{
		{"<const>", syntax.Const},
		{"<close>", syntax.Close},
	} {
		if hasPrefix2(l.src[l.pos:], attr.text) {
			return attr.kind, len(attr.text), true
		}
	}
	return 0, 0, false
}

func (l *Lexer) peekString(n int) string {
	end := int(l.pos) + n
	if end > len(l.src) {
		end = len(l.src)
	}
	return l.src[l.pos:end]
}

var twoCharOps = map[string]syntax.Kind{
	"//": syntax.DSlash,
	"<<": syntax.DLAngle,
	">>": syntax.DRAngle,
	"==": syntax.Eq,
	"~=": syntax.NotEq,
	"<=": syntax.LEq,
	">=": syntax.GEq,
	"::": syntax.DColon,
	"..": syntax.DDot,
}

var oneCharOps = map[byte]syntax.Kind{
	'+': syntax.Plus,
	'-': syntax.Minus,
	'*': syntax.Star,
	'/': syntax.Slash,
	'%': syntax.Percent,
	'^': syntax.Caret,
	'#': syntax.Hash,
	'&': syntax.Ampersand,
	'|': syntax.Pipe,
	'~': syntax.Tilde,
	'<': syntax.LAngle,
	'>': syntax.RAngle,
	'=': syntax.Assign,
	'.': syntax.Dot,
	':': syntax.Colon,
	',': syntax.Comma,
	';': syntax.Semicolon,
	'(': syntax.LParen,
	')': syntax.RParen,
	'{': syntax.LCurly,
	'}': syntax.RCurly,
	'[': syntax.LBracket,
	']': syntax.RBracket,
}
