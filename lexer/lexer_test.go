package lexer_test

import (
	"testing"

	"github.com/aledsdavies/sable/lexer"
	"github.com/aledsdavies/sable/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeAlwaysEndsInEof(t *testing.T) {
	toks := lexer.Tokenize("local x = 1")
	require.NotEmpty(t, toks)
	last := toks[len(toks)-1]
	assert.Equal(t, syntax.Eof, last.Kind)
}

func TestTokenizeLosslessConcatenation(t *testing.T) {
	src := "local x = 1 + 2 -- comment\nreturn x"
	toks := lexer.Tokenize(src)

	var rebuilt string
	for _, tok := range toks {
		if tok.Kind == syntax.Eof {
			continue
		}
		rebuilt += tok.Text(src)
	}
	assert.Equal(t, src, rebuilt, "concatenating every token's text must reproduce the source exactly")
}

func TestTokenizeKeywordsAndIdents(t *testing.T) {
	toks := lexer.Tokenize("local x")
	var significant []syntax.Kind
	for _, tok := range toks {
		if tok.Kind.IsTrivia() || tok.Kind == syntax.Eof {
			continue
		}
		significant = append(significant, tok.Kind)
	}
	assert.Equal(t, []syntax.Kind{syntax.Local, syntax.Ident}, significant)
}

func TestTokenizeIntVsFloat(t *testing.T) {
	cases := map[string]syntax.Kind{
		"1":         syntax.Int,
		"123":       syntax.Int,
		"1.5":       syntax.Float,
		"1e10":      syntax.Float,
		"1e+10":     syntax.Float,
		"0x1A":      syntax.HexInt,
		"0x1.8":     syntax.HexFloat,
		"0x1.8p+4":  syntax.HexFloat,
		"0xA.Bp-1F": syntax.HexFloat,
	}
	for src, want := range cases {
		toks := lexer.Tokenize(src)
		require.NotEmpty(t, toks)
		assert.Equal(t, want, toks[0].Kind, "source %q", src)
		assert.Equal(t, src, toks[0].Text(src), "source %q", src)
	}
}

// A '.' with no digits after it never joins a number, and a hex float
// needs a fractional part: these prefixes stop the numeric token early
// rather than extending it.
func TestTokenizeNumberBoundaries(t *testing.T) {
	cases := map[string][]syntax.Kind{
		"1.":    {syntax.Int, syntax.Dot},
		".5":    {syntax.Dot, syntax.Int},
		"0x1p4": {syntax.HexInt, syntax.Ident},
		"1e":    {syntax.Int, syntax.Ident},
	}
	for src, want := range cases {
		toks := lexer.Tokenize(src)
		var kinds []syntax.Kind
		for _, tok := range toks {
			if tok.Kind == syntax.Eof {
				continue
			}
			kinds = append(kinds, tok.Kind)
		}
		assert.Equal(t, want, kinds, "source %q", src)
	}
}

func TestTokenizeOperators(t *testing.T) {
	cases := map[string]syntax.Kind{
		"==":  syntax.Eq,
		"~=":  syntax.NotEq,
		"<=":  syntax.LEq,
		">=":  syntax.GEq,
		"::":  syntax.DColon,
		"..":  syntax.DDot,
		"...": syntax.TDot,
		"//":  syntax.DSlash,
		"<<":  syntax.DLAngle,
		">>":  syntax.DRAngle,
		"+":   syntax.Plus,
		"-":   syntax.Minus,
	}
	for src, want := range cases {
		toks := lexer.Tokenize(src)
		require.NotEmpty(t, toks)
		assert.Equal(t, want, toks[0].Kind, "source %q", src)
	}
}

func TestTokenizeStringLiterals(t *testing.T) {
	src := `"a\"b" 'c\'d'`
	toks := lexer.Tokenize(src)
	var strs []string
	for _, tok := range toks {
		if tok.Kind == syntax.String {
			strs = append(strs, tok.Text(src))
		}
	}
	assert.Equal(t, []string{`"a\"b"`, `'c\'d'`}, strs)
}

func TestTokenizeLongBracketDoubleWorks(t *testing.T) {
	src := "[[hello\nworld]]"
	toks := lexer.Tokenize(src)
	require.NotEmpty(t, toks)
	assert.Equal(t, syntax.LongString, toks[0].Kind)
	assert.Equal(t, src, toks[0].Text(src))
}

func TestTokenizeLongStringWithEquals(t *testing.T) {
	src := "[=[hello]=]"
	toks := lexer.Tokenize(src)
	require.NotEmpty(t, toks)
	assert.Equal(t, syntax.LongString, toks[0].Kind)
	assert.Equal(t, src, toks[0].Text(src))
}

func TestTokenizeLongStringCloserMustMatchEquals(t *testing.T) {
	src := "[==[a]=]b]==]"
	toks := lexer.Tokenize(src)
	require.NotEmpty(t, toks)
	assert.Equal(t, syntax.LongString, toks[0].Kind)
	assert.Equal(t, src, toks[0].Text(src), "]=] must not close a [==[ opener")
}

// This documents the long-delimiter quirk: a long *comment* opener
// using one or more '=' signs fails the delimiter guard, so the comment
// runs to end-of-line instead of spanning to its matching closer.
func TestTokenizeLongCommentWithEqualsRunsToEndOfLine(t *testing.T) {
	src := "--[=[hello\nworld]=]"
	toks := lexer.Tokenize(src)
	require.NotEmpty(t, toks)
	assert.Equal(t, syntax.Comment, toks[0].Kind)
	assert.Equal(t, "--[=[hello", toks[0].Text(src))
}

func TestTokenizeLongCommentDoubleBracketSpans(t *testing.T) {
	src := "--[[hello\nworld]]local"
	toks := lexer.Tokenize(src)
	require.NotEmpty(t, toks)
	assert.Equal(t, syntax.Comment, toks[0].Kind)
	assert.Equal(t, "--[[hello\nworld]]", toks[0].Text(src))
}

func TestTokenizeLineComment(t *testing.T) {
	src := "-- a comment\nlocal"
	toks := lexer.Tokenize(src)
	require.NotEmpty(t, toks)
	assert.Equal(t, syntax.Comment, toks[0].Kind)
	assert.Equal(t, "-- a comment", toks[0].Text(src))
}

func TestTokenizeUnrecognizedByteIsInvalidNotError(t *testing.T) {
	src := "@"
	toks := lexer.Tokenize(src)
	require.NotEmpty(t, toks)
	assert.Equal(t, syntax.Invalid, toks[0].Kind)
}

func TestTokenizeAttributes(t *testing.T) {
	src := "local x <const> = 1"
	toks := lexer.Tokenize(src)
	found := false
	for _, tok := range toks {
		if tok.Kind == syntax.Const {
			found = true
		}
	}
	assert.True(t, found)
}
