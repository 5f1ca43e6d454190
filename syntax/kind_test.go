package syntax_test

import (
	"testing"

	"github.com/aledsdavies/sable/syntax"
	"github.com/stretchr/testify/assert"
)

func TestIsTrivia(t *testing.T) {
	assert.True(t, syntax.Whitespace.IsTrivia())
	assert.True(t, syntax.Comment.IsTrivia())
	assert.False(t, syntax.Ident.IsTrivia())
}

func TestIsExprStart(t *testing.T) {
	assert.True(t, syntax.IsExprStart(syntax.Ident))
	assert.True(t, syntax.IsExprStart(syntax.LParen))
	assert.True(t, syntax.IsExprStart(syntax.Minus))
	assert.True(t, syntax.IsExprStart(syntax.TDot))
	assert.False(t, syntax.IsExprStart(syntax.End))
}

func TestKeywordsRoundTrip(t *testing.T) {
	for name, kind := range syntax.Keywords {
		assert.Contains(t, syntax.KeywordNames(), name)
		assert.NotEqual(t, syntax.Invalid, kind)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "IDENT", syntax.Ident.String())
	assert.Equal(t, "EOF", syntax.Eof.String())
}
