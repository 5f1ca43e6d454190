// Package syntax defines the closed set of syntax kinds shared by every
// token and every non-terminal node produced by the lexer and parser.
package syntax

import "fmt"

// Kind tags every lexical token and every CST node kind. It is
// representable in 16 bits so that it can be embedded directly in a
// green-tree node without a separate lookup table.
type Kind uint16

const (
	// Sentinels.
	Invalid Kind = iota
	Tombstone
	Eof
	Root

	// Statement nodes.
	BreakStmt
	ReturnStmt
	BlockStmt
	WhileStmt
	RepeatStmt
	StmtList
	IfStmt
	ElseChain
	ForNumStmt
	ForGenStmt
	FuncStmt
	DeclStmt
	DeclTarget
	AssignStmt

	// Expression nodes.
	FuncArgs
	SimpleExpr
	Expr
	VarArgExpr
	BinOp
	FuncCall
	Index
	ExprList
	FuncExpr
	PrefixOp
	TableExpr
	TableArrayElem
	TableMapElem
	TableGenericElem
	LiteralExpr
	Ident

	// Trivia.
	Whitespace
	Comment

	// Operators.
	Plus
	Minus
	Star
	Slash
	DSlash
	Percent
	Caret
	Hash
	Ampersand
	Pipe
	Tilde
	DLAngle
	DRAngle
	Eq
	NotEq
	LEq
	GEq
	LAngle
	RAngle
	Assign
	Dot
	DDot
	TDot
	Colon
	DColon
	Comma
	Semicolon
	LParen
	RParen
	LCurly
	RCurly
	LBracket
	RBracket

	// Keywords.
	Local
	Function
	End
	In
	Then
	Break
	For
	Do
	Until
	Else
	While
	ElseIf
	If
	Repeat
	Return
	Not
	Or
	And
	Const
	Close

	// Literals.
	Nil
	True
	False
	String
	LongString
	Int
	HexInt
	Float
	HexFloat

	// last is a sentinel marking the end of the enumeration; never emitted.
	last
)

var names = [...]string{
	Invalid:          "INVALID",
	Tombstone:        "TOMBSTONE",
	Eof:              "EOF",
	Root:             "ROOT",
	BreakStmt:        "BREAK_STMT",
	ReturnStmt:       "RETURN_STMT",
	BlockStmt:        "BLOCK_STMT",
	WhileStmt:        "WHILE_STMT",
	RepeatStmt:       "REPEAT_STMT",
	StmtList:         "STMT_LIST",
	IfStmt:           "IF_STMT",
	ElseChain:        "ELSE_CHAIN",
	ForNumStmt:       "FOR_NUM_STMT",
	ForGenStmt:       "FOR_GEN_STMT",
	FuncStmt:         "FUNC_STMT",
	DeclStmt:         "DECL_STMT",
	DeclTarget:       "DECL_TARGET",
	AssignStmt:       "ASSIGN_STMT",
	FuncArgs:         "FUNC_ARGS",
	SimpleExpr:       "SIMPLE_EXPR",
	Expr:             "EXPR",
	VarArgExpr:       "VARARG_EXPR",
	BinOp:            "BIN_OP",
	FuncCall:         "FUNC_CALL",
	Index:            "INDEX",
	ExprList:         "EXPR_LIST",
	FuncExpr:         "FUNC_EXPR",
	PrefixOp:         "PREFIX_OP",
	TableExpr:        "TABLE_EXPR",
	TableArrayElem:   "TABLE_ARRAY_ELEM",
	TableMapElem:     "TABLE_MAP_ELEM",
	TableGenericElem: "TABLE_GENERIC_ELEM",
	LiteralExpr:      "LITERAL_EXPR",
	Ident:            "IDENT",
	Whitespace:       "WHITESPACE",
	Comment:          "COMMENT",
	Plus:             "PLUS",
	Minus:            "MINUS",
	Star:             "STAR",
	Slash:            "SLASH",
	DSlash:           "DSLASH",
	Percent:          "PERCENT",
	Caret:            "CARET",
	Hash:             "HASH",
	Ampersand:        "AMPERSAND",
	Pipe:             "PIPE",
	Tilde:            "TILDE",
	DLAngle:          "DLANGLE",
	DRAngle:          "DRANGLE",
	Eq:               "EQ",
	NotEq:            "NOT_EQ",
	LEq:              "LEQ",
	GEq:              "GEQ",
	LAngle:           "LANGLE",
	RAngle:           "RANGLE",
	Assign:           "ASSIGN",
	Dot:              "DOT",
	DDot:             "DDOT",
	TDot:             "TDOT",
	Colon:            "COLON",
	DColon:           "DCOLON",
	Comma:            "COMMA",
	Semicolon:        "SEMICOLON",
	LParen:           "LPAREN",
	RParen:           "RPAREN",
	LCurly:           "LCURLY",
	RCurly:           "RCURLY",
	LBracket:         "LBRACKET",
	RBracket:         "RBRACKET",
	Local:            "LOCAL",
	Function:         "FUNCTION",
	End:              "END",
	In:               "IN",
	Then:             "THEN",
	Break:            "BREAK",
	For:              "FOR",
	Do:               "DO",
	Until:            "UNTIL",
	Else:             "ELSE",
	While:            "WHILE",
	ElseIf:           "ELSEIF",
	If:               "IF",
	Repeat:           "REPEAT",
	Return:           "RETURN",
	Not:              "NOT",
	Or:               "OR",
	And:              "AND",
	Const:            "CONST",
	Close:            "CLOSE",
	Nil:              "NIL",
	True:             "TRUE",
	False:            "FALSE",
	String:           "STRING",
	LongString:       "LONG_STRING",
	Int:              "INT",
	HexInt:           "HEX_INT",
	Float:            "FLOAT",
	HexFloat:         "HEX_FLOAT",
}

// String implements fmt.Stringer for debug output and diagnostic messages.
func (k Kind) String() string {
	if int(k) < len(names) && names[k] != "" {
		return names[k]
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}

// IsTrivia reports whether k is whitespace or a comment: textually present
// but syntactically insignificant.
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment
}

// Keywords maps keyword spelling to its Kind. The lexer consults this after
// scanning a plain identifier, so identifier patterns never need to special
// case reserved words directly.
var Keywords = map[string]Kind{
	"local":    Local,
	"function": Function,
	"end":      End,
	"in":       In,
	"then":     Then,
	"break":    Break,
	"for":      For,
	"do":       Do,
	"until":    Until,
	"else":     Else,
	"while":    While,
	"elseif":   ElseIf,
	"if":       If,
	"repeat":   Repeat,
	"return":   Return,
	"not":      Not,
	"or":       Or,
	"and":      And,
	"nil":      Nil,
	"true":     True,
	"false":    False,
}

// KeywordNames returns every reserved word, used by diagnostics to suggest
// the nearest keyword when an expected token is missing and an identifier
// was found in its place.
func KeywordNames() []string {
	out := make([]string, 0, len(Keywords))
	for name := range Keywords {
		out = append(out, name)
	}
	return out
}

// IsUnaryOp reports whether k is a valid prefix/unary operator.
func IsUnaryOp(k Kind) bool {
	switch k {
	case Not, Plus, Minus, Hash, Tilde:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether k starts a literal expression.
func IsLiteral(k Kind) bool {
	switch k {
	case Nil, False, True, Int, HexInt, Float, HexFloat, String, LongString:
		return true
	default:
		return false
	}
}

// IsExprStart reports whether k can begin an expression.
func IsExprStart(k Kind) bool {
	return k == Ident ||
		k == LParen ||
		k == LCurly ||
		k == Function ||
		k == TDot ||
		IsLiteral(k) ||
		IsUnaryOp(k)
}

// IsBinaryOp reports whether k is a valid infix binary operator.
func IsBinaryOp(k Kind) bool {
	switch k {
	case Or, And, Plus, Minus, Star, Slash, DSlash, Caret, Percent,
		Ampersand, Pipe, DLAngle, DRAngle, Eq, Tilde, NotEq, LEq, GEq,
		RAngle, LAngle, Dot, Colon, DDot:
		return true
	default:
		return false
	}
}
