package dsl

import "fmt"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Special tokens
	TokenEOF     TokenType = iota // end of file
	TokenError                    // lexer error
	TokenNewline                  // newline

	// Keywords
	TokenState     // state
	TokenComponent // component
	TokenSize      // size
	TokenPadding   // padding
	TokenBorder    // border
	TokenClick     // click
	TokenIncrement // increment
	TokenStep      // step
	TokenWhen      // when
	TokenScreen    // screen

	// Literals
	TokenIdent  // identifier
	TokenInt    // integer literal: 123
	TokenString // string literal: "..."

	// Operators and Punctuation
	TokenLParen // (
	TokenRParen // )
	TokenLBrace // {
	TokenRBrace // }
	TokenComma  // ,
	TokenEquals // =
	TokenMinus  // -
	TokenGT     // >
	TokenGTE    // >=
	TokenLT     // <
	TokenLTE    // <=
)

// tokenNames maps token types to their string names for debugging.
var tokenNames = map[TokenType]string{
	TokenEOF:       "EOF",
	TokenError:     "Error",
	TokenNewline:   "Newline",
	TokenState:     "state",
	TokenComponent: "component",
	TokenSize:      "size",
	TokenPadding:   "padding",
	TokenBorder:    "border",
	TokenClick:     "click",
	TokenIncrement: "increment",
	TokenStep:      "step",
	TokenWhen:      "when",
	TokenScreen:    "screen",
	TokenIdent:     "Ident",
	TokenInt:       "Int",
	TokenString:    "String",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenLBrace:    "{",
	TokenRBrace:    "}",
	TokenComma:     ",",
	TokenEquals:    "=",
	TokenMinus:     "-",
	TokenGT:        ">",
	TokenGTE:       ">=",
	TokenLT:        "<",
	TokenLTE:       "<=",
}

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// IsModifier reports whether the token starts a node modifier.
// A line that begins with a modifier continues the previous statement.
func (t TokenType) IsModifier() bool {
	switch t {
	case TokenSize, TokenPadding, TokenBorder, TokenClick, TokenWhen:
		return true
	}
	return false
}

// Token represents a lexical token with its type, literal value, and source position.
type Token struct {
	Type     TokenType
	Literal  string
	Line     int
	Column   int
	StartPos int // byte offset in source where token starts
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Literal == "" {
		return fmt.Sprintf("%s at %d:%d", t.Type, t.Line, t.Column)
	}
	lit := t.Literal
	if len(lit) > 20 {
		lit = lit[:17] + "..."
	}
	return fmt.Sprintf("%s(%q) at %d:%d", t.Type, lit, t.Line, t.Column)
}

// Position represents a source code location for error reporting.
type Position struct {
	File   string
	Line   int
	Column int
}

// String returns a formatted position string.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// keywords maps keyword strings to their token types.
var keywords = map[string]TokenType{
	"state":     TokenState,
	"component": TokenComponent,
	"size":      TokenSize,
	"padding":   TokenPadding,
	"border":    TokenBorder,
	"click":     TokenClick,
	"increment": TokenIncrement,
	"step":      TokenStep,
	"when":      TokenWhen,
	"screen":    TokenScreen,
}

// LookupIdent returns the token type for an identifier,
// checking if it's a keyword first.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdent
}
