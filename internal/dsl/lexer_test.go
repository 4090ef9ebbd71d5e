package dsl

import (
	"testing"
)

func TestLexer_BasicTokens(t *testing.T) {
	type tc struct {
		input    string
		expected []Token
	}

	tests := map[string]tc{
		"empty": {
			input:    "",
			expected: []Token{{Type: TokenEOF, Literal: "", Line: 1, Column: 1}},
		},
		"punctuation": {
			input: "(){},=-",
			expected: []Token{
				{Type: TokenLParen, Literal: "(", Line: 1, Column: 1},
				{Type: TokenRParen, Literal: ")", Line: 1, Column: 2},
				{Type: TokenLBrace, Literal: "{", Line: 1, Column: 3},
				{Type: TokenRBrace, Literal: "}", Line: 1, Column: 4},
				{Type: TokenComma, Literal: ",", Line: 1, Column: 5},
				{Type: TokenEquals, Literal: "=", Line: 1, Column: 6},
				{Type: TokenMinus, Literal: "-", Line: 1, Column: 7},
				{Type: TokenEOF, Literal: "", Line: 1, Column: 8},
			},
		},
		"comparisons": {
			input: "> >= < <=",
			expected: []Token{
				{Type: TokenGT, Literal: ">", Line: 1, Column: 1},
				{Type: TokenGTE, Literal: ">=", Line: 1, Column: 3},
				{Type: TokenLT, Literal: "<", Line: 1, Column: 6},
				{Type: TokenLTE, Literal: "<=", Line: 1, Column: 8},
				{Type: TokenEOF, Literal: "", Line: 1, Column: 10},
			},
		},
		"newline positions": {
			input: "a\nb",
			expected: []Token{
				{Type: TokenIdent, Literal: "a", Line: 1, Column: 1},
				{Type: TokenNewline, Literal: "\n", Line: 1, Column: 2},
				{Type: TokenIdent, Literal: "b", Line: 2, Column: 1},
				{Type: TokenEOF, Literal: "", Line: 2, Column: 2},
			},
		},
		"comment skipped up to newline": {
			input: "Text // hi\nButton",
			expected: []Token{
				{Type: TokenIdent, Literal: "Text", Line: 1, Column: 1},
				{Type: TokenNewline, Literal: "\n", Line: 1, Column: 11},
				{Type: TokenIdent, Literal: "Button", Line: 2, Column: 1},
				{Type: TokenEOF, Literal: "", Line: 2, Column: 7},
			},
		},
		"state declaration": {
			input: "state count = 10",
			expected: []Token{
				{Type: TokenState, Literal: "state", Line: 1, Column: 1},
				{Type: TokenIdent, Literal: "count", Line: 1, Column: 7},
				{Type: TokenEquals, Literal: "=", Line: 1, Column: 13},
				{Type: TokenInt, Literal: "10", Line: 1, Column: 15},
				{Type: TokenEOF, Literal: "", Line: 1, Column: 17},
			},
		},
		"layout node with modifier": {
			input: `Text("hi") size 18`,
			expected: []Token{
				{Type: TokenIdent, Literal: "Text", Line: 1, Column: 1},
				{Type: TokenLParen, Literal: "(", Line: 1, Column: 5},
				{Type: TokenString, Literal: "hi", Line: 1, Column: 6},
				{Type: TokenRParen, Literal: ")", Line: 1, Column: 10},
				{Type: TokenSize, Literal: "size", Line: 1, Column: 12},
				{Type: TokenInt, Literal: "18", Line: 1, Column: 17},
				{Type: TokenEOF, Literal: "", Line: 1, Column: 19},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLexer("test.dsl", tt.input)
			for i, expected := range tt.expected {
				tok := l.Next()
				if tok.Type != expected.Type {
					t.Errorf("token %d: Type = %v, want %v", i, tok.Type, expected.Type)
				}
				if tok.Literal != expected.Literal {
					t.Errorf("token %d: Literal = %q, want %q", i, tok.Literal, expected.Literal)
				}
				if tok.Line != expected.Line {
					t.Errorf("token %d: Line = %d, want %d", i, tok.Line, expected.Line)
				}
				if tok.Column != expected.Column {
					t.Errorf("token %d: Column = %d, want %d", i, tok.Column, expected.Column)
				}
			}
			if l.Errors().HasErrors() {
				t.Errorf("unexpected lexer errors: %v", l.Errors())
			}
		})
	}
}

func TestLexer_Keywords(t *testing.T) {
	type tc struct {
		input        string
		expectedType TokenType
	}

	tests := map[string]tc{
		"state":     {input: "state", expectedType: TokenState},
		"component": {input: "component", expectedType: TokenComponent},
		"size":      {input: "size", expectedType: TokenSize},
		"padding":   {input: "padding", expectedType: TokenPadding},
		"border":    {input: "border", expectedType: TokenBorder},
		"click":     {input: "click", expectedType: TokenClick},
		"increment": {input: "increment", expectedType: TokenIncrement},
		"step":      {input: "step", expectedType: TokenStep},
		"when":      {input: "when", expectedType: TokenWhen},
		"screen":    {input: "screen", expectedType: TokenScreen},
		"Text":      {input: "Text", expectedType: TokenIdent},
		"stateful":  {input: "stateful", expectedType: TokenIdent},
		"_private":  {input: "_private", expectedType: TokenIdent},
		"col2":      {input: "col2", expectedType: TokenIdent},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLexer("test.dsl", tt.input)
			tok := l.Next()
			if tok.Type != tt.expectedType {
				t.Errorf("Type = %v, want %v", tok.Type, tt.expectedType)
			}
			if tok.Literal != tt.input {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.input)
			}
		})
	}
}

func TestLexer_Strings(t *testing.T) {
	type tc struct {
		input   string
		literal string
	}

	tests := map[string]tc{
		"simple":            {input: `"hello"`, literal: "hello"},
		"empty":             {input: `""`, literal: ""},
		"placeholder":       {input: `"Count: {count}"`, literal: "Count: {count}"},
		"escaped quote":     {input: `"say \"hi\""`, literal: `say "hi"`},
		"escaped newline":   {input: `"a\nb"`, literal: "a\nb"},
		"escaped tab":       {input: `"a\tb"`, literal: "a\tb"},
		"escaped backslash": {input: `"a\\b"`, literal: `a\b`},
		"unknown escape":    {input: `"a\qb"`, literal: `a\qb`},
		"unicode":           {input: `"héllo ✓"`, literal: "héllo ✓"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLexer("test.dsl", tt.input)
			tok := l.Next()
			if tok.Type != TokenString {
				t.Fatalf("Type = %v, want String", tok.Type)
			}
			if tok.Literal != tt.literal {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.literal)
			}
		})
	}
}

func TestLexer_Errors(t *testing.T) {
	type tc struct {
		input  string
		kind   Kind
		line   int
		column int
	}

	tests := map[string]tc{
		"number run into letters": {input: "size 12px", kind: KindBadLiteral, line: 1, column: 6},
		"decimal number":          {input: "1.5", kind: KindBadLiteral, line: 1, column: 1},
		"unterminated string":     {input: `Text("abc`, kind: KindBadLiteral, line: 1, column: 6},
		"string across newline":   {input: "\"abc\ndef\"", kind: KindBadLiteral, line: 1, column: 1},
		"unexpected character":    {input: "Text @", kind: KindUnexpectedToken, line: 1, column: 6},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLexer("test.dsl", tt.input)
			l.All()
			first := l.Errors().First()
			if first == nil {
				t.Fatal("expected a lexer error")
			}
			if first.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", first.Kind, tt.kind)
			}
			if first.Pos.Line != tt.line || first.Pos.Column != tt.column {
				t.Errorf("Pos = %d:%d, want %d:%d", first.Pos.Line, first.Pos.Column, tt.line, tt.column)
			}
		})
	}
}

func TestLexer_Comments(t *testing.T) {
	l := NewLexer("test.dsl", "// header\nText(\"a\")  // trailing\n")
	l.All()

	comments := l.Comments()
	if len(comments) != 2 {
		t.Fatalf("got %d comments, want 2", len(comments))
	}
	if comments[0].Text != "// header" || comments[0].Position.Line != 1 || comments[0].Position.Column != 1 {
		t.Errorf("comment 0 = %+v", comments[0])
	}
	if comments[1].Text != "// trailing" || comments[1].Position.Line != 2 || comments[1].Position.Column != 12 {
		t.Errorf("comment 1 = %+v", comments[1])
	}
	if comments[0].Trailing || !comments[1].Trailing {
		t.Errorf("Trailing = %v, %v; want false, true", comments[0].Trailing, comments[1].Trailing)
	}
}
