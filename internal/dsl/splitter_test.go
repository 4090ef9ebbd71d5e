package dsl

import (
	"testing"
)

func TestSplit(t *testing.T) {
	type tc struct {
		input     string
		kinds     []StatementKind
		lastTypes []TokenType // last token of each statement
	}

	tests := map[string]tc{
		"empty source": {
			input: "",
		},
		"blank lines and comments only": {
			input: "\n\n// nothing\n\n",
		},
		"state lines": {
			input:     "state a = 1\nstate b = 2\n",
			kinds:     []StatementKind{StmtState, StmtState},
			lastTypes: []TokenType{TokenInt, TokenInt},
		},
		"nested columns stay one statement": {
			input: `state count = 0
Column {
  Column {
    Text("a")
  }
  Text("b")
}
`,
			kinds:     []StatementKind{StmtState, StmtLayout},
			lastTypes: []TokenType{TokenInt, TokenRBrace},
		},
		"component then invocation with modifier lines": {
			input: `component Card(t) {
  Text(t)
}
Card("x")
  padding 4
  border
`,
			kinds:     []StatementKind{StmtComponent, StmtLayout},
			lastTypes: []TokenType{TokenRBrace, TokenBorder},
		},
		"brace on its own line continues the header": {
			input:     "component A()\n{\n  Text(\"a\")\n}\n",
			kinds:     []StatementKind{StmtComponent},
			lastTypes: []TokenType{TokenRBrace},
		},
		"modifier after closing brace": {
			input:     "Column {\n  Text(\"a\")\n} padding 8\n",
			kinds:     []StatementKind{StmtLayout},
			lastTypes: []TokenType{TokenInt},
		},
		"arguments across lines": {
			input:     "Card(\n  \"a\",\n  \"b\"\n)\nText(\"c\")\n",
			kinds:     []StatementKind{StmtLayout, StmtLayout},
			lastTypes: []TokenType{TokenRParen, TokenRParen},
		},
		"several layout statements": {
			input:     "Text(\"a\")\nButton(\"b\")\n",
			kinds:     []StatementKind{StmtLayout, StmtLayout},
			lastTypes: []TokenType{TokenRParen, TokenRParen},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stmts, err := Split(NewLexer("test.dsl", tt.input))
			if err != nil {
				t.Fatalf("Split: %v", err)
			}
			if len(stmts) != len(tt.kinds) {
				t.Fatalf("got %d statements, want %d", len(stmts), len(tt.kinds))
			}
			for i, stmt := range stmts {
				if stmt.Kind != tt.kinds[i] {
					t.Errorf("statement %d: Kind = %v, want %v", i, stmt.Kind, tt.kinds[i])
				}
				last := stmt.Tokens[len(stmt.Tokens)-1]
				if last.Type != tt.lastTypes[i] {
					t.Errorf("statement %d: last token = %v, want %v", i, last.Type, tt.lastTypes[i])
				}
			}
		})
	}
}

func TestSplit_StatementPosition(t *testing.T) {
	stmts, err := Split(NewLexer("test.dsl", "\nstate a = 1\n\n  Text(\"x\")\n"))
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(stmts))
	}
	if got := stmts[0].Pos; got.Line != 2 || got.Column != 1 {
		t.Errorf("statement 0 at %s, want 2:1", got)
	}
	if got := stmts[1].Pos; got.Line != 4 || got.Column != 3 {
		t.Errorf("statement 1 at %s, want 4:3", got)
	}
}

func TestSplit_UnbalancedBraces(t *testing.T) {
	type tc struct {
		input  string
		line   int
		column int
		hint   string
	}

	tests := map[string]tc{
		"unclosed column": {
			input:  "Column {\n  Text(\"a\")\n",
			line:   1,
			column: 8,
			hint:   "add a matching '}'",
		},
		"outer brace left open": {
			input:  "Column {\n  Column {\n    Text(\"a\")\n}\n",
			line:   1,
			column: 8,
			hint:   "add a matching '}'",
		},
		"unclosed inner column": {
			input:  "Column {\n  Column {\n",
			line:   2,
			column: 10,
			hint:   "add a matching '}'",
		},
		"stray closing brace": {
			input:  "Text(\"a\")\n}\n",
			line:   2,
			column: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Split(NewLexer("test.dsl", tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			e, ok := AsError(err)
			if !ok {
				t.Fatalf("error %T carries no *Error", err)
			}
			if e.Kind != KindUnbalancedBraces {
				t.Errorf("Kind = %v, want UnbalancedBraces", e.Kind)
			}
			if e.Pos.Line != tt.line || e.Pos.Column != tt.column {
				t.Errorf("Pos = %d:%d, want %d:%d", e.Pos.Line, e.Pos.Column, tt.line, tt.column)
			}
			if e.Hint != tt.hint {
				t.Errorf("Hint = %q, want %q", e.Hint, tt.hint)
			}
		})
	}
}
