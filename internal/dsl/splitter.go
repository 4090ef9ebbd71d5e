package dsl

// StatementKind identifies what a top-level statement declares.
type StatementKind int

const (
	StmtLayout    StatementKind = iota // a layout node plus its modifiers
	StmtState                          // state NAME = INT
	StmtComponent                      // component NAME(...) { ... }
)

func (k StatementKind) String() string {
	switch k {
	case StmtState:
		return "state"
	case StmtComponent:
		return "component"
	default:
		return "layout"
	}
}

// Statement is one top-level construct of a source file. Its tokens never
// include the newlines that separate it from its neighbours, but newlines
// inside a balanced { } block are kept.
type Statement struct {
	Kind   StatementKind
	Tokens []Token
	Pos    Position
}

// Split groups the lexer's token stream into top-level statements.
//
// A single left-to-right scan keeps a stack of open braces, so a statement
// only ends at a newline when every brace opened inside it has been closed.
// A line that starts with a modifier keyword or with "{" continues the
// previous statement; this lets modifiers (and a component body brace)
// follow on their own lines. Lexer errors are recorded on the lexer, not
// returned here.
func Split(l *Lexer) ([]*Statement, error) {
	errs := NewErrorList()

	var (
		stmts       []*Statement
		cur         *Statement
		braces      []Token // unmatched '{' tokens, innermost last
		parenDepth  int
		atLineStart = true
	)

	pos := func(tok Token) Position {
		return Position{File: l.filename, Line: tok.Line, Column: tok.Column}
	}

	for {
		tok := l.Next()
		if tok.Type == TokenEOF {
			break
		}

		if tok.Type == TokenNewline {
			if len(braces) > 0 || parenDepth > 0 {
				cur.Tokens = append(cur.Tokens, tok)
			} else {
				atLineStart = true
			}
			continue
		}

		if atLineStart {
			atLineStart = false
			continues := cur != nil && (tok.Type.IsModifier() || tok.Type == TokenLBrace)
			if !continues {
				cur = &Statement{Kind: statementKind(tok.Type), Pos: pos(tok)}
				stmts = append(stmts, cur)
			}
		}

		switch tok.Type {
		case TokenLBrace:
			braces = append(braces, tok)
		case TokenRBrace:
			if len(braces) == 0 {
				errs.AddError(KindUnbalancedBraces, pos(tok), "unmatched '}'")
				return nil, errs.Err()
			}
			braces = braces[:len(braces)-1]
		case TokenLParen:
			parenDepth++
		case TokenRParen:
			if parenDepth > 0 {
				parenDepth--
			}
		}

		cur.Tokens = append(cur.Tokens, tok)
	}

	if len(braces) > 0 {
		open := braces[len(braces)-1]
		errs.Add(NewErrorWithHint(KindUnbalancedBraces, pos(open),
			"'{' is never closed", "add a matching '}'"))
		return nil, errs.Err()
	}

	return stmts, nil
}

func statementKind(t TokenType) StatementKind {
	switch t {
	case TokenState:
		return StmtState
	case TokenComponent:
		return StmtComponent
	default:
		return StmtLayout
	}
}
