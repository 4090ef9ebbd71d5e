package dsl

import (
	"strconv"
)

// Parser parses .dsl source into a Program.
type Parser struct {
	lexer   *Lexer
	toks    []Token // tokens of the statement being parsed
	idx     int
	current Token
	errors  *ErrorList
	params  map[string]bool // parameters of the component being parsed
}

// NewParser creates a new Parser for the given lexer.
func NewParser(lexer *Lexer) *Parser {
	return &Parser{
		lexer:  lexer,
		errors: NewErrorList(),
	}
}

// Parse lexes and parses source in one call.
func Parse(filename, source string) (*Program, error) {
	return NewParser(NewLexer(filename, source)).ParseProgram()
}

// Errors returns any errors encountered during parsing.
func (p *Parser) Errors() *ErrorList {
	return p.errors
}

// load points the parser at the tokens of one statement.
func (p *Parser) load(stmt *Statement) {
	p.toks = stmt.Tokens
	p.idx = 0
	p.current = p.at(0)
}

// at returns the token at index i, or an EOF token past the end.
func (p *Parser) at(i int) Token {
	if i < len(p.toks) {
		return p.toks[i]
	}
	eof := Token{Type: TokenEOF}
	if n := len(p.toks); n > 0 {
		last := p.toks[n-1]
		eof.Line = last.Line
		eof.Column = last.Column + len(last.Literal)
	}
	return eof
}

// advance moves to the next token.
func (p *Parser) advance() {
	p.idx++
	p.current = p.at(p.idx)
}

// peek returns the token after the current one.
func (p *Parser) peek() Token {
	return p.at(p.idx + 1)
}

// reset rewinds to a previously saved index.
func (p *Parser) reset(idx int) {
	p.idx = idx
	p.current = p.at(idx)
}

// skipNewlines consumes any newline tokens.
func (p *Parser) skipNewlines() {
	for p.current.Type == TokenNewline {
		p.advance()
	}
}

// position returns the current token's position.
func (p *Parser) position() Position {
	return p.tokenPos(p.current)
}

func (p *Parser) tokenPos(tok Token) Position {
	return Position{
		File:   p.lexer.filename,
		Line:   tok.Line,
		Column: tok.Column,
	}
}

// expect checks if the current token matches the expected type and advances.
// Returns true if matched, false otherwise (and records an error).
func (p *Parser) expect(typ TokenType) bool {
	if p.current.Type == typ {
		p.advance()
		return true
	}
	p.errors.AddErrorf(KindUnexpectedToken, p.position(), "expected %s, got %s", typ, p.describe(p.current))
	return false
}

// expectEnd records an error if tokens remain in the statement.
func (p *Parser) expectEnd() bool {
	p.skipNewlines()
	if p.current.Type == TokenEOF {
		return true
	}
	p.errors.AddErrorf(KindUnexpectedToken, p.position(), "unexpected %s at end of statement", p.describe(p.current))
	return false
}

// describe renders a token for error messages.
func (p *Parser) describe(tok Token) string {
	switch tok.Type {
	case TokenEOF:
		return "end of statement"
	case TokenNewline:
		return "newline"
	case TokenIdent, TokenInt:
		return strconv.Quote(tok.Literal)
	case TokenString:
		return "string " + strconv.Quote(tok.Literal)
	}
	return "'" + tok.Type.String() + "'"
}

// identLike reports whether tok can serve as a state or parameter name.
// Keywords qualify because they are only reserved in modifier positions;
// `state step = 2` is valid.
func identLike(tok Token) bool {
	return tok.Type == TokenIdent || (tok.Type != TokenEOF && tok.Type != TokenError && isIdent(tok.Literal))
}

// ParseProgram parses a complete source file.
func (p *Parser) ParseProgram() (*Program, error) {
	stmts, err := Split(p.lexer)

	// Lexer errors make the token stream unreliable; report them alone.
	if p.lexer.Errors().HasErrors() {
		for _, e := range p.lexer.Errors().Errors() {
			p.errors.Add(e)
		}
		return nil, p.errors.Err()
	}
	if err != nil {
		if el, ok := err.(*ErrorList); ok {
			for _, e := range el.Errors() {
				p.errors.Add(e)
			}
		}
		return nil, p.errors.Err()
	}

	prog := &Program{
		Components: make(map[string]*ComponentDef),
		Comments:   p.lexer.Comments(),
	}
	var layout []Node

	for _, stmt := range stmts {
		p.load(stmt)
		switch stmt.Kind {
		case StmtState:
			p.parseState(prog)
		case StmtComponent:
			p.parseComponent(prog)
		default:
			if n := p.parseLayoutStatement(); n != nil {
				layout = append(layout, n)
			}
		}
	}

	prog.Root = wrapNodes(layout, Position{File: p.lexer.filename, Line: 1, Column: 1})

	if !p.errors.HasErrors() {
		p.resolve(prog)
	}

	return prog, p.errors.Err()
}

// wrapNodes returns the single node, or an implicit column holding all of them.
func wrapNodes(nodes []Node, pos Position) Node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	col := &Column{Children: nodes, Implicit: true}
	col.Position = pos
	return col
}

// parseState parses "state NAME = INT".
func (p *Parser) parseState(prog *Program) {
	pos := p.position()
	p.advance() // consume 'state'

	if !identLike(p.current) {
		p.errors.AddErrorf(KindUnexpectedToken, p.position(), "expected state name, got %s", p.describe(p.current))
		return
	}
	name := p.current.Literal
	p.advance()

	if !p.expect(TokenEquals) {
		return
	}
	v, ok := p.parseInt("state value")
	if !ok || !p.expectEnd() {
		return
	}

	for _, prev := range prog.StateDecls {
		if prev.Name == name {
			prog.Warnings = append(prog.Warnings, NewErrorf(KindRedeclaredState, pos,
				"state %q redeclared (previous at %s)", name, prev.Position))
			break
		}
	}
	prog.StateDecls = append(prog.StateDecls, &StateDecl{Name: name, Value: v, Position: pos})
}

// parseInt parses an optionally negative integer literal.
func (p *Parser) parseInt(what string) (int, bool) {
	neg := false
	if p.current.Type == TokenMinus {
		neg = true
		p.advance()
	}
	if p.current.Type != TokenInt {
		p.errors.AddErrorf(KindBadLiteral, p.position(), "expected integer %s, got %s", what, p.describe(p.current))
		return 0, false
	}
	v, err := strconv.Atoi(p.current.Literal)
	if err != nil {
		p.errors.AddErrorf(KindBadLiteral, p.position(), "integer %s %s out of range", what, p.current.Literal)
		return 0, false
	}
	p.advance()
	if neg {
		v = -v
	}
	return v, true
}
