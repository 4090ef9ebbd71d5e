package dsl

// builtinNodes are the layout primitives; they cannot be used as component names.
var builtinNodes = map[string]bool{
	"Text":   true,
	"Button": true,
	"Column": true,
}

// parseComponent parses "component NAME(P, ...) { BODY }".
func (p *Parser) parseComponent(prog *Program) {
	pos := p.position()
	p.advance() // consume 'component'

	if p.current.Type != TokenIdent {
		p.errors.AddErrorf(KindUnexpectedToken, p.position(), "expected component name, got %s", p.describe(p.current))
		return
	}
	name := p.current.Literal
	namePos := p.position()
	if builtinNodes[name] {
		p.errors.AddErrorf(KindUnexpectedToken, namePos, "component name %q is reserved", name)
		return
	}
	p.advance()

	if !p.expect(TokenLParen) {
		return
	}
	params, ok := p.parseParams()
	if !ok {
		return
	}

	p.skipNewlines()
	bracePos := p.position()
	if !p.expect(TokenLBrace) {
		return
	}

	p.params = make(map[string]bool, len(params))
	for _, param := range params {
		p.params[param] = true
	}
	nodes, ok := p.parseLayoutUntil(TokenRBrace)
	p.params = nil
	closePos := p.position()
	if !ok || !p.expect(TokenRBrace) || !p.expectEnd() {
		return
	}

	if prev, exists := prog.Components[name]; exists {
		p.errors.Add(NewErrorWithHint(KindDuplicateComponent, namePos,
			"component "+name+" is already declared", "previous declaration at "+prev.Position.String()))
		return
	}

	prog.Components[name] = &ComponentDef{
		Name:     name,
		Params:   params,
		Body:     wrapNodes(nodes, bracePos),
		Position: pos,
		Close:    closePos,
	}
	prog.ComponentOrder = append(prog.ComponentOrder, name)
}

// parseParams parses the parameter list after '(' up to and including ')'.
func (p *Parser) parseParams() ([]string, bool) {
	var params []string
	seen := make(map[string]bool)

	p.skipNewlines()
	for p.current.Type != TokenRParen {
		if !identLike(p.current) {
			p.errors.AddErrorf(KindUnexpectedToken, p.position(), "expected parameter name, got %s", p.describe(p.current))
			return nil, false
		}
		param := p.current.Literal
		if seen[param] {
			p.errors.AddErrorf(KindUnexpectedToken, p.position(), "duplicate parameter %q", param)
			return nil, false
		}
		seen[param] = true
		params = append(params, param)
		p.advance()
		p.skipNewlines()

		if p.current.Type == TokenComma {
			p.advance()
			p.skipNewlines()
			continue
		}
		if p.current.Type != TokenRParen {
			p.errors.AddErrorf(KindUnexpectedToken, p.position(), "expected ',' or ')', got %s", p.describe(p.current))
			return nil, false
		}
	}
	p.advance() // consume ')'
	return params, true
}

// parseLayoutStatement parses one top-level layout statement.
func (p *Parser) parseLayoutStatement() Node {
	n := p.parseNode()
	if n == nil || !p.expectEnd() {
		return nil
	}
	return n
}

// parseLayoutUntil parses nodes until the end token (not consumed).
func (p *Parser) parseLayoutUntil(end TokenType) ([]Node, bool) {
	var nodes []Node
	for {
		p.skipNewlines()
		if p.current.Type == end {
			return nodes, true
		}
		if p.current.Type == TokenEOF {
			p.errors.AddErrorf(KindUnexpectedToken, p.position(), "expected %s, got end of statement", end)
			return nil, false
		}
		n := p.parseNode()
		if n == nil {
			return nil, false
		}
		nodes = append(nodes, n)
	}
}

// parseNode parses a single layout node and its trailing modifiers.
func (p *Parser) parseNode() Node {
	tok := p.current
	pos := p.position()

	switch {
	case tok.Type.IsModifier():
		p.errors.AddErrorf(KindUnexpectedToken, pos, "modifier %q must follow a layout node", tok.Literal)
		return nil
	case tok.Type == TokenState || tok.Type == TokenComponent:
		p.errors.AddErrorf(KindUnexpectedToken, pos, "%s declarations are only allowed at top level", tok.Literal)
		return nil
	case tok.Type != TokenIdent:
		if identLike(tok) {
			p.errors.AddErrorf(KindUnknownKeyword, pos, "unknown keyword %q", tok.Literal)
		} else {
			p.errors.AddErrorf(KindUnexpectedToken, pos, "expected a layout node, got %s", p.describe(tok))
		}
		return nil
	}

	var n Node
	switch tok.Literal {
	case "Text":
		n = p.parseText(pos)
	case "Button":
		n = p.parseButton(pos)
	case "Column":
		n = p.parseColumn(pos)
	default:
		if next := p.peek(); next.Type != TokenLParen {
			p.errors.Add(NewErrorWithHint(KindUnknownKeyword, pos,
				"unknown keyword "+p.describe(tok),
				"expected state, component, Text, Button, Column or a component call"))
			return nil
		}
		n = p.parseInvocation(pos)
	}
	if n == nil {
		return nil
	}
	if !p.parseModifiers(n) {
		return nil
	}
	return n
}

func (p *Parser) parseText(pos Position) Node {
	p.advance() // consume 'Text'
	content, ok := p.parseSingleArg(true)
	if !ok {
		return nil
	}
	t := &Text{Content: content}
	t.Position = pos
	return t
}

func (p *Parser) parseButton(pos Position) Node {
	p.advance() // consume 'Button'
	label, ok := p.parseSingleArg(false)
	if !ok {
		return nil
	}
	b := &Button{Label: label}
	b.Position = pos
	return b
}

func (p *Parser) parseColumn(pos Position) Node {
	p.advance() // consume 'Column'
	p.skipNewlines()
	if !p.expect(TokenLBrace) {
		return nil
	}
	children, ok := p.parseLayoutUntil(TokenRBrace)
	if !ok {
		return nil
	}
	closePos := p.position()
	if !p.expect(TokenRBrace) {
		return nil
	}
	c := &Column{Children: children, Close: closePos}
	c.Position = pos
	return c
}

func (p *Parser) parseInvocation(pos Position) Node {
	name := p.current.Literal
	p.advance() // consume name
	p.advance() // consume '('

	inv := &Invocation{Name: name}
	inv.Position = pos

	p.skipNewlines()
	for p.current.Type != TokenRParen {
		arg, ok := p.parseArg(true, true)
		if !ok {
			return nil
		}
		inv.Args = append(inv.Args, arg)
		p.skipNewlines()

		if p.current.Type == TokenComma {
			p.advance()
			p.skipNewlines()
			continue
		}
		if p.current.Type != TokenRParen {
			p.errors.AddErrorf(KindUnexpectedToken, p.position(), "expected ',' or ')', got %s", p.describe(p.current))
			return nil
		}
	}
	p.advance() // consume ')'
	return inv
}

// parseSingleArg parses "(ARG)" for Text and Button.
func (p *Parser) parseSingleArg(allowState bool) (Template, bool) {
	if !p.expect(TokenLParen) {
		return Template{}, false
	}
	p.skipNewlines()
	arg, ok := p.parseArg(allowState, false)
	if !ok {
		return Template{}, false
	}
	p.skipNewlines()
	if !p.expect(TokenRParen) {
		return Template{}, false
	}
	return arg, true
}

// parseArg parses a string literal, a parameter name, or (when allowInt)
// an integer literal.
func (p *Parser) parseArg(allowState, allowInt bool) (Template, bool) {
	tok := p.current
	pos := p.position()

	switch {
	case tok.Type == TokenString:
		p.advance()
		return parseTemplate(tok.Literal, p.params, allowState, pos), true

	case allowInt && (tok.Type == TokenInt || tok.Type == TokenMinus):
		v, ok := p.parseInt("argument")
		if !ok {
			return Template{}, false
		}
		return intTemplate(v, pos), true

	case identLike(tok):
		if !p.params[tok.Literal] {
			p.errors.Add(NewErrorWithHint(KindUnknownIdentifier, pos,
				"\""+tok.Literal+"\" is not a parameter of the enclosing component",
				"quote literal text, or write \"{"+tok.Literal+"}\" to show a state value"))
			return Template{}, false
		}
		p.advance()
		return paramTemplate(tok.Literal, pos), true
	}

	p.errors.AddErrorf(KindUnexpectedToken, pos, "expected string argument, got %s", p.describe(tok))
	return Template{}, false
}
