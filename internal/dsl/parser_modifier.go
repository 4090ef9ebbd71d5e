package dsl

// parseModifiers consumes the modifiers that follow a node. Modifiers may
// continue on following lines; a line that does not start with a modifier
// keyword ends the node.
func (p *Parser) parseModifiers(n Node) bool {
	for {
		save := p.idx
		p.skipNewlines()
		if !p.current.Type.IsModifier() {
			p.reset(save)
			return true
		}

		var ok bool
		switch p.current.Type {
		case TokenSize:
			ok = p.parseStyleInt(&n.Style().Size)
		case TokenPadding:
			ok = p.parseStyleInt(&n.Style().Padding)
		case TokenBorder:
			p.advance()
			n.Style().Border = true
			ok = true
		case TokenClick:
			ok = p.parseClick(n)
		case TokenWhen:
			ok = p.parseWhen(n)
		}
		if !ok {
			return false
		}
	}
}

// parseStyleInt parses "size N" or "padding N".
func (p *Parser) parseStyleInt(dst **int) bool {
	name := p.current.Literal
	p.advance()

	pos := p.position()
	v, ok := p.parseInt(name)
	if !ok {
		return false
	}
	if v < 0 {
		p.errors.AddErrorf(KindInvalidStyleValue, pos, "%s must be non-negative, got %d", name, v)
		return false
	}
	*dst = &v
	return true
}

// parseClick parses "click increment TARGET [step INT | step {STATE}]".
func (p *Parser) parseClick(n Node) bool {
	clickPos := p.position()
	btn, isButton := n.(*Button)
	if !isButton {
		p.errors.AddError(KindUnexpectedToken, clickPos, "click is only valid on Button")
		return false
	}
	p.advance() // consume 'click'

	if p.current.Type != TokenIncrement {
		if identLike(p.current) {
			p.errors.Add(NewErrorWithHint(KindUnknownKeyword, p.position(),
				"unknown click action \""+p.current.Literal+"\"", "the only action is increment"))
		} else {
			p.errors.AddErrorf(KindUnexpectedToken, p.position(), "expected increment, got %s", p.describe(p.current))
		}
		return false
	}
	p.advance()

	// "step" followed by a value is the step clause, not a target named step.
	if p.current.Type == TokenStep && startsStepValue(p.peek()) {
		p.errors.Add(NewErrorWithHint(KindUnexpectedToken, p.position(),
			"missing increment target",
			"name the state to increment before step, e.g. click increment count step {step}"))
		return false
	}
	if !identLike(p.current) {
		p.errors.Add(NewErrorWithHint(KindUnexpectedToken, p.position(),
			"missing increment target", "write: click increment NAME [step N]"))
		return false
	}
	inc := &Increment{Target: p.current.Literal, Step: StepExpr{Value: 1}, Position: p.position()}
	p.advance()

	if p.current.Type == TokenStep {
		p.advance()
		step, ok := p.parseStepValue()
		if !ok {
			return false
		}
		inc.Step = step
	}

	btn.OnClick = inc
	return true
}

func startsStepValue(tok Token) bool {
	return tok.Type == TokenLBrace || tok.Type == TokenInt || tok.Type == TokenMinus
}

// parseStepValue parses "INT" or "{STATE}".
func (p *Parser) parseStepValue() (StepExpr, bool) {
	if p.current.Type != TokenLBrace {
		v, ok := p.parseInt("step")
		if !ok {
			return StepExpr{}, false
		}
		return StepExpr{Value: v, Explicit: true}, true
	}

	p.advance() // consume '{'
	if !identLike(p.current) {
		p.errors.AddErrorf(KindUnexpectedToken, p.position(), "expected state name in step, got %s", p.describe(p.current))
		return StepExpr{}, false
	}
	name := p.current.Literal
	p.advance()
	if !p.expect(TokenRBrace) {
		return StepExpr{}, false
	}
	return StepExpr{StateRef: name, Explicit: true}, true
}

// parseWhen parses "when screen OP N".
func (p *Parser) parseWhen(n Node) bool {
	pos := p.position()
	p.advance() // consume 'when'

	if p.current.Type != TokenScreen {
		p.errors.AddErrorf(KindUnexpectedToken, p.position(), "expected screen after when, got %s", p.describe(p.current))
		return false
	}
	p.advance()

	var op Op
	switch p.current.Type {
	case TokenGT:
		op = OpGT
	case TokenGTE:
		op = OpGTE
	case TokenLT:
		op = OpLT
	case TokenLTE:
		op = OpLTE
	default:
		p.errors.AddErrorf(KindUnexpectedToken, p.position(), "expected one of > >= < <=, got %s", p.describe(p.current))
		return false
	}
	p.advance()

	valuePos := p.position()
	v, ok := p.parseInt("threshold")
	if !ok {
		return false
	}
	if v < 0 {
		p.errors.AddErrorf(KindBadLiteral, valuePos, "screen threshold must be non-negative, got %d", v)
		return false
	}

	n.addCondition(Condition{Op: op, Threshold: v, Position: pos})
	return true
}
