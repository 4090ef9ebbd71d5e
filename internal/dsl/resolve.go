package dsl

import (
	"sort"
	"strings"
)

// resolve checks cross-statement references once every statement has been
// parsed, so declaration order in the source does not matter.
func (p *Parser) resolve(prog *Program) {
	declared := make(map[string]bool, len(prog.StateDecls))
	for _, d := range prog.StateDecls {
		declared[d.Name] = true
	}

	check := func(n Node) {
		Walk(n, func(n Node) {
			switch n := n.(type) {
			case *Text:
				p.checkStateRefs(n.Content, declared)
			case *Button:
				if inc := n.OnClick; inc != nil {
					if !declared[inc.Target] {
						p.undefinedState(inc.Target, inc.Position)
					}
					if ref := inc.Step.StateRef; ref != "" && !declared[ref] {
						p.undefinedState(ref, inc.Position)
					}
				}
			case *Invocation:
				p.checkInvocation(prog, n)
				for _, arg := range n.Args {
					p.checkStateRefs(arg, declared)
				}
			}
		})
	}

	for _, name := range prog.ComponentOrder {
		check(prog.Components[name].Body)
	}
	check(prog.Root)
}

func (p *Parser) checkStateRefs(t Template, declared map[string]bool) {
	for _, name := range t.Refs(SegState) {
		if !declared[name] {
			p.undefinedState(name, t.Position)
		}
	}
}

func (p *Parser) undefinedState(name string, pos Position) {
	p.errors.Add(NewErrorWithHint(KindUndefinedState, pos,
		"state \""+name+"\" is not declared", "add: state "+name+" = 0"))
}

func (p *Parser) checkInvocation(prog *Program, inv *Invocation) {
	def, ok := prog.Components[inv.Name]
	if !ok {
		err := NewErrorf(KindUndeclaredComponent, inv.Position, "component %s is not declared", inv.Name)
		if known := knownComponents(prog); known != "" {
			err.Hint = "declared components: " + known
		}
		p.errors.Add(err)
		return
	}
	if len(inv.Args) != len(def.Params) {
		p.errors.AddErrorf(KindParamCountMismatch, inv.Position,
			"component %s takes %d argument(s), got %d", inv.Name, len(def.Params), len(inv.Args))
	}
}

func knownComponents(prog *Program) string {
	names := append([]string(nil), prog.ComponentOrder...)
	sort.Strings(names)
	return strings.Join(names, ", ")
}
