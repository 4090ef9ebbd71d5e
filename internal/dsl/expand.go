package dsl

import (
	"strconv"
	"strings"
)

// DefaultMaxDepth bounds nested component expansion.
const DefaultMaxDepth = 64

// MaxExpandedNodes bounds the size of an expanded tree. Components that
// invoke each other several times grow the tree exponentially without ever
// recursing.
const MaxExpandedNodes = 100000

// Expand returns a copy of the program's layout tree with every component
// invocation replaced by its parameter-bound body. The program itself is
// not modified.
//
// Expansion is pre-order: an invocation is substituted first, then the
// substituted body is expanded, so bodies may invoke other components.
// Each nested invocation counts one level; going past maxDepth fails with
// KindRecursionLimitExceeded. A maxDepth <= 0 selects DefaultMaxDepth.
func Expand(prog *Program, maxDepth int) (Node, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if prog == nil || prog.Root == nil {
		return nil, nil
	}
	root := Clone(prog.Root)
	e := &expander{prog: prog, maxDepth: maxDepth, nodes: countNodes(root)}
	return e.expand(root, nil)
}

type expander struct {
	prog     *Program
	maxDepth int
	nodes    int // nodes cloned so far
}

func (e *expander) expand(n Node, chain []string) (Node, error) {
	switch n := n.(type) {
	case *Invocation:
		if len(chain) >= e.maxDepth {
			return nil, NewErrorWithHint(KindRecursionLimitExceeded, n.Position,
				"component expansion exceeded depth "+strconv.Itoa(e.maxDepth)+": "+describeChain(append(chain, n.Name)),
				"a component must not invoke itself, directly or through another component")
		}

		def, ok := e.prog.Components[n.Name]
		if !ok {
			return nil, NewErrorf(KindUndeclaredComponent, n.Position, "component %s is not declared", n.Name)
		}
		if len(n.Args) != len(def.Params) {
			return nil, NewErrorf(KindParamCountMismatch, n.Position,
				"component %s takes %d argument(s), got %d", n.Name, len(def.Params), len(n.Args))
		}

		args := make(map[string]Template, len(def.Params))
		for i, param := range def.Params {
			args[param] = n.Args[i]
		}

		body := Clone(def.Body)
		e.nodes += countNodes(body)
		if e.nodes > MaxExpandedNodes {
			return nil, NewErrorWithHint(KindRecursionLimitExceeded, n.Position,
				"component expansion exceeded "+strconv.Itoa(MaxExpandedNodes)+" nodes while expanding "+describeChain(append(chain, n.Name)),
				"a component that invokes others several times multiplies the tree at each level")
		}
		substitute(body, args)
		body.Style().merge(n.Styles)
		for _, c := range n.When {
			body.addCondition(c)
		}

		next := make([]string, len(chain), len(chain)+1)
		copy(next, chain)
		return e.expand(body, append(next, n.Name))

	case *Column:
		for i, child := range n.Children {
			expanded, err := e.expand(child, chain)
			if err != nil {
				return nil, err
			}
			n.Children[i] = expanded
		}
		return n, nil
	}
	return n, nil
}

func countNodes(n Node) int {
	count := 0
	Walk(n, func(Node) { count++ })
	return count
}

// substitute binds parameter references in n and everything below it.
func substitute(n Node, args map[string]Template) {
	switch n := n.(type) {
	case *Text:
		n.Content = n.Content.substitute(args)
	case *Button:
		n.Label = n.Label.substitute(args)
	case *Invocation:
		for i, a := range n.Args {
			n.Args[i] = a.substitute(args)
		}
	case *Column:
		for _, child := range n.Children {
			substitute(child, args)
		}
	}
}

// describeChain renders the tail of an invocation chain, e.g. "A -> B -> A".
func describeChain(chain []string) string {
	const show = 6
	if len(chain) <= show {
		return strings.Join(chain, " -> ")
	}
	return "... -> " + strings.Join(chain[len(chain)-show:], " -> ")
}
