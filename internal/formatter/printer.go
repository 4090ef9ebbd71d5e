package formatter

import (
	"sort"
	"strconv"
	"strings"

	"github.com/grindlemire/go-livedsl/internal/dsl"
)

// printer generates formatted .dsl source from a Program.
type printer struct {
	indent   string
	depth    int
	buf      strings.Builder
	comments []dsl.Comment // not yet printed, in source order
}

// newPrinter creates a new printer with the given settings.
func newPrinter(indent string) *printer {
	return &printer{
		indent: indent,
	}
}

// topLevel is one top-level statement: a state declaration, a component
// definition or a layout node.
type topLevel struct {
	pos   dsl.Position
	state *dsl.StateDecl
	comp  *dsl.ComponentDef
	node  dsl.Node
}

// PrintProgram formats an entire .dsl file.
func (p *printer) PrintProgram(prog *dsl.Program) string {
	p.buf.Reset()
	p.comments = append([]dsl.Comment(nil), prog.Comments...)

	// Merge all top-level statements and sort by source position to
	// keep the interleaving from the source.
	var items []topLevel
	for _, d := range prog.StateDecls {
		items = append(items, topLevel{pos: d.Position, state: d})
	}
	for _, name := range prog.ComponentOrder {
		c := prog.Components[name]
		items = append(items, topLevel{pos: c.Position, comp: c})
	}
	for _, n := range rootNodes(prog.Root) {
		items = append(items, topLevel{pos: n.Pos(), node: n})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return before(items[i].pos, items[j].pos)
	})

	for i, item := range items {
		if i > 0 && separated(items[i-1], item) {
			p.newline()
		}
		p.printCommentsBefore(item.pos.Line)
		switch {
		case item.state != nil:
			p.printState(item.state)
		case item.comp != nil:
			p.printComponent(item.comp)
		default:
			next := -1
			if i+1 < len(items) {
				next = items[i+1].pos.Line
			}
			p.printNode(item.node, next)
		}
	}

	// Comments at end of file
	if len(p.comments) > 0 && len(items) > 0 {
		p.newline()
	}
	p.printCommentsBefore(-1)

	return p.buf.String()
}

// rootNodes returns the top-level layout statements of the program.
func rootNodes(root dsl.Node) []dsl.Node {
	if root == nil {
		return nil
	}
	if col, ok := root.(*dsl.Column); ok && col.Implicit {
		return col.Children
	}
	return []dsl.Node{root}
}

func before(a, b dsl.Position) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}

// separated reports whether a blank line goes between two statements.
// Runs of state declarations and runs of layout nodes stay together.
func separated(prev, next topLevel) bool {
	switch {
	case prev.state != nil && next.state != nil:
		return false
	case prev.node != nil && next.node != nil:
		return false
	}
	return true
}

// printState outputs a state declaration.
func (p *printer) printState(d *dsl.StateDecl) {
	p.writeIndent()
	p.write("state ")
	p.write(d.Name)
	p.write(" = ")
	p.write(strconv.Itoa(d.Value))
	p.printTrailingComment(d.Position.Line)
	p.newline()
}

// printComponent outputs a component definition.
func (p *printer) printComponent(c *dsl.ComponentDef) {
	p.writeIndent()
	p.write("component ")
	p.write(c.Name)
	p.write("(")
	p.write(strings.Join(c.Params, ", "))
	p.write(") {")
	p.printTrailingComment(c.Position.Line)
	p.newline()

	p.depth++
	p.printBody(rootNodes(c.Body), c.Close.Line)
	p.depth--

	p.writeIndent()
	p.write("}")
	p.printTrailingComment(c.Close.Line)
	p.newline()
}

// printBody outputs the nodes of a block followed by any comments that
// sit before the block's closing brace.
func (p *printer) printBody(nodes []dsl.Node, closeLine int) {
	for i, n := range nodes {
		p.printCommentsBefore(n.Pos().Line)
		next := closeLine
		if i+1 < len(nodes) {
			next = nodes[i+1].Pos().Line
		}
		p.printNode(n, next)
	}
	p.printCommentsBefore(closeLine)
}

// Helper methods

func (p *printer) write(s string) {
	p.buf.WriteString(s)
}

func (p *printer) newline() {
	p.buf.WriteByte('\n')
}

func (p *printer) writeIndent() {
	for i := 0; i < p.depth; i++ {
		p.buf.WriteString(p.indent)
	}
}
