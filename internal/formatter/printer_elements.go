package formatter

import (
	"strconv"

	"github.com/grindlemire/go-livedsl/internal/dsl"
)

// printNode outputs a layout node, its modifiers and its trailing comments.
// next is the line of whatever follows the node, or -1.
func (p *printer) printNode(node dsl.Node, next int) {
	switch n := node.(type) {
	case *dsl.Text:
		p.writeIndent()
		p.write("Text(")
		p.printTemplate(n.Content)
		p.write(")")
	case *dsl.Button:
		p.writeIndent()
		p.write("Button(")
		p.printTemplate(n.Label)
		p.write(")")
	case *dsl.Invocation:
		p.writeIndent()
		p.write(n.Name)
		p.write("(")
		for i, arg := range n.Args {
			if i > 0 {
				p.write(", ")
			}
			p.printTemplate(arg)
		}
		p.write(")")
	case *dsl.Column:
		p.printColumn(n)
	default:
		return
	}
	p.printModifiers(node)
	end := node.Pos().Line
	if col, ok := node.(*dsl.Column); ok && col.Close.Line > 0 {
		end = col.Close.Line
	}
	p.printNodeComments(end, next)
	p.newline()
}

// printColumn outputs a column up to and including its closing brace.
// An empty column stays on one line.
func (p *printer) printColumn(col *dsl.Column) {
	p.writeIndent()
	if len(col.Children) == 0 && !p.hasCommentsBefore(col.Close.Line) {
		p.write("Column {}")
		return
	}

	p.write("Column {")
	p.printTrailingComment(col.Pos().Line)
	p.newline()

	p.depth++
	p.printBody(col.Children, col.Close.Line)
	p.depth--

	p.writeIndent()
	p.write("}")
}

// printTemplate outputs an argument: a bare parameter name, an integer, or
// a quoted string with its placeholders.
func (p *printer) printTemplate(t dsl.Template) {
	switch {
	case t.Bare && len(t.Segments) == 1:
		p.write(t.Segments[0].Text)
	case t.Int:
		p.write(t.Literal())
	default:
		p.write(`"`)
		p.write(escapeString(t.Literal()))
		p.write(`"`)
	}
}

// printModifiers outputs the modifiers of a node in canonical order:
// size, padding, border, click, when.
func (p *printer) printModifiers(n dsl.Node) {
	s := n.Style()
	if s.Size != nil {
		p.write(" size ")
		p.write(strconv.Itoa(*s.Size))
	}
	if s.Padding != nil {
		p.write(" padding ")
		p.write(strconv.Itoa(*s.Padding))
	}
	if s.Border {
		p.write(" border")
	}

	if btn, ok := n.(*dsl.Button); ok && btn.OnClick != nil {
		inc := btn.OnClick
		p.write(" click increment ")
		p.write(inc.Target)
		switch {
		case inc.Step.StateRef != "":
			p.write(" step {")
			p.write(inc.Step.StateRef)
			p.write("}")
		case inc.Step.Explicit:
			p.write(" step ")
			p.write(strconv.Itoa(inc.Step.Value))
		}
	}

	for _, c := range n.Conditions() {
		p.write(" when screen ")
		p.write(c.Op.String())
		p.write(" ")
		p.write(strconv.Itoa(c.Threshold))
	}
}
