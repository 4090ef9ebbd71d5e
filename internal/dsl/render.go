package dsl

import (
	"github.com/grindlemire/go-livedsl/internal/markup"
)

// ColumnClass is the class carried by rendered columns.
const ColumnClass = "column"

// Render walks an expanded, filtered tree in document order and produces
// the markup tree. Text content is interpolated from state; button labels
// are not. A nil root yields an empty document.
func Render(root Node, state StateReader) (*markup.Document, error) {
	if root == nil {
		return &markup.Document{}, nil
	}
	el, err := renderNode(root, state)
	if err != nil {
		return nil, err
	}
	return &markup.Document{Root: el}, nil
}

func renderNode(n Node, state StateReader) (*markup.Element, error) {
	switch n := n.(type) {
	case *Text:
		text, err := n.Content.Interpolate(state)
		if err != nil {
			return nil, withPos(err, n.Content.Position)
		}
		return &markup.Element{Tag: "p", Style: renderStyle(n.Styles), Text: text}, nil

	case *Button:
		el := &markup.Element{Tag: "button", Style: renderStyle(n.Styles), Text: n.Label.Literal()}
		if inc := n.OnClick; inc != nil {
			step, err := inc.Step.Resolve(state)
			if err != nil {
				return nil, withPos(err, inc.Position)
			}
			el.Action = &markup.Action{Kind: "increment", Target: inc.Target, Step: step}
		}
		return el, nil

	case *Column:
		el := &markup.Element{Tag: "div", Class: ColumnClass, Style: renderStyle(n.Styles)}
		for _, child := range n.Children {
			c, err := renderNode(child, state)
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, c)
		}
		return el, nil

	case *Invocation:
		return nil, NewErrorf(KindUndeclaredComponent, n.Position, "component %s was not expanded", n.Name)
	}
	return nil, NewErrorf(KindUnknown, n.Pos(), "unknown node %T", n)
}

func renderStyle(s Styles) markup.Style {
	return markup.Style{FontSize: s.Size, Padding: s.Padding, Border: s.Border}
}

// withPos attaches a source position to a state lookup error that has none.
func withPos(err error, pos Position) error {
	if e, ok := err.(*Error); ok && e.Pos == (Position{}) {
		c := *e
		c.Pos = pos
		return &c
	}
	return err
}
