// Package markup defines the rendered output tree and its HTML form.
//
// The tree is plain data; adapters decide how to display it. HTML
// serialization goes through golang.org/x/net/html so escaping follows the
// HTML5 rules.
package markup

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// BorderCSS is the declaration emitted for the border modifier.
const BorderCSS = "1px solid #ccc"

// Document is the result of one render. Root is nil when every node was
// hidden by a responsive rule.
type Document struct {
	Root *Element
}

// Element is a node of the markup tree.
type Element struct {
	Tag      string // p, button, div
	Class    string
	Style    Style
	Text     string  // text content for leaf elements
	Action   *Action // set on buttons with a click modifier
	Children []*Element
}

// Style holds the declarations an element carries. Absent declarations
// are nil/false and are never emitted.
type Style struct {
	FontSize *int // px
	Padding  *int // px
	Border   bool
}

// Declaration is one CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Action is the effect of activating a button.
type Action struct {
	Kind   string // always "increment"
	Target string
	Step   int
}

// Declarations returns the present declarations in a fixed order:
// font-size, padding, border.
func (s Style) Declarations() []Declaration {
	var decls []Declaration
	if s.FontSize != nil {
		decls = append(decls, Declaration{"font-size", strconv.Itoa(*s.FontSize) + "px"})
	}
	if s.Padding != nil {
		decls = append(decls, Declaration{"padding", strconv.Itoa(*s.Padding) + "px"})
	}
	if s.Border {
		decls = append(decls, Declaration{"border", BorderCSS})
	}
	return decls
}

// CSS returns the inline style string, e.g. "font-size:18px;".
func (s Style) CSS() string {
	var sb strings.Builder
	for _, d := range s.Declarations() {
		sb.WriteString(d.Property)
		sb.WriteByte(':')
		sb.WriteString(d.Value)
		sb.WriteByte(';')
	}
	return sb.String()
}

// Walk calls fn for e and each descendant in document order.
func (e *Element) Walk(fn func(*Element)) {
	if e == nil {
		return
	}
	fn(e)
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// Buttons returns every element carrying an action, in document order.
func (d *Document) Buttons() []*Element {
	var out []*Element
	if d == nil {
		return nil
	}
	d.Root.Walk(func(e *Element) {
		if e.Action != nil {
			out = append(out, e)
		}
	})
	return out
}

// HTML serializes the document. An empty document yields "".
func (d *Document) HTML() string {
	if d == nil || d.Root == nil {
		return ""
	}
	var sb strings.Builder
	// Rendering into a strings.Builder cannot fail.
	_ = html.Render(&sb, d.Root.node())
	return sb.String()
}

// node converts the element into an x/net/html node tree.
func (e *Element) node() *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     e.Tag,
		DataAtom: atom.Lookup([]byte(e.Tag)),
	}
	if e.Class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: e.Class})
	}
	if css := e.Style.CSS(); css != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: css})
	}
	if a := e.Action; a != nil {
		n.Attr = append(n.Attr,
			html.Attribute{Key: "data-action", Val: a.Kind},
			html.Attribute{Key: "data-target", Val: a.Target},
			html.Attribute{Key: "data-step", Val: strconv.Itoa(a.Step)},
		)
	}
	if e.Text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: e.Text})
	}
	for _, c := range e.Children {
		n.AppendChild(c.node())
	}
	return n
}
