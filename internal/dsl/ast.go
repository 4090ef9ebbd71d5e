package dsl

// Node is the interface implemented by all layout nodes.
type Node interface {
	node()                    // marker method to ensure type safety
	Pos() Position            // returns the source position of the node
	Style() *Styles           // style modifiers attached to the node
	Conditions() []Condition  // responsive rules; all must hold
	addCondition(c Condition) // used by the parser and expander
}

// Program is the result of parsing one source file.
type Program struct {
	StateDecls     []*StateDecl // in source order, duplicates retained
	Components     map[string]*ComponentDef
	ComponentOrder []string // component names in declaration order
	Root           Node
	Warnings       []*Error // non-fatal findings, e.g. redeclared state
	Comments       []Comment
}

// Comment is a // line comment. Comments carry no meaning; they are kept
// for the formatter.
type Comment struct {
	Text     string // including the leading //
	Position Position
	Trailing bool // code precedes the comment on its line
}

// StateDecl is a `state NAME = INT` declaration.
type StateDecl struct {
	Name     string
	Value    int
	Position Position
}

// ComponentDef is a `component NAME(params) { body }` definition.
type ComponentDef struct {
	Name     string
	Params   []string
	Body     Node // unexpanded; may contain ParamRef segments
	Position Position
	Close    Position // the closing brace
}

// Styles holds the recognized style modifiers. Nil or false means the
// modifier was not written.
type Styles struct {
	Size    *int
	Padding *int
	Border  bool
}

// merge overlays the modifiers set in o onto s.
func (s *Styles) merge(o Styles) {
	if o.Size != nil {
		v := *o.Size
		s.Size = &v
	}
	if o.Padding != nil {
		v := *o.Padding
		s.Padding = &v
	}
	if o.Border {
		s.Border = true
	}
}

func (s Styles) clone() Styles {
	var c Styles
	c.merge(s)
	return c
}

// Op is a responsive comparison operator.
type Op int

const (
	OpGT  Op = iota // >
	OpGTE           // >=
	OpLT            // <
	OpLTE           // <=
)

func (o Op) String() string {
	switch o {
	case OpGT:
		return ">"
	case OpGTE:
		return ">="
	case OpLT:
		return "<"
	case OpLTE:
		return "<="
	}
	return "?"
}

// Condition is a `when screen OP N` rule.
type Condition struct {
	Op        Op
	Threshold int
	Position  Position
}

// base carries the fields shared by every layout node.
type base struct {
	Styles   Styles
	When     []Condition
	Position Position
}

func (b *base) node()                    {}
func (b *base) Pos() Position            { return b.Position }
func (b *base) Style() *Styles           { return &b.Styles }
func (b *base) Conditions() []Condition  { return b.When }
func (b *base) addCondition(c Condition) { b.When = append(b.When, c) }

func (b base) clone() base {
	c := base{Styles: b.Styles.clone(), Position: b.Position}
	if len(b.When) > 0 {
		c.When = append([]Condition(nil), b.When...)
	}
	return c
}

// Text is a `Text("...")` node.
type Text struct {
	base
	Content Template
}

// Button is a `Button("...")` node.
type Button struct {
	base
	Label   Template
	OnClick *Increment // nil when the button has no click modifier
}

// Column is a `Column { ... }` container. Implicit columns are synthesized
// by the parser to hold several top-level nodes.
type Column struct {
	base
	Children []Node
	Implicit bool
	Close    Position // the closing brace; zero for implicit columns
}

// Invocation is a use of a user component: `Name(arg, ...)`.
type Invocation struct {
	base
	Name string
	Args []Template
}

// Increment is the `click increment TARGET [step EXPR]` action.
type Increment struct {
	Target   string
	Step     StepExpr
	Position Position
}

// StepExpr is either a literal integer or a reference to a state value.
type StepExpr struct {
	Value    int
	StateRef string // non-empty when the step is read from state
	Explicit bool   // false when the source omitted `step`
}

// Resolve returns the step value, reading state when the step refers to it.
func (s StepExpr) Resolve(state StateReader) (int, error) {
	if s.StateRef == "" {
		return s.Value, nil
	}
	return state.Get(s.StateRef)
}

// StateReader is the read side of the state store.
type StateReader interface {
	Get(name string) (int, error)
}

// Clone returns a deep copy of n.
func Clone(n Node) Node {
	switch n := n.(type) {
	case *Text:
		return &Text{base: n.base.clone(), Content: n.Content.clone()}
	case *Button:
		b := &Button{base: n.base.clone(), Label: n.Label.clone()}
		if n.OnClick != nil {
			inc := *n.OnClick
			b.OnClick = &inc
		}
		return b
	case *Column:
		c := &Column{base: n.base.clone(), Implicit: n.Implicit, Close: n.Close}
		for _, child := range n.Children {
			c.Children = append(c.Children, Clone(child))
		}
		return c
	case *Invocation:
		inv := &Invocation{base: n.base.clone(), Name: n.Name}
		for _, a := range n.Args {
			inv.Args = append(inv.Args, a.clone())
		}
		return inv
	}
	return nil
}

// Walk calls fn for n and every node below it in document order.
// Component bodies are not entered.
func Walk(n Node, fn func(Node)) {
	if n == nil {
		return
	}
	fn(n)
	if col, ok := n.(*Column); ok {
		for _, child := range col.Children {
			Walk(child, fn)
		}
	}
}
