package dsl

// Eval reports whether the condition holds for the given viewport width.
func (c Condition) Eval(width int) bool {
	switch c.Op {
	case OpGT:
		return width > c.Threshold
	case OpGTE:
		return width >= c.Threshold
	case OpLT:
		return width < c.Threshold
	case OpLTE:
		return width <= c.Threshold
	}
	return false
}

// Visible reports whether every condition on n holds at width.
func Visible(n Node, width int) bool {
	for _, c := range n.Conditions() {
		if !c.Eval(width) {
			return false
		}
	}
	return true
}

// Filter returns the part of the tree that is visible at the given
// viewport width, or nil when n itself is hidden. Hidden nodes drop their
// whole subtree. The input tree is not modified.
func Filter(n Node, width int) Node {
	if n == nil || !Visible(n, width) {
		return nil
	}
	col, ok := n.(*Column)
	if !ok {
		return n
	}

	out := &Column{base: col.base, Implicit: col.Implicit, Close: col.Close}
	for _, child := range col.Children {
		if kept := Filter(child, width); kept != nil {
			out.Children = append(out.Children, kept)
		}
	}
	return out
}
