package dsl

import (
	"strconv"
	"strings"
)

// SegmentKind distinguishes the parts of a Template.
type SegmentKind int

const (
	SegLiteral SegmentKind = iota // plain text
	SegState                      // {name} resolved against the state store
	SegParam                      // {name} or a bare name bound to a component parameter
)

// Segment is one run of a Template.
type Segment struct {
	Kind SegmentKind
	Text string // literal text, or the referenced name
}

// Template is a string whose placeholders have been classified at parse
// time. Placeholders are matched as whole identifiers, so a parameter
// named "a" never rewrites text inside "{abc}" or "a" outside braces.
type Template struct {
	Segments []Segment
	Bare     bool // written as a bare identifier (a parameter reference)
	Int      bool // written as an integer literal
	Position Position
}

// parseTemplate splits a string literal into segments. {name} becomes a
// parameter reference when name is in params, otherwise a state reference
// when allowState is set, otherwise literal text.
func parseTemplate(s string, params map[string]bool, allowState bool, pos Position) Template {
	t := Template{Position: pos}
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			t.Segments = append(t.Segments, Segment{Kind: SegLiteral, Text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(s); {
		if s[i] == '{' {
			if end := strings.IndexByte(s[i+1:], '}'); end >= 0 {
				name := s[i+1 : i+1+end]
				if isIdent(name) {
					switch {
					case params[name]:
						flush()
						t.Segments = append(t.Segments, Segment{Kind: SegParam, Text: name})
						i += end + 2
						continue
					case allowState:
						flush()
						t.Segments = append(t.Segments, Segment{Kind: SegState, Text: name})
						i += end + 2
						continue
					}
				}
			}
		}
		lit.WriteByte(s[i])
		i++
	}
	flush()
	return t
}

// paramTemplate is the template for a bare parameter identifier.
func paramTemplate(name string, pos Position) Template {
	return Template{
		Segments: []Segment{{Kind: SegParam, Text: name}},
		Bare:     true,
		Position: pos,
	}
}

// intTemplate is the template for an integer literal argument.
func intTemplate(v int, pos Position) Template {
	return Template{
		Segments: []Segment{{Kind: SegLiteral, Text: strconv.Itoa(v)}},
		Int:      true,
		Position: pos,
	}
}

// LiteralTemplate builds a template holding plain text.
func LiteralTemplate(s string) Template {
	if s == "" {
		return Template{}
	}
	return Template{Segments: []Segment{{Kind: SegLiteral, Text: s}}}
}

// Refs returns the names referenced by segments of the given kind.
func (t Template) Refs(kind SegmentKind) []string {
	var names []string
	for _, seg := range t.Segments {
		if seg.Kind == kind {
			names = append(names, seg.Text)
		}
	}
	return names
}

// Interpolate renders the template, replacing state references with the
// current value from state.
func (t Template) Interpolate(state StateReader) (string, error) {
	var sb strings.Builder
	for _, seg := range t.Segments {
		switch seg.Kind {
		case SegState:
			v, err := state.Get(seg.Text)
			if err != nil {
				return "", err
			}
			sb.WriteString(strconv.Itoa(v))
		case SegParam:
			// Unbound parameter; only reachable on an unexpanded tree.
			sb.WriteString("{" + seg.Text + "}")
		default:
			sb.WriteString(seg.Text)
		}
	}
	return sb.String(), nil
}

// Literal renders the template without consulting state; references are
// written back in their {name} form.
func (t Template) Literal() string {
	var sb strings.Builder
	for _, seg := range t.Segments {
		if seg.Kind == SegLiteral {
			sb.WriteString(seg.Text)
			continue
		}
		sb.WriteString("{" + seg.Text + "}")
	}
	return sb.String()
}

// substitute replaces parameter segments with the bound argument segments.
func (t Template) substitute(args map[string]Template) Template {
	out := Template{Position: t.Position, Int: t.Int}
	for _, seg := range t.Segments {
		if seg.Kind == SegParam {
			if arg, ok := args[seg.Text]; ok {
				out.Segments = append(out.Segments, arg.Segments...)
				continue
			}
		}
		out.Segments = append(out.Segments, seg)
	}
	out.Segments = mergeLiterals(out.Segments)
	return out
}

func (t Template) clone() Template {
	c := t
	if len(t.Segments) > 0 {
		c.Segments = append([]Segment(nil), t.Segments...)
	}
	return c
}

// mergeLiterals joins adjacent literal segments.
func mergeLiterals(segs []Segment) []Segment {
	var out []Segment
	for _, seg := range segs {
		if n := len(out); n > 0 && seg.Kind == SegLiteral && out[n-1].Kind == SegLiteral {
			out[n-1].Text += seg.Text
			continue
		}
		out = append(out, seg)
	}
	return out
}
