package livedsl

import (
	"github.com/grindlemire/go-livedsl/internal/dsl"
	"github.com/grindlemire/go-livedsl/internal/markup"
)

// DefaultViewportWidth is used when no viewport source is configured.
const DefaultViewportWidth = 1024

// StateReader is the read side of a state store.
type StateReader = dsl.StateReader

// CompileOptions tunes a single call to Compile.
type CompileOptions struct {
	Filename string // used in error positions
	MaxDepth int    // component expansion bound; <= 0 means dsl.DefaultMaxDepth
}

// Compile runs the whole pipeline (parse, expand, filter, render) as a pure
// function of its inputs. When state is nil the program's own declarations
// supply the values.
func Compile(source string, width int, state StateReader, opts CompileOptions) (*markup.Document, error) {
	prog, err := dsl.Parse(opts.Filename, source)
	if err != nil {
		return nil, err
	}
	tree, err := dsl.Expand(prog, opts.MaxDepth)
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = valueReader(seedValues(prog.StateDecls, nil))
	}
	return dsl.Render(dsl.Filter(tree, width), state)
}

// valueReader adapts a plain map to StateReader.
type valueReader map[string]int

func (v valueReader) Get(name string) (int, error) {
	if x, ok := v[name]; ok {
		return x, nil
	}
	return 0, dsl.NewErrorf(dsl.KindUndefinedState, dsl.Position{}, "state %q is not declared", name)
}

// seedValues builds the values for a freshly parsed program. Values present
// in keep override the declared defaults for names that are still declared.
func seedValues(decls []*dsl.StateDecl, keep map[string]int) map[string]int {
	values := make(map[string]int, len(decls))
	for _, d := range decls {
		values[d.Name] = d.Value
	}
	for name := range values {
		if v, ok := keep[name]; ok {
			values[name] = v
		}
	}
	return values
}
