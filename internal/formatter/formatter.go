package formatter

import (
	"github.com/grindlemire/go-livedsl/internal/dsl"
)

// Formatter pretty-prints .dsl source.
type Formatter struct {
	IndentString string // indentation for one nesting level; default tab
}

// New creates a formatter with default settings.
func New() *Formatter {
	return &Formatter{IndentString: "\t"}
}

// Format parses source and returns it in canonical form. Files that only
// fail name resolution (an undeclared state or component) are still
// formatted; syntax errors are returned.
func (f *Formatter) Format(filename, source string) (string, error) {
	prog, err := dsl.Parse(filename, source)
	if err != nil && !resolutionOnly(err) {
		return "", err
	}

	indent := f.IndentString
	if indent == "" {
		indent = "\t"
	}
	return newPrinter(indent).PrintProgram(prog), nil
}

// resolutionOnly reports whether every error in err comes from the
// cross-reference pass, which runs on a complete program.
func resolutionOnly(err error) bool {
	list, ok := err.(*dsl.ErrorList)
	if !ok {
		return false
	}
	for _, e := range list.Errors() {
		switch e.Kind {
		case dsl.KindUndefinedState, dsl.KindUndeclaredComponent, dsl.KindParamCountMismatch:
		default:
			return false
		}
	}
	return true
}

// Result is the outcome of formatting one file.
type Result struct {
	Content string
	Changed bool // Content differs from the input
}

// FormatWithResult formats source and reports whether it changed.
func (f *Formatter) FormatWithResult(filename, source string) (*Result, error) {
	formatted, err := f.Format(filename, source)
	if err != nil {
		return nil, err
	}
	return &Result{Content: formatted, Changed: formatted != source}, nil
}
