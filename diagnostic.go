package livedsl

import (
	"errors"
	"strconv"
	"strings"

	"github.com/grindlemire/go-livedsl/internal/dsl"
	"github.com/grindlemire/go-livedsl/internal/markup"
)

// Trigger identifies the event that started a compile cycle.
type Trigger int

const (
	TriggerEdit   Trigger = iota // source text changed
	TriggerResize                // viewport resized
	TriggerClick                 // a button was activated
)

func (t Trigger) String() string {
	switch t {
	case TriggerEdit:
		return "edit"
	case TriggerResize:
		return "resize"
	case TriggerClick:
		return "click"
	}
	return "unknown"
}

// Result is a successful compile cycle.
type Result struct {
	Document *markup.Document
	Trigger  Trigger
	Width    int            // viewport width the cycle was evaluated at
	State    map[string]int // state values the document was rendered with
	Warnings []*dsl.Error
}

// HTML returns the serialized document.
func (r *Result) HTML() string {
	if r == nil {
		return ""
	}
	return r.Document.HTML()
}

// Diagnostic describes a failed compile cycle.
type Diagnostic struct {
	Kind     dsl.Kind
	Message  string
	Position *dsl.Position // nil when the failure has no source location
	Hint     string
	Trigger  Trigger
	Errors   []*dsl.Error // every error of the cycle, first one mirrored above
}

// Class returns the error family, e.g. "ParseError" or "UndefinedState".
func (d *Diagnostic) Class() string {
	return d.Kind.Class()
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	var sb strings.Builder
	if d.Position != nil {
		sb.WriteString(d.Position.String())
		sb.WriteString(": ")
	}
	sb.WriteString(d.Class())
	if d.Class() != d.Kind.String() {
		sb.WriteString("(" + d.Kind.String() + ")")
	}
	sb.WriteString(": ")
	sb.WriteString(d.Message)
	if d.Hint != "" {
		sb.WriteString(" (" + d.Hint + ")")
	}
	if extra := len(d.Errors) - 1; extra > 0 {
		sb.WriteString(" [+")
		sb.WriteString(strconv.Itoa(extra))
		sb.WriteString(" more]")
	}
	return sb.String()
}

// NewDiagnostic converts a pipeline error into a Diagnostic.
func NewDiagnostic(err error, trigger Trigger) *Diagnostic {
	d := &Diagnostic{Trigger: trigger}

	var list *dsl.ErrorList
	errors.As(err, &list)
	first, ok := dsl.AsError(err)
	if !ok {
		d.Kind = dsl.KindUnknown
		d.Message = err.Error()
		return d
	}

	d.Kind = first.Kind
	d.Message = first.Message
	d.Hint = first.Hint
	if first.Pos != (dsl.Position{}) {
		pos := first.Pos
		d.Position = &pos
	}
	if list != nil {
		d.Errors = list.Errors()
	} else {
		d.Errors = []*dsl.Error{first}
	}
	return d
}
