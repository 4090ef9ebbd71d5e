package dsl

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a compilation error.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnbalancedBraces
	KindUnknownKeyword
	KindBadLiteral
	KindUndeclaredComponent
	KindParamCountMismatch
	KindUnexpectedToken
	KindDuplicateComponent
	KindUnknownIdentifier
	KindUndefinedState
	KindRecursionLimitExceeded
	KindInvalidStyleValue
	KindRedeclaredState // warning only
)

var kindNames = map[Kind]string{
	KindUnknown:                "Unknown",
	KindUnbalancedBraces:       "UnbalancedBraces",
	KindUnknownKeyword:         "UnknownKeyword",
	KindBadLiteral:             "BadLiteral",
	KindUndeclaredComponent:    "UndeclaredComponent",
	KindParamCountMismatch:     "ParamCountMismatch",
	KindUnexpectedToken:        "UnexpectedToken",
	KindDuplicateComponent:     "DuplicateComponent",
	KindUnknownIdentifier:      "UnknownIdentifier",
	KindUndefinedState:         "UndefinedState",
	KindRecursionLimitExceeded: "RecursionLimitExceeded",
	KindInvalidStyleValue:      "InvalidStyleValue",
	KindRedeclaredState:        "RedeclaredState",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Class returns the top-level error family. All syntax and resolution
// problems found by the parser share the "ParseError" class.
func (k Kind) Class() string {
	switch k {
	case KindUnknownKeyword, KindBadLiteral, KindUndeclaredComponent,
		KindParamCountMismatch, KindUnexpectedToken, KindDuplicateComponent,
		KindUnknownIdentifier:
		return "ParseError"
	case KindRedeclaredState:
		return "Warning"
	}
	return k.String()
}

// Error represents a compilation error with source location and optional hint.
type Error struct {
	Kind    Kind
	Pos     Position
	Message string
	Hint    string // optional suggestion for fixing the error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Pos.String())
	sb.WriteString(": ")
	sb.WriteString(e.Kind.Class())
	if e.Kind.Class() != e.Kind.String() {
		sb.WriteString("(")
		sb.WriteString(e.Kind.String())
		sb.WriteString(")")
	}
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	if e.Hint != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Hint)
		sb.WriteString(")")
	}
	return sb.String()
}

// NewError creates a new Error with the given kind, position and message.
func NewError(kind Kind, pos Position, message string) *Error {
	return &Error{Kind: kind, Pos: pos, Message: message}
}

// NewErrorf creates a new Error with a formatted message.
func NewErrorf(kind Kind, pos Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// NewErrorWithHint creates a new Error with a hint for fixing the error.
func NewErrorWithHint(kind Kind, pos Position, message, hint string) *Error {
	return &Error{Kind: kind, Pos: pos, Message: message, Hint: hint}
}

// ErrorList collects multiple errors during compilation.
type ErrorList struct {
	errors []*Error
}

// NewErrorList creates an empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.errors = append(el.errors, err)
}

// AddError creates and adds an error with the given position and message.
func (el *ErrorList) AddError(kind Kind, pos Position, message string) {
	el.errors = append(el.errors, NewError(kind, pos, message))
}

// AddErrorf creates and adds an error with a formatted message.
func (el *ErrorList) AddErrorf(kind Kind, pos Position, format string, args ...any) {
	el.errors = append(el.errors, NewErrorf(kind, pos, format, args...))
}

// Len returns the number of errors.
func (el *ErrorList) Len() int {
	return len(el.errors)
}

// HasErrors returns true if there are any errors.
func (el *ErrorList) HasErrors() bool {
	return len(el.errors) > 0
}

// Errors returns a copy of the error slice.
func (el *ErrorList) Errors() []*Error {
	result := make([]*Error, len(el.errors))
	copy(result, el.errors)
	return result
}

// First returns the earliest recorded error, or nil.
func (el *ErrorList) First() *Error {
	if len(el.errors) == 0 {
		return nil
	}
	return el.errors[0]
}

// Error implements the error interface, returning all errors joined by newlines.
func (el *ErrorList) Error() string {
	if len(el.errors) == 0 {
		return ""
	}
	if len(el.errors) == 1 {
		return el.errors[0].Error()
	}

	var sb strings.Builder
	for i, err := range el.errors {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Err returns nil if there are no errors, otherwise returns the ErrorList as an error.
func (el *ErrorList) Err() error {
	if len(el.errors) == 0 {
		return nil
	}
	return el
}

// AsError extracts the first *Error carried by err, whether err is an
// *Error, an *ErrorList, or wraps either.
func AsError(err error) (*Error, bool) {
	var list *ErrorList
	if errors.As(err, &list) {
		if first := list.First(); first != nil {
			return first, true
		}
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of the first compilation error in err,
// or KindUnknown if err carries none.
func KindOf(err error) Kind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return KindUnknown
}
