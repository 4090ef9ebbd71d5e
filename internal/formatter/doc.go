// Package formatter provides a code formatter for .dsl source files.
//
// It parses .dsl source, normalizes whitespace, indentation and modifier
// order, then pretty-prints the result. Comments are kept. Used by the
// "livedsl fmt" command.
package formatter
