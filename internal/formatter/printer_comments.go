package formatter

import (
	"strings"
)

// escapeString escapes special characters in a string for output.
func escapeString(s string) string {
	var buf strings.Builder
	for _, r := range s {
		switch r {
		case '\n':
			buf.WriteString(`\n`)
		case '\t':
			buf.WriteString(`\t`)
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// formatComment normalizes a line comment to "// text".
func formatComment(text string) string {
	body := strings.TrimRight(strings.TrimPrefix(text, "//"), " \t")
	if body == "" {
		return "//"
	}
	if body[0] != ' ' && body[0] != '\t' {
		body = " " + body
	}
	return "//" + body
}

// hasCommentsBefore reports whether a pending comment starts before line.
func (p *printer) hasCommentsBefore(line int) bool {
	return len(p.comments) > 0 && p.comments[0].Position.Line < line
}

// printCommentsBefore outputs, each on its own line, the pending comments
// that start before line. A negative line flushes every pending comment.
func (p *printer) printCommentsBefore(line int) {
	for len(p.comments) > 0 {
		c := p.comments[0]
		if line >= 0 && c.Position.Line >= line {
			return
		}
		p.comments = p.comments[1:]
		p.writeIndent()
		p.write(formatComment(c.Text))
		p.newline()
	}
}

// printTrailingComment outputs a comment on the same line as the node that
// starts on line. Prints with leading spaces, no newline (caller handles
// newline).
func (p *printer) printTrailingComment(line int) {
	if len(p.comments) == 0 || p.comments[0].Position.Line != line {
		return
	}
	p.write("  ")
	p.write(formatComment(p.comments[0].Text))
	p.comments = p.comments[1:]
}

// printNodeComments outputs the comments that follow a node's code: the
// one on line, where the node ends, and any on its modifier continuation
// lines before next. The first goes at the end of the line; the others,
// whose lines are folded away, follow on lines of their own. A negative
// next means nothing follows the node.
func (p *printer) printNodeComments(line, next int) {
	first := true
	for len(p.comments) > 0 {
		c := p.comments[0]
		if !c.Trailing || c.Position.Line < line || (next >= 0 && c.Position.Line >= next) {
			return
		}
		p.comments = p.comments[1:]
		if first {
			p.write("  ")
			first = false
		} else {
			p.newline()
			p.writeIndent()
		}
		p.write(formatComment(c.Text))
	}
}
