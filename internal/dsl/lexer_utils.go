package dsl

import (
	"strings"
	"unicode"
)

// skipWhitespaceAndComments skips spaces, tabs and // comments (but not newlines).
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\r':
			l.readChar()
		case '/':
			if l.peekChar() != '/' {
				return
			}
			start, line, col := l.pos, l.line, l.column
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			lineStart := strings.LastIndexByte(l.source[:start], '\n') + 1
			l.comments = append(l.comments, Comment{
				Text:     l.source[start:l.pos],
				Position: Position{File: l.filename, Line: line, Column: col},
				Trailing: strings.TrimSpace(l.source[lineStart:start]) != "",
			})
		default:
			return
		}
	}
}

// readIdentifier reads an identifier or keyword.
func (l *Lexer) readIdentifier() Token {
	startPos := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	literal := l.source[startPos:l.pos]
	return l.makeToken(LookupIdent(literal), literal)
}

// readNumber reads a decimal integer literal. A digit run that runs
// straight into letters (12px, 3a) is reported as a malformed literal.
func (l *Lexer) readNumber() Token {
	startPos := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	if isLetter(l.ch) || l.ch == '.' {
		for isLetter(l.ch) || isDigit(l.ch) || l.ch == '.' {
			l.readChar()
		}
		literal := l.source[startPos:l.pos]
		l.errors.AddErrorf(KindBadLiteral, l.position(), "malformed numeric literal %q", literal)
		return l.makeToken(TokenError, literal)
	}
	return l.makeToken(TokenInt, l.source[startPos:l.pos])
}

// isLetter returns true if the rune is a letter or underscore.
func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

// isDigit returns true if the rune is an ASCII digit.
func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// isIdent reports whether s is a well-formed identifier.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !isLetter(r) {
			return false
		}
		if !isLetter(r) && !isDigit(r) {
			return false
		}
	}
	return true
}
