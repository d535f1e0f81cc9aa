package lexer

import (
	"fmt"
	"strings"
)

// Token represents a known sequence of characters (lexical unit). Its text
// is a slice of the lexer's input, never a copy.
type Token struct {
	tt   TokenType
	text string
	pos  int

	escaped bool
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Text returns the raw text of the lexical unit. For string tokens this is
// the text between the quotes with any escape sequences still in place; for
// quote tokens it excludes the leading colon.
func (t Token) Text() string {
	return t.text
}

// Pos returns the byte offset of the first character of the lexical unit
func (t Token) Pos() int {
	return t.pos
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

// Escaped returns true for a string token whose body contains at least one
// escape sequence.
func (t Token) Escaped() bool {
	return t.escaped
}

// Unquote returns the body of a string token with escape sequences
// resolved. A body without escapes is returned as is, still aliasing the
// input; only a body that actually contains escapes builds a new string.
func (t Token) Unquote() string {
	if !t.escaped {
		return t.text
	}

	var sb strings.Builder
	sb.Grow(len(t.text))
	for i := 0; i < len(t.text); i++ {
		b := t.text[i]
		if b != '\\' {
			sb.WriteByte(b)
			continue
		}
		i++
		switch t.text[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		default:
			// '"' and '\' stand for themselves
			sb.WriteByte(t.text[i])
		}
	}
	return sb.String()
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d])", t.tt, t.text, t.pos)
}
