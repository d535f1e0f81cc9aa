package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid   TokenType = iota
	TokenOpenList            // Open parenthesis: "("
	TokenCloseList           // Close parenthesis: ")"
	TokenWord                // Bare identifier
	TokenQuote               // Quote shorthand: ":"-prefixed word
	TokenInteger             // Base-10 signed 64-bit integer
	TokenFloat               // 64-bit floating-point number
	TokenString              // Double-quoted string
	TokenEOF                 // End of input
)

var tokenNames = map[TokenType]string{
	TokenInvalid:   "invalid",
	TokenOpenList:  "open_list",
	TokenCloseList: "close_list",
	TokenWord:      "word",
	TokenQuote:     "quote",
	TokenInteger:   "integer",
	TokenFloat:     "float",
	TokenString:    "string",
	TokenEOF:       "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}

// isDelimiter reports whether b ends a word, quote or numeric run.
func isDelimiter(b byte) bool {
	return isWhitespace(b) || b == '(' || b == ')' || b == ';' || b == ':' || b == '"'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
