package lexer

import (
	"errors"
)

var (
	ErrUnterminatedString = errors.New("unterminated string")
	ErrInvalidEscape      = errors.New("invalid escape sequence")
)

// Lexer scans an in-memory string one token at a time. Every token's text
// aliases the input; the lexer allocates nothing after construction.
type Lexer struct {
	s Scanner
}

// New initializes a Lexer over the given input
func New(input string) *Lexer {
	return &Lexer{s: Scanner{input: input}}
}

// Input returns the text the lexer was built over.
func (lx *Lexer) Input() string {
	return lx.s.Input()
}

// Pos returns the byte offset of the next unread byte.
func (lx *Lexer) Pos() int {
	return lx.s.Pos()
}

// Scan returns the next token in the input, skipping any whitespace and
// ";" line comments in front of it. At the end of the input it returns a
// TokenEOF token, repeatably.
func (lx *Lexer) Scan() (Token, error) {
	lx.s.SkipTrivia()

	pos := lx.s.Pos()
	if lx.s.Done() {
		return Token{tt: TokenEOF, pos: pos}, nil
	}

	switch b := lx.s.Peek(); {
	case b == '(':
		lx.s.Next()
		return Token{tt: TokenOpenList, text: lx.s.text(pos, lx.s.Pos()), pos: pos}, nil
	case b == ')':
		lx.s.Next()
		return Token{tt: TokenCloseList, text: lx.s.text(pos, lx.s.Pos()), pos: pos}, nil
	case b == '"':
		return lx.scanString()
	case b == ':':
		return lx.scanQuote()
	case b == '-' || isDigit(b):
		return lx.scanNumber()
	default:
		return lx.scanWord()
	}
}

func (lx *Lexer) scanWord() (Token, error) {
	start := lx.s.Pos()
	for !lx.s.Done() && !isDelimiter(lx.s.Peek()) {
		lx.s.Next()
	}
	return Token{tt: TokenWord, text: lx.s.text(start, lx.s.Pos()), pos: start}, nil
}

func (lx *Lexer) scanQuote() (Token, error) {
	start := lx.s.Pos()
	lx.s.Next() // ':'

	body := lx.s.Pos()
	for !lx.s.Done() && !isDelimiter(lx.s.Peek()) {
		lx.s.Next()
	}

	if lx.s.Pos() == body {
		// a lone ":" is a word, not a quote
		return Token{tt: TokenWord, text: lx.s.text(start, lx.s.Pos()), pos: start}, nil
	}
	return Token{tt: TokenQuote, text: lx.s.text(body, lx.s.Pos()), pos: start}, nil
}

func (lx *Lexer) scanNumber() (Token, error) {
	start := lx.s.Pos()
	for !lx.s.Done() && !isDelimiter(lx.s.Peek()) {
		lx.s.Next()
	}

	text := lx.s.text(start, lx.s.Pos())
	return Token{tt: classifyNumber(text), text: text, pos: start}, nil
}

// classifyNumber decides between integer, float and word without converting
// the value. Anything that is not strictly [-]digits or [-]digits.digits
// falls back to a word.
func classifyNumber(text string) TokenType {
	digits := text
	if digits[0] == '-' {
		digits = digits[1:]
	}
	if digits == "" {
		return TokenWord
	}

	dot := -1
	for i := 0; i < len(digits); i++ {
		switch {
		case isDigit(digits[i]):
		case digits[i] == '.' && dot < 0:
			dot = i
		default:
			return TokenWord
		}
	}

	switch {
	case dot < 0:
		return TokenInteger
	case dot == 0 || dot == len(digits)-1:
		return TokenWord
	default:
		return TokenFloat
	}
}

func (lx *Lexer) scanString() (Token, error) {
	start := lx.s.Pos()
	lx.s.Next() // opening quote

	body := lx.s.Pos()
	escaped := false
	for {
		if lx.s.Done() {
			return Token{}, ErrUnterminatedString
		}

		switch lx.s.Next() {
		case '"':
			return Token{
				tt:      TokenString,
				text:    lx.s.text(body, lx.s.Pos()-1),
				pos:     start,
				escaped: escaped,
			}, nil
		case '\\':
			if lx.s.Done() {
				return Token{}, ErrUnterminatedString
			}
			switch lx.s.Next() {
			case '"', '\\', 'n', 't', 'r':
			default:
				return Token{}, ErrInvalidEscape
			}
			escaped = true
		}
	}
}

// Tokenize scans the whole input and returns every token in it, ending with
// an EOF token, or the error that stopped the scan.
func Tokenize(input string) ([]Token, error) {
	lx := New(input)

	tokens := []Token{}
	for {
		tok, err := lx.Scan()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)
		if tok.Is(TokenEOF) {
			return tokens, nil
		}
	}
}
