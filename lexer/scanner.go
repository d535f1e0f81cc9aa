package lexer

// EOF is the value returned by Peek and Next once the whole input has been
// consumed.
const EOF byte = 0x00

// Scanner is a forward-only cursor over an in-memory string. Its position
// only ever moves forward and the text is never copied; everything built on
// top of it hands out sub-slices of the original input.
type Scanner struct {
	input string
	pos   int
}

// NewScanner creates a cursor positioned at the start of the given input.
func NewScanner(input string) *Scanner {
	return &Scanner{input: input}
}

// Input returns the text the scanner was built over.
func (s *Scanner) Input() string {
	return s.input
}

// Pos returns the byte offset of the next unread byte.
func (s *Scanner) Pos() int {
	return s.pos
}

// Done returns true once every byte of the input has been consumed.
func (s *Scanner) Done() bool {
	return s.pos >= len(s.input)
}

// Peek returns the byte at the current position without consuming it, or
// EOF at the end of the input.
func (s *Scanner) Peek() byte {
	if s.pos >= len(s.input) {
		return EOF
	}
	return s.input[s.pos]
}

// Next consumes and returns the byte at the current position. At the end of
// the input it returns EOF and does not advance.
func (s *Scanner) Next() byte {
	if s.pos >= len(s.input) {
		return EOF
	}
	b := s.input[s.pos]
	s.pos++
	return b
}

// SkipTrivia discards whitespace and ";" line comments. A comment runs to
// the next newline or to the end of the input.
func (s *Scanner) SkipTrivia() {
	for s.pos < len(s.input) {
		switch b := s.input[s.pos]; {
		case isWhitespace(b):
			s.pos++
		case b == ';':
			for s.pos < len(s.input) && s.input[s.pos] != '\n' {
				s.pos++
			}
		default:
			return
		}
	}
}

func (s *Scanner) text(start, end int) string {
	return s.input[start:end]
}
