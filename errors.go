package sexpr

import (
	"errors"

	"github.com/lispio/sexpr/lexer"
)

var (
	// ErrUnterminatedList is returned when the input ends while a nested
	// list is still open.
	ErrUnterminatedList = errors.New("unterminated list")

	// ErrUnexpectedCloseParen is returned for a ")" at the top level with
	// no matching "(".
	ErrUnexpectedCloseParen = errors.New("unexpected close parenthesis")

	// ErrIntegerOverflow is returned for a digit run that does not fit in a
	// signed 64-bit integer.
	ErrIntegerOverflow = errors.New("integer value out of range")

	// ErrInvalidNumber is returned for a lexeme classified as numeric that
	// cannot be converted.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrUnterminatedString and ErrInvalidEscape surface unchanged from the
	// lexer.
	ErrUnterminatedString = lexer.ErrUnterminatedString
	ErrInvalidEscape      = lexer.ErrInvalidEscape
)
