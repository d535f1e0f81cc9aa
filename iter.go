package sexpr

import (
	"errors"
	"strconv"

	"github.com/lispio/sexpr/lexer"
)

type iterState uint8

const (
	stateFresh iterState = iota
	stateInProgress
	stateExhausted
)

// Iter is a lazy iterator over the elements of an s-expression. The
// top-level iterator returned by New yields the input's top-level atoms;
// converting a list atom with Atom.List yields a nested Iter over that
// list's contents, bounded by its closing parenthesis.
//
// Every iterator derived from the same input shares a single cursor, so a
// nested iterator must be fully drained before the iterator that produced
// it is advanced again.
type Iter struct {
	lx     *lexer.Lexer
	nested bool
	state  iterState

	atom Atom
	err  error
}

// New returns an iterator over the top-level atoms of the given input. The
// input is borrowed for the lifetime of every iterator and atom derived
// from it and is never copied.
func New(input string) *Iter {
	return &Iter{lx: lexer.New(input)}
}

// Next advances the iterator to the next atom. It returns false once the
// sequence is exhausted or an error was found; Err tells the two cases
// apart. After returning false, Next keeps returning false.
func (it *Iter) Next() bool {
	if it.state == stateExhausted || it.err != nil {
		return false
	}
	it.state = stateInProgress

	tok, err := it.lx.Scan()
	if err != nil {
		return it.fail(err)
	}

	switch tok.Type() {
	case lexer.TokenEOF:
		if it.nested {
			return it.fail(ErrUnterminatedList)
		}
		it.state = stateExhausted
		it.atom = Atom{}
		return false

	case lexer.TokenCloseList:
		if !it.nested {
			return it.fail(ErrUnexpectedCloseParen)
		}
		it.state = stateExhausted
		it.atom = Atom{}
		return false

	case lexer.TokenOpenList:
		it.atom = Atom{kind: AtomList, lx: it.lx}
		return true

	case lexer.TokenInteger:
		v, err := strconv.ParseInt(tok.Text(), 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return it.fail(ErrIntegerOverflow)
			}
			return it.fail(ErrInvalidNumber)
		}
		it.atom = Atom{kind: AtomInteger, text: tok.Text(), i64: v}
		return true

	case lexer.TokenFloat:
		v, err := strconv.ParseFloat(tok.Text(), 64)
		if err != nil {
			return it.fail(ErrInvalidNumber)
		}
		it.atom = Atom{kind: AtomFloat, text: tok.Text(), f64: v}
		return true

	case lexer.TokenString:
		it.atom = Atom{kind: AtomString, text: tok.Unquote()}
		return true

	case lexer.TokenQuote:
		it.atom = Atom{kind: AtomQuote, text: tok.Text()}
		return true

	default:
		it.atom = Atom{kind: AtomIdentifier, text: tok.Text()}
		return true
	}
}

// Atom returns the atom produced by the last successful call to Next. It
// returns the zero Atom before the first call to Next and after Next has
// returned false.
func (it *Iter) Atom() Atom {
	return it.atom
}

// Err returns the first error found while iterating, if any. An iterator
// that reported an error stays failed.
func (it *Iter) Err() error {
	return it.err
}

func (it *Iter) fail(err error) bool {
	it.err = err
	it.atom = Atom{}
	return false
}
