package sexpr

import (
	"strconv"

	"github.com/lispio/sexpr/lexer"
)

// AtomKind represents all the possible kinds of an atom
type AtomKind uint8

// List of kinds of atoms
const (
	AtomInvalid    AtomKind = iota
	AtomIdentifier          // Bare word
	AtomQuote               // Quote shorthand: ":"-prefixed word
	AtomInteger             // Signed 64-bit integer
	AtomFloat               // 64-bit floating-point number
	AtomString              // Double-quoted string
	AtomList                // Parenthesized list
)

var atomKindNames = map[AtomKind]string{
	AtomInvalid:    "invalid",
	AtomIdentifier: "identifier",
	AtomQuote:      "quote",
	AtomInteger:    "integer",
	AtomFloat:      "float",
	AtomString:     "string",
	AtomList:       "list",
}

func (k AtomKind) String() string {
	if v, ok := atomKindNames[k]; ok {
		return v
	}
	return atomKindNames[AtomInvalid]
}

// Atom is a single value produced by an Iter. Text-bearing atoms alias the
// original input; they hold no copies of it.
type Atom struct {
	kind AtomKind
	text string
	i64  int64
	f64  float64

	lx *lexer.Lexer
}

// Kind returns the kind of the atom
func (a Atom) Kind() AtomKind {
	return a.kind
}

// Is returns true if the atom matches the given kind
func (a Atom) Is(k AtomKind) bool {
	return a.kind == k
}

// Text returns the textual payload of the atom. For identifiers and quotes
// this is a slice of the original input. For strings the escape sequences
// are already resolved; a string without escapes is still a slice of the
// original input.
func (a Atom) Text() string {
	return a.text
}

// Int64 returns the value of an integer atom.
func (a Atom) Int64() int64 {
	return a.i64
}

// Float64 returns the value of a float atom.
func (a Atom) Float64() float64 {
	return a.f64
}

// List converts a list atom into an iterator over the list's contents. The
// child iterator advances the same cursor as the iterator that produced the
// atom: drain it before resuming the parent, or the parent picks up in the
// middle of the nested list and yields garbage.
//
// List returns an empty, already exhausted iterator when the atom is not a
// list.
func (a Atom) List() Iter {
	if a.kind != AtomList || a.lx == nil {
		return Iter{state: stateExhausted}
	}
	return Iter{lx: a.lx, nested: true}
}

func (a Atom) String() string {
	switch a.kind {
	case AtomInteger:
		return strconv.FormatInt(a.i64, 10)
	case AtomFloat:
		return strconv.FormatFloat(a.f64, 'g', -1, 64)
	case AtomString:
		return strconv.Quote(a.text)
	case AtomQuote:
		return ":" + a.text
	case AtomList:
		return "(list)"
	}
	return a.text
}
