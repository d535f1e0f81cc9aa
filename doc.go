// Package sexpr decodes lisp-style s-expression text into a lazy stream of
// atoms without copying the input.
//
// The grammar:
//
//	list       :: "(" atom* ")" ;
//	atom       :: identifier | quote | integer | float | string | list ;
//	identifier :: run of characters excluding whitespace, "(", ")", ";",
//	              ":" and "\"", not matching the integer or float forms ;
//	quote      :: ":" identifier ;
//	integer    :: [ "-" ] digit+ ;
//	float      :: [ "-" ] digit+ "." digit+ ;
//	string     :: "\"" ( escape | any-char-but-quote )* "\"" ;
//	escape     :: "\\" ( "\"" | "\\" | "n" | "t" | "r" ) ;
//	comment    :: ";" runs to end of line, produces nothing ;
//
// A numeric-looking lexeme that fits neither the integer nor the float form
// is an identifier.
//
// New returns an iterator over the top-level atoms of the input; a list
// atom converts into a nested iterator over the list's contents. All
// iterators derived from one input share a single forward-only cursor, so a
// nested iterator has to be drained before its parent moves on. Identifier,
// quote and string atoms hold slices of the original input, never copies;
// the input must stay alive and unchanged for as long as any iterator or
// atom derived from it is in use.
//
// Iteration is single-threaded: iterators sharing a cursor must not be used
// from multiple goroutines without external synchronization. Independent
// inputs parse independently.
package sexpr
