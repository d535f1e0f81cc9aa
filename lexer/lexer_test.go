package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTokenTypes(tokens []Token) []TokenType {
	tt := make([]TokenType, 0, len(tokens))
	for i := range tokens {
		tt = append(tt, tokens[i].tt)
	}
	return tt
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			``,
			[]TokenType{TokenEOF},
		},
		{
			`1`,
			[]TokenType{TokenInteger, TokenEOF},
		},
		{
			`-45`,
			[]TokenType{TokenInteger, TokenEOF},
		},
		{
			`ident`,
			[]TokenType{TokenWord, TokenEOF},
		},
		{
			`:kw`,
			[]TokenType{TokenQuote, TokenEOF},
		},
		{
			`"str"`,
			[]TokenType{TokenString, TokenEOF},
		},
		{
			`-1.23`,
			[]TokenType{TokenFloat, TokenEOF},
		},
		{
			`(a b)`,
			[]TokenType{TokenOpenList, TokenWord, TokenWord, TokenCloseList, TokenEOF},
		},
		{
			`(set x (+ 1 2))`,
			[]TokenType{
				TokenOpenList, TokenWord, TokenWord,
				TokenOpenList, TokenWord, TokenInteger, TokenInteger, TokenCloseList,
				TokenCloseList, TokenEOF,
			},
		},
		{
			"(a ; comment\n b)",
			[]TokenType{TokenOpenList, TokenWord, TokenWord, TokenCloseList, TokenEOF},
		},
		{
			`a:b`,
			[]TokenType{TokenWord, TokenQuote, TokenEOF},
		},
		{
			`:`,
			[]TokenType{TokenWord, TokenEOF},
		},

		// numeric-looking lexemes that fall back to words
		{`-`, []TokenType{TokenWord, TokenEOF}},
		{`--1`, []TokenType{TokenWord, TokenEOF}},
		{`12abc`, []TokenType{TokenWord, TokenEOF}},
		{`1.2.3`, []TokenType{TokenWord, TokenEOF}},
		{`1.`, []TokenType{TokenWord, TokenEOF}},
		{`-.5`, []TokenType{TokenWord, TokenEOF}},
	}

	for i := range testCases {
		tokens, err := Tokenize(testCases[i].In)
		require.NoError(t, err, "input: %q", testCases[i].In)

		if diff := cmp.Diff(testCases[i].Out, getTokenTypes(tokens)); diff != "" {
			t.Errorf("%q: token sequence mismatch (-want +got):\n%s", testCases[i].In, diff)
		}
	}
}

func TestTokenText(t *testing.T) {
	testCases := []struct {
		In   string
		Type TokenType
		Text string
		Pos  int
	}{
		{`ident`, TokenWord, `ident`, 0},
		{`  ident`, TokenWord, `ident`, 2},
		{`123`, TokenInteger, `123`, 0},
		{`-45`, TokenInteger, `-45`, 0},
		{`3.25`, TokenFloat, `3.25`, 0},
		{`:kw`, TokenQuote, `kw`, 0},
		{`"str"`, TokenString, `str`, 0},
		{`"a\nb"`, TokenString, `a\nb`, 0},
		{`(`, TokenOpenList, `(`, 0},
		{`)`, TokenCloseList, `)`, 0},
		{"; c\nx", TokenWord, `x`, 4},
	}

	for i := range testCases {
		lx := New(testCases[i].In)

		tok, err := lx.Scan()
		require.NoError(t, err, "input: %q", testCases[i].In)

		assert.True(t, tok.Is(testCases[i].Type), "input: %q, got %v", testCases[i].In, tok)
		assert.Equal(t, testCases[i].Text, tok.Text(), "input: %q", testCases[i].In)
		assert.Equal(t, testCases[i].Pos, tok.Pos(), "input: %q", testCases[i].In)
	}
}

func TestScanString(t *testing.T) {
	t.Run("escapes are validated, not resolved", func(t *testing.T) {
		lx := New(`"a\tb\"c"`)

		tok, err := lx.Scan()
		require.NoError(t, err)

		assert.True(t, tok.Is(TokenString))
		assert.True(t, tok.Escaped())
		assert.Equal(t, `a\tb\"c`, tok.Text())
		assert.Equal(t, "a\tb\"c", tok.Unquote())
	})

	t.Run("escape-free body is returned as is", func(t *testing.T) {
		lx := New(`"plain"`)

		tok, err := lx.Scan()
		require.NoError(t, err)

		assert.False(t, tok.Escaped())
		assert.Equal(t, `plain`, tok.Unquote())
	})

	t.Run("unterminated", func(t *testing.T) {
		for _, in := range []string{`"abc`, `"abc\`, `"`} {
			_, err := New(in).Scan()
			assert.ErrorIs(t, err, ErrUnterminatedString, "input: %q", in)
		}
	})

	t.Run("invalid escape", func(t *testing.T) {
		_, err := New(`"a\qb"`).Scan()
		assert.ErrorIs(t, err, ErrInvalidEscape)
	})
}

func TestScanEOFIsIdempotent(t *testing.T) {
	lx := New(`a`)

	tok, err := lx.Scan()
	require.NoError(t, err)
	require.True(t, tok.Is(TokenWord))

	for i := 0; i < 3; i++ {
		tok, err = lx.Scan()
		require.NoError(t, err)
		assert.True(t, tok.Is(TokenEOF))
	}
}

func TestTokenizeError(t *testing.T) {
	tokens, err := Tokenize(`(a "b`)
	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, ErrUnterminatedString)
}

func TestTokenTextAliasesInput(t *testing.T) {
	input := `(ident 123 "str" :kw)`

	tokens, err := Tokenize(input)
	require.NoError(t, err)

	for _, tok := range tokens {
		if tok.Text() == "" {
			continue
		}
		start := tok.Pos()
		if tok.Is(TokenQuote) {
			start++ // text excludes the leading colon
		} else if tok.Is(TokenString) {
			start++ // text excludes the opening quote
		}
		assert.Equal(t, input[start:start+len(tok.Text())], tok.Text())
	}
}
