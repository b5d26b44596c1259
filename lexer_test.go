package tac

import (
	"errors"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func lexInput(t *testing.T, inputStr string) *TokenStream {
	t.Helper()
	tokens, err := Tokenize(strings.Fields(inputStr))
	be.Err(t, err, nil)
	return NewTokenStream(tokens)
}

func TestTokenizeKeywordsAndSymbols(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
	}{
		{"i32", I32},
		{"i64", I64},
		{"bool", BOOL},
		{"mut", MUT},
		{"return", RETURN},
		{"if", IF},
		{"else", ELSE},
		{"true", TRUE},
		{"false", FALSE},
		{"{", LBRACE},
		{"}", RBRACE},
		{"=", ASSIGN},
		{"+", PLUS},
		{"-", MINUS},
		{"*", ASTERISK},
		{"==", EQ},
		{"!=", NOT_EQ},
		{"!", BANG},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts := lexInput(t, tt.input)
			be.Equal(t, ts.CurrTokenType(), tt.typ)
			be.Equal(t, ts.CurrToken().Literal, tt.input)
		})
	}
}

func TestTokenizeIdentifiers(t *testing.T) {
	for _, input := range []string{"a", "foobar", "_tmp", "x1", "i33", "mutable", "returns", "ünïcode"} {
		t.Run(input, func(t *testing.T) {
			ts := lexInput(t, input)
			be.Equal(t, ts.CurrTokenType(), IDENT)
			be.Equal(t, ts.CurrToken().Literal, input)
		})
	}
}

func TestTokenizeNumbers(t *testing.T) {
	for _, input := range []string{"0", "10", "12345", "007"} {
		t.Run(input, func(t *testing.T) {
			ts := lexInput(t, input)
			be.Equal(t, ts.CurrTokenType(), INT)
			be.Equal(t, ts.CurrToken().Literal, input)
		})
	}
}

func TestTokenizeUnknownToken(t *testing.T) {
	for _, input := range []string{"12a", "-5", "a-b", "(", "<=", "&&", "1.5", ""} {
		t.Run(input, func(t *testing.T) {
			tokens, err := Tokenize([]string{"i32", input})
			be.True(t, tokens == nil)
			var syntaxErr *SyntaxError
			be.True(t, errors.As(err, &syntaxErr))
			be.Equal(t, err.Error(), "syntax error: unknown token '"+input+"'")
		})
	}
}

func TestTokenizeAppendsEOF(t *testing.T) {
	tokens, err := Tokenize([]string{"return", "a"})
	be.Err(t, err, nil)
	be.Equal(t, tokens, []Token{
		{Type: RETURN, Literal: "return"},
		{Type: IDENT, Literal: "a"},
		{Type: EOF},
	})

	tokens, err = Tokenize(nil)
	be.Err(t, err, nil)
	be.Equal(t, tokens, []Token{{Type: EOF}})
}

func TestTokenString(t *testing.T) {
	be.Equal(t, Token{Type: IDENT, Literal: "x"}.String(), "Token(IDENT, 'x')")
	be.Equal(t, Token{Type: EOF}.String(), "Token(EOF, '')")
}

func TestTokenStreamCursor(t *testing.T) {
	ts := lexInput(t, "a = 1")
	be.Equal(t, ts.CurrTokenType(), IDENT)
	be.Equal(t, ts.PeekToken().Type, ASSIGN)

	tok := ts.NextToken()
	be.Equal(t, tok.Literal, "a")
	be.Equal(t, ts.CurrTokenType(), ASSIGN)

	ts.NextToken()
	ts.NextToken()
	be.Equal(t, ts.CurrTokenType(), EOF)
	be.Equal(t, ts.PeekToken().Type, EOF)

	// The cursor never moves past EOF.
	be.Equal(t, ts.NextToken().Type, EOF)
	be.Equal(t, ts.CurrTokenType(), EOF)
}

func TestTokenStreamAppendsMissingEOF(t *testing.T) {
	tokens := []Token{{Type: INT, Literal: "1"}}
	ts := NewTokenStream(tokens)
	ts.NextToken()
	be.Equal(t, ts.CurrTokenType(), EOF)
	be.Equal(t, len(tokens), 1)

	ts = NewTokenStream(nil)
	be.Equal(t, ts.CurrTokenType(), EOF)
}

func TestSkipToken(t *testing.T) {
	ts := lexInput(t, "a }")

	tok, err := ts.SkipToken(IDENT)
	be.Err(t, err, nil)
	be.Equal(t, tok.Literal, "a")

	_, err = ts.SkipToken(LBRACE)
	be.Equal(t, err.Error(), "syntax error: expected '{' but got '}'")
	// A failed skip does not advance.
	be.Equal(t, ts.CurrTokenType(), RBRACE)

	_, err = ts.SkipToken(RBRACE)
	be.Err(t, err, nil)

	_, err = ts.SkipToken(IDENT)
	be.Equal(t, err.Error(), "syntax error: expected IDENT but got EOF")
}
