package tac

import (
	"errors"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestCompileEndToEnd(t *testing.T) {
	lines, err := Compile([]string{"i32", "mut", "a", "{", "10", "}", "a", "=", "a", "+", "5", "return", "a"})
	be.Err(t, err, nil)
	be.Equal(t, lines, []string{"a = 10", "%t1 = add a, 5", "a = %t1", "ret a"})
}

func TestCompileIfElseEndToEnd(t *testing.T) {
	src := "i32 mut a { 10 } bool mut b { true } if ! b { a = a + 5 } else { i64 mut a { 20 } return a } return a"
	lines, err := Compile(strings.Fields(src))
	be.Err(t, err, nil)

	// The final return reads the outer a, which the shadowing i64 a in the
	// else-block never touched.
	be.Equal(t, lines[len(lines)-1], "ret a")
	be.Equal(t, lines[0], "a = 10")
	be.Equal(t, len(lines), 12)
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		message   string
		syntactic bool
	}{
		{"unknown lexeme", "i32 a { 1 ; } return a", "tokenize: syntax error: unknown token ';'", true},
		{"parse", "i32 a { 1 } return a a", "parse: syntax error: extra tokens after return: IDENT ('a')", true},
		{"check", "i32 a { 1 } a = 2 return a", "check: error: cannot assign to immutable variable 'a'", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Compile(strings.Fields(tt.src))
			be.True(t, lines == nil)
			be.Equal(t, err.Error(), tt.message)

			var syntaxErr *SyntaxError
			var semErr *SemanticError
			be.Equal(t, errors.As(err, &syntaxErr), tt.syntactic)
			be.Equal(t, errors.As(err, &semErr), !tt.syntactic)
		})
	}
}
