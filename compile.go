package tac

import "fmt"

// Compile runs the whole pipeline over pre-split lexemes and returns the IR
// lines. Errors are wrapped with the failing stage and unwrap to
// *SyntaxError or *SemanticError.
func Compile(lexemes []string) ([]string, error) {
	tokens, err := Tokenize(lexemes)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	program, err := ParseProgram(NewTokenStream(tokens))
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	if err := CheckProgram(program); err != nil {
		return nil, fmt.Errorf("check: %w", err)
	}

	lines, err := Generate(program)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	return lines, nil
}
