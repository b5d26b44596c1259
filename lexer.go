package tac

import "unicode"

var keywords = map[string]TokenType{
	"i32":    I32,
	"i64":    I64,
	"bool":   BOOL,
	"mut":    MUT,
	"return": RETURN,
	"if":     IF,
	"else":   ELSE,
	"true":   TRUE,
	"false":  FALSE,
	"{":      LBRACE,
	"}":      RBRACE,
	"=":      ASSIGN,
	"+":      PLUS,
	"-":      MINUS,
	"*":      ASTERISK,
	"==":     EQ,
	"!=":     NOT_EQ,
	"!":      BANG,
}

// Tokenize classifies pre-split lexemes and appends an EOF token.
//
// Each lexeme is matched against the keyword and symbol table first, then
// tested as an identifier, then as a decimal integer literal. Anything else
// is an unknown token.
func Tokenize(lexemes []string) ([]Token, error) {
	tokens := make([]Token, 0, len(lexemes)+1)
	for _, lexeme := range lexemes {
		tok, err := classifyLexeme(lexeme)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	tokens = append(tokens, Token{Type: EOF})
	return tokens, nil
}

func classifyLexeme(lexeme string) (Token, error) {
	if typ, ok := keywords[lexeme]; ok {
		return Token{Type: typ, Literal: lexeme}, nil
	}
	if isIdentifier(lexeme) {
		return Token{Type: IDENT, Literal: lexeme}, nil
	}
	if isNumber(lexeme) {
		return Token{Type: INT, Literal: lexeme}, nil
	}
	return Token{}, &SyntaxError{Msg: "unknown token '" + lexeme + "'"}
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !isLetter(r) {
			return false
		}
		if !isLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}
	return true
}
