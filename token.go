package tac

// TokenType is the type of token (keyword, identifier, operator, literal).
type TokenType string

// Definition of token types
const (
	// Special tokens
	EOF TokenType = "EOF"

	// Identifiers + literals
	IDENT TokenType = "IDENT" // a, total, _tmp
	INT   TokenType = "INT"   // 12345

	// Type keywords
	I32  TokenType = "I32"
	I64  TokenType = "I64"
	BOOL TokenType = "BOOL"

	// Keywords
	MUT    TokenType = "MUT"
	RETURN TokenType = "RETURN"
	IF     TokenType = "IF"
	ELSE   TokenType = "ELSE"
	TRUE   TokenType = "TRUE"
	FALSE  TokenType = "FALSE"

	// Operators
	ASSIGN   TokenType = "="
	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	ASTERISK TokenType = "*"
	EQ       TokenType = "=="
	NOT_EQ   TokenType = "!="
	BANG     TokenType = "!"

	// Delimiters
	LBRACE TokenType = "{"
	RBRACE TokenType = "}"
)

// Token is a classified lexeme.
type Token struct {
	Type    TokenType
	Literal string
}

func (t Token) String() string {
	return "Token(" + string(t.Type) + ", '" + t.Literal + "')"
}

// TokenStream is a cursor over a token slice which always ends with EOF.
type TokenStream struct {
	tokens []Token
	pos    int
}

// NewTokenStream wraps tokens, appending an EOF token if the slice lacks one.
func NewTokenStream(tokens []Token) *TokenStream {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF {
		tokens = append(tokens[:len(tokens):len(tokens)], Token{Type: EOF})
	}
	return &TokenStream{tokens: tokens}
}

// CurrToken returns the token under the cursor.
func (ts *TokenStream) CurrToken() Token {
	return ts.tokens[ts.pos]
}

// CurrTokenType is shorthand for CurrToken().Type.
func (ts *TokenStream) CurrTokenType() TokenType {
	return ts.tokens[ts.pos].Type
}

// PeekToken returns the token after the current one without advancing.
// At EOF it returns EOF.
func (ts *TokenStream) PeekToken() Token {
	if ts.pos+1 < len(ts.tokens) {
		return ts.tokens[ts.pos+1]
	}
	return ts.tokens[len(ts.tokens)-1]
}

// NextToken advances past the current token and returns it.
// The cursor never moves past EOF.
func (ts *TokenStream) NextToken() Token {
	tok := ts.tokens[ts.pos]
	if tok.Type != EOF {
		ts.pos++
	}
	return tok
}

// SkipToken advances past the current token, asserting it matches the expected type.
func (ts *TokenStream) SkipToken(expectedType TokenType) (Token, error) {
	tok := ts.CurrToken()
	if tok.Type != expectedType {
		return tok, &SyntaxError{Expected: expectedType, Got: tok}
	}
	ts.NextToken()
	return tok, nil
}
