package tac

import "strconv"

// precedence returns the precedence level for a given token type
func precedence(tokenType TokenType) int {
	switch tokenType {
	case EQ, NOT_EQ:
		return 1
	case PLUS, MINUS:
		return 2
	case ASTERISK:
		return 3
	default:
		return 0 // not a binary operator
	}
}

// ParseProgram parses a whole program: statements followed by exactly one
// return, which must be the last thing before EOF.
func ParseProgram(ts *TokenStream) (*ASTNode, error) {
	program := &ASTNode{Kind: NodeProgram}
	for ts.CurrTokenType() != EOF {
		if ts.CurrTokenType() != RETURN {
			stmt, err := ParseStatement(ts)
			if err != nil {
				return nil, err
			}
			program.Children = append(program.Children, stmt)
			continue
		}

		ret, err := parseReturn(ts)
		if err != nil {
			return nil, err
		}
		program.Children = append(program.Children, ret)

		switch tok := ts.CurrToken(); tok.Type {
		case EOF:
			return program, nil
		case RETURN:
			return nil, &SyntaxError{Got: tok, Msg: "multiple return statements at top-level"}
		default:
			return nil, &SyntaxError{Got: tok, Msg: "extra tokens after return: " + describeToken(tok)}
		}
	}
	return nil, &SyntaxError{Got: ts.CurrToken(), Msg: "no return statement in program"}
}

// ParseStatement parses a declaration, assignment or if statement.
func ParseStatement(ts *TokenStream) (*ASTNode, error) {
	switch tok := ts.CurrToken(); tok.Type {
	case I32, I64, BOOL:
		return parseVar(ts)
	case IDENT:
		return parseAssign(ts)
	case IF:
		return parseIf(ts)
	default:
		return nil, &SyntaxError{Got: tok, Msg: "unexpected token at statement start: " + describeToken(tok)}
	}
}

// parseVar parses: type 'mut'? ID '{' expr '}'
func parseVar(ts *TokenStream) (*ASTNode, error) {
	typeName, _ := typeFromToken(ts.NextToken().Type)

	mutable := false
	if ts.CurrTokenType() == MUT {
		ts.NextToken()
		mutable = true
	}

	name, err := ts.SkipToken(IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := ts.SkipToken(LBRACE); err != nil {
		return nil, err
	}
	init, err := ParseExpression(ts)
	if err != nil {
		return nil, err
	}
	if _, err := ts.SkipToken(RBRACE); err != nil {
		return nil, err
	}

	return &ASTNode{
		Kind:     NodeVar,
		String:   name.Literal,
		TypeName: typeName,
		Mutable:  mutable,
		Children: []*ASTNode{init},
	}, nil
}

// parseAssign parses: ID '=' expr
func parseAssign(ts *TokenStream) (*ASTNode, error) {
	name, err := ts.SkipToken(IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := ts.SkipToken(ASSIGN); err != nil {
		return nil, err
	}
	value, err := ParseExpression(ts)
	if err != nil {
		return nil, err
	}
	return &ASTNode{
		Kind:     NodeAssign,
		String:   name.Literal,
		Children: []*ASTNode{value},
	}, nil
}

// parseIf parses: 'if' expr block ('else' block)?
func parseIf(ts *TokenStream) (*ASTNode, error) {
	if _, err := ts.SkipToken(IF); err != nil {
		return nil, err
	}
	cond, err := ParseExpression(ts)
	if err != nil {
		return nil, err
	}
	thenBlock, err := parseBlock(ts)
	if err != nil {
		return nil, err
	}
	children := []*ASTNode{cond, thenBlock}

	if ts.CurrTokenType() == ELSE {
		ts.NextToken()
		elseBlock, err := parseBlock(ts)
		if err != nil {
			return nil, err
		}
		children = append(children, elseBlock)
	}

	return &ASTNode{
		Kind:     NodeIf,
		Children: children,
	}, nil
}

// parseBlock parses: '{' (decl | assign | if)* return? '}'
func parseBlock(ts *TokenStream) (*ASTNode, error) {
	if _, err := ts.SkipToken(LBRACE); err != nil {
		return nil, err
	}
	block := &ASTNode{Kind: NodeBlock}
	for {
		switch ts.CurrTokenType() {
		case RBRACE:
			ts.NextToken()
			return block, nil
		case EOF:
			// Unterminated block.
			_, err := ts.SkipToken(RBRACE)
			return nil, err
		case RETURN:
			ret, err := parseReturn(ts)
			if err != nil {
				return nil, err
			}
			block.Children = append(block.Children, ret)
			// A return ends the block.
			if _, err := ts.SkipToken(RBRACE); err != nil {
				return nil, err
			}
			return block, nil
		default:
			stmt, err := ParseStatement(ts)
			if err != nil {
				return nil, err
			}
			block.Children = append(block.Children, stmt)
		}
	}
}

// parseReturn parses: 'return' expr
func parseReturn(ts *TokenStream) (*ASTNode, error) {
	if _, err := ts.SkipToken(RETURN); err != nil {
		return nil, err
	}
	value, err := ParseExpression(ts)
	if err != nil {
		return nil, err
	}
	return &ASTNode{
		Kind:     NodeReturn,
		Children: []*ASTNode{value},
	}, nil
}

// ParseExpression parses an expression and returns an AST node
func ParseExpression(ts *TokenStream) (*ASTNode, error) {
	return parseExpressionWithPrecedence(ts, 1)
}

// parseExpressionWithPrecedence implements precedence climbing. All binary
// operators are left-associative.
func parseExpressionWithPrecedence(ts *TokenStream, minPrec int) (*ASTNode, error) {
	left, err := parseUnary(ts)
	if err != nil {
		return nil, err
	}

	for {
		opType := ts.CurrTokenType()
		prec := precedence(opType)
		if prec == 0 || prec < minPrec {
			break
		}
		ts.NextToken()

		right, err := parseExpressionWithPrecedence(ts, prec+1)
		if err != nil {
			return nil, err
		}
		left = &ASTNode{
			Kind:     NodeBinary,
			Op:       string(opType),
			Children: []*ASTNode{left, right},
		}
	}

	return left, nil
}

// parseUnary parses: '!' unary | factor
func parseUnary(ts *TokenStream) (*ASTNode, error) {
	if ts.CurrTokenType() != BANG {
		return parsePrimary(ts)
	}
	ts.NextToken()
	operand, err := parseUnary(ts)
	if err != nil {
		return nil, err
	}
	return &ASTNode{
		Kind:     NodeUnary,
		Op:       string(BANG),
		Children: []*ASTNode{operand},
	}, nil
}

// parsePrimary handles identifiers and literals
func parsePrimary(ts *TokenStream) (*ASTNode, error) {
	tok := ts.CurrToken()
	switch tok.Type {
	case IDENT:
		ts.NextToken()
		return &ASTNode{Kind: NodeIdent, String: tok.Literal}, nil

	case INT:
		value, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, &SyntaxError{Got: tok, Msg: "integer literal '" + tok.Literal + "' out of range"}
		}
		ts.NextToken()
		return &ASTNode{Kind: NodeInteger, Integer: value}, nil

	case TRUE, FALSE:
		ts.NextToken()
		return &ASTNode{Kind: NodeBoolean, Boolean: tok.Type == TRUE}, nil

	default:
		return nil, &SyntaxError{Got: tok, Msg: "expected expression but got " + describeToken(tok)}
	}
}
