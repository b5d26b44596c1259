package tac

// TypeChecker holds the state of one semantic checking pass.
type TypeChecker struct {
	st *SymbolTable
}

func NewTypeChecker(st *SymbolTable) *TypeChecker {
	return &TypeChecker{st: st}
}

// CheckProgram validates types, scopes and mutability of a parsed program.
// It reports the first violation found and never modifies the AST.
func CheckProgram(program *ASTNode) error {
	if program.Kind != NodeProgram {
		return &SemanticError{Kind: ErrUnexpectedNode, Name: string(program.Kind)}
	}
	return checkStatements(program, NewTypeChecker(NewSymbolTable()))
}

// checkStatements checks the statements of a block or program in order,
// then its trailing return.
func checkStatements(node *ASTNode, tc *TypeChecker) error {
	for _, stmt := range node.Statements() {
		if err := CheckStatement(stmt, tc); err != nil {
			return err
		}
	}
	if ret := node.TrailingReturn(); ret != nil {
		return CheckStatement(ret, tc)
	}
	return nil
}

// CheckStatement validates a single statement in the checker's current scope.
func CheckStatement(node *ASTNode, tc *TypeChecker) error {
	switch node.Kind {
	case NodeVar:
		initType, err := CheckExpression(node.Children[0], tc)
		if err != nil {
			return err
		}
		if isNarrowing(node.TypeName, initType) {
			return &SemanticError{Kind: ErrNarrowing, Name: node.String, Want: node.TypeName, Got: initType}
		}
		tc.st.Declare(node.String, node.TypeName, node.Mutable)
		return nil

	case NodeAssign:
		symbol := tc.st.Lookup(node.String)
		if symbol == nil {
			return &SemanticError{Kind: ErrUndefinedVariable, Name: node.String}
		}
		if !symbol.Mutable {
			return &SemanticError{Kind: ErrImmutableAssignment, Name: node.String}
		}
		valueType, err := CheckExpression(node.Children[0], tc)
		if err != nil {
			return err
		}
		if isNarrowing(symbol.Type, valueType) {
			return &SemanticError{Kind: ErrNarrowing, Name: node.String, Want: symbol.Type, Got: valueType}
		}
		return nil

	case NodeReturn:
		// There is no declared result type to check against.
		_, err := CheckExpression(node.Children[0], tc)
		return err

	case NodeIf:
		condType, err := CheckExpression(node.Condition(), tc)
		if err != nil {
			return err
		}
		if condType != TypeBool {
			return &SemanticError{Kind: ErrConditionNotBool, Want: TypeBool, Got: condType}
		}
		if err := checkBlock(node.ThenBlock(), tc); err != nil {
			return err
		}
		if elseBlock := node.ElseBlock(); elseBlock != nil {
			return checkBlock(elseBlock, tc)
		}
		return nil

	case NodeBlock:
		return checkBlock(node, tc)

	default:
		return &SemanticError{Kind: ErrUnexpectedNode, Name: string(node.Kind)}
	}
}

// checkBlock checks a block in its own scope.
func checkBlock(block *ASTNode, tc *TypeChecker) error {
	tc.st.PushScope()
	defer tc.st.PopScope()
	return checkStatements(block, tc)
}

// CheckExpression infers the type of an expression.
func CheckExpression(node *ASTNode, tc *TypeChecker) (Type, error) {
	switch node.Kind {
	case NodeInteger:
		return TypeI32, nil

	case NodeBoolean:
		return TypeBool, nil

	case NodeIdent:
		symbol := tc.st.Lookup(node.String)
		if symbol == nil {
			return "", &SemanticError{Kind: ErrUndefinedVariable, Name: node.String}
		}
		return symbol.Type, nil

	case NodeUnary:
		if node.Op != string(BANG) {
			return "", &SemanticError{Kind: ErrUnknownOperator, Op: node.Op}
		}
		operandType, err := CheckExpression(node.Children[0], tc)
		if err != nil {
			return "", err
		}
		if operandType != TypeBool {
			return "", &SemanticError{Kind: ErrNotOperand, Op: node.Op, Want: TypeBool, Got: operandType}
		}
		return TypeBool, nil

	case NodeBinary:
		leftType, err := CheckExpression(node.Children[0], tc)
		if err != nil {
			return "", err
		}
		rightType, err := CheckExpression(node.Children[1], tc)
		if err != nil {
			return "", err
		}

		switch node.Op {
		case "+", "-", "*":
			if !isIntegerType(leftType) || !isIntegerType(rightType) {
				return "", &SemanticError{Kind: ErrArithmeticOperand, Op: node.Op, Left: leftType, Right: rightType}
			}
			return arithmeticResultType(leftType, rightType), nil
		case "==", "!=":
			if !isComparable(leftType, rightType) {
				return "", &SemanticError{Kind: ErrComparisonOperands, Op: node.Op, Left: leftType, Right: rightType}
			}
			return TypeBool, nil
		default:
			return "", &SemanticError{Kind: ErrUnknownOperator, Op: node.Op}
		}

	default:
		return "", &SemanticError{Kind: ErrUnexpectedNode, Name: string(node.Kind)}
	}
}
