package tac

import "fmt"

// SyntaxError reports malformed input found while tokenizing or parsing.
//
// When Msg is empty the error describes a token mismatch between Expected
// and Got.
type SyntaxError struct {
	Expected TokenType
	Got      Token
	Msg      string
}

func (e *SyntaxError) Error() string {
	if e.Msg != "" {
		return "syntax error: " + e.Msg
	}
	return "syntax error: expected " + describeTokenType(e.Expected) + " but got " + describeToken(e.Got)
}

func describeTokenType(typ TokenType) string {
	switch typ {
	case EOF, IDENT, INT, I32, I64, BOOL, MUT, RETURN, IF, ELSE, TRUE, FALSE:
		return string(typ)
	default:
		return "'" + string(typ) + "'"
	}
}

func describeToken(tok Token) string {
	switch tok.Type {
	case EOF:
		return "EOF"
	case IDENT, INT:
		return string(tok.Type) + " ('" + tok.Literal + "')"
	default:
		return describeTokenType(tok.Type)
	}
}

// SemanticErrorKind classifies a SemanticError.
type SemanticErrorKind string

const (
	ErrUndefinedVariable   SemanticErrorKind = "undefined-variable"
	ErrImmutableAssignment SemanticErrorKind = "immutable-assignment"
	ErrNarrowing           SemanticErrorKind = "narrowing"
	ErrConditionNotBool    SemanticErrorKind = "condition-not-bool"
	ErrNotOperand          SemanticErrorKind = "not-operand"
	ErrArithmeticOperand   SemanticErrorKind = "arithmetic-operand"
	ErrComparisonOperands  SemanticErrorKind = "comparison-operands"
	ErrUnknownOperator     SemanticErrorKind = "unknown-operator"
	ErrUnexpectedNode      SemanticErrorKind = "unexpected-node"
)

// SemanticError reports a type, scope or mutability violation.
type SemanticError struct {
	Kind SemanticErrorKind
	Name string // offending variable, if any
	Op   string // offending operator, if any
	Want Type
	Got  Type
	// Left and Right are the operand types of a rejected binary operator.
	Left, Right Type
}

func (e *SemanticError) Error() string {
	switch e.Kind {
	case ErrUndefinedVariable:
		return fmt.Sprintf("error: variable '%s' used before declaration", e.Name)
	case ErrImmutableAssignment:
		return fmt.Sprintf("error: cannot assign to immutable variable '%s'", e.Name)
	case ErrNarrowing:
		return fmt.Sprintf("error: cannot assign %s to %s variable '%s'", e.Got, e.Want, e.Name)
	case ErrConditionNotBool:
		return fmt.Sprintf("error: if condition must be %s, got %s", TypeBool, e.Got)
	case ErrNotOperand:
		return fmt.Sprintf("error: operator '!' requires %s operand, got %s", TypeBool, e.Got)
	case ErrArithmeticOperand:
		return fmt.Sprintf("error: operator '%s' requires integer operands, got %s and %s", e.Op, e.Left, e.Right)
	case ErrComparisonOperands:
		return fmt.Sprintf("error: cannot compare %s and %s with '%s'", e.Left, e.Right, e.Op)
	case ErrUnknownOperator:
		return fmt.Sprintf("error: unknown operator '%s'", e.Op)
	default:
		return fmt.Sprintf("error: unexpected node %s", e.Name)
	}
}
