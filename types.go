package tac

// Type is the static type of a variable or expression.
type Type string

const (
	TypeI32  Type = "i32"
	TypeI64  Type = "i64"
	TypeBool Type = "bool"
)

// typeFromToken maps a type keyword token to its Type.
func typeFromToken(typ TokenType) (Type, bool) {
	switch typ {
	case I32:
		return TypeI32, true
	case I64:
		return TypeI64, true
	case BOOL:
		return TypeBool, true
	default:
		return "", false
	}
}

// isIntegerType reports whether t is i32 or i64.
func isIntegerType(t Type) bool {
	return t == TypeI32 || t == TypeI64
}

// isNarrowing reports whether storing a value of type from into a variable
// of type to would lose width.
func isNarrowing(to, from Type) bool {
	return to == TypeI32 && from == TypeI64
}

// arithmeticResultType returns the widened type of an arithmetic expression
// over two integer operands.
func arithmeticResultType(left, right Type) Type {
	if left == TypeI64 || right == TypeI64 {
		return TypeI64
	}
	return TypeI32
}

// isComparable reports whether == and != accept operands of these types.
func isComparable(left, right Type) bool {
	if left == right {
		return true
	}
	return isIntegerType(left) && isIntegerType(right)
}
