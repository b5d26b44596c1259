package tac

import (
	"strconv"
	"strings"
)

// ToSExpr converts an AST node to s-expression string representation
func ToSExpr(node *ASTNode) string {
	if node == nil {
		return "nil"
	}
	switch node.Kind {
	case NodeIdent:
		return "(ident " + strconv.Quote(node.String) + ")"
	case NodeInteger:
		return "(integer " + strconv.FormatInt(node.Integer, 10) + ")"
	case NodeBoolean:
		return "(boolean " + strconv.FormatBool(node.Boolean) + ")"
	case NodeUnary:
		return "(unary " + strconv.Quote(node.Op) + " " + ToSExpr(node.Children[0]) + ")"
	case NodeBinary:
		left := ToSExpr(node.Children[0])
		right := ToSExpr(node.Children[1])
		return "(binary " + strconv.Quote(node.Op) + " " + left + " " + right + ")"
	case NodeVar:
		result := "(var " + strconv.Quote(node.String) + " " + string(node.TypeName)
		if node.Mutable {
			result += " mut"
		}
		return result + " " + ToSExpr(node.Children[0]) + ")"
	case NodeAssign:
		return "(assign " + strconv.Quote(node.String) + " " + ToSExpr(node.Children[0]) + ")"
	case NodeReturn:
		return "(return " + ToSExpr(node.Children[0]) + ")"
	case NodeIf:
		return listSExpr("if", node.Children)
	case NodeBlock:
		return listSExpr("block", node.Children)
	case NodeProgram:
		return listSExpr("program", node.Children)
	default:
		return ""
	}
}

func listSExpr(head string, children []*ASTNode) string {
	var b strings.Builder
	b.WriteString("(" + head)
	for _, child := range children {
		b.WriteString(" ")
		b.WriteString(ToSExpr(child))
	}
	b.WriteString(")")
	return b.String()
}
