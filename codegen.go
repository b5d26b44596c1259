package tac

import (
	"fmt"
	"strconv"
)

// CodeGen walks a checked AST and emits three-address IR lines.
//
// A CodeGen is good for one Generate call; its temporary and label counters
// are never reset.
type CodeGen struct {
	out       []string
	nextTemp  int
	nextLabel int
}

func newCodeGen() *CodeGen {
	return &CodeGen{}
}

// Generate emits IR for a program that has passed CheckProgram.
func Generate(program *ASTNode) ([]string, error) {
	if program.Kind != NodeProgram {
		return nil, fmt.Errorf("codegen: expected %s, got %s", NodeProgram, program.Kind)
	}
	cg := newCodeGen()
	if err := cg.emitStatements(program); err != nil {
		return nil, err
	}
	return cg.out, nil
}

func (cg *CodeGen) newTemp() string {
	cg.nextTemp++
	return "%t" + strconv.Itoa(cg.nextTemp)
}

func (cg *CodeGen) newLabel(base string) string {
	cg.nextLabel++
	return base + "_" + strconv.Itoa(cg.nextLabel)
}

func (cg *CodeGen) line(format string, args ...any) {
	cg.out = append(cg.out, fmt.Sprintf(format, args...))
}

// emitStatements emits the statements of a block or program, then its
// trailing return. A block without a return falls through.
func (cg *CodeGen) emitStatements(node *ASTNode) error {
	for _, stmt := range node.Statements() {
		if err := cg.emitStatement(stmt); err != nil {
			return err
		}
	}
	if ret := node.TrailingReturn(); ret != nil {
		return cg.emitStatement(ret)
	}
	return nil
}

func (cg *CodeGen) emitStatement(node *ASTNode) error {
	switch node.Kind {
	case NodeVar, NodeAssign:
		// Declarations and assignments look the same in IR.
		value, err := cg.emitExpression(node.Children[0])
		if err != nil {
			return err
		}
		cg.line("%s = %s", node.String, value)

	case NodeReturn:
		value, err := cg.emitExpression(node.Children[0])
		if err != nil {
			return err
		}
		cg.line("ret %s", value)

	case NodeIf:
		cond, err := cg.emitExpression(node.Condition())
		if err != nil {
			return err
		}
		elseLabel := cg.newLabel("L_else")
		endLabel := cg.newLabel("L_end")

		cg.line("br_if_false %s, %s", cond, elseLabel)
		if err := cg.emitStatements(node.ThenBlock()); err != nil {
			return err
		}
		cg.line("jmp %s", endLabel)
		cg.line("%s:", elseLabel)
		if elseBlock := node.ElseBlock(); elseBlock != nil {
			if err := cg.emitStatements(elseBlock); err != nil {
				return err
			}
		}
		cg.line("%s:", endLabel)

	case NodeBlock:
		return cg.emitStatements(node)

	default:
		return fmt.Errorf("codegen: unsupported statement %s", node.Kind)
	}
	return nil
}

// emitExpression emits the instructions computing node and returns the
// operand naming its value: a temporary, a variable or a literal.
func (cg *CodeGen) emitExpression(node *ASTNode) (string, error) {
	switch node.Kind {
	case NodeIdent:
		return node.String, nil

	case NodeInteger:
		return strconv.FormatInt(node.Integer, 10), nil

	case NodeBoolean:
		return strconv.FormatBool(node.Boolean), nil

	case NodeUnary:
		operand, err := cg.emitExpression(node.Children[0])
		if err != nil {
			return "", err
		}
		temp := cg.newTemp()
		cg.line("%s = not %s", temp, operand)
		return temp, nil

	case NodeBinary:
		left, err := cg.emitExpression(node.Children[0])
		if err != nil {
			return "", err
		}
		right, err := cg.emitExpression(node.Children[1])
		if err != nil {
			return "", err
		}
		op, err := getBinaryOpcode(node.Op)
		if err != nil {
			return "", err
		}
		temp := cg.newTemp()
		cg.line("%s = %s %s, %s", temp, op, left, right)
		return temp, nil

	default:
		return "", fmt.Errorf("codegen: unsupported expression %s", node.Kind)
	}
}

func getBinaryOpcode(op string) (string, error) {
	switch op {
	case "+":
		return "add", nil
	case "-":
		return "sub", nil
	case "*":
		return "mul", nil
	case "==":
		return "eq", nil
	case "!=":
		return "ne", nil
	default:
		return "", fmt.Errorf("codegen: unsupported binary operator %q", op)
	}
}
