package tac

// NodeKind represents different types of AST nodes
type NodeKind string

const (
	NodeIdent   NodeKind = "NodeIdent"
	NodeInteger NodeKind = "NodeInteger"
	NodeBoolean NodeKind = "NodeBoolean"
	NodeUnary   NodeKind = "NodeUnary"
	NodeBinary  NodeKind = "NodeBinary"
	NodeVar     NodeKind = "NodeVar"
	NodeAssign  NodeKind = "NodeAssign"
	NodeReturn  NodeKind = "NodeReturn"
	NodeBlock   NodeKind = "NodeBlock"
	NodeIf      NodeKind = "NodeIf"
	NodeProgram NodeKind = "NodeProgram"
)

// ASTNode represents a node in the Abstract Syntax Tree.
//
// Nodes are built by the parser and are read-only afterwards.
type ASTNode struct {
	Kind NodeKind
	// NodeIdent: variable name. NodeVar, NodeAssign: target variable name.
	String string
	// NodeInteger:
	Integer int64
	// NodeBoolean:
	Boolean bool
	// NodeBinary: "+", "-", "*", "==", "!=". NodeUnary: "!".
	Op string
	// NodeVar:
	TypeName Type
	Mutable  bool
	// NodeUnary: [operand]
	// NodeBinary: [left, right]
	// NodeVar, NodeAssign, NodeReturn: [value]
	// NodeIf: [cond, then] or [cond, then, else]
	// NodeBlock, NodeProgram: statements followed by an optional NodeReturn
	Children []*ASTNode
}

// Statements returns the non-return statements of a NodeBlock or NodeProgram.
func (n *ASTNode) Statements() []*ASTNode {
	if n.TrailingReturn() != nil {
		return n.Children[:len(n.Children)-1]
	}
	return n.Children
}

// TrailingReturn returns the final NodeReturn of a NodeBlock or NodeProgram,
// or nil if the block falls through.
func (n *ASTNode) TrailingReturn() *ASTNode {
	if len(n.Children) == 0 {
		return nil
	}
	last := n.Children[len(n.Children)-1]
	if last.Kind != NodeReturn {
		return nil
	}
	return last
}

// Condition returns the condition of a NodeIf.
func (n *ASTNode) Condition() *ASTNode {
	return n.Children[0]
}

// ThenBlock returns the then-block of a NodeIf.
func (n *ASTNode) ThenBlock() *ASTNode {
	return n.Children[1]
}

// ElseBlock returns the else-block of a NodeIf, or nil.
func (n *ASTNode) ElseBlock() *ASTNode {
	if len(n.Children) < 3 {
		return nil
	}
	return n.Children[2]
}
