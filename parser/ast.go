package parser

import (
	"github.com/exprlang/exprcheck/tokenizer"
)

// Node is one vertex of the parsed expression tree. Validation needs
// only Parse's error result; the tree is for callers that want more
// than a yes/no answer.
type Node interface {
	// Pos returns the position of the leftmost token of the node
	Pos() tokenizer.Position
	// String renders the node fully parenthesized, which makes
	// associativity and precedence visible in tests and diagnostics
	String() string
}

// NumberNode is a numeric literal
type NumberNode struct {
	Token tokenizer.Token
}

func (n *NumberNode) Pos() tokenizer.Position {
	return n.Token.Position
}

func (n *NumberNode) String() string {
	return n.Token.Value
}

// UnaryNode is a negated factor
type UnaryNode struct {
	Op      tokenizer.Token
	Operand Node
}

func (n *UnaryNode) Pos() tokenizer.Position {
	return n.Op.Position
}

func (n *UnaryNode) String() string {
	return "(-" + n.Operand.String() + ")"
}

// BinaryNode is a binary operation on two subtrees
type BinaryNode struct {
	Op    tokenizer.Token
	Left  Node
	Right Node
}

func (n *BinaryNode) Pos() tokenizer.Position {
	return n.Left.Pos()
}

func (n *BinaryNode) String() string {
	return "(" + n.Left.String() + n.Op.Value + n.Right.String() + ")"
}
