package parser

import "plox/internal/lexer"

// Expr is a closed set of expression nodes. Consumers switch on the concrete
// type; exprNode keeps foreign types out of the set.
type Expr interface {
	exprNode()
}

// Literal expression: 1, "a", true, nil
type Literal struct {
	Value any
}

// Grouping expression: ( expr )
type Grouping struct {
	Expr Expr
}

// Unary expression: !x, -x
type Unary struct {
	Operator lexer.Token
	Operand  Expr
}

// Binary expression: a + b
type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// Variable expression: x
type Variable struct {
	Name lexer.Token
}

// Assignment expression: x = 42
type Assign struct {
	Name  lexer.Token
	Value Expr
}

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
