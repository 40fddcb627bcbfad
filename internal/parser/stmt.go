package parser

import "plox/internal/lexer"

// Stmt is a closed set of statement nodes.
type Stmt interface {
	stmtNode()
}

// ExpressionStmt evaluates an expression for its side effects.
type ExpressionStmt struct {
	Expr Expr
}

// PrintStmt wraps an expression to print.
type PrintStmt struct {
	Expr Expr
}

// VarStmt declares a variable. Initializer is nil when omitted.
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

// BlockStmt is a braced list of declarations run in its own scope.
type BlockStmt struct {
	Stmts []Stmt
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
