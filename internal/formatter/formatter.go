package formatter

import (
	"fmt"
	"strings"

	"plox/internal/parser"
)

type Formatter struct {
	indent    int
	indentStr string
	output    strings.Builder
	lineBreak string
}

func NewFormatter() *Formatter {
	return &Formatter{
		indent:    0,
		indentStr: "    ", // 4 spaces
		lineBreak: "\n",
	}
}

func (f *Formatter) Format(stmts []parser.Stmt) string {
	f.output.Reset()
	f.indent = 0

	for i, stmt := range stmts {
		f.formatStmt(stmt)
		if i < len(stmts)-1 && f.needsBlankLine(stmt, stmts[i+1]) {
			f.output.WriteString(f.lineBreak)
		}
	}

	return f.output.String()
}

// needsBlankLine separates top-level blocks from their neighbours.
func (f *Formatter) needsBlankLine(curr, next parser.Stmt) bool {
	_, currIsBlock := curr.(*parser.BlockStmt)
	_, nextIsBlock := next.(*parser.BlockStmt)
	return currIsBlock || nextIsBlock
}

func (f *Formatter) writeIndent() {
	for i := 0; i < f.indent; i++ {
		f.output.WriteString(f.indentStr)
	}
}

func (f *Formatter) formatStmt(stmt parser.Stmt) {
	switch s := stmt.(type) {
	case *parser.VarStmt:
		f.writeIndent()
		f.output.WriteString("var ")
		f.output.WriteString(s.Name.Lexeme)
		if s.Initializer != nil {
			f.output.WriteString(" = ")
			f.formatExpr(s.Initializer)
		}
		f.output.WriteString(";")
		f.output.WriteString(f.lineBreak)

	case *parser.PrintStmt:
		f.writeIndent()
		f.output.WriteString("print ")
		f.formatExpr(s.Expr)
		f.output.WriteString(";")
		f.output.WriteString(f.lineBreak)

	case *parser.ExpressionStmt:
		f.writeIndent()
		f.formatExpr(s.Expr)
		f.output.WriteString(";")
		f.output.WriteString(f.lineBreak)

	case *parser.BlockStmt:
		f.writeIndent()
		f.output.WriteString("{")
		f.output.WriteString(f.lineBreak)

		f.indent++
		for _, inner := range s.Stmts {
			f.formatStmt(inner)
		}
		f.indent--

		f.writeIndent()
		f.output.WriteString("}")
		f.output.WriteString(f.lineBreak)

	default:
		panic(fmt.Sprintf("formatter: unexpected statement %T", stmt))
	}
}

func (f *Formatter) formatExpr(expr parser.Expr) {
	switch e := expr.(type) {
	case *parser.Binary:
		f.formatExpr(e.Left)
		f.output.WriteString(" ")
		f.output.WriteString(e.Operator.Lexeme)
		f.output.WriteString(" ")
		f.formatExpr(e.Right)

	case *parser.Literal:
		f.output.WriteString(parser.LiteralText(e.Value))

	case *parser.Grouping:
		f.output.WriteString("(")
		f.formatExpr(e.Expr)
		f.output.WriteString(")")

	case *parser.Unary:
		f.output.WriteString(e.Operator.Lexeme)
		f.formatExpr(e.Operand)

	case *parser.Variable:
		f.output.WriteString(e.Name.Lexeme)

	case *parser.Assign:
		f.output.WriteString(e.Name.Lexeme)
		f.output.WriteString(" = ")
		f.formatExpr(e.Value)

	default:
		panic(fmt.Sprintf("formatter: unexpected expression %T", expr))
	}
}
