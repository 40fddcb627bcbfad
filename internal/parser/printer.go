package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AstPrinter renders the tree in a parenthesized prefix form, e.g.
// (* (- 123) (group 45.67)). It is a debugging aid, not a source formatter.
type AstPrinter struct{}

// Print renders a single expression.
func (AstPrinter) Print(expr Expr) string {
	var sb strings.Builder
	printExpr(&sb, expr)
	return sb.String()
}

// PrintProgram renders one top-level statement per line.
func (AstPrinter) PrintProgram(stmts []Stmt) string {
	var sb strings.Builder
	for _, stmt := range stmts {
		printStmt(&sb, stmt)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func printStmt(sb *strings.Builder, stmt Stmt) {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		parenthesize(sb, "expr", s.Expr)
	case *PrintStmt:
		parenthesize(sb, "print", s.Expr)
	case *VarStmt:
		sb.WriteString("(var ")
		sb.WriteString(s.Name.Lexeme)
		if s.Initializer != nil {
			sb.WriteByte(' ')
			printExpr(sb, s.Initializer)
		}
		sb.WriteByte(')')
	case *BlockStmt:
		sb.WriteString("(block")
		for _, inner := range s.Stmts {
			sb.WriteByte(' ')
			printStmt(sb, inner)
		}
		sb.WriteByte(')')
	default:
		panic(fmt.Sprintf("printer: unexpected statement %T", stmt))
	}
}

func printExpr(sb *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case *Literal:
		sb.WriteString(LiteralText(e.Value))
	case *Grouping:
		parenthesize(sb, "group", e.Expr)
	case *Unary:
		parenthesize(sb, e.Operator.Lexeme, e.Operand)
	case *Binary:
		parenthesize(sb, e.Operator.Lexeme, e.Left, e.Right)
	case *Variable:
		sb.WriteString(e.Name.Lexeme)
	case *Assign:
		sb.WriteString("(= ")
		sb.WriteString(e.Name.Lexeme)
		sb.WriteByte(' ')
		printExpr(sb, e.Value)
		sb.WriteByte(')')
	default:
		panic(fmt.Sprintf("printer: unexpected expression %T", expr))
	}
}

func parenthesize(sb *strings.Builder, name string, exprs ...Expr) {
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, expr := range exprs {
		sb.WriteByte(' ')
		printExpr(sb, expr)
	}
	sb.WriteByte(')')
}

// LiteralText renders a literal value as it would appear in source: strings
// are quoted, numbers use their shortest form, nil prints as nil.
func LiteralText(v any) string {
	switch lit := v.(type) {
	case nil:
		return "nil"
	case string:
		return `"` + lit + `"`
	case float64:
		return FormatNumber(lit)
	case bool:
		return strconv.FormatBool(lit)
	default:
		return fmt.Sprint(lit)
	}
}

// FormatNumber renders a number the way the language prints it: integral
// values lose their fractional part, infinities print as Infinity, and very
// large or very small magnitudes switch to exponent form (1e+21, 1e-7).
func FormatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case math.IsNaN(n):
		return "NaN"
	}
	if abs := math.Abs(n); abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		return exponent(strconv.FormatFloat(n, 'e', -1, 64))
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// exponent drops the leading zeros Go puts in exponents: 1e+021 is 1e+21.
func exponent(s string) string {
	mant, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}
