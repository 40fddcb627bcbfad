package parser

import (
	"math"
	"testing"

	"plox/internal/lexer"
)

func TestAstPrinterHandBuilt(t *testing.T) {
	expr := &Binary{
		Left: &Unary{
			Operator: lexer.Token{Type: lexer.TokenMinus, Lexeme: "-", Line: 1},
			Operand:  &Literal{Value: 123.0},
		},
		Operator: lexer.Token{Type: lexer.TokenStar, Lexeme: "*", Line: 1},
		Right:    &Grouping{Expr: &Literal{Value: 45.67}},
	}
	if got := (AstPrinter{}).Print(expr); got != "(* (- 123) (group 45.67))" {
		t.Errorf("got %s", got)
	}
}

func TestAstPrinterProgram(t *testing.T) {
	stmts := assertParseSuccess(t, `var a; var b = "x"; { print b; a = nil; }`, "program")
	want := "(var a)\n(var b \"x\")\n(block (print b) (expr (= a nil)))\n"
	if got := (AstPrinter{}).PrintProgram(stmts); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{7, "7"},
		{2.5, "2.5"},
		{-3, "-3"},
		{0.1 + 0.2, "0.30000000000000004"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
		{123456789, "123456789"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{-1.5e300, "-1.5e+300"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{math.Copysign(0, -1), "-0"},
	}
	for _, test := range tests {
		if got := FormatNumber(test.in); got != test.want {
			t.Errorf("FormatNumber(%v): got %q, want %q", test.in, got, test.want)
		}
	}
}
