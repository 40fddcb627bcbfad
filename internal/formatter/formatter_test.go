package formatter

import (
	"testing"

	"plox/internal/errors"
	"plox/internal/lexer"
	"plox/internal/parser"
)

func parse(t *testing.T, source string) []parser.Stmt {
	t.Helper()
	sink := errors.NewErrorSink(nil, false)
	tokens := lexer.NewScanner(source, sink).ScanTokens()
	stmts := parser.NewParser(tokens, sink).Parse()
	if sink.HadError() {
		t.Fatalf("parse %q: %v", source, sink.Diagnostics())
	}
	return stmts
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"declarations",
			"var   x=1;var y ;",
			"var x = 1;\nvar y;\n",
		},
		{
			"expressions keep grouping",
			"print (1+2)*-3;x=y=\"s\";",
			"print (1 + 2) * -3;\nx = y = \"s\";\n",
		},
		{
			"literals",
			"print nil; print true; print 2.50;",
			"print nil;\nprint true;\nprint 2.5;\n",
		},
		{
			"nested blocks",
			"var a; { var b = !a; { print b; } } print a;",
			"var a;\n\n{\n    var b = !a;\n    {\n        print b;\n    }\n}\n\nprint a;\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := NewFormatter().Format(parse(t, test.input))
			if got != test.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, test.want)
			}
		})
	}
}

func TestFormatIdempotent(t *testing.T) {
	source := `var greeting = "hi"; { var n = -(1 + 2) / 4; print greeting + "!"; n = n * 2; } print greeting == nil;`
	once := NewFormatter().Format(parse(t, source))
	twice := NewFormatter().Format(parse(t, once))
	if once != twice {
		t.Errorf("formatting is not idempotent:\n%s\n---\n%s", once, twice)
	}
}
