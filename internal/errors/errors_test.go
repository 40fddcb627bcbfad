package errors

import (
	"bytes"
	"testing"

	"plox/internal/lexer"
)

func TestErrorSinkFormats(t *testing.T) {
	tests := []struct {
		name   string
		report func(s *ErrorSink)
		want   string
	}{
		{
			"line only",
			func(s *ErrorSink) { s.Error(3, "Unexpected character.") },
			"[line 3] Error: Unexpected character.\n",
		},
		{
			"at lexeme",
			func(s *ErrorSink) {
				s.ErrorAt(lexer.Token{Type: lexer.TokenEqual, Lexeme: "=", Line: 2}, "Invalid assignment target.")
			},
			"[line 2] Error at '=': Invalid assignment target.\n",
		},
		{
			"at end",
			func(s *ErrorSink) {
				s.ErrorAt(lexer.Token{Type: lexer.TokenEOF, Line: 7}, "Expect ';' after value.")
			},
			"[line 7] Error at end: Expect ';' after value.\n",
		},
		{
			"runtime",
			func(s *ErrorSink) {
				s.RuntimeError(NewRuntimeError(lexer.Token{Type: lexer.TokenMinus, Lexeme: "-", Line: 4}, "Operand must be a number."))
			},
			"Operand must be a number.\n[line 4]\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			sink := NewErrorSink(&buf, false)
			test.report(sink)
			if buf.String() != test.want {
				t.Errorf("got %q, want %q", buf.String(), test.want)
			}
		})
	}
}

func TestErrorSinkFlags(t *testing.T) {
	sink := NewErrorSink(nil, false)
	if sink.HadError() || sink.HadRuntimeError() {
		t.Fatal("fresh sink reports errors")
	}

	sink.Error(1, "Unterminated string.")
	if !sink.HadError() || sink.HadRuntimeError() {
		t.Fatal("lexical error should only set the static flag")
	}

	sink.RuntimeError(NewRuntimeError(lexer.Token{Line: 1}, "boom"))
	if !sink.HadRuntimeError() {
		t.Fatal("runtime flag not set")
	}
	if got := len(sink.Diagnostics()); got != 2 {
		t.Fatalf("got %d diagnostics, want 2", got)
	}

	sink.Reset()
	if sink.HadError() || sink.HadRuntimeError() || len(sink.Diagnostics()) != 0 {
		t.Fatal("Reset did not clear the sink")
	}
}

func TestErrorSinkColor(t *testing.T) {
	var buf bytes.Buffer
	sink := NewErrorSink(&buf, true)
	sink.Error(1, "Unexpected character.")
	if !bytes.Contains(buf.Bytes(), []byte("\x1b[31m")) {
		t.Errorf("expected red escape sequence, got %q", buf.String())
	}
}
