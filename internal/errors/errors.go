// Package errors collects the diagnostics produced by the scanner, parser and
// interpreter and renders them in the canonical "[line N] Error..." format.
package errors

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"plox/internal/lexer"
)

// ErrorType classifies a diagnostic by the pipeline stage that raised it.
type ErrorType string

const (
	LexicalError ErrorType = "LexicalError"
	SyntaxError  ErrorType = "SyntaxError"
	RuntimeErr   ErrorType = "RuntimeError"
)

// Diagnostic is one reported problem.
type Diagnostic struct {
	Type    ErrorType
	Line    int
	Where   string
	Message string
}

func (d Diagnostic) String() string {
	if d.Type == RuntimeErr {
		return fmt.Sprintf("%s\n[line %d]", d.Message, d.Line)
	}
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

// RuntimeError aborts evaluation. Token is the operator or name that failed.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func NewRuntimeError(token lexer.Token, message string) *RuntimeError {
	return &RuntimeError{Token: token, Message: message}
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// ErrorSink records diagnostics for a single run and writes each one to an
// output stream as it arrives. Static (lexical and syntax) errors and runtime
// errors are flagged separately.
type ErrorSink struct {
	out             io.Writer
	paint           *color.Color
	diagnostics     []Diagnostic
	hadError        bool
	hadRuntimeError bool
}

// NewErrorSink returns a sink writing to out. A nil out only records.
func NewErrorSink(out io.Writer, useColor bool) *ErrorSink {
	paint := color.New(color.FgRed)
	if useColor {
		paint.EnableColor()
	} else {
		paint.DisableColor()
	}
	return &ErrorSink{out: out, paint: paint}
}

// Error reports a line-only lexical error.
func (s *ErrorSink) Error(line int, message string) {
	s.report(Diagnostic{Type: LexicalError, Line: line, Message: message})
}

// ErrorAt reports a syntax error anchored at token.
func (s *ErrorSink) ErrorAt(token lexer.Token, message string) {
	where := fmt.Sprintf(" at '%s'", token.Lexeme)
	if token.Type == lexer.TokenEOF {
		where = " at end"
	}
	s.report(Diagnostic{Type: SyntaxError, Line: token.Line, Where: where, Message: message})
}

// RuntimeError reports an evaluation failure.
func (s *ErrorSink) RuntimeError(err *RuntimeError) {
	d := Diagnostic{Type: RuntimeErr, Line: err.Token.Line, Message: err.Message}
	s.diagnostics = append(s.diagnostics, d)
	s.hadRuntimeError = true
	s.write(d)
}

func (s *ErrorSink) report(d Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
	s.hadError = true
	s.write(d)
}

func (s *ErrorSink) write(d Diagnostic) {
	if s.out == nil {
		return
	}
	s.paint.Fprintln(s.out, d.String())
}

// HadError reports whether a lexical or syntax error was seen.
func (s *ErrorSink) HadError() bool { return s.hadError }

// HadRuntimeError reports whether evaluation failed.
func (s *ErrorSink) HadRuntimeError() bool { return s.hadRuntimeError }

// Diagnostics returns everything reported so far, in order.
func (s *ErrorSink) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// Reset clears the flags and recorded diagnostics.
func (s *ErrorSink) Reset() {
	s.diagnostics = nil
	s.hadError = false
	s.hadRuntimeError = false
}
