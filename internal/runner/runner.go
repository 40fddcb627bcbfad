// Package runner drives the scan → parse → evaluate pipeline for one piece of
// source text and maps the outcome to a process exit status.
package runner

import (
	"fmt"
	"io"

	"plox/internal/errors"
	"plox/internal/formatter"
	"plox/internal/interpreter"
	"plox/internal/lexer"
	"plox/internal/parser"
)

// Exit codes, following sysexits.h.
const (
	ExitOK          = 0
	ExitUsage       = 64
	ExitDataErr     = 65
	ExitNoInput     = 66
	ExitSoftwareErr = 70
	ExitIOErr       = 74
)

type Status int

const (
	StatusOK Status = iota
	// StatusStaticError means a lexical or syntax error stopped the pipeline
	// before evaluation.
	StatusStaticError
	StatusRuntimeError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusStaticError:
		return "static error"
	case StatusRuntimeError:
		return "runtime error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ExitCode maps a status to the code file mode exits with.
func (s Status) ExitCode() int {
	switch s {
	case StatusStaticError:
		return ExitDataErr
	case StatusRuntimeError:
		return ExitSoftwareErr
	default:
		return ExitOK
	}
}

// Mode selects what a run does with the parsed program.
type Mode int

const (
	ModeExecute Mode = iota
	ModeTokens
	ModeAST
	ModeFormat
)

// Options configures the streams and behaviour of a run.
type Options struct {
	Mode   Mode
	Stdout io.Writer
	Stderr io.Writer
	Color  bool
}

func (o Options) sink() *errors.ErrorSink {
	return errors.NewErrorSink(o.Stderr, o.Color)
}

// Result describes one finished run.
type Result struct {
	Status      Status
	Diagnostics []errors.Diagnostic
}

// Run executes source once against a fresh root environment.
func Run(source string, opts Options) Result {
	return runIn(source, interpreter.NewEnvironment(nil), opts)
}

// Session keeps one root environment alive across many runs, which is what
// the interactive loop needs. Each run gets its own error sink so one line's
// errors never affect the next.
type Session struct {
	root *interpreter.Environment
	opts Options
}

func NewSession(opts Options) *Session {
	return &Session{root: interpreter.NewEnvironment(nil), opts: opts}
}

// Run executes source against the session's root environment.
func (s *Session) Run(source string) Result {
	return runIn(source, s.root, s.opts)
}

// Root exposes the persistent root environment.
func (s *Session) Root() *interpreter.Environment {
	return s.root
}

func runIn(source string, env *interpreter.Environment, opts Options) Result {
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}
	sink := opts.sink()
	result := func(status Status) Result {
		return Result{Status: status, Diagnostics: sink.Diagnostics()}
	}

	tokens := lexer.NewScanner(source, sink).ScanTokens()
	if sink.HadError() {
		return result(StatusStaticError)
	}
	if opts.Mode == ModeTokens {
		for _, tok := range tokens {
			fmt.Fprintln(opts.Stdout, tok)
		}
		return result(StatusOK)
	}

	stmts := parser.NewParser(tokens, sink).Parse()
	if sink.HadError() {
		return result(StatusStaticError)
	}

	switch opts.Mode {
	case ModeAST:
		io.WriteString(opts.Stdout, parser.AstPrinter{}.PrintProgram(stmts))
		return result(StatusOK)
	case ModeFormat:
		io.WriteString(opts.Stdout, formatter.NewFormatter().Format(stmts))
		return result(StatusOK)
	}

	if err := interpreter.New(opts.Stdout, env, sink).Interpret(stmts); err != nil {
		return result(StatusRuntimeError)
	}
	return result(StatusOK)
}
