// Package interpreter walks the syntax tree produced by the parser and
// evaluates it directly against a chain of Environments.
package interpreter

import (
	stderrors "errors"
	"fmt"
	"io"

	"plox/internal/errors"
	"plox/internal/lexer"
	"plox/internal/parser"
)

// Reporter receives the runtime error that aborted a run.
type Reporter interface {
	RuntimeError(err *errors.RuntimeError)
}

type Interpreter struct {
	env      *Environment
	out      io.Writer
	reporter Reporter
}

// New returns an interpreter that executes against env and writes print
// output to out. The caller owns env; a REPL passes the same root for every
// line.
func New(out io.Writer, env *Environment, reporter Reporter) *Interpreter {
	if env == nil {
		env = NewEnvironment(nil)
	}
	return &Interpreter{env: env, out: out, reporter: reporter}
}

// Interpret executes stmts in order. The first runtime error aborts the rest,
// is reported once, and is returned.
func (in *Interpreter) Interpret(stmts []parser.Stmt) error {
	for _, stmt := range stmts {
		if err := in.Execute(stmt); err != nil {
			var rerr *errors.RuntimeError
			if stderrors.As(err, &rerr) && in.reporter != nil {
				in.reporter.RuntimeError(rerr)
			}
			return err
		}
	}
	return nil
}

// Execute runs a single statement.
func (in *Interpreter) Execute(stmt parser.Stmt) error {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		_, err := in.Evaluate(s.Expr)
		return err

	case *parser.PrintStmt:
		value, err := in.Evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, Stringify(value))
		return nil

	case *parser.VarStmt:
		var value Value
		if s.Initializer != nil {
			v, err := in.Evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.env.Define(s.Name.Lexeme, value)
		return nil

	case *parser.BlockStmt:
		return in.executeBlock(s.Stmts, NewEnvironment(in.env))

	default:
		panic(fmt.Sprintf("interpreter: unexpected statement %T", stmt))
	}
}

// executeBlock runs stmts in env and restores the previous scope on every
// exit path.
func (in *Interpreter) executeBlock(stmts []parser.Stmt, env *Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		if err := in.Execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate computes the value of an expression.
func (in *Interpreter) Evaluate(expr parser.Expr) (Value, error) {
	switch e := expr.(type) {
	case *parser.Literal:
		return e.Value, nil

	case *parser.Grouping:
		return in.Evaluate(e.Expr)

	case *parser.Variable:
		return in.env.Get(e.Name)

	case *parser.Assign:
		value, err := in.Evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if err := in.env.Assign(e.Name, value); err != nil {
			return nil, err
		}
		return value, nil

	case *parser.Unary:
		return in.evalUnary(e)

	case *parser.Binary:
		return in.evalBinary(e)

	default:
		panic(fmt.Sprintf("interpreter: unexpected expression %T", expr))
	}
}

func (in *Interpreter) evalUnary(e *parser.Unary) (Value, error) {
	operand, err := in.Evaluate(e.Operand)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.TokenBang:
		return !IsTruthy(operand), nil
	case lexer.TokenMinus:
		n, ok := operand.(float64)
		if !ok {
			return nil, errors.NewRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	}
	return nil, errors.NewRuntimeError(e.Operator, "Invalid unary expression.")
}

func (in *Interpreter) evalBinary(e *parser.Binary) (Value, error) {
	left, err := in.Evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.Evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.TokenEqualEqual:
		return IsEqual(left, right), nil
	case lexer.TokenBangEqual:
		return !IsEqual(left, right), nil
	case lexer.TokenPlus:
		if l, ok := left.(float64); ok {
			if r, ok := right.(float64); ok {
				return l + r, nil
			}
		}
		if l, ok := left.(string); ok {
			if r, ok := right.(string); ok {
				return l + r, nil
			}
		}
		return nil, errors.NewRuntimeError(e.Operator, "Operands must be two numbers or two strings.")
	}

	l, r, err := numberOperands(e.Operator, left, right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case lexer.TokenMinus:
		return l - r, nil
	case lexer.TokenStar:
		return l * r, nil
	case lexer.TokenSlash:
		// IEEE-754: division by zero yields an infinity or NaN.
		return l / r, nil
	case lexer.TokenGreater:
		return l > r, nil
	case lexer.TokenGreaterEqual:
		return l >= r, nil
	case lexer.TokenLess:
		return l < r, nil
	case lexer.TokenLessEqual:
		return l <= r, nil
	}
	return nil, errors.NewRuntimeError(e.Operator, "Invalid binary expression.")
}

func numberOperands(operator lexer.Token, left, right Value) (float64, float64, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, errors.NewRuntimeError(operator, "Operands must be numbers.")
	}
	return l, r, nil
}
