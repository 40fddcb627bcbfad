package interpreter

import (
	"fmt"

	"plox/internal/parser"
)

// Value is a runtime value: float64, string, bool, or nil for the language's
// nil. No other Go types ever flow through the interpreter.
type Value = any

// IsTruthy follows the language rule: false and nil are falsey, everything
// else (including 0 and "") is truthy.
func IsTruthy(v Value) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	default:
		return true
	}
}

// IsEqual compares two values structurally. Values of different types are
// never equal; NaN is not equal to itself.
func IsEqual(a, b Value) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case float64:
		y, ok := b.(float64)
		return ok && x == y
	case string:
		y, ok := b.(string)
		return ok && x == y
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	default:
		return false
	}
}

// Stringify renders a value for print.
func Stringify(v Value) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case float64:
		return parser.FormatNumber(x)
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(x)
	}
}

// TypeName is used in diagnostics and the REPL's binding listing.
func TypeName(v Value) string {
	switch v.(type) {
	case nil:
		return "nil"
	case float64:
		return "number"
	case string:
		return "string"
	case bool:
		return "bool"
	default:
		return fmt.Sprintf("%T", v)
	}
}
