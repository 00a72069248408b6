package calculator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOperator is returned for operator symbols or names outside + - * /.
var ErrInvalidOperator = errors.New("invalid operator")

// Operator is one of the four binary arithmetic operators, stored as its symbol.
type Operator string

const (
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "*"
	Divide   Operator = "/"
)

// Valid reports whether o is one of the four supported operators.
func (o Operator) Valid() bool {
	switch o {
	case Add, Subtract, Multiply, Divide:
		return true
	}
	return false
}

// Name returns the word form used in routes, metrics and span names.
func (o Operator) Name() string {
	switch o {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	}
	return string(o)
}

// ParseOperator accepts a symbol (+ - * /), a keypad alias (x × ÷) or a
// name such as "add" or "divide".
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+", "add", "plus":
		return Add, nil
	case "-", "subtract", "minus":
		return Subtract, nil
	case "*", "x", "×", "multiply", "times":
		return Multiply, nil
	case "/", "÷", "divide":
		return Divide, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOperator, s)
}

// Calculate applies op to a and b using plain float64 arithmetic. Division by
// zero is not special-cased: it yields +Inf, -Inf or NaN.
// An unrecognised operator returns b unchanged.
func Calculate(a, b float64, op Operator) float64 {
	switch op {
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	case Divide:
		return a / b
	default:
		return b
	}
}
