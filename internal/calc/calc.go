package calc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDivisionByZero is returned when the divisor of a division is zero
var ErrDivisionByZero = errors.New("division by zero is not allowed")

// UnknownOperationError reports an operation name outside the
// supported set. Name is the text the user typed, not the
// normalized Operation.
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation %q, supported operations: %s", e.Name, SupportedNames())
}

// Operation represents an arithmetic operation name
type Operation string

// Supported operations
const (
	OperationAdd      Operation = "add"
	OperationSubtract Operation = "subtract"
	OperationMultiply Operation = "multiply"
	OperationDivide   Operation = "divide"
	OperationUnknown  Operation = "unknown"
)

// Operations lists the supported operations in display order
var Operations = []Operation{
	OperationAdd,
	OperationSubtract,
	OperationMultiply,
	OperationDivide,
}

// NewOperation parses an operation name, case-insensitively
func NewOperation(name string) Operation {
	switch strings.ToLower(name) {
	case "add":
		return OperationAdd
	case "subtract":
		return OperationSubtract
	case "multiply":
		return OperationMultiply
	case "divide":
		return OperationDivide
	default:
		return OperationUnknown
	}
}

// SupportedNames returns the supported operation names, comma-separated
func SupportedNames() string {
	names := make([]string, 0, len(Operations))
	for _, op := range Operations {
		names = append(names, string(op))
	}
	return strings.Join(names, ", ")
}

// Add returns the sum of two numbers
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns the difference of two numbers
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns the product of two numbers
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns the quotient of two numbers, or ErrDivisionByZero
// when the divisor is zero
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Apply dispatches to the operation named by op
func Apply(op Operation, a, b float64) (float64, error) {
	switch op {
	case OperationAdd:
		return Add(a, b), nil
	case OperationSubtract:
		return Subtract(a, b), nil
	case OperationMultiply:
		return Multiply(a, b), nil
	case OperationDivide:
		return Divide(a, b)
	default:
		return 0, &UnknownOperationError{Name: string(op)}
	}
}
