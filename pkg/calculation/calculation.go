// Package calculation defines the calculation record kept in the history
// file and its row mapping.
package calculation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Operation names an arithmetic operation.
type Operation string

const (
	Add      Operation = "add"
	Subtract Operation = "subtract"
	Multiply Operation = "multiply"
	Divide   Operation = "divide"
)

// Operations lists the supported operations in display order.
var Operations = []Operation{Add, Subtract, Multiply, Divide}

// symbols maps operator symbols accepted on input to operations.
var symbols = map[string]Operation{
	"+": Add,
	"-": Subtract,
	"*": Multiply,
	"x": Multiply,
	"/": Divide,
}

// ParseOperation accepts an operation name or symbol, case-insensitively.
func ParseOperation(s string) (Operation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if op, ok := symbols[s]; ok {
		return op, nil
	}
	for _, op := range Operations {
		if string(op) == s {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// Symbol returns the operator symbol used when printing.
func (op Operation) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return "?"
	}
}

// Apply performs the operation. Results outside the float64 range fail with
// ErrOverflow, since they could not be stored and read back.
func (op Operation) Apply(a, b float64) (float64, error) {
	var r float64
	switch op {
	case Add:
		r = a + b
	case Subtract:
		r = a - b
	case Multiply:
		r = a * b
	case Divide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		r = a / b
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, string(op))
	}
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return 0, fmt.Errorf("%w: %s %s %s",
			ErrOverflow, FormatNumber(a), op.Symbol(), FormatNumber(b))
	}
	return r, nil
}

// Calculation is one performed calculation.
type Calculation struct {
	Operand1  float64
	Operand2  float64
	Operation Operation
	Result    float64
}

// New performs op on a and b and returns the resulting Calculation.
func New(a, b float64, op Operation) (Calculation, error) {
	result, err := op.Apply(a, b)
	if err != nil {
		return Calculation{}, err
	}
	return Calculation{
		Operand1:  a,
		Operand2:  b,
		Operation: op,
		Result:    result,
	}, nil
}

// String renders the calculation as "a op b = result".
func (c Calculation) String() string {
	return fmt.Sprintf("%s %s %s = %s",
		FormatNumber(c.Operand1), c.Operation.Symbol(), FormatNumber(c.Operand2), FormatNumber(c.Result))
}

// FormatNumber writes f with the fewest digits that parse back to f.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ParseNumber parses a finite decimal number.
func ParseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return f, nil
}
