package calculation

import (
	"fmt"
	"strings"

	"github.com/user/calchistory/pkg/filestore"
)

// Column names of the history file.
const (
	ColumnOperand1  = "operand1"
	ColumnOperand2  = "operand2"
	ColumnOperation = "operation"
	ColumnResult    = "result"
)

// Columns is the column order written to the history file.
var Columns = []string{ColumnOperand1, ColumnOperand2, ColumnOperation, ColumnResult}

// FromRow builds a Calculation from a history row.
// All four columns are required. Extra columns are ignored.
func FromRow(row filestore.Row) (Calculation, error) {
	a, err := numberField(row, ColumnOperand1)
	if err != nil {
		return Calculation{}, err
	}
	b, err := numberField(row, ColumnOperand2)
	if err != nil {
		return Calculation{}, err
	}
	name, err := field(row, ColumnOperation)
	if err != nil {
		return Calculation{}, err
	}
	op, err := ParseOperation(name)
	if err != nil {
		return Calculation{}, err
	}
	result, err := numberField(row, ColumnResult)
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

// ToRow returns the history row for c.
func (c Calculation) ToRow() filestore.Row {
	return filestore.Row{
		{Name: ColumnOperand1, Value: FormatNumber(c.Operand1)},
		{Name: ColumnOperand2, Value: FormatNumber(c.Operand2)},
		{Name: ColumnOperation, Value: string(c.Operation)},
		{Name: ColumnResult, Value: FormatNumber(c.Result)},
	}
}

func field(row filestore.Row, name string) (string, error) {
	v, ok := row.Get(name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingField, name)
	}
	return v, nil
}

func numberField(row filestore.Row, name string) (float64, error) {
	v, err := field(row, name)
	if err != nil {
		return 0, err
	}
	f, err := ParseNumber(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// Codec implements filestore.Codec for Calculation.
type Codec struct{}

// FromRow calls FromRow.
func (Codec) FromRow(row filestore.Row) (Calculation, error) {
	return FromRow(row)
}

// ToRow calls c.ToRow.
func (Codec) ToRow(c Calculation) filestore.Row {
	return c.ToRow()
}

// Header returns a copy of Columns.
func (Codec) Header() []string {
	return append([]string(nil), Columns...)
}

var _ filestore.Codec[Calculation] = Codec{}
