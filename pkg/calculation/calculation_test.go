package calculation

import (
	"errors"
	"math"
	"testing"

	"github.com/user/calchistory/pkg/filestore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		a, b     float64
		op       Operation
		expected float64
	}{
		{2, 3, Add, 5},
		{2, 3, Subtract, -1},
		{2, 3, Multiply, 6},
		{3, 2, Divide, 1.5},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			c, err := New(tt.a, tt.b, tt.op)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if c.Result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, c.Result)
			}
		})
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(1, 0, Divide); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected ErrDivisionByZero, got %v", err)
	}
	if _, err := New(1, 1, Operation("power")); !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("expected ErrUnknownOperation, got %v", err)
	}
}

func TestNew_Overflow(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		op   Operation
	}{
		{"multiply", 1e300, 1e300, Multiply},
		{"negative multiply", -1e300, 1e300, Multiply},
		{"add", math.MaxFloat64, math.MaxFloat64, Add},
		{"subtract", -math.MaxFloat64, math.MaxFloat64, Subtract},
		{"divide", 1e300, 1e-300, Divide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.a, tt.b, tt.op); !errors.Is(err, ErrOverflow) {
				t.Errorf("expected ErrOverflow, got %v", err)
			}
		})
	}

	c, err := New(math.MaxFloat64, 1, Multiply)
	if err != nil {
		t.Fatalf("largest finite result rejected: %v", err)
	}
	if _, err := FromRow(c.ToRow()); err != nil {
		t.Errorf("largest finite result does not read back: %v", err)
	}
}

func TestParseOperation(t *testing.T) {
	tests := map[string]Operation{
		"add":      Add,
		" ADD ":    Add,
		"+":        Add,
		"-":        Subtract,
		"x":        Multiply,
		"*":        Multiply,
		"Divide":   Divide,
		"/":        Divide,
		"subtract": Subtract,
	}

	for in, expected := range tests {
		got, err := ParseOperation(in)
		if err != nil {
			t.Errorf("ParseOperation(%q) failed: %v", in, err)
			continue
		}
		if got != expected {
			t.Errorf("ParseOperation(%q): expected %s, got %s", in, expected, got)
		}
	}

	if _, err := ParseOperation("modulo"); !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("expected ErrUnknownOperation, got %v", err)
	}
}

func TestFromRow(t *testing.T) {
	row := filestore.Row{
		{Name: "operation", Value: "multiply"},
		{Name: "result", Value: "7.5"},
		{Name: "operand1", Value: "2.5"},
		{Name: "operand2", Value: "3"},
		{Name: "note", Value: "ignored"},
	}

	c, err := FromRow(row)
	if err != nil {
		t.Fatalf("FromRow failed: %v", err)
	}
	expected := Calculation{Operand1: 2.5, Operand2: 3, Operation: Multiply, Result: 7.5}
	if c != expected {
		t.Errorf("expected %+v, got %+v", expected, c)
	}
}

func TestFromRow_Errors(t *testing.T) {
	valid := func() filestore.Row {
		return filestore.Row{
			{Name: ColumnOperand1, Value: "1"},
			{Name: ColumnOperand2, Value: "2"},
			{Name: ColumnOperation, Value: "add"},
			{Name: ColumnResult, Value: "3"},
		}
	}

	tests := []struct {
		name     string
		mutate   func(filestore.Row) filestore.Row
		expected error
	}{
		{"missing operand2", func(r filestore.Row) filestore.Row { return append(r[:1], r[2:]...) }, ErrMissingField},
		{"blank result", func(r filestore.Row) filestore.Row { r[3].Value = " "; return r }, ErrMissingField},
		{"text operand", func(r filestore.Row) filestore.Row { r[0].Value = "abc"; return r }, ErrInvalidNumber},
		{"nan operand", func(r filestore.Row) filestore.Row { r[1].Value = "NaN"; return r }, ErrInvalidNumber},
		{"inf result", func(r filestore.Row) filestore.Row { r[3].Value = "+Inf"; return r }, ErrInvalidNumber},
		{"bad operation", func(r filestore.Row) filestore.Row { r[2].Value = "pow"; return r }, ErrUnknownOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRow(tt.mutate(valid()))
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestToRow(t *testing.T) {
	c := Calculation{Operand1: 0.1, Operand2: 2, Operation: Add, Result: 2.1}

	row := c.ToRow()
	if len(row) != len(Columns) {
		t.Fatalf("expected %d fields, got %d", len(Columns), len(row))
	}
	for i, name := range Columns {
		if row[i].Name != name {
			t.Errorf("column %d: expected %s, got %s", i, name, row[i].Name)
		}
	}

	back, err := FromRow(row)
	if err != nil {
		t.Fatalf("FromRow failed: %v", err)
	}
	if back != c {
		t.Errorf("expected %+v, got %+v", c, back)
	}
}

func TestCalculation_String(t *testing.T) {
	c, _ := New(10, 4, Divide)
	if got := c.String(); got != "10 / 4 = 2.5" {
		t.Errorf("unexpected %q", got)
	}
}

func TestCodec_HeaderIsCopy(t *testing.T) {
	h := Codec{}.Header()
	h[0] = "changed"
	if Columns[0] != ColumnOperand1 {
		t.Error("Header must not alias Columns")
	}
}
