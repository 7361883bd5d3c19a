package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/calchistory/pkg/calculation"
)

func sample() []calculation.Calculation {
	a, _ := calculation.New(1, 2, calculation.Add)
	b, _ := calculation.New(10, 4, calculation.Divide)
	return []calculation.Calculation{a, b}
}

func TestTextFormatter(t *testing.T) {
	out := NewTextFormatter().Format(sample())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	if got := strings.Join(strings.Fields(lines[0]), " "); got != "1. 1 + 2 = 3" {
		t.Errorf("line 1: unexpected %q", lines[0])
	}
	if got := strings.Join(strings.Fields(lines[1]), " "); got != "2. 10 / 4 = 2.5" {
		t.Errorf("line 2: unexpected %q", lines[1])
	}
	if len(lines[0]) != len(lines[1]) {
		t.Errorf("expected aligned lines, got %q", out)
	}
}

func TestTextFormatter_Empty(t *testing.T) {
	if out := NewTextFormatter().Format(nil); out != "No calculations.\n" {
		t.Errorf("unexpected %q", out)
	}
}

func TestMarkdownFormatter(t *testing.T) {
	out := NewMarkdownFormatter().Format(sample())

	if !strings.HasPrefix(out, "| # | Operand 1 | Operation | Operand 2 | Result |\n") {
		t.Errorf("missing table header in %q", out)
	}
	if !strings.Contains(out, "| 2 | 10 | divide | 4 | 2.5 |") {
		t.Errorf("missing divide row in %q", out)
	}
}

func TestForName(t *testing.T) {
	for _, name := range []string{"", "text", "markdown", "MD"} {
		if _, err := ForName(name); err != nil {
			t.Errorf("ForName(%q) failed: %v", name, err)
		}
	}
	if _, err := ForName("html"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	custom := FormatFunc(func(calcs []calculation.Calculation) string {
		return "count=" + string(rune('0'+len(calcs)))
	})

	if err := NewWriter(custom, &buf).Write(sample()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if buf.String() != "count=2" {
		t.Errorf("unexpected %q", buf.String())
	}
}
