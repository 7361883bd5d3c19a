// Package report formats a history listing for display.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/user/calchistory/pkg/calculation"
)

// Formatter defines the interface for formatting a history listing.
type Formatter interface {
	// Format converts calculations to a formatted string.
	Format(calcs []calculation.Calculation) string
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(calcs []calculation.Calculation) string

// Format implements the Formatter interface.
func (f FormatFunc) Format(calcs []calculation.Calculation) string {
	return f(calcs)
}

// ForName returns the formatter registered under name ("text" or "markdown").
func ForName(name string) (Formatter, error) {
	switch strings.ToLower(name) {
	case "", "text":
		return NewTextFormatter(), nil
	case "markdown", "md":
		return NewMarkdownFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", name)
	}
}

// NewTextFormatter returns a formatter that prints numbered, aligned lines.
func NewTextFormatter() Formatter {
	return FormatFunc(func(calcs []calculation.Calculation) string {
		if len(calcs) == 0 {
			return "No calculations.\n"
		}

		var sb strings.Builder
		w := tabwriter.NewWriter(&sb, 0, 0, 1, ' ', tabwriter.AlignRight)
		for i, c := range calcs {
			fmt.Fprintf(w, "%d.\t%s\t%s\t%s\t=\t%s\t\n", i+1,
				calculation.FormatNumber(c.Operand1),
				c.Operation.Symbol(),
				calculation.FormatNumber(c.Operand2),
				calculation.FormatNumber(c.Result))
		}
		w.Flush()
		return sb.String()
	})
}

// NewMarkdownFormatter returns a formatter that prints a Markdown table.
func NewMarkdownFormatter() Formatter {
	return FormatFunc(func(calcs []calculation.Calculation) string {
		var sb strings.Builder
		sb.WriteString("| # | Operand 1 | Operation | Operand 2 | Result |\n")
		sb.WriteString("|---:|---:|:---:|---:|---:|\n")
		for i, c := range calcs {
			fmt.Fprintf(&sb, "| %d | %s | %s | %s | %s |\n", i+1,
				calculation.FormatNumber(c.Operand1),
				c.Operation,
				calculation.FormatNumber(c.Operand2),
				calculation.FormatNumber(c.Result))
		}
		return sb.String()
	})
}
