package report

import (
	"fmt"
	"io"

	"github.com/user/calchistory/pkg/calculation"
)

// Writer writes formatted listings to an output stream.
type Writer struct {
	formatter Formatter
	out       io.Writer
}

// NewWriter creates a new Writer with the given Formatter.
func NewWriter(formatter Formatter, out io.Writer) *Writer {
	return &Writer{
		formatter: formatter,
		out:       out,
	}
}

// Write formats calcs and writes the result.
func (w *Writer) Write(calcs []calculation.Calculation) error {
	if _, err := io.WriteString(w.out, w.formatter.Format(calcs)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
