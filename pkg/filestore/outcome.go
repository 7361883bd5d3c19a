package filestore

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
)

// utf8BOM is stripped from the start of input before parsing.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Outcome is the result of converting one data row.
// Exactly one of Value and Err is meaningful.
type Outcome[T any] struct {
	// Line is the 1-based line in the file where the row starts.
	Line  int
	Row   Row
	Value T
	Err   error
}

// OK reports whether the row produced a record.
func (o Outcome[T]) OK() bool {
	return o.Err == nil
}

// ParseRows parses CSV data with a header row and converts every data row
// with codec. A failing row yields an Outcome with Err set; it never stops
// the parse. ErrNoHeader is returned when data holds no records at all.
//
// Records are read one line at a time, so a malformed line (such as one with
// an unbalanced quote) fails alone and the lines after it still parse.
// Quoted cells cannot span lines.
func ParseRows[T any](data []byte, codec Codec[T]) ([]string, []Outcome[T], error) {
	lines := bytes.Split(bytes.TrimPrefix(data, utf8BOM), []byte("\n"))

	var header []string
	var outcomes []Outcome[T]
	for i, raw := range lines {
		raw = bytes.TrimSuffix(raw, []byte("\r"))
		if len(raw) == 0 {
			continue
		}
		line := i + 1

		if header == nil {
			cells, err := parseLine(raw)
			if err != nil {
				return nil, nil, fmt.Errorf("parse header on line %d: %w", line, err)
			}
			header = cells
			continue
		}

		cells, err := parseLine(raw)
		if err != nil {
			outcomes = append(outcomes, Outcome[T]{Line: line, Err: err})
			continue
		}

		row, err := buildRow(header, cells)
		outcome := Outcome[T]{Line: line, Row: row, Err: err}
		if err == nil {
			outcome.Value, outcome.Err = codec.FromRow(row)
		}
		outcomes = append(outcomes, outcome)
	}

	if header == nil {
		return nil, nil, ErrNoHeader
	}
	return header, outcomes, nil
}

// parseLine splits one line into cells.
func parseLine(raw []byte) ([]string, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1

	cells, err := r.Read()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			err = perr.Err
		}
		return nil, fmt.Errorf("%w: %v: %q", ErrMalformedRow, err, raw)
	}
	return cells, nil
}

// buildRow pairs cells with header names. Short rows omit the trailing
// columns so that missing fields surface in the codec.
func buildRow(header, cells []string) (Row, error) {
	n := min(len(header), len(cells))
	row := make(Row, n)
	for i := 0; i < n; i++ {
		row[i] = Field{Name: header[i], Value: cells[i]}
	}
	if len(cells) > len(header) {
		return row, fmt.Errorf("%w: got %d, header has %d", ErrExtraFields, len(cells), len(header))
	}
	return row, nil
}

// Collect returns the values of successful outcomes in order and calls
// onFailure for every failed one.
func Collect[T any](outcomes []Outcome[T], onFailure func(Outcome[T])) []T {
	values := make([]T, 0, len(outcomes))
	for _, o := range outcomes {
		if !o.OK() {
			if onFailure != nil {
				onFailure(o)
			}
			continue
		}
		values = append(values, o.Value)
	}
	return values
}

// EncodeRows serializes rows as CSV with a header row. Columns are the
// union of field names in order of first appearance; header is used when
// rows is empty. Cells for columns a row lacks are left empty.
func EncodeRows(rows []Row, header []string) ([]byte, error) {
	columns := unionColumns(rows)
	if len(columns) == 0 {
		columns = header
	}

	var buf bytes.Buffer
	if len(columns) == 0 {
		return buf.Bytes(), nil
	}

	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("encode header: %w", err)
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for i, name := range columns {
			record[i], _ = row.Get(name)
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("encode row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encode rows: %w", err)
	}
	return buf.Bytes(), nil
}

func unionColumns(rows []Row) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, row := range rows {
		for _, f := range row {
			if !seen[f.Name] {
				seen[f.Name] = true
				columns = append(columns, f.Name)
			}
		}
	}
	return columns
}
