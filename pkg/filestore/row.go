package filestore

import "strings"

// Field is one named cell of a Row.
type Field struct {
	Name  string
	Value string
}

// Row is one data line keyed by column name, in column order.
type Row []Field

// Get returns the value of the first field with the given name.
func (r Row) Get(name string) (string, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// String renders the row as name=value pairs for diagnostics.
func (r Row) String() string {
	parts := make([]string, len(r))
	for i, f := range r {
		parts[i] = f.Name + "=" + f.Value
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Codec converts between records and rows.
type Codec[T any] interface {
	// FromRow builds a record from a parsed row. It fails when a required
	// field is missing or a value cannot be parsed.
	FromRow(row Row) (T, error)

	// ToRow returns the row representation of a record. It never fails.
	ToRow(record T) Row

	// Header returns the columns written for an empty record list.
	Header() []string
}
