package filestore

import "errors"

var (
	// ErrNoHeader is returned by ParseRows when the input has no header row.
	ErrNoHeader = errors.New("filestore: no header row")

	// ErrExtraFields marks a row that has more cells than the header has columns.
	ErrExtraFields = errors.New("filestore: row has more fields than the header")

	// ErrMalformedRow marks a line that is not valid CSV, such as one with an
	// unbalanced quote.
	ErrMalformedRow = errors.New("filestore: malformed row")
)
