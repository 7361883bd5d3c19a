// Package filestore reads, writes and deletes record lists kept in a CSV
// file with a header row.
//
// A Store holds only its collaborators. Every call opens, uses and releases
// the file within the call, so a Store can be shared freely; concurrent
// calls on the same path are not coordinated.
package filestore

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/user/calchistory/pkg/ports"
)

// Store persists records of type T through a Codec.
type Store[T any] struct {
	fs    ports.FileSystem
	log   ports.Logger
	codec Codec[T]
}

// New creates a Store.
func New[T any](fsys ports.FileSystem, log ports.Logger, codec Codec[T]) *Store[T] {
	return &Store[T]{
		fs:    fsys,
		log:   log.WithComponent("filestore"),
		codec: codec,
	}
}

// Read loads the records stored at path, in file order.
//
// A missing file, an empty file and a header-only file all yield an empty
// slice and a warning. Rows that cannot be converted are logged and
// dropped. Other read or parse failures are returned.
func (s *Store[T]) Read(path string) ([]T, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("File '%s' not found.", path)
			return []T{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}

	_, outcomes, err := ParseRows(data, s.codec)
	if errors.Is(err, ErrNoHeader) {
		s.log.Warn("File '%s' is empty.", path)
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(outcomes) == 0 {
		s.log.Warn("File '%s' has no rows.", path)
		return []T{}, nil
	}

	records := Collect(outcomes, func(o Outcome[T]) {
		s.log.Error("Error parsing row %d %s: %v", o.Line, o.Row, o.Err)
	})
	s.log.Debug("Read %d of %d rows from '%s'", len(records), len(outcomes), path)
	return records, nil
}

// Write replaces the file at path with records. An empty list produces a
// header-only file. The write is not atomic; failures are returned.
func (s *Store[T]) Write(path string, records []T) error {
	rows := make([]Row, len(records))
	for i, record := range records {
		rows[i] = s.codec.ToRow(record)
	}

	data, err := EncodeRows(rows, s.codec.Header())
	if err != nil {
		return err
	}

	if err := s.fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	s.log.Debug("Wrote %d rows to '%s'", len(rows), path)
	return nil
}

// Delete removes the file at path. A missing file is logged as a warning
// and any other failure is logged as an error; neither is returned.
func (s *Store[T]) Delete(path string) {
	err := s.fs.Remove(path)
	switch {
	case err == nil:
		s.log.Info("File '%s' has been deleted.", path)
	case errors.Is(err, fs.ErrNotExist):
		s.log.Warn("File '%s' does not exist.", path)
	default:
		s.log.Error("Error deleting file '%s': %v", path, err)
	}
}
