// Package history keeps the calculator's history of calculations in a file.
package history

import (
	"fmt"

	"github.com/user/calchistory/pkg/calculation"
	"github.com/user/calchistory/pkg/ports"
)

// Store is the persistence used by Service.
// *filestore.Store[calculation.Calculation] satisfies it.
type Store interface {
	Read(path string) ([]calculation.Calculation, error)
	Write(path string, records []calculation.Calculation) error
	Delete(path string)
}

// Service reads and updates the history file at a fixed path.
// Each method re-reads the file; nothing is cached between calls.
type Service struct {
	store Store
	path  string
	log   ports.Logger
}

// New creates a Service for the history file at path.
func New(store Store, path string, log ports.Logger) *Service {
	return &Service{
		store: store,
		path:  path,
		log:   log.WithComponent("history"),
	}
}

// List returns the stored calculations, oldest first.
func (s *Service) List() ([]calculation.Calculation, error) {
	calcs, err := s.store.Read(s.path)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	s.log.Debug("Loaded %d calculations", len(calcs))
	return calcs, nil
}

// Add performs a calculation and appends it to the history.
//
// The file is rewritten from the rows that parsed, so rows that failed to
// parse (and were logged by List) are dropped from the file.
func (s *Service) Add(a, b float64, op calculation.Operation) (calculation.Calculation, error) {
	calc, err := calculation.New(a, b, op)
	if err != nil {
		return calculation.Calculation{}, err
	}

	calcs, err := s.List()
	if err != nil {
		return calculation.Calculation{}, err
	}

	if err := s.store.Write(s.path, append(calcs, calc)); err != nil {
		return calculation.Calculation{}, fmt.Errorf("save history: %w", err)
	}
	s.log.Info("Added %s", calc)
	return calc, nil
}

// Undo removes the most recent calculation. The boolean is false when the
// history was already empty, in which case the file is left untouched.
func (s *Service) Undo() (calculation.Calculation, bool, error) {
	calcs, err := s.List()
	if err != nil {
		return calculation.Calculation{}, false, err
	}
	if len(calcs) == 0 {
		s.log.Warn("History is empty, nothing to undo")
		return calculation.Calculation{}, false, nil
	}

	last := calcs[len(calcs)-1]
	if err := s.store.Write(s.path, calcs[:len(calcs)-1]); err != nil {
		return calculation.Calculation{}, false, fmt.Errorf("save history: %w", err)
	}
	s.log.Info("Removed %s", last)
	return last, true, nil
}

// Clear deletes the history file. Failures are logged, not returned.
func (s *Service) Clear() {
	s.log.Debug("Clearing history at '%s'", s.path)
	s.store.Delete(s.path)
}
