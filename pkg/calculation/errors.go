package calculation

import "errors"

var (
	// ErrUnknownOperation is returned for an operation name that is not supported.
	ErrUnknownOperation = errors.New("calculation: unknown operation")

	// ErrDivisionByZero is returned when dividing by zero.
	ErrDivisionByZero = errors.New("calculation: division by zero")

	// ErrOverflow is returned when a result is not a finite number.
	ErrOverflow = errors.New("calculation: result overflows")

	// ErrMissingField is returned by FromRow when a required column is absent or blank.
	ErrMissingField = errors.New("calculation: missing field")

	// ErrInvalidNumber is returned by FromRow when a numeric column cannot be parsed.
	ErrInvalidNumber = errors.New("calculation: invalid number")
)
