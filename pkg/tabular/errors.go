package tabular

import "errors"

// Errors returned by table operations. Callers match them with errors.Is.
var (
	// ErrTypeMismatch is returned when an operation needs a text or numeric
	// column and gets the other.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrNotFound is returned when a referenced column is absent.
	ErrNotFound = errors.New("column not found")

	// ErrLengthMismatch is returned when a column's length differs from the
	// table's row count.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrConversion is returned when a value cannot be cast to a number.
	ErrConversion = errors.New("conversion error")

	// ErrIO is returned when loading or saving a table fails.
	ErrIO = errors.New("io error")

	// ErrUnknownStrategy is returned for an unrecognized missing-value strategy.
	ErrUnknownStrategy = errors.New("unknown strategy")
)
