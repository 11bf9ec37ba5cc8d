package prefutil

import "errors"

// ErrEmptyMatrix is returned when a utility matrix has no rows or columns.
var ErrEmptyMatrix = errors.New("prefutil: utility matrix must have at least one row and column")
