package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyData is returned when an operation receives zero rows.
	ErrEmptyData = errors.New("empty data provided")

	// ErrSingularMatrix is returned when Gaussian elimination cannot find
	// a usable pivot. We never fall back to a pseudo-inverse; the caller
	// has to decide what a rank-deficient system means for it.
	ErrSingularMatrix = errors.New("matrix is singular or nearly singular")
)

type DimensionMismatchError struct {
	Expected int
	Actual   int
	Context  string
}

func (e DimensionMismatchError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("dimension mismatch for %s: expected %d, got %d", e.Context, e.Expected, e.Actual)
	}
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

type InvalidConfigurationError struct {
	Message string
}

func (e InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}
