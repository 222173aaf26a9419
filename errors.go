package algocomplex

import "errors"

// Sentinel errors returned by the slice helpers. The scalar operations on
// Complex never fail; exceptional results propagate as NaN or ±Inf.
var (
	// ErrNilSlice is returned when a nil slice is passed to a batch helper.
	ErrNilSlice = errors.New("algocomplex: nil slice")

	// ErrLengthMismatch is returned when the destination and source slices
	// of a batch helper have different lengths.
	ErrLengthMismatch = errors.New("algocomplex: slice length mismatch")

	// ErrInvalidWorkers is returned when ParallelMap is given a negative
	// worker count.
	ErrInvalidWorkers = errors.New("algocomplex: invalid worker count")
)
