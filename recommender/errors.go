package recommender

import "errors"

var (
	// ErrInvalidInput marks requests whose shape or values cannot be ranked.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks a lookup of a job id that is not part of the pool.
	ErrNotFound = errors.New("not found")
)
