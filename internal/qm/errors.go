package qm

import "github.com/pkg/errors"

var (
	// ErrInvalidInput is returned for empty, negative or oversized minterm
	// collections. No partial computation is attempted.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsolvableCover is returned when the selector runs out of prime
	// implicants before every minterm is covered.
	ErrUnsolvableCover = errors.New("no valid implicant cover")
)
