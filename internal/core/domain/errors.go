package domain

import "errors"

// Domain errors represent pipeline failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed, empty, or oversized input.
	// Always the caller's fault; never retried internally.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNormalisation indicates the payload could not be converted to
	// markdown. Re-running on identical input yields the same failure,
	// so it is surfaced rather than retried.
	ErrNormalisation = errors.New("normalisation failed")

	// ErrNoContent indicates chunking produced zero usable chunks.
	// Usually a sign of degenerate input (whitespace-only documents).
	ErrNoContent = errors.New("no content after chunking")

	// ErrChunking indicates an unexpected internal failure in the
	// chunking pipeline.
	ErrChunking = errors.New("chunking failed")
)
