package driven

import "context"

// Normaliser converts one payload format into a markdown body.
// Each normaliser recognises its own format with a cheap heuristic.
type Normaliser interface {
	// Name returns the normaliser name for logging.
	Name() string

	// Matches reports whether this normaliser handles the payload.
	Matches(payload string) bool

	// Priority returns the selection priority (higher = preferred).
	// Format-specific normalisers should return 50-89.
	// Fallback normalisers should return 1-9.
	Priority() int

	// Normalise converts the payload into a markdown body.
	Normalise(ctx context.Context, payload string) (string, error)
}
