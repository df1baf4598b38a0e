package plaintext

import (
	"context"

	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text payloads. Plain text is already valid
// markdown, so it passes through unchanged.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name returns the normaliser name.
func (n *Normaliser) Name() string {
	return "plaintext"
}

// Matches always returns true; plaintext is the fallback format.
func (n *Normaliser) Matches(_ string) bool {
	return true
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 5 // Fallback normaliser
}

// Normalise passes the payload through unchanged.
func (n *Normaliser) Normalise(_ context.Context, payload string) (string, error) {
	return payload, nil
}
