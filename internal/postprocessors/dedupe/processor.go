// Package dedupe drops duplicate and blank candidates by content digest.
package dedupe

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
)

// Ensure Processor implements the interface.
var _ driven.PostProcessor = (*Processor)(nil)

// Processor removes exact duplicates, keeping the first occurrence.
type Processor struct{}

// New creates a deduper.
func New() *Processor {
	return &Processor{}
}

// Name returns the stage name.
func (p *Processor) Name() string {
	return "dedupe"
}

// Process drops whitespace-only candidates, then keeps the first occurrence
// of each distinct digest. Survivors keep their relative order and carry
// their digest in Hash, so digests are unique within one batch.
func (p *Processor) Process(_ context.Context, _ *domain.NormalisedDocument, chunks []domain.Chunk) ([]domain.Chunk, error) {
	seen := make(map[string]struct{}, len(chunks))

	var out []domain.Chunk
	for _, chunk := range chunks {
		if strings.TrimSpace(chunk.Text) == "" {
			continue
		}

		digest := Fingerprint(chunk.Text)
		if _, dup := seen[digest]; dup {
			continue
		}
		seen[digest] = struct{}{}

		chunk.Hash = digest
		out = append(out, chunk)
	}
	return out, nil
}

// Fingerprint returns the hex SHA-1 digest of the chunk text.
func Fingerprint(text string) string {
	sum := sha1.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}
