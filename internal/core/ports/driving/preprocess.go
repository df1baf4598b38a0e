package driving

import (
	"context"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
)

// NormaliseService converts raw payloads into canonical markdown documents
// with a front-matter block.
type NormaliseService interface {
	Normalise(ctx context.Context, req domain.NormaliseRequest) (string, error)
}

// ChunkService splits canonical markdown into bounded, deduplicated,
// language-tagged chunks.
type ChunkService interface {
	Chunk(ctx context.Context, req domain.ChunkRequest) ([]domain.Chunk, error)
}
