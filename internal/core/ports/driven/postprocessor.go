package driven

import (
	"context"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
)

// PostProcessor is one stage of the chunking pipeline. Stages are chained:
// the first stage receives nil chunks and creates them from the document
// body; subsequent stages receive and transform the chunks.
type PostProcessor interface {
	// Name returns the stage name for logging and configuration.
	Name() string

	// Process takes the document and the chunks so far and returns the
	// transformed chunks.
	Process(ctx context.Context, doc *domain.NormalisedDocument, chunks []domain.Chunk) ([]domain.Chunk, error)
}

// PostProcessorPipeline chains multiple PostProcessors.
type PostProcessorPipeline interface {
	// Process runs the document through all stages in order.
	Process(ctx context.Context, doc *domain.NormalisedDocument) ([]domain.Chunk, error)
}
