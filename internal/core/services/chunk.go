package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ingest-cli/internal/frontmatter"
	"github.com/custodia-labs/ingest-cli/internal/logger"
)

// Ensure ChunkService implements the interface.
var _ driving.ChunkService = (*ChunkService)(nil)

// ChunkService splits normalised markdown into retrieval-sized chunks by
// running the post-processing pipeline and assembling the results.
type ChunkService struct {
	pipeline  driven.PostProcessorPipeline
	publisher driven.Publisher
	now       func() time.Time
}

// NewChunkService creates a chunk service around a post-processing pipeline.
func NewChunkService(pipeline driven.PostProcessorPipeline, publisher driven.Publisher) *ChunkService {
	return &ChunkService{
		pipeline:  pipeline,
		publisher: publisher,
		now:       time.Now,
	}
}

// Chunk validates the request, strips front-matter and runs the pipeline.
// Chunk identity and ordering are assigned here: IDs are {idea_id}_{order}
// with order following document position. The idea.chunked event is
// published best-effort.
func (s *ChunkService) Chunk(ctx context.Context, req domain.ChunkRequest) ([]domain.Chunk, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doc := &domain.NormalisedDocument{
		IdeaID: req.IdeaID,
		Body:   frontmatter.Strip(req.Markdown),
	}

	chunks, err := s.pipeline.Process(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrChunking, err)
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoContent, req.IdeaID)
	}

	createdAt := s.now().UTC()
	ids := make([]string, len(chunks))
	for i := range chunks {
		chunks[i].ID = fmt.Sprintf("%s_%d", req.IdeaID, i)
		chunks[i].IdeaID = req.IdeaID
		chunks[i].Order = i
		chunks[i].TokenCount = len(strings.Fields(chunks[i].Text))
		chunks[i].CreatedAt = createdAt
		ids[i] = chunks[i].ID
	}
	logger.Debug("chunked idea %s into %d chunks", req.IdeaID, len(chunks))

	publish(ctx, s.publisher, domain.NewChunkedEvent(req.IdeaID, ids))
	return chunks, nil
}
