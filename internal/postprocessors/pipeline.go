// Package postprocessors provides the chunking pipeline implementation.
// A pipeline chains named stages (sectioner, packer, overlap, dedupe,
// langtag) that turn a normalised document body into chunk candidates.
package postprocessors

import (
	"context"
	"fmt"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
)

// Pipeline chains multiple PostProcessors and runs them in order.
// It implements the PostProcessorPipeline interface.
type Pipeline struct {
	processors []driven.PostProcessor
}

// Ensure Pipeline implements the interface.
var _ driven.PostProcessorPipeline = (*Pipeline)(nil)

// NewPipeline creates a new processing pipeline with the given stages.
// Stages are executed in the order provided.
func NewPipeline(processors ...driven.PostProcessor) *Pipeline {
	return &Pipeline{
		processors: processors,
	}
}

// Process runs the document through all stages in order.
// The first stage receives nil chunks and should create them from the
// document body; subsequent stages receive and transform the chunks.
func (p *Pipeline) Process(ctx context.Context, doc *domain.NormalisedDocument) ([]domain.Chunk, error) {
	if doc == nil {
		return nil, fmt.Errorf("document is nil")
	}

	var chunks []domain.Chunk

	for _, processor := range p.processors {
		var err error
		chunks, err = processor.Process(ctx, doc, chunks)
		if err != nil {
			return nil, fmt.Errorf("stage %s: %w", processor.Name(), err)
		}
	}

	return chunks, nil
}

// Add appends a stage to the pipeline.
func (p *Pipeline) Add(processor driven.PostProcessor) {
	p.processors = append(p.processors, processor)
}

// Len returns the number of stages in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.processors)
}
