// Package langtag tags each chunk with its detected language.
package langtag

import (
	"context"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
)

// Ensure Processor implements the interface.
var _ driven.PostProcessor = (*Processor)(nil)

// Processor tags chunks with a language code via the injected detector.
type Processor struct {
	detector driven.LanguageDetector
}

// New creates a language tagger.
func New(detector driven.LanguageDetector) *Processor {
	return &Processor{detector: detector}
}

// Name returns the stage name.
func (p *Processor) Name() string {
	return "langtag"
}

// Process tags every chunk independently; a document may legitimately
// contain chunks of differing languages. Detector failure tags the chunk
// "unknown" rather than failing the call.
func (p *Processor) Process(_ context.Context, _ *domain.NormalisedDocument, chunks []domain.Chunk) ([]domain.Chunk, error) {
	for i := range chunks {
		chunks[i].Lang = p.detect(chunks[i].Text)
	}
	return chunks, nil
}

func (p *Processor) detect(text string) string {
	if p.detector == nil {
		return domain.LangUnknown
	}
	if lang := p.detector.Detect(text); lang != "" {
		return lang
	}
	return domain.LangUnknown
}
