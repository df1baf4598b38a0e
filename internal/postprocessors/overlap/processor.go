// Package overlap splits oversized candidates with a sliding window.
// Adjacent windows share a fixed overlap so meaning is not lost across a
// hard boundary, and every character of an oversized candidate is covered
// by at least one chunk.
package overlap

import (
	"context"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
)

// DefaultMaxChars is the default window width in characters.
const DefaultMaxChars = 4000

// DefaultOverlap is the default number of characters shared by adjacent
// windows.
const DefaultOverlap = 400

// Ensure Processor implements the interface.
var _ driven.PostProcessor = (*Processor)(nil)

// Processor window-splits candidates that exceed the size bound.
type Processor struct {
	maxChars int
	overlap  int
}

// Option configures the overlap splitter.
type Option func(*Processor)

// WithMaxChars sets the window width in characters.
func WithMaxChars(size int) Option {
	return func(p *Processor) {
		if size > 0 {
			p.maxChars = size
		}
	}
}

// WithOverlap sets the overlap between adjacent windows in characters.
func WithOverlap(overlap int) Option {
	return func(p *Processor) {
		if overlap >= 0 {
			p.overlap = overlap
		}
	}
}

// New creates an overlap splitter with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{
		maxChars: DefaultMaxChars,
		overlap:  DefaultOverlap,
	}

	for _, opt := range opts {
		opt(p)
	}

	// The window must always advance.
	if p.overlap >= p.maxChars {
		p.overlap = p.maxChars / 10
	}

	return p
}

// Name returns the stage name.
func (p *Processor) Name() string {
	return "overlap"
}

// Process passes candidates within the bound through unchanged and splits
// the rest: a window maxChars wide slides in steps of maxChars-overlap
// until the candidate is exhausted. Windows slice runes, not bytes, so
// multi-byte text never splits mid-character.
func (p *Processor) Process(_ context.Context, _ *domain.NormalisedDocument, chunks []domain.Chunk) ([]domain.Chunk, error) {
	var out []domain.Chunk
	for _, chunk := range chunks {
		runes := []rune(chunk.Text)
		if len(runes) <= p.maxChars {
			out = append(out, chunk)
			continue
		}

		stride := p.maxChars - p.overlap
		for start := 0; start < len(runes); start += stride {
			end := start + p.maxChars
			if end > len(runes) {
				end = len(runes)
			}
			out = append(out, domain.Chunk{Text: string(runes[start:end])})
			if end >= len(runes) {
				break
			}
		}
	}
	return out, nil
}
