// Package packer greedily packs paragraphs into size-bounded candidates.
package packer

import (
	"context"
	"strings"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
)

// DefaultMaxChars is the default maximum candidate size in characters.
const DefaultMaxChars = 4000

// separator joins paragraphs packed into the same candidate.
const separator = "\n\n"

// Ensure Processor implements the interface.
var _ driven.PostProcessor = (*Processor)(nil)

// Processor packs section paragraphs into candidates of bounded size.
type Processor struct {
	maxChars int
}

// Option configures the packer.
type Option func(*Processor)

// WithMaxChars sets the candidate size bound in characters.
func WithMaxChars(size int) Option {
	return func(p *Processor) {
		if size > 0 {
			p.maxChars = size
		}
	}
}

// New creates a packer with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{maxChars: DefaultMaxChars}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the stage name.
func (p *Processor) Name() string {
	return "packer"
}

// Process repacks each section into candidates of at most maxChars.
// Sections that already fit pass through as-is. A single paragraph longer
// than maxChars is not split here; the overlap stage handles it.
func (p *Processor) Process(_ context.Context, _ *domain.NormalisedDocument, chunks []domain.Chunk) ([]domain.Chunk, error) {
	var packed []domain.Chunk
	for _, chunk := range chunks {
		if len(chunk.Text) <= p.maxChars {
			packed = append(packed, chunk)
			continue
		}
		for _, text := range p.pack(chunk.Text) {
			packed = append(packed, domain.Chunk{Text: text})
		}
	}
	return packed, nil
}

// pack splits a section on blank-line paragraph boundaries and accumulates
// paragraphs while the buffer stays within maxChars. When the next
// paragraph would overflow, the buffer is flushed and restarted with it.
func (p *Processor) pack(section string) []string {
	paragraphs := SplitParagraphs(section)

	var out []string
	var buf strings.Builder
	for _, para := range paragraphs {
		if buf.Len() > 0 && buf.Len()+len(separator)+len(para) > p.maxChars {
			out = append(out, buf.String())
			buf.Reset()
		}
		if buf.Len() > 0 {
			buf.WriteString(separator)
		}
		buf.WriteString(para)
	}
	if buf.Len() > 0 {
		out = append(out, buf.String())
	}
	return out
}

// SplitParagraphs splits text on blank lines, dropping empty paragraphs.
func SplitParagraphs(text string) []string {
	parts := strings.Split(text, "\n\n")
	var result []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}
