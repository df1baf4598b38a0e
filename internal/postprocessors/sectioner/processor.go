// Package sectioner splits a markdown body along heading boundaries.
// Headings are the strongest available signal of semantic boundaries;
// splitting here avoids fragmenting a paragraph's unit of meaning.
package sectioner

import (
	"context"
	"regexp"
	"strings"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
)

// Ensure Processor implements the interface.
var _ driven.PostProcessor = (*Processor)(nil)

// headingLine matches a section boundary: two or more # characters followed
// by whitespace and text, anchored at line start. A single # is a document
// title and stays with its body.
var headingLine = regexp.MustCompile(`^#{2,}\s+\S`)

// Processor splits document bodies into heading-delimited sections.
type Processor struct{}

// New creates a sectioner.
func New() *Processor {
	return &Processor{}
}

// Name returns the stage name.
func (p *Processor) Name() string {
	return "sectioner"
}

// Process ignores incoming chunks and creates one chunk per section: a
// heading plus its body up to the next heading. A body without headings
// becomes a single section, and text before the first heading is kept as
// its own section so no character range is dropped.
func (p *Processor) Process(_ context.Context, doc *domain.NormalisedDocument, _ []domain.Chunk) ([]domain.Chunk, error) {
	body := doc.Body
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}

	lines := strings.Split(body, "\n")
	var boundaries []int
	for i, line := range lines {
		if headingLine.MatchString(line) {
			boundaries = append(boundaries, i)
		}
	}

	if len(boundaries) == 0 {
		return []domain.Chunk{{Text: strings.TrimRight(body, " \t\n")}}, nil
	}

	var chunks []domain.Chunk
	appendSection := func(from, to int) {
		// Trailing blank lines belong to the boundary, not the section:
		// keeping them would make otherwise identical sections hash apart.
		section := strings.TrimRight(strings.Join(lines[from:to], "\n"), " \t\n")
		if section == "" {
			return
		}
		chunks = append(chunks, domain.Chunk{Text: section})
	}

	if boundaries[0] > 0 {
		appendSection(0, boundaries[0])
	}
	for i, start := range boundaries {
		end := len(lines)
		if i+1 < len(boundaries) {
			end = boundaries[i+1]
		}
		appendSection(start, end)
	}

	return chunks, nil
}
