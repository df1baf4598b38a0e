package html

import (
	"context"
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// markers are the substrings that identify a payload as HTML.
var markers = []string{"<html", "<div", "<p"}

// Normaliser handles HTML payloads.
type Normaliser struct{}

// New creates a new HTML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name returns the normaliser name.
func (n *Normaliser) Name() string {
	return "html"
}

// Matches reports whether the payload looks like HTML. This is a
// case-insensitive substring scan for common tags, not a parse.
func (n *Normaliser) Matches(payload string) bool {
	lower := strings.ToLower(payload)
	for _, marker := range markers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Format-specific, higher than plaintext
}

// Normalise converts the HTML payload into markdown. Headings, lists,
// emphasis and links survive as their markdown equivalents.
func (n *Normaliser) Normalise(_ context.Context, payload string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(payload)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}
