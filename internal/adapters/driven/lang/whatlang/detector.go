// Package whatlang detects chunk language with the whatlanggo trigram model.
package whatlang

import (
	"github.com/abadojack/whatlanggo"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
)

// Ensure Detector implements the interface.
var _ driven.LanguageDetector = (*Detector)(nil)

// Detector tags text with an ISO 639-1 language code. Detection is
// statistical; unreliable results are reported as unknown rather than
// guessed.
type Detector struct{}

// New creates a language detector.
func New() *Detector {
	return &Detector{}
}

// Detect returns the ISO 639-1 code of text's language, or "unknown" when
// the model is not confident.
func (d *Detector) Detect(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return domain.LangUnknown
	}

	if code := info.Lang.Iso6391(); code != "" {
		return code
	}
	// Some languages have no two-letter code; fall back to the full name.
	if name := whatlanggo.LangToString(info.Lang); name != "" {
		return name
	}
	return domain.LangUnknown
}
