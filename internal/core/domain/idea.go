package domain

import (
	"fmt"
	"unicode/utf8"
)

// MaxPayloadBytes is the hard ceiling on input size for both operations.
// Oversized input is rejected, never truncated, so per-call memory and
// latency stay predictable.
const MaxPayloadBytes = 1 << 20

// NormaliseRequest asks for a raw payload to be converted into the
// canonical markdown form.
type NormaliseRequest struct {
	// IdeaID identifies the idea this payload belongs to.
	IdeaID string

	// Source names the payload's origin (email, web, upload, ...).
	Source string

	// Payload is the raw content to normalise. May be plain text or HTML.
	Payload string
}

// Validate checks the request against input invariants.
func (r NormaliseRequest) Validate() error {
	if r.IdeaID == "" {
		return fmt.Errorf("%w: idea_id is required", ErrInvalidInput)
	}
	return validateText(r.Payload, "payload")
}

// ChunkRequest asks for a normalised markdown document to be split into
// chunks.
type ChunkRequest struct {
	// IdeaID identifies the idea the markdown belongs to.
	IdeaID string

	// Markdown is the canonical document, typically with a leading
	// front-matter block.
	Markdown string
}

// Validate checks the request against input invariants.
func (r ChunkRequest) Validate() error {
	if r.IdeaID == "" {
		return fmt.Errorf("%w: idea_id is required", ErrInvalidInput)
	}
	return validateText(r.Markdown, "markdown")
}

// DocumentMeta is the front-matter prepended to every normalised document.
// Field order matches the serialised block.
type DocumentMeta struct {
	IdeaID    string `yaml:"idea_id"`
	Source    string `yaml:"source"`
	CreatedAt string `yaml:"created_at"`
}

// NormalisedDocument is the canonical markdown form handed to the chunking
// pipeline. Body has the front-matter already stripped. It is created once
// per call and never mutated.
type NormalisedDocument struct {
	IdeaID string
	Body   string
}

func validateText(s, field string) error {
	if s == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidInput, field)
	}
	if len(s) > MaxPayloadBytes {
		return fmt.Errorf("%w: %s exceeds %d bytes", ErrInvalidInput, field, MaxPayloadBytes)
	}
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %s is not valid UTF-8", ErrInvalidInput, field)
	}
	return nil
}
