package domain

import "time"

// LangUnknown is the language tag for chunks whose language could not be
// detected reliably.
const LangUnknown = "unknown"

// Chunk is a bounded-size segment of normalised text, intended as one LLM
// context unit. A chunking call returns an ordered batch of Chunks; they
// are immutable once produced.
type Chunk struct {
	// ID is "{idea_id}_{order}".
	ID string `json:"chunk_id"`

	// IdeaID links the chunk to its idea.
	IdeaID string `json:"idea_id"`

	// Order is the zero-based, contiguous index within the final
	// deduplicated batch.
	Order int `json:"order"`

	// Text is the chunk content, at most the configured maximum size.
	Text string `json:"text"`

	// TokenCount is the whitespace-delimited word count of Text. An
	// approximate proxy, not a tokenizer contract.
	TokenCount int `json:"token_count"`

	// Lang is the detected ISO language code, or "unknown".
	Lang string `json:"lang"`

	// Hash is the hex content digest of Text, unique within one batch.
	Hash string `json:"hash"`

	// CreatedAt is the assembly timestamp (UTC).
	CreatedAt time.Time `json:"created_at"`
}
