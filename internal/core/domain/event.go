package domain

// Actions published to the notification channel.
const (
	// ActionIdeaPreprocessed announces a normalised markdown document.
	ActionIdeaPreprocessed = "idea.preprocessed"

	// ActionIdeaChunked announces a completed chunk batch.
	ActionIdeaChunked = "idea.chunked"
)

// Event is the fire-and-forget notification payload. Delivery is
// at-most-once with no acknowledgement wait and no retry; message loss is
// tolerated by design.
type Event struct {
	Action string         `json:"action"`
	Data   map[string]any `json:"data"`
}

// NewPreprocessedEvent builds the idea.preprocessed event. markdownURL may
// be empty when no document store is configured.
func NewPreprocessedEvent(ideaID, markdownURL string) Event {
	return Event{
		Action: ActionIdeaPreprocessed,
		Data: map[string]any{
			"idea_id":      ideaID,
			"markdown_url": markdownURL,
		},
	}
}

// NewChunkedEvent builds the idea.chunked event carrying the IDs of the
// produced chunks in order.
func NewChunkedEvent(ideaID string, chunkIDs []string) Event {
	return Event{
		Action: ActionIdeaChunked,
		Data: map[string]any{
			"idea_id": ideaID,
			"chunks":  chunkIDs,
		},
	}
}
