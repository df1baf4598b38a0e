package driven

import (
	"context"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
)

// Publisher delivers pipeline events to the notification channel.
//
// Delivery is best-effort and at-most-once: implementations must not retry,
// and callers log and swallow returned errors. Pipeline correctness never
// depends on delivery.
type Publisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
