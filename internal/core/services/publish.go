package services

import (
	"context"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ingest-cli/internal/logger"
)

// publish delivers an event best-effort. Failures are logged and swallowed:
// pipeline correctness never depends on notification delivery, and no step
// retries itself.
func publish(ctx context.Context, p driven.Publisher, event domain.Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, event); err != nil {
		logger.Error("publishing %s: %v", event.Action, err)
	}
}
