// Package memory provides an in-process event publisher. It is the default
// when no webhook is configured, and doubles as a test double.
package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
)

// Ensure Publisher implements the interface.
var _ driven.Publisher = (*Publisher)(nil)

// Publisher records events in memory. Safe for concurrent use.
type Publisher struct {
	mu     sync.Mutex
	events []domain.Event
	err    error
}

// New creates an in-memory publisher.
func New() *Publisher {
	return &Publisher{}
}

// Publish appends the event, or returns the injected error.
func (p *Publisher) Publish(_ context.Context, event domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

// Events returns a copy of everything published so far.
func (p *Publisher) Events() []domain.Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]domain.Event, len(p.events))
	copy(out, p.events)
	return out
}

// SetError makes subsequent Publish calls fail with err. Pass nil to clear.
func (p *Publisher) SetError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}
