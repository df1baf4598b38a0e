// Package webhook delivers pipeline events as JSON POSTs to a configured
// endpoint. Delivery is at-most-once: the caller decides what to do with a
// failure, and nothing here retries.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
)

// Ensure Publisher implements the interface.
var _ driven.Publisher = (*Publisher)(nil)

// Config holds webhook delivery settings.
type Config struct {
	// URL is the endpoint events are POSTed to.
	URL string

	// Timeout bounds a single delivery attempt. Default: 10s.
	Timeout time.Duration

	// RequestsPerSecond throttles outgoing deliveries. Default: 5.
	RequestsPerSecond float64

	// BurstSize is the rate limiter burst. Default: 10.
	BurstSize int
}

// Publisher POSTs events to a webhook endpoint, rate limited so a burst of
// pipeline runs cannot flood the receiver.
type Publisher struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
}

// New creates a webhook publisher from config, applying defaults for unset
// fields.
func New(cfg Config) *Publisher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 5.0
	}
	if cfg.BurstSize <= 0 {
		cfg.BurstSize = 10
	}

	return &Publisher{
		url:     cfg.URL,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// Publish POSTs the event as JSON. Each delivery carries a unique
// X-Delivery-ID header so receivers can deduplicate.
func (p *Publisher) Publish(ctx context.Context, event domain.Event) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for rate limiter: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Delivery-ID", uuid.New().String())

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("delivering %s: %w", event.Action, err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("delivering %s: unexpected status %d", event.Action, resp.StatusCode)
	}
	return nil
}
