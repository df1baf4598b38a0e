package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ingest-cli/internal/frontmatter"
	"github.com/custodia-labs/ingest-cli/internal/logger"
)

// Ensure NormaliseService implements the interface.
var _ driving.NormaliseService = (*NormaliseService)(nil)

// NormaliseService converts raw payloads into canonical markdown documents.
type NormaliseService struct {
	normalisers []driven.Normaliser
	publisher   driven.Publisher
	baseURL     string
	now         func() time.Time
}

// NewNormaliseService creates a normalise service. Normalisers are tried in
// descending priority; the first match handles the payload. baseURL, when
// set, derives the markdown_url published with idea.preprocessed.
func NewNormaliseService(normalisers []driven.Normaliser, publisher driven.Publisher, baseURL string) *NormaliseService {
	sorted := make([]driven.Normaliser, len(normalisers))
	copy(sorted, normalisers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})

	return &NormaliseService{
		normalisers: sorted,
		publisher:   publisher,
		baseURL:     baseURL,
		now:         time.Now,
	}
}

// Normalise validates the request, converts the payload to a markdown body
// and prepends the front-matter block. The idea.preprocessed event is
// published best-effort; a publish failure never fails the call.
func (s *NormaliseService) Normalise(ctx context.Context, req domain.NormaliseRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	body := req.Payload
	for _, n := range s.normalisers {
		if !n.Matches(req.Payload) {
			continue
		}
		logger.Debug("normalising idea %s with %s", req.IdeaID, n.Name())
		converted, err := n.Normalise(ctx, req.Payload)
		if err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrNormalisation, err)
		}
		body = converted
		break
	}

	meta := domain.DocumentMeta{
		IdeaID:    req.IdeaID,
		Source:    req.Source,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}
	markdown, err := frontmatter.Prepend(meta, body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrNormalisation, err)
	}

	publish(ctx, s.publisher, domain.NewPreprocessedEvent(req.IdeaID, s.markdownURL(req.IdeaID)))
	return markdown, nil
}

// markdownURL derives the location downstream consumers can fetch the
// document from. Empty when no base URL is configured.
func (s *NormaliseService) markdownURL(ideaID string) string {
	if s.baseURL == "" {
		return ""
	}
	return strings.TrimSuffix(s.baseURL, "/") + "/" + ideaID + ".md"
}
