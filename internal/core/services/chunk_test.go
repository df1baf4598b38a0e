package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
	"github.com/custodia-labs/ingest-cli/internal/postprocessors"
)

type stubDetector struct{}

func (stubDetector) Detect(_ string) string { return "en" }

func defaultPipeline(t *testing.T) *postprocessors.Pipeline {
	t.Helper()
	r := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(r, stubDetector{})
	p, err := postprocessors.NewDefaultPipeline(r, nil)
	if err != nil {
		t.Fatalf("building pipeline: %v", err)
	}
	return p
}

func TestChunkService_SingleShortDocument(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewChunkService(defaultPipeline(t), pub)
	svc.now = fixedClock

	chunks, err := svc.Chunk(context.Background(), domain.ChunkRequest{
		IdeaID:   "idea-123",
		Markdown: "---\nidea_id: idea-123\nsource: email\ncreated_at: \"2026-08-23T10:00:00Z\"\n---\n\nShort note.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}

	c := chunks[0]
	if c.ID != "idea-123_0" {
		t.Errorf("unexpected chunk id %q", c.ID)
	}
	if c.Order != 0 {
		t.Errorf("unexpected order %d", c.Order)
	}
	if c.Text != "Short note." {
		t.Errorf("front-matter must be stripped, got %q", c.Text)
	}
	if c.TokenCount != 2 {
		t.Errorf("expected token count 2, got %d", c.TokenCount)
	}
	if c.Lang != "en" {
		t.Errorf("expected lang tag, got %q", c.Lang)
	}
	if c.Hash == "" {
		t.Error("expected a content hash")
	}
	if !c.CreatedAt.Equal(fixedClock()) {
		t.Errorf("unexpected created_at %v", c.CreatedAt)
	}
}

func TestChunkService_SplitsOnSections(t *testing.T) {
	svc := NewChunkService(defaultPipeline(t), nil)
	svc.now = fixedClock

	chunks, err := svc.Chunk(context.Background(), domain.ChunkRequest{
		IdeaID:   "idea-1",
		Markdown: "## First\n\nOne body.\n\n## Second\n\nAnother body.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if c.Order != i {
			t.Errorf("chunk %d has order %d", i, c.Order)
		}
		if want := "idea-1_" + string(rune('0'+i)); c.ID != want {
			t.Errorf("chunk %d has id %q, want %q", i, c.ID, want)
		}
	}
	if !strings.Contains(chunks[0].Text, "First") || !strings.Contains(chunks[1].Text, "Second") {
		t.Errorf("section order not preserved: %q / %q", chunks[0].Text, chunks[1].Text)
	}
}

func TestChunkService_DuplicateSectionsCollapse(t *testing.T) {
	svc := NewChunkService(defaultPipeline(t), nil)
	svc.now = fixedClock

	chunks, err := svc.Chunk(context.Background(), domain.ChunkRequest{
		IdeaID:   "idea-1",
		Markdown: "## Same\n\nbody\n\n## Same\n\nbody",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected duplicates to collapse to 1 chunk, got %d", len(chunks))
	}
}

func TestChunkService_NoContent(t *testing.T) {
	svc := NewChunkService(defaultPipeline(t), nil)

	_, err := svc.Chunk(context.Background(), domain.ChunkRequest{
		IdeaID:   "idea-1",
		Markdown: "   \n\n\t\n",
	})
	if !errors.Is(err, domain.ErrNoContent) {
		t.Errorf("expected ErrNoContent, got %v", err)
	}
}

func TestChunkService_Validation(t *testing.T) {
	svc := NewChunkService(defaultPipeline(t), nil)

	tests := []struct {
		name string
		req  domain.ChunkRequest
	}{
		{"missing idea id", domain.ChunkRequest{Markdown: "x"}},
		{"empty markdown", domain.ChunkRequest{IdeaID: "i"}},
		{"oversized markdown", domain.ChunkRequest{IdeaID: "i", Markdown: strings.Repeat("a", domain.MaxPayloadBytes+1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Chunk(context.Background(), tt.req); !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestChunkService_PublishesChunkedEvent(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewChunkService(defaultPipeline(t), pub)
	svc.now = fixedClock

	if _, err := svc.Chunk(context.Background(), domain.ChunkRequest{
		IdeaID:   "idea-7",
		Markdown: "## A\n\nalpha\n\n## B\n\nbeta",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events := pub.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Action != domain.ActionIdeaChunked {
		t.Errorf("expected %s, got %s", domain.ActionIdeaChunked, events[0].Action)
	}
	ids, ok := events[0].Data["chunks"].([]string)
	if !ok || len(ids) != 2 || ids[0] != "idea-7_0" || ids[1] != "idea-7_1" {
		t.Errorf("unexpected chunk ids in event: %v", events[0].Data["chunks"])
	}
}

func TestChunkService_PublishFailureIsSwallowed(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := NewChunkService(defaultPipeline(t), pub)
	svc.now = fixedClock

	chunks, err := svc.Chunk(context.Background(), domain.ChunkRequest{
		IdeaID:   "idea-1",
		Markdown: "still works",
	})
	if err != nil {
		t.Fatalf("publish failure must not fail the call: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
}
