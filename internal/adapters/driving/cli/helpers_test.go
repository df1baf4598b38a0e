package cli

import (
	"github.com/custodia-labs/ingest-cli/internal/adapters/driven/events/memory"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ingest-cli/internal/core/services"
	"github.com/custodia-labs/ingest-cli/internal/normalisers/html"
	"github.com/custodia-labs/ingest-cli/internal/normalisers/plaintext"
	"github.com/custodia-labs/ingest-cli/internal/postprocessors"
)

type englishDetector struct{}

func (englishDetector) Detect(_ string) string { return "en" }

// setupTestServices wires real services over an in-memory publisher and a
// fixed language detector. Returns the publisher for assertions and a
// cleanup that restores the previous services.
func setupTestServices() (*memory.Publisher, func()) {
	oldNormalise := normaliseService
	oldChunk := chunkService

	pub := memory.New()

	registry := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(registry, englishDetector{})
	pipeline, err := postprocessors.NewDefaultPipeline(registry, nil)
	if err != nil {
		panic(err)
	}

	normaliseService = services.NewNormaliseService(
		[]driven.Normaliser{html.New(), plaintext.New()},
		pub,
		"",
	)
	chunkService = services.NewChunkService(pipeline, pub)

	return pub, func() {
		normaliseService = oldNormalise
		chunkService = oldChunk
	}
}
