// Package cli wires the ingest pipeline behind a cobra command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/ingest-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ingest-cli/internal/adapters/driven/events/memory"
	"github.com/custodia-labs/ingest-cli/internal/adapters/driven/events/webhook"
	"github.com/custodia-labs/ingest-cli/internal/adapters/driven/lang/whatlang"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ingest-cli/internal/core/services"
	"github.com/custodia-labs/ingest-cli/internal/logger"
	"github.com/custodia-labs/ingest-cli/internal/normalisers/html"
	"github.com/custodia-labs/ingest-cli/internal/normalisers/plaintext"
	"github.com/custodia-labs/ingest-cli/internal/postprocessors"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired by setup and consumed by the subcommands.
var (
	normaliseService driving.NormaliseService
	chunkService     driving.ChunkService
)

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Normalise and chunk idea content",
	Long: `ingest converts raw idea payloads (plain text or HTML) into canonical
markdown documents and splits them into retrieval-sized chunks.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.ingest/config.toml)")
}

// setup builds the service graph from configuration. It runs before every
// subcommand. Services that were injected ahead of time are kept.
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if normaliseService != nil && chunkService != nil {
		return nil
	}

	path := configPath
	if path == "" {
		var err error
		if path, err = configfile.DefaultPath(); err != nil {
			return err
		}
	}
	cfg, err := configfile.Load(path)
	if err != nil {
		return err
	}

	var publisher driven.Publisher
	if cfg.Publish.WebhookURL != "" {
		publisher = webhook.New(webhook.Config{URL: cfg.Publish.WebhookURL})
		logger.Debug("publishing events to %s", cfg.Publish.WebhookURL)
	} else {
		publisher = memory.New()
	}

	registry := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(registry, whatlang.New())
	pipeline, err := postprocessors.NewDefaultPipeline(registry, map[string]any{
		"max_chars":     cfg.Chunker.MaxChars,
		"overlap_chars": cfg.Chunker.OverlapChars,
	})
	if err != nil {
		return fmt.Errorf("building pipeline: %w", err)
	}

	normaliseService = services.NewNormaliseService(
		[]driven.Normaliser{html.New(), plaintext.New()},
		publisher,
		cfg.Publish.MarkdownBaseURL,
	)
	chunkService = services.NewChunkService(pipeline, publisher)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
