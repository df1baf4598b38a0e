package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
)

var chunkCmd = &cobra.Command{
	Use:   "chunk [file]",
	Short: "Split a markdown document into retrieval-sized chunks",
	Long: `Reads a normalised markdown document from the given file, or stdin when
no file is given, and prints the resulting chunks as JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChunk,
}

var chunkIdeaID string

func init() {
	chunkCmd.Flags().StringVar(&chunkIdeaID, "idea-id", "", "Idea the document belongs to (required)")
	_ = chunkCmd.MarkFlagRequired("idea-id")

	rootCmd.AddCommand(chunkCmd)
}

func runChunk(cmd *cobra.Command, args []string) error {
	if chunkService == nil {
		return errors.New("chunk service not configured")
	}

	markdown, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	chunks, err := chunkService.Chunk(context.Background(), domain.ChunkRequest{
		IdeaID:   chunkIdeaID,
		Markdown: markdown,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoContent) {
			return fmt.Errorf("document %s has no chunkable content", chunkIdeaID)
		}
		return fmt.Errorf("failed to chunk: %w", err)
	}

	out, err := json.MarshalIndent(chunks, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding chunks: %w", err)
	}
	cmd.Println(string(out))
	return nil
}
