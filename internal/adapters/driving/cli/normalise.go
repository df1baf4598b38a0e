package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
)

var normaliseCmd = &cobra.Command{
	Use:   "normalise [file]",
	Short: "Convert a raw payload to a canonical markdown document",
	Long: `Reads a payload from the given file, or stdin when no file is given,
detects its format and emits markdown with a YAML front-matter block.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNormalise,
}

var (
	normaliseIdeaID string
	normaliseSource string
	normaliseOut    string
)

func init() {
	normaliseCmd.Flags().StringVar(&normaliseIdeaID, "idea-id", "", "Idea the payload belongs to (required)")
	normaliseCmd.Flags().StringVar(&normaliseSource, "source", "manual", "Origin of the payload (email, web, upload, ...)")
	normaliseCmd.Flags().StringVarP(&normaliseOut, "out", "o", "", "Write the document to a file instead of stdout")
	_ = normaliseCmd.MarkFlagRequired("idea-id")

	rootCmd.AddCommand(normaliseCmd)
}

func runNormalise(cmd *cobra.Command, args []string) error {
	if normaliseService == nil {
		return errors.New("normalise service not configured")
	}

	payload, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	markdown, err := normaliseService.Normalise(context.Background(), domain.NormaliseRequest{
		IdeaID:  normaliseIdeaID,
		Source:  normaliseSource,
		Payload: payload,
	})
	if err != nil {
		return fmt.Errorf("failed to normalise: %w", err)
	}

	if normaliseOut != "" {
		if err := os.WriteFile(normaliseOut, []byte(markdown), 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		cmd.Printf("Wrote %s\n", normaliseOut)
		return nil
	}

	cmd.Print(markdown)
	return nil
}

// readInput returns the payload from the file argument, or from stdin when
// no argument is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
