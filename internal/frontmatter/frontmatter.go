// Package frontmatter encodes and strips the YAML metadata block prefixed
// to every normalised document.
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/ingest-cli/internal/core/domain"
)

const delimiter = "---"

// Prepend serialises meta as a YAML block, wraps it in --- delimiter lines
// and prefixes it to body, separated by one blank line.
func Prepend(meta domain.DocumentMeta, body string) (string, error) {
	var buf strings.Builder
	buf.WriteString(delimiter + "\n")

	enc := yaml.NewEncoder(&buf)
	if err := enc.Encode(meta); err != nil {
		return "", fmt.Errorf("encoding front-matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("closing front-matter encoder: %w", err)
	}

	buf.WriteString(delimiter + "\n\n")
	buf.WriteString(body)
	return buf.String(), nil
}

// Strip removes a leading front-matter block and returns the body.
// Input without a leading --- line, or without a closing delimiter line,
// is returned unchanged.
func Strip(markdown string) string {
	if !strings.HasPrefix(markdown, delimiter+"\n") {
		return markdown
	}
	rest := markdown[len(delimiter)+1:]

	// Closing delimiter at the very end of the document.
	if strings.HasSuffix(rest, "\n"+delimiter) {
		if idx := strings.Index(rest, "\n"+delimiter+"\n"); idx < 0 {
			return ""
		}
	}

	idx := strings.Index(rest, "\n"+delimiter+"\n")
	if idx < 0 {
		return markdown
	}
	body := rest[idx+len(delimiter)+2:]

	// Swallow the blank separator line after the block.
	body = strings.TrimPrefix(body, "\n")
	return body
}
