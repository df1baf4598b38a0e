package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Chunking defaults.
const (
	DefaultMaxChars     = 4000
	DefaultOverlapChars = 400
)

// Config is the on-disk configuration.
type Config struct {
	Chunker ChunkerConfig `toml:"chunker"`
	Publish PublishConfig `toml:"publish"`
}

// ChunkerConfig tunes the chunking pipeline.
type ChunkerConfig struct {
	// MaxChars is the maximum chunk size in characters.
	MaxChars int `toml:"max_chars"`

	// OverlapChars is the overlap between window splits of oversized
	// sections. Must be smaller than MaxChars.
	OverlapChars int `toml:"overlap_chars"`
}

// PublishConfig configures event delivery.
type PublishConfig struct {
	// WebhookURL, when set, switches event publishing from in-memory to
	// HTTP delivery.
	WebhookURL string `toml:"webhook_url"`

	// MarkdownBaseURL, when set, derives the markdown_url field of
	// idea.preprocessed events.
	MarkdownBaseURL string `toml:"markdown_base_url"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Chunker: ChunkerConfig{
			MaxChars:     DefaultMaxChars,
			OverlapChars: DefaultOverlapChars,
		},
	}
}

// DefaultPath returns ~/.ingest/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".ingest", "config.toml"), nil
}

// Load reads the config at path. A missing file is not an error: defaults
// are returned. Loaded values are clamped into valid ranges.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	return clamp(cfg), nil
}

// Save writes the config to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// clamp forces chunking values into valid ranges rather than failing on a
// hand-edited file.
func clamp(cfg Config) Config {
	if cfg.Chunker.MaxChars <= 0 {
		cfg.Chunker.MaxChars = DefaultMaxChars
	}
	if cfg.Chunker.OverlapChars < 0 || cfg.Chunker.OverlapChars >= cfg.Chunker.MaxChars {
		cfg.Chunker.OverlapChars = cfg.Chunker.MaxChars / 10
	}
	return cfg
}
