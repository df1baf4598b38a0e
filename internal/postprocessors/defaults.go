package postprocessors

import (
	"github.com/custodia-labs/ingest-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ingest-cli/internal/postprocessors/dedupe"
	"github.com/custodia-labs/ingest-cli/internal/postprocessors/langtag"
	"github.com/custodia-labs/ingest-cli/internal/postprocessors/overlap"
	"github.com/custodia-labs/ingest-cli/internal/postprocessors/packer"
	"github.com/custodia-labs/ingest-cli/internal/postprocessors/sectioner"
)

// DefaultStages is the stage order of the standard chunking pipeline.
var DefaultStages = []string{"sectioner", "packer", "overlap", "dedupe", "langtag"}

// RegisterDefaults registers all built-in stages with the registry.
// The language detector is injected so detection quality can change without
// touching the packing, overlap or dedupe logic.
//
// Supported config keys:
//   - max_chars (int): maximum chunk size in characters (default: 4000)
//   - overlap_chars (int): overlap between window splits (default: 400)
func RegisterDefaults(r *Registry, detector driven.LanguageDetector) {
	r.Register("sectioner", func(_ map[string]any) (driven.PostProcessor, error) {
		return sectioner.New(), nil
	})

	r.Register("packer", func(cfg map[string]any) (driven.PostProcessor, error) {
		var opts []packer.Option
		if size, ok := intFromConfig(cfg, "max_chars"); ok && size > 0 {
			opts = append(opts, packer.WithMaxChars(size))
		}
		return packer.New(opts...), nil
	})

	r.Register("overlap", func(cfg map[string]any) (driven.PostProcessor, error) {
		var opts []overlap.Option
		if size, ok := intFromConfig(cfg, "max_chars"); ok && size > 0 {
			opts = append(opts, overlap.WithMaxChars(size))
		}
		if ov, ok := intFromConfig(cfg, "overlap_chars"); ok && ov >= 0 {
			opts = append(opts, overlap.WithOverlap(ov))
		}
		return overlap.New(opts...), nil
	})

	r.Register("dedupe", func(_ map[string]any) (driven.PostProcessor, error) {
		return dedupe.New(), nil
	})

	r.Register("langtag", func(_ map[string]any) (driven.PostProcessor, error) {
		return langtag.New(detector), nil
	})
}

// NewDefaultPipeline builds the standard five-stage pipeline, passing the
// same config to every stage.
func NewDefaultPipeline(r *Registry, cfg map[string]any) (*Pipeline, error) {
	p := NewPipeline()
	for _, name := range DefaultStages {
		stage, err := r.Build(name, cfg)
		if err != nil {
			return nil, err
		}
		p.Add(stage)
	}
	return p, nil
}

// intFromConfig safely extracts an int from a generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func intFromConfig(cfg map[string]any, key string) (int, bool) {
	val, ok := cfg[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
