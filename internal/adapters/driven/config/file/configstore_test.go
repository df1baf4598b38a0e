package file

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Chunker.MaxChars != DefaultMaxChars {
		t.Errorf("expected default max_chars, got %d", cfg.Chunker.MaxChars)
	}
	if cfg.Chunker.OverlapChars != DefaultOverlapChars {
		t.Errorf("expected default overlap_chars, got %d", cfg.Chunker.OverlapChars)
	}
}

func TestLoad_ReadsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[chunker]
max_chars = 2000
overlap_chars = 200

[publish]
webhook_url = "https://hooks.example.com/ingest"
markdown_base_url = "https://docs.example.com/md"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Chunker.MaxChars != 2000 || cfg.Chunker.OverlapChars != 200 {
		t.Errorf("unexpected chunker config: %+v", cfg.Chunker)
	}
	if cfg.Publish.WebhookURL != "https://hooks.example.com/ingest" {
		t.Errorf("unexpected webhook url %q", cfg.Publish.WebhookURL)
	}
	if cfg.Publish.MarkdownBaseURL != "https://docs.example.com/md" {
		t.Errorf("unexpected markdown base url %q", cfg.Publish.MarkdownBaseURL)
	}
}

func TestLoad_ClampsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[chunker]
max_chars = -5
overlap_chars = 9000
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Chunker.MaxChars != DefaultMaxChars {
		t.Errorf("expected max_chars clamped to default, got %d", cfg.Chunker.MaxChars)
	}
	if cfg.Chunker.OverlapChars != DefaultMaxChars/10 {
		t.Errorf("expected overlap clamped to max/10, got %d", cfg.Chunker.OverlapChars)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	want := DefaultConfig()
	want.Chunker.MaxChars = 1234
	want.Publish.WebhookURL = "https://hooks.example.com/x"

	if err := Save(path, want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch:\ngot:  %+v\nwant: %+v", got, want)
	}
}
