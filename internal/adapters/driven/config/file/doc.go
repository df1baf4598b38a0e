// Package file loads and saves the ingest configuration as a TOML file.
// Missing files yield defaults; out-of-range chunking values are clamped so
// a hand-edited config cannot produce a broken pipeline.
package file
