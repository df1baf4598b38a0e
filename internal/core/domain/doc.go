// Package domain defines the core business entities for the ingest pipeline.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - NormaliseRequest: raw payload plus identity, pre-normalisation
//   - NormalisedDocument: canonical markdown form handed to the chunker
//   - Chunk: a bounded, language-tagged segment of normalised text
//   - Event: a fire-and-forget notification payload
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
