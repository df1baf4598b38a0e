// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Normaliser: converts one payload format into a markdown body
//   - PostProcessor / PostProcessorPipeline: chunking pipeline stages
//   - LanguageDetector: tags chunk text with a language code
//
// # Optional Interfaces
//
// These can be nil - the pipeline degrades gracefully:
//
//   - Publisher: notification delivery. Without it, no events are emitted;
//     chunking and normalisation results are unaffected.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, normaliser, or postprocessor package
package driven
