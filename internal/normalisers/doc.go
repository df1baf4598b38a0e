// Package normalisers provides implementations of the Normaliser interface
// for the payload formats the pipeline accepts. Each normaliser recognises
// its format with a cheap heuristic and converts it to a markdown body.
//
// The normalise service tries normalisers in descending priority and uses
// the first one whose Matches returns true.
package normalisers
