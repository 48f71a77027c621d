// Package document implements the pure, rune-accurate document model for
// keydoc.
//
// Coordinates are 0-based (Row, Col) in runes.
// Spans are half-open regions in document coordinates: [Start, End).
package document
