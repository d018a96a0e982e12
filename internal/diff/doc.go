// Package diff aligns token or line sequences with longest-matching-block
// matching and renders line transcripts for display.
package diff
