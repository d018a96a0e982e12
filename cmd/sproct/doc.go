// Package main hosts the sproct CLI entrypoint and command graph.
//
// The Cobra command tree loads play scripts through internal/script and
// surfaces per-speaker statistics, text reconstruction, exact alignment and
// near-duplicate detection. Configuration resolution and logger setup live in
// the shared command context so subcommands only deal with presentation.
package main
