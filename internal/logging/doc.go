// Package logging assembles structured slog loggers and formatting helpers used
// across sproct.
//
// It owns the console and JSON handlers, centralizes level and output plumbing,
// and exposes context helpers so analysis code can tag log lines with the run
// identifier assigned by the CLI. The package also provides a no-op logger for
// tests and library callers that do not want output.
package logging
