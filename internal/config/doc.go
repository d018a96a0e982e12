// Package config loads, normalizes, and validates sproct configuration data.
//
// It supplies analysis defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// SPROCT_LOG_LEVEL. The Config type centralizes every knob the analyses and
// CLI need so thresholds are discovered in one pass.
package config
