package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateDiff(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAnalysis() error {
	switch c.Analysis.Detector {
	case DetectorUppercase, DetectorColon:
	default:
		return fmt.Errorf("analysis.detector: unsupported value %q (use %q or %q)", c.Analysis.Detector, DetectorUppercase, DetectorColon)
	}
	if c.Analysis.MinWords < 0 {
		return errors.New("analysis.min_words must be zero or positive")
	}
	if c.Analysis.NGramSize < 1 {
		return errors.New("analysis.ngram_size must be at least 1")
	}
	if c.Analysis.CandidateThreshold < 0 || c.Analysis.CandidateThreshold >= 1 {
		return errors.New("analysis.candidate_threshold must be in [0, 1)")
	}
	return nil
}

func (c *Config) validateDiff() error {
	if c.Diff.ChangedLineCutoff < 0 || c.Diff.ChangedLineCutoff > 1 {
		return errors.New("diff.changed_line_cutoff must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
