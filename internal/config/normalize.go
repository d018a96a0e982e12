package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.normalizeAnalysis()
	c.normalizeLogging()
}

func (c *Config) normalizeAnalysis() {
	c.Analysis.Detector = strings.ToLower(strings.TrimSpace(c.Analysis.Detector))
	if c.Analysis.Detector == "" {
		c.Analysis.Detector = defaultDetector
	}
	c.Analysis.PrefaceSpeaker = strings.TrimSpace(c.Analysis.PrefaceSpeaker)
	if c.Analysis.PrefaceSpeaker == "" {
		c.Analysis.PrefaceSpeaker = defaultPrefaceSpeaker
	}
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("SPROCT_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
