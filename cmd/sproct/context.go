package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"sproct/internal/config"
	"sproct/internal/logging"
	"sproct/internal/script"
)

type commandContext struct {
	configFlag   *string
	detectorFlag *string
	formatFlag   *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	runID      string
}

func newCommandContext(configFlag, detectorFlag, formatFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		detectorFlag: detectorFlag,
		formatFlag:   formatFlag,
		runID:        uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.detectorFlag != nil {
			if name := strings.ToLower(strings.TrimSpace(*c.detectorFlag)); name != "" {
				cfg.Analysis.Detector = name
				if err := cfg.Validate(); err != nil {
					c.configErr = err
					return
				}
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// loggerFor returns the invocation logger. Diagnostics go to the command's
// stderr so reports on stdout stay machine-readable. Callers attach the run
// identifier through logging.WithContext.
func (c *commandContext) loggerFor(cmd *cobra.Command) *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, _ := c.ensureConfig()
		logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
		if err != nil {
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) runContext(cmd *cobra.Command) context.Context {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return logging.WithRunID(parent, c.runID)
}

func (c *commandContext) outputFormat() (string, error) {
	format := formatTable
	if c.formatFlag != nil {
		if value := strings.ToLower(strings.TrimSpace(*c.formatFlag)); value != "" {
			format = value
		}
	}
	switch format {
	case formatTable, formatJSON, formatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use %s, %s or %s)", format, formatTable, formatJSON, formatYAML)
	}
}

func (c *commandContext) detector() (script.Detector, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	switch cfg.Analysis.Detector {
	case config.DetectorColon:
		return script.ColonDetector, nil
	default:
		return script.UppercaseDetector, nil
	}
}

// loadPlay reads and segments one script file.
func (c *commandContext) loadPlay(cmd *cobra.Command, path string) (*script.Play, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	detector, err := c.detector()
	if err != nil {
		return nil, err
	}
	expanded, err := config.ExpandPath(strings.TrimSpace(path))
	if err != nil {
		return nil, err
	}
	logger := logging.WithContext(c.runContext(cmd), c.loggerFor(cmd)).With(logging.String(logging.FieldScript, expanded))
	speeches, err := script.LoadFile(expanded, detector,
		script.WithPrefaceSpeaker(cfg.Analysis.PrefaceSpeaker),
		script.WithLogger(logger),
	)
	if err != nil {
		logging.ErrorWithContext(logger, "script load failed", "script_load",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the file path and speaker detector"),
		)
		return nil, err
	}
	logger.Info("script loaded", logging.Int("speeches", len(speeches)))
	return script.NewPlay(speeches), nil
}

// resolveSpeaker matches name against the play's speakers, falling back to an
// uppercase match so "romeo" finds ROMEO.
func resolveSpeaker(play *script.Play, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return script.AllSpeakers
	}
	upper := cases.Upper(language.Und).String(name)
	for _, speaker := range play.Speakers() {
		if speaker == name {
			return name
		}
	}
	for _, speaker := range play.Speakers() {
		if speaker == upper {
			return upper
		}
	}
	return name
}

// displaySpeaker title-cases speaker names for tables.
func displaySpeaker(name string) string {
	if name == "" {
		return "(all)"
	}
	return cases.Title(language.Und).String(strings.ReplaceAll(name, "_", " "))
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
