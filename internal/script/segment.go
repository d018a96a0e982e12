package script

import (
	"log/slog"
	"strings"

	"sproct/internal/logging"
)

// DefaultPrefaceSpeaker labels lines that precede the first speaker heading.
const DefaultPrefaceSpeaker = "PREFACE_TEXT"

// SegmentOption customizes a Segment call.
type SegmentOption func(*segmenter)

// WithPrefaceSpeaker overrides the label of the leading preface speech.
func WithPrefaceSpeaker(name string) SegmentOption {
	return func(s *segmenter) {
		if name = strings.TrimSpace(name); name != "" {
			s.preface = name
		}
	}
}

// WithLogger attaches a logger for segmentation diagnostics.
func WithLogger(logger *slog.Logger) SegmentOption {
	return func(s *segmenter) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type segmenter struct {
	preface string
	logger  *slog.Logger
}

// builder accumulates the lines of the speech in progress.
type builder struct {
	speaker string
	lines   []string
	// preface marks the builder opened before any heading was seen.
	preface bool
}

func (b *builder) complete() Speech {
	return Speech{speaker: b.speaker, lines: b.lines}
}

// closeInto appends the completed speech to dst. An empty preface builder is
// dropped because it only exists to catch text before the first heading.
func (b *builder) closeInto(dst []Speech) []Speech {
	if b.preface && len(b.lines) == 0 {
		return dst
	}
	return append(dst, b.complete())
}

// Segment partitions lines into speeches using detector, which defaults to
// UppercaseDetector when nil. Every non-blank remainder the detector yields
// lands in exactly one speech. Input with no text before the first heading
// produces no preface speech; input without any heading (including empty
// input) produces a single preface speech.
func Segment(lines []string, detector Detector, opts ...SegmentOption) ([]Speech, error) {
	if detector == nil {
		detector = UppercaseDetector
	}
	s := segmenter{preface: DefaultPrefaceSpeaker, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}

	var speeches []Speech
	current := &builder{speaker: s.preface, preface: true}
	for i, raw := range lines {
		speaker, text, err := detector.Detect(raw)
		if err != nil {
			segErr := &SegmentationError{Line: i + 1, Text: raw, Err: err}
			s.logger.Debug("speaker detection failed", logging.Int("line", segErr.Line), logging.Error(err))
			return nil, segErr
		}
		if speaker != "" {
			speeches = current.closeInto(speeches)
			current = &builder{speaker: speaker}
		}
		if strings.TrimSpace(text) != "" {
			current.lines = append(current.lines, text)
		}
	}
	if current.preface {
		speeches = append(speeches, current.complete())
	} else {
		speeches = current.closeInto(speeches)
	}

	s.logger.Debug("script segmented",
		logging.Int("input_lines", len(lines)),
		logging.Int("speeches", len(speeches)),
	)
	return speeches, nil
}
