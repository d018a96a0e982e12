package script

import (
	"errors"
	"fmt"
)

var (
	// ErrSegmentation matches any *SegmentationError.
	ErrSegmentation = errors.New("segmentation failed")
	// ErrUndefinedMetric matches any *UndefinedMetricError.
	ErrUndefinedMetric = errors.New("metric undefined")
)

// SegmentationError reports a detector failure on one input line. It aborts the
// segmentation run and is never retried.
type SegmentationError struct {
	// Line is the 1-based index of the offending input line.
	Line int
	Text string
	Err  error
}

func (e *SegmentationError) Error() string {
	return fmt.Sprintf("segment line %d: %v", e.Line, e.Err)
}

func (e *SegmentationError) Unwrap() error { return e.Err }

func (e *SegmentationError) Is(target error) bool { return target == ErrSegmentation }

// ErrorKind classifies the failure as bad input.
func (e *SegmentationError) ErrorKind() string { return "validation" }

// UndefinedMetricError is returned for ratios whose denominator is zero, such
// as the average words of a speaker with no speeches.
type UndefinedMetricError struct {
	Metric  string
	Speaker string
}

func (e *UndefinedMetricError) Error() string {
	return fmt.Sprintf("%s undefined for speaker %q: speaker has no speeches", e.Metric, e.Speaker)
}

func (e *UndefinedMetricError) Is(target error) bool { return target == ErrUndefinedMetric }

// ErrorKind classifies the failure as a lookup miss.
func (e *UndefinedMetricError) ErrorKind() string { return "not_found" }
