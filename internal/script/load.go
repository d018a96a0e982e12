package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// maxLineBytes bounds a single script line read by ReadLines.
const maxLineBytes = 4 << 20

// ReadLines splits r into lines without their terminators.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return lines, nil
}

// LoadFile reads the script at path and segments it. I/O errors are wrapped
// with %w so callers can still match fs errors.
func LoadFile(path string, detector Detector, opts ...SegmentOption) ([]Speech, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer file.Close()

	lines, err := ReadLines(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Segment(lines, detector, opts...)
}
