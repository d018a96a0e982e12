package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"sproct/internal/diff"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

func renderMarkedLine(line diff.MarkedLine, colorize bool) string {
	base := line.String()
	if !colorize {
		return base
	}
	if color := markColor(line.Mark); color != "" {
		return color + base + ansiReset
	}
	return base
}

func markColor(mark diff.Mark) string {
	switch mark {
	case diff.Added:
		return ansiGreen
	case diff.Removed:
		return ansiRed
	case diff.Changed:
		return ansiYellow
	default:
		return ""
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
