package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps classified errors to distinct statuses: 2 for bad input, 1
// for everything else.
func exitCode(err error) int {
	var classified interface{ ErrorKind() string }
	if errors.As(err, &classified) && classified.ErrorKind() == "validation" {
		return 2
	}
	return 1
}
