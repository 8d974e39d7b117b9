package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// main is the application composition root.
// It wires the log file adapter behind the TailReader port and starts the HTTP server.
func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
