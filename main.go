package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mvelasquez/tarea/cmd"
	"github.com/mvelasquez/tarea/internal/logging"
)

func main() {
	if err := logging.Init(); err != nil {
		// Logging is best effort, the app works without it
		fmt.Fprintf(os.Stderr, "warning: failed to initialize logging: %v\n", err)
	}

	if err := cmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
