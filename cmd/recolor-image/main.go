package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/recolor-image/internal/colormap"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// debug enables verbose logging; set from RECOLOR_LOG_LEVEL=debug.
var debug bool

func main() {
	// Logs go to stderr; stdout carries output paths and MCP traffic
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug = os.Getenv("RECOLOR_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("recolor-image v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var invalid *colormap.InvalidColormapError
		if errors.As(err, &invalid) {
			fmt.Fprintln(os.Stderr, "Run 'recolor-image list' to see the available colormaps.")
		}
		os.Exit(1)
	}
}

func debugf(format string, args ...interface{}) {
	if debug {
		log.Output(2, fmt.Sprintf(format, args...))
	}
}
