package main

import (
	"flag"
	"fmt"

	livedsl "github.com/grindlemire/go-livedsl"
	"github.com/grindlemire/go-livedsl/internal/debug"
	"github.com/grindlemire/go-livedsl/internal/preview"
)

// runPreview implements the preview subcommand.
func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	cellWidth := fs.Int("cell-width", preview.DefaultCellWidth, "Pixels per terminal column")
	policy := fs.String("policy", "reset", "What edits do to state: reset or preserve")
	logPath := fs.String("log", "", "Path to log file for debugging")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("preview takes exactly one .dsl file")
	}
	if *cellWidth <= 0 {
		return fmt.Errorf("cell width must be positive, got %d", *cellWidth)
	}

	p, ok := livedsl.ParseStatePolicy(*policy)
	if !ok {
		return fmt.Errorf("unknown state policy %q (want reset or preserve)", *policy)
	}

	// Set up logging if requested
	if *logPath != "" {
		if err := debug.Init(*logPath); err != nil {
			return err
		}
		defer debug.Close()
	}

	return preview.Run(fs.Arg(0), preview.Options{CellWidth: *cellWidth, Policy: p})
}
