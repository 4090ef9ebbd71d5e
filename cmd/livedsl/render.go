package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	livedsl "github.com/grindlemire/go-livedsl"
	"github.com/grindlemire/go-livedsl/internal/preview"
)

// runRender implements the render subcommand.
// It compiles one .dsl file and writes the HTML to stdout or a file.
func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	width := fs.Int("width", 0, "Viewport width in pixels (default: terminal width, else 1024)")
	output := fs.String("o", "", "Write HTML to this file instead of stdout")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("render takes exactly one .dsl file")
	}
	if *width < 0 {
		return fmt.Errorf("width must be non-negative, got %d", *width)
	}

	path := fs.Arg(0)
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	w := *width
	if w == 0 {
		w = terminalWidth()
	}

	doc, err := livedsl.Compile(string(source), w, nil, livedsl.CompileOptions{Filename: filepath.Base(path)})
	if err != nil {
		return err
	}

	out := doc.HTML() + "\n"
	if *output == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(*output, []byte(out), 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

// terminalWidth returns the viewport width implied by the terminal on
// stdout, or livedsl.DefaultViewportWidth when stdout is not a terminal.
func terminalWidth() int {
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 {
		return livedsl.DefaultViewportWidth
	}
	return cols * preview.DefaultCellWidth
}
