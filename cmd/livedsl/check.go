package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-livedsl/internal/dsl"
)

// checkResult is the outcome of checking one file.
type checkResult struct {
	path     string
	warnings []*dsl.Error
	err      error // compile error; I/O errors abort the whole run
}

// runCheck implements the check subcommand.
// It parses and expands .dsl files without rendering them. Files are
// checked in parallel; output keeps the order the files were found in.
func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Default to current directory if no paths specified
	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectDSLFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .dsl files found")
	}

	if *verbose {
		fmt.Printf("Checking %d .dsl file(s)\n", len(files))
	}

	results := make([]checkResult, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			source, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			warnings, err := checkSource(filepath.Base(path), string(source))
			results[i] = checkResult{path: path, warnings: warnings, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var errorCount int
	for _, res := range results {
		if *verbose {
			fmt.Printf("Checked %s\n", res.path)
		}
		for _, w := range res.warnings {
			fmt.Fprintf(os.Stderr, "%v\n", w)
		}
		if res.err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", res.err)
			errorCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}

	if *verbose {
		fmt.Printf("All %d file(s) passed checks\n", len(files))
	}

	return nil
}

// checkSource parses and expands one source file. Expansion catches
// recursive components, which parsing alone cannot.
func checkSource(filename, source string) ([]*dsl.Error, error) {
	prog, err := dsl.Parse(filename, source)
	if err != nil {
		return nil, err
	}
	if _, err := dsl.Expand(prog, dsl.DefaultMaxDepth); err != nil {
		return prog.Warnings, err
	}
	return prog.Warnings, nil
}
