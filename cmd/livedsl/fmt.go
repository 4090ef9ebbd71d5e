package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-livedsl/internal/formatter"
)

// runFmt implements the fmt subcommand.
// It formats .dsl files in place or checks formatting.
func runFmt(args []string) error {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	stdout := fs.Bool("stdout", false, "Print to stdout instead of modifying files")
	check := fs.Bool("check", false, "Check formatting without modifying files (exit 1 if not formatted)")

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

	fmtr := formatter.New()

	if *check {
		return runFmtCheck(fmtr, files)
	}

	if *stdout {
		return runFmtStdout(fmtr, files)
	}

	return runFmtInPlace(fmtr, files)
}

// fmtResult is the outcome of formatting one file.
type fmtResult struct {
	path    string
	changed bool
	err     error
}

// formatFiles formats files in parallel, at most GOMAXPROCS at a time.
// Results keep the order of files. When write is set, changed files are
// rewritten on disk.
func formatFiles(fmtr *formatter.Formatter, files []string, write bool) []fmtResult {
	results := make([]fmtResult, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, p := range files {
		i, p := i, p
		g.Go(func() error {
			results[i] = formatFile(fmtr, p, write)
			return nil
		})
	}
	// Per-file failures are reported in results, never through the group.
	_ = g.Wait()

	return results
}

func formatFile(fmtr *formatter.Formatter, p string, write bool) fmtResult {
	source, err := os.ReadFile(p)
	if err != nil {
		return fmtResult{path: p, err: fmt.Errorf("reading file: %w", err)}
	}

	res, err := fmtr.FormatWithResult(filepath.Base(p), string(source))
	if err != nil {
		return fmtResult{path: p, err: err}
	}

	if write && res.Changed {
		if err := os.WriteFile(p, []byte(res.Content), 0644); err != nil {
			return fmtResult{path: p, err: fmt.Errorf("writing file: %w", err)}
		}
	}

	return fmtResult{path: p, changed: res.Changed}
}

// runFmtInPlace formats files in place, modifying them on disk.
func runFmtInPlace(fmtr *formatter.Formatter, files []string) error {
	var errorCount int
	for _, res := range formatFiles(fmtr, files, true) {
		if res.err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.path, res.err)
			errorCount++
		} else if res.changed {
			fmt.Printf("Formatted: %s\n", res.path)
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}

	return nil
}

// runFmtStdout formats files and prints to stdout.
func runFmtStdout(fmtr *formatter.Formatter, files []string) error {
	var errorCount int

	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: reading file: %v\n", path, err)
			errorCount++
			continue
		}

		formatted, err := fmtr.Format(filepath.Base(path), string(source))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			errorCount++
			continue
		}

		if len(files) > 1 {
			fmt.Printf("// %s\n", path)
		}
		fmt.Print(formatted)
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}

	return nil
}

// runFmtCheck checks if files are formatted without modifying them.
// Returns an error if any file is not formatted.
func runFmtCheck(fmtr *formatter.Formatter, files []string) error {
	var errorCount, notFormattedCount int
	for _, res := range formatFiles(fmtr, files, false) {
		if res.err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.path, res.err)
			errorCount++
		} else if res.changed {
			fmt.Fprintf(os.Stderr, "ERROR: %s is not formatted\n", res.path)
			notFormattedCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}

	if notFormattedCount > 0 {
		return fmt.Errorf("%d file(s) not formatted", notFormattedCount)
	}

	return nil
}
