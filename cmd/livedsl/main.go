// Package main provides the CLI tool for the .dsl live UI compiler.
//
// Usage:
//
//	livedsl render [-width N] [-o file] file.dsl   Compile a file to HTML
//	livedsl check [path...]                        Check .dsl files for errors
//	livedsl fmt [path...]                          Format .dsl files
//	livedsl preview file.dsl                       Live terminal preview
//	livedsl help                                   Show help
//
// Examples:
//
//	livedsl check ./...           Recursively find and check all .dsl files
//	livedsl render -width 320 app.dsl
//	livedsl preview app.dsl       Edit app.dsl in another window and watch it update
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `livedsl - live compiler for a small declarative UI language

Usage:
  livedsl <command> [options] [path...]

Commands:
  render      Compile a .dsl file to HTML
  check       Check .dsl files for errors
  fmt         Format .dsl files
  preview     Live terminal preview of a .dsl file
  version     Print version information
  help        Show this help message

Examples:
  livedsl render app.dsl                  Render at the terminal's width
  livedsl render -width 320 -o out.html app.dsl
  livedsl check ./...                     Recursively check all .dsl files
  livedsl check -v ./screens              Verbose output
  livedsl fmt ./...                       Format all .dsl files recursively
  livedsl fmt -check ./...                Check formatting without modifying
  livedsl fmt -stdout app.dsl             Print formatted output to stdout
  livedsl preview app.dsl                 Preview, reloading on save
  livedsl preview -policy preserve -log /tmp/livedsl.log app.dsl

Set LIVEDSL_DEBUG=/path/to/file to write a debug log from any command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "render":
		err = runRender(args)
	case "check":
		err = runCheck(args)
	case "fmt":
		err = runFmt(args)
	case "preview":
		err = runPreview(args)
	case "version":
		fmt.Printf("livedsl version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
