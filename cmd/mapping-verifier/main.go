// Package main provides the CLI entrypoint for mapping-verifier.
//
// mapping-verifier checks hand-written struct mappers field by field.
// Verification itself runs inside Go tests through the verify package;
// the binary covers the standalone chores:
//   - vet: parse and validate a YAML profile without running any test
package main

import (
	"flag"
	"fmt"
	"os"

	"mapping-verifier/internal/diagnostic"
	"mapping-verifier/internal/profile"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "vet":
		os.Exit(vet(rest))
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "mapping-verifier - checks struct mappers field by field")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  mapping-verifier vet [-strict] <profile.yaml>...")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  vet    validate verification profiles without running them")
}

func vet(args []string) int {
	flags := flag.NewFlagSet("vet", flag.ExitOnError)
	strict := flags.Bool("strict", false, "treat unknown type names as errors")
	_ = flags.Parse(args)

	paths := flags.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "vet: at least one profile path is required")
		return 2
	}

	code := 0
	for _, path := range paths {
		if !vetOne(path, *strict) {
			code = 1
		}
	}

	return code
}

func vetOne(path string, strict bool) bool {
	p, err := profile.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return false
	}

	diags := profile.Validate(p, profile.NewResolver())
	if !strict {
		demoteUnknownTypes(diags)
	}

	for _, d := range diags.Errors {
		fmt.Fprintf(os.Stderr, "%s: error: %s\n", path, d.String())
	}
	for _, d := range diags.Warnings {
		fmt.Fprintf(os.Stderr, "%s: warning: %s\n", path, d.String())
	}

	if diags.HasErrors() {
		return false
	}

	fmt.Printf("%s: ok\n", path)
	return true
}

// Named types are registered at runtime through RegisterTypes, so a
// standalone vet can only resolve the built-in type names. Unknown names
// are demoted to warnings unless -strict is set.
func demoteUnknownTypes(diags *diagnostic.Diagnostics) {
	kept := diags.Errors[:0]

	for _, d := range diags.Errors {
		if d.Code == "unknown_type" {
			d.Severity = diagnostic.SeverityWarning
			diags.Warnings = append(diags.Warnings, d)
			continue
		}

		kept = append(kept, d)
	}

	diags.Errors = kept
}
