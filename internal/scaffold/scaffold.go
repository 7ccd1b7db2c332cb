// Package scaffold writes a commented default .holes.yaml into a
// project directory.
package scaffold

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/unbound-force/holes/internal/config"
)

//go:embed assets/holes.yaml
var defaultConfig []byte

// Options configures the scaffold operation.
type Options struct {
	// TargetDir is the directory to write the config into.
	// Defaults to the current working directory.
	TargetDir string

	// Force overwrites an existing config when true.
	Force bool

	// Version is the holes version recorded in the marker comment.
	// Defaults to "dev".
	Version string

	// Stdout is the writer for summary output.
	// Defaults to os.Stdout.
	Stdout io.Writer
}

// Result reports what the scaffold operation did.
type Result struct {
	Created     []string
	Skipped     []string
	Overwritten []string
}

func versionMarker(version string) string {
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf("# scaffolded by holes %s\n", version)
}

// Run writes config.DefaultFileName into opts.TargetDir, prefixed
// with a version marker:
//
//	# scaffolded by holes vX.Y.Z
//
// An existing file is skipped unless opts.Force is set.
func Run(opts Options) (*Result, error) {
	if opts.TargetDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		opts.TargetDir = cwd
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	result := &Result{}
	name := config.DefaultFileName
	outPath := filepath.Join(opts.TargetDir, name)

	_, statErr := os.Stat(outPath)
	exists := statErr == nil

	if exists && !opts.Force {
		result.Skipped = append(result.Skipped, name)
		printSummary(opts.Stdout, result)
		return result, nil
	}

	if err := os.MkdirAll(opts.TargetDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", opts.TargetDir, err)
	}
	out := append([]byte(versionMarker(opts.Version)), defaultConfig...)
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	if exists {
		result.Overwritten = append(result.Overwritten, name)
	} else {
		result.Created = append(result.Created, name)
	}

	printSummary(opts.Stdout, result)
	return result, nil
}

// printSummary writes a human-readable summary of the scaffold
// operation to w.
func printSummary(w io.Writer, r *Result) {
	fmt.Fprintln(w, "holes config initialized:")

	for _, f := range r.Created {
		fmt.Fprintf(w, "  created: %s\n", f)
	}
	for _, f := range r.Skipped {
		fmt.Fprintf(w, "  skipped: %s (already exists)\n", f)
	}
	for _, f := range r.Overwritten {
		fmt.Fprintf(w, "  overwritten: %s\n", f)
	}

	if len(r.Skipped) > 0 {
		fmt.Fprintf(w, "%d file(s) skipped (use --force to overwrite).\n", len(r.Skipped))
	}
}
