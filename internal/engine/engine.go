// Package engine orchestrates a rename run: scan the input tree, validate
// stem uniqueness over the whole tree, and only then rewrite every file,
// either in place or mirrored into an output root.
//
// The ordering guarantee that matters is validation-before-output: when a
// collision exists anywhere in the tree, the run aborts before a single
// candidate file has been read or written, so partial results are never
// observable.
package engine

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jorgecnavarro/seqrename/internal/filelock"
	"github.com/jorgecnavarro/seqrename/internal/logger"
	"github.com/jorgecnavarro/seqrename/internal/mirror"
	"github.com/jorgecnavarro/seqrename/internal/rewrite"
	"github.com/jorgecnavarro/seqrename/internal/scan"
)

// Options configures one run.
type Options struct {
	// InputRoot is the folder searched recursively for candidate files.
	InputRoot string
	// OutputRoot receives the rewritten tree. Empty means in-place mode:
	// each file is overwritten at its original path.
	OutputRoot string
	// Extensions selects candidate files (literal suffixes, leading dot).
	Extensions []string
	// Rewriter transforms each file's content with its stem.
	Rewriter rewrite.Rewriter
	// Verbose prints each written destination path on its own line.
	Verbose bool
	// Logger receives progress output; nil disables logging entirely.
	Logger *logger.ConsoleLogger
}

// RunReport summarizes a completed run. It is not persisted anywhere; runs
// leave no state behind beyond the written files.
type RunReport struct {
	// RunID identifies the run in debug logs.
	RunID string
	// Processed counts files written (every scanned file, modified or not).
	Processed int
	// Modified counts files in which at least one record was rewritten.
	Modified int
	// Destinations lists written paths in processing order.
	Destinations []string
}

// Run executes the scan → validate → rewrite sequence and returns the run
// report. It fails with *UniquenessError (carrying the full collision
// report) before any file I/O when stems collide, with *PathError on
// filesystem problems, and with a wrapped *rewrite.FormatError when a file
// cannot be parsed; a FormatError is fatal to the whole run.
func Run(opts Options) (*RunReport, error) {
	if opts.Rewriter == nil {
		return nil, errors.New("engine: no rewriter configured")
	}

	entries, err := scan.Scan(opts.InputRoot, opts.Extensions)
	if err != nil {
		return nil, &PathError{Path: opts.InputRoot, Err: err}
	}

	index := scan.BuildIndex(entries)
	if collisions := scan.Collisions(index); len(collisions) > 0 {
		return nil, &UniquenessError{Collisions: collisions}
	}

	report := &RunReport{RunID: uuid.NewString()}
	if len(entries) == 0 {
		opts.Logger.Info("No matching files found in %s", opts.InputRoot)
		return report, nil
	}

	// Lock the root we write into, only after validation passed: collision
	// runs must not leave even a lock file behind.
	lockRoot := opts.OutputRoot
	if lockRoot == "" {
		lockRoot = opts.InputRoot
	}
	lock, err := filelock.LockRoot(lockRoot)
	if err != nil {
		return nil, err
	}
	defer lock.Release()

	opts.Logger.Debug("run %s: %d files under %s", report.RunID, len(entries), opts.InputRoot)

	for _, entry := range entries {
		result, err := processEntry(opts, entry)
		if err != nil {
			return report, err
		}

		report.Processed++
		if result.Modified {
			report.Modified++
		}
		report.Destinations = append(report.Destinations, result.Destination)
		if opts.Verbose {
			opts.Logger.Path(result.Destination)
		}
	}

	return report, nil
}

// RewriteResult records where one source file ended up and whether any of
// its records changed.
type RewriteResult struct {
	Source      string
	Destination string
	Modified    bool
}

// processEntry reads, rewrites and writes a single file. A file with no
// qualifying record is still written through unchanged, so mirrored mode
// always reproduces the full tree.
func processEntry(opts Options, entry scan.FileEntry) (RewriteResult, error) {
	content, err := os.ReadFile(entry.Path)
	if err != nil {
		return RewriteResult{}, &PathError{Path: entry.Path, Err: err}
	}

	out, modified, err := opts.Rewriter.Rewrite(content, entry.Stem)
	if err != nil {
		return RewriteResult{}, fmt.Errorf("%s: %w", entry.Path, err)
	}

	dest, err := mirror.Resolve(entry, opts.OutputRoot)
	if err != nil {
		return RewriteResult{}, &PathError{Path: entry.Rel, Err: err}
	}

	if err := filelock.AtomicWrite(dest, out); err != nil {
		return RewriteResult{}, &PathError{Path: dest, Err: err}
	}

	return RewriteResult{Source: entry.Path, Destination: dest, Modified: modified}, nil
}
