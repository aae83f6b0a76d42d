// Package tsvreport builds metadata TSV files labelling GenBank region files
// with a user-supplied annotation. It scans independently of the rename
// engine: no uniqueness validation, no rewriting, just stem extraction.
package tsvreport

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jorgecnavarro/seqrename/internal/filelock"
	"github.com/jorgecnavarro/seqrename/internal/scan"
)

// DefaultInclude is the substring filter applied when the caller gives none:
// antiSMASH-style region files carry "region" in their name.
var DefaultInclude = []string{"region"}

// Options configures one TSV build.
type Options struct {
	// InputFolder is scanned recursively for .gbk files.
	InputFolder string
	// TSVPath is the output file; intermediate folders are created.
	TSVPath string
	// Annotation is the second column's header (e.g. "Niche").
	Annotation string
	// Value is written in the second column of every row (e.g. "Lichen").
	Value string
	// Include lists substrings of which at least one must appear in a
	// file's name for it to be included. An empty list includes every file.
	Include []string
}

// Write scans, filters and emits the TSV. It returns the number of files
// annotated. Zero matches still produces a header-only TSV; only an invalid
// input folder or an unwritable TSV path is an error.
func Write(opts Options) (int, error) {
	if filepath.Base(opts.TSVPath) == "." || opts.TSVPath == "" {
		return 0, fmt.Errorf("empty tsv name")
	}

	entries, err := scan.Scan(opts.InputFolder, []string{".gbk"})
	if err != nil {
		return 0, fmt.Errorf("invalid input folder: %w", err)
	}

	var included []scan.FileEntry
	for _, entry := range entries {
		if matchesInclude(filepath.Base(entry.Path), opts.Include) {
			included = append(included, entry)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Region\t%s\n", opts.Annotation)
	for _, entry := range included {
		fmt.Fprintf(&b, "%s\t%s\n", entry.Stem, opts.Value)
	}

	if err := filelock.AtomicWrite(opts.TSVPath, []byte(b.String())); err != nil {
		return 0, err
	}
	return len(included), nil
}

// matchesInclude reports whether name contains at least one of the include
// substrings. An empty include list matches everything.
func matchesInclude(name string, include []string) bool {
	if len(include) == 0 {
		return true
	}
	for _, s := range include {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}
