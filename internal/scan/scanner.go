// Package scan provides recursive discovery of sequence-annotation files and
// the filename-uniqueness index built over them.
//
// Discovery is deterministic: matched files are returned sorted by their path
// relative to the scanned root, so collision reports are reproducible across
// runs against an unchanged tree.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileEntry describes one matched file discovered under the input root.
type FileEntry struct {
	// Stem is the base name with the matched extension removed. It is the
	// key used for uniqueness validation and record rewriting.
	Stem string
	// Path is the file's path as discovered (input root joined with the
	// relative location).
	Path string
	// Rel is the path relative to the scanned input root, needed to
	// reconstruct the directory structure under an output root.
	Rel string
}

// Scan walks root recursively and returns an entry for every file whose name
// ends with one of the given extensions. Extensions must include the leading
// dot (e.g. ".fasta") and are matched literally, case-sensitively, to match
// how the files are produced by upstream annotation pipelines.
//
// Directories are always descended into; non-matching files are skipped.
// Returns a PathError-compatible wrapped error if root does not exist or is
// not a directory.
func Scan(root string, extensions []string) ([]FileEntry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to access input folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input folder is not a directory: %s", root)
	}

	var entries []FileEntry
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error accessing %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}

		ext := matchExtension(d.Name(), extensions)
		if ext == "" {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", path, err)
		}

		entries = append(entries, FileEntry{
			Stem: strings.TrimSuffix(d.Name(), ext),
			Path: path,
			Rel:  rel,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Sort by relative path for deterministic processing and reporting order.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Rel < entries[j].Rel
	})

	return entries, nil
}

// matchExtension returns the first extension that name ends with, or "" if
// none match. The matched suffix (not filepath.Ext) is what gets trimmed to
// form the stem, so multi-dot names like "sample.region1.gbk" keep their
// inner dots.
func matchExtension(name string, extensions []string) string {
	for _, ext := range extensions {
		if ext != "" && strings.HasSuffix(name, ext) && len(name) > len(ext) {
			return ext
		}
	}
	return ""
}
