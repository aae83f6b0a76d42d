// Package mirror computes destination paths for rewritten files, recreating
// the input tree's directory structure under an optional output root.
package mirror

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorgecnavarro/seqrename/internal/scan"
)

// Resolve returns the destination path for entry. With an empty outputRoot
// the file is rewritten in place and the entry's own path is returned
// unchanged. Otherwise the destination is outputRoot joined with the entry's
// relative path, preserving every intermediate directory segment, and all
// ancestor directories are created (idempotently) so the caller can write
// immediately. Existing content at the destination is overwritten by the
// subsequent write; repeated runs into the same output root are deliberately
// deterministic rather than an error.
func Resolve(entry scan.FileEntry, outputRoot string) (string, error) {
	if outputRoot == "" {
		return entry.Path, nil
	}

	dest := filepath.Join(outputRoot, entry.Rel)
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory for %s: %w", entry.Rel, err)
	}
	return dest, nil
}
