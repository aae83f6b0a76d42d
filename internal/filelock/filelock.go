// Package filelock guards rename runs against each other and makes every
// file write atomic, so an interrupted in-place rewrite never leaves a torn
// fasta or GenBank file behind.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// RunLock is an advisory, process-wide lock over the root a run writes into.
// The lock file lives next to the root directory (not inside it), so it is
// never picked up by the tree scanner.
type RunLock struct {
	flock *flock.Flock
	path  string
}

// LockRoot acquires the run lock for root without blocking. Two runs
// targeting the same root would otherwise interleave their writes with
// undefined results; the second run fails fast instead.
func LockRoot(root string) (*RunLock, error) {
	path := filepath.Clean(root) + ".seqrename.lock"
	fl := flock.New(path)

	acquired, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire run lock %s: %w", path, err)
	}
	if !acquired {
		return nil, fmt.Errorf("another run is already processing %s (lock held: %s)", root, path)
	}
	return &RunLock{flock: fl, path: path}, nil
}

// Release unlocks and removes the lock file. Safe to call exactly once per
// acquired lock. A stale lock file left by a crashed process is harmless:
// flock state, not file existence, is what gates acquisition.
func (l *RunLock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release run lock %s: %w", l.path, err)
	}
	os.Remove(l.path)
	return nil
}

// AtomicWrite writes data to path via a temp file in the destination
// directory followed by a rename, creating missing parent directories first.
// Readers never observe a partial file: either the old content or the new
// content is visible, which is what lets in-place mode overwrite the
// original files safely.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".seqrename-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	// Rename is atomic within one filesystem; the temp file was created in
	// the destination directory for exactly that reason.
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	tmp = nil
	return nil
}
