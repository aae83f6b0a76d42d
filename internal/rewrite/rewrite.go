// Package rewrite implements the per-format record rewriters injected into
// the rename engine. Each rewriter takes a file's raw content and the file's
// stem and inserts the stem into every qualifying record, leaving all other
// bytes untouched.
package rewrite

import "fmt"

// Rewriter transforms one file's content by embedding the file stem into its
// records. It returns the transformed content, whether any record was
// actually changed, and a *FormatError when the content cannot be parsed
// well enough to apply the rewrite. A file with no qualifying record is not
// an error: the content comes back unchanged with modified=false.
//
// Implementations must be idempotent on already-rewritten input: a record
// whose identifier already carries the stem prefix is left alone.
type Rewriter interface {
	Rewrite(content []byte, stem string) (out []byte, modified bool, err error)
}

// FormatError signals that a file's content could not be parsed well enough
// to locate its records. The engine treats it as fatal to the run.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("not able to parse file: %s", e.Reason)
}

// splitLines splits content into lines, each keeping its trailing newline if
// present, so rejoining the slices reproduces the input byte-for-byte.
func splitLines(content []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i, b := range content {
		if b == '\n' {
			lines = append(lines, content[start:i+1])
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}
