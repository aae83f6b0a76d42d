package engine

import (
	"fmt"
	"strings"

	"github.com/jorgecnavarro/seqrename/internal/scan"
)

// PathError wraps filesystem failures: missing or unreadable input root,
// unwritable destination. The cause is available through errors.Unwrap.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// UniquenessError aborts a run when two or more files anywhere in the tree
// share a stem. It carries the complete collision report, every colliding
// stem with all of its member paths, not just the first one found.
type UniquenessError struct {
	Collisions []scan.Group
}

// Error renders the full collision report: a fixed first line, then each
// colliding stem with its member paths tab-indented.
func (e *UniquenessError) Error() string {
	var b strings.Builder
	b.WriteString("Some filenames are not unique!")
	for _, group := range e.Collisions {
		b.WriteString("\n")
		b.WriteString(group.Stem)
		b.WriteString(":")
		for _, member := range group.Members {
			b.WriteString("\n\t")
			b.WriteString(member.Path)
		}
	}
	return b.String()
}
