package mirror

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorgecnavarro/seqrename/internal/scan"
)

func TestResolve(t *testing.T) {
	t.Run("in-place mode returns the source path", func(t *testing.T) {
		entry := scan.FileEntry{
			Stem: "Y",
			Path: "root/sub/Y.fasta",
			Rel:  "sub/Y.fasta",
		}

		dest, err := Resolve(entry, "")
		require.NoError(t, err)
		assert.Equal(t, "root/sub/Y.fasta", dest)
	})

	t.Run("mirrored mode preserves the relative structure", func(t *testing.T) {
		out := t.TempDir()
		entry := scan.FileEntry{
			Stem: "Y",
			Path: "root/sub/1/2/Y.fasta",
			Rel:  filepath.Join("sub", "1", "2", "Y.fasta"),
		}

		dest, err := Resolve(entry, out)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(out, "sub", "1", "2", "Y.fasta"), dest)

		info, err := os.Stat(filepath.Dir(dest))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("repeated resolution is idempotent", func(t *testing.T) {
		out := t.TempDir()
		entry := scan.FileEntry{
			Stem: "Y",
			Path: "root/sub/Y.fasta",
			Rel:  filepath.Join("sub", "Y.fasta"),
		}

		first, err := Resolve(entry, out)
		require.NoError(t, err)
		second, err := Resolve(entry, out)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("top-level entry needs no subdirectory", func(t *testing.T) {
		out := t.TempDir()
		entry := scan.FileEntry{Stem: "Y", Path: "root/Y.fasta", Rel: "Y.fasta"}

		dest, err := Resolve(entry, out)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(out, "Y.fasta"), dest)
	})
}
