package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(stem, path string) FileEntry {
	return FileEntry{Stem: stem, Path: path, Rel: path}
}

func TestBuildIndex(t *testing.T) {
	t.Run("groups by stem", func(t *testing.T) {
		entries := []FileEntry{
			entry("X", "a/X.fasta"),
			entry("Y", "a/Y.fasta"),
			entry("X", "b/X.fasta"),
		}

		index := BuildIndex(entries)
		require.Len(t, index, 2)
		assert.Len(t, index["X"].Members, 2)
		assert.Len(t, index["Y"].Members, 1)
		assert.True(t, index["X"].Collision())
		assert.False(t, index["Y"].Collision())
	})

	t.Run("members keep scan order", func(t *testing.T) {
		entries := []FileEntry{
			entry("X", "a/X.fasta"),
			entry("X", "b/X.fasta"),
		}

		index := BuildIndex(entries)
		require.Len(t, index["X"].Members, 2)
		assert.Equal(t, "a/X.fasta", index["X"].Members[0].Path)
		assert.Equal(t, "b/X.fasta", index["X"].Members[1].Path)
	})

	t.Run("no normalization of stems", func(t *testing.T) {
		entries := []FileEntry{
			entry("x", "a/x.fasta"),
			entry("X", "b/X.fasta"),
		}

		index := BuildIndex(entries)
		assert.Len(t, index, 2)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, BuildIndex(nil))
	})
}

func TestCollisions(t *testing.T) {
	t.Run("same stem with different extensions collides", func(t *testing.T) {
		entries := []FileEntry{
			entry("X", "X.fasta"),
			entry("X", "X.gbk"),
		}

		collisions := Collisions(BuildIndex(entries))
		require.Len(t, collisions, 1)
		assert.Equal(t, "X", collisions[0].Stem)
	})

	t.Run("sorted by stem", func(t *testing.T) {
		entries := []FileEntry{
			entry("zz", "a/zz.fasta"),
			entry("aa", "a/aa.fasta"),
			entry("zz", "b/zz.fasta"),
			entry("aa", "b/aa.fasta"),
		}

		collisions := Collisions(BuildIndex(entries))
		require.Len(t, collisions, 2)
		assert.Equal(t, "aa", collisions[0].Stem)
		assert.Equal(t, "zz", collisions[1].Stem)
	})

	t.Run("content independent of discovery order", func(t *testing.T) {
		forward := []FileEntry{
			entry("X", "a/X.fasta"),
			entry("Y", "a/Y.fasta"),
			entry("X", "b/X.fasta"),
		}
		backward := []FileEntry{forward[2], forward[1], forward[0]}

		a := Collisions(BuildIndex(forward))
		b := Collisions(BuildIndex(backward))

		require.Len(t, a, 1)
		require.Len(t, b, 1)
		assert.Equal(t, a[0].Stem, b[0].Stem)
		assert.ElementsMatch(t, a[0].Members, b[0].Members)
	})

	t.Run("no collisions yields empty report", func(t *testing.T) {
		entries := []FileEntry{
			entry("X", "X.fasta"),
			entry("Y", "Y.fasta"),
		}
		assert.Empty(t, Collisions(BuildIndex(entries)))
	})
}
