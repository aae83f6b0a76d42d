package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFastaRewriter(t *testing.T) {
	r := NewFastaRewriter("")

	t.Run("inserts stem before marker headers", func(t *testing.T) {
		in := ">contig_1 length=512\nACGT\nACGT\n"
		out, modified, err := r.Rewrite([]byte(in), "sampleA")
		require.NoError(t, err)
		assert.True(t, modified)
		assert.Equal(t, ">sampleA_contig_1 length=512\nACGT\nACGT\n", string(out))
	})

	t.Run("marker match is case-insensitive", func(t *testing.T) {
		out, modified, err := r.Rewrite([]byte(">Contig_7\nACGT\n"), "s")
		require.NoError(t, err)
		assert.True(t, modified)
		assert.Equal(t, ">s_Contig_7\nACGT\n", string(out))
	})

	t.Run("strips whitespace after the angle bracket", func(t *testing.T) {
		out, modified, err := r.Rewrite([]byte(">  \tcontig_2\nACGT\n"), "s")
		require.NoError(t, err)
		assert.True(t, modified)
		assert.Equal(t, ">s_contig_2\nACGT\n", string(out))
	})

	t.Run("non-marker headers pass through", func(t *testing.T) {
		in := ">chromosome_1\nACGT\n"
		out, modified, err := r.Rewrite([]byte(in), "s")
		require.NoError(t, err)
		assert.False(t, modified)
		assert.Equal(t, in, string(out))
	})

	t.Run("already-prefixed headers are left alone", func(t *testing.T) {
		first, modified, err := r.Rewrite([]byte(">contig_1\nACGT\n"), "sampleA")
		require.NoError(t, err)
		require.True(t, modified)

		second, modified, err := r.Rewrite(first, "sampleA")
		require.NoError(t, err)
		assert.False(t, modified)
		assert.Equal(t, string(first), string(second))
	})

	t.Run("multiple records", func(t *testing.T) {
		in := ">contig_1\nACGT\n>other\nTTTT\n>contig_2\nGGGG\n"
		out, modified, err := r.Rewrite([]byte(in), "s")
		require.NoError(t, err)
		assert.True(t, modified)
		assert.Equal(t, ">s_contig_1\nACGT\n>other\nTTTT\n>s_contig_2\nGGGG\n", string(out))
	})

	t.Run("missing trailing newline preserved", func(t *testing.T) {
		out, _, err := r.Rewrite([]byte(">contig_1\nACGT"), "s")
		require.NoError(t, err)
		assert.Equal(t, ">s_contig_1\nACGT", string(out))
	})

	t.Run("custom marker", func(t *testing.T) {
		scaffold := NewFastaRewriter("scaffold")
		out, modified, err := scaffold.Rewrite([]byte(">scaffold_9\nACGT\n"), "s")
		require.NoError(t, err)
		assert.True(t, modified)
		assert.Equal(t, ">s_scaffold_9\nACGT\n", string(out))

		_, modified, err = scaffold.Rewrite([]byte(">contig_1\nACGT\n"), "s")
		require.NoError(t, err)
		assert.False(t, modified)
	})

	t.Run("empty content", func(t *testing.T) {
		out, modified, err := r.Rewrite(nil, "s")
		require.NoError(t, err)
		assert.False(t, modified)
		assert.Empty(t, out)
	})
}
