package cmd

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	assert.Equal(t, "seqrename", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "fasta")
	assert.Contains(t, names, "genbank")
	assert.Contains(t, names, "tsv")
}

func TestRequiredFlags(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"fasta needs inputfolder", []string{"fasta"}, "inputfolder"},
		{"genbank needs inputfolder", []string{"genbank"}, "inputfolder"},
		{"tsv needs annotation and value", []string{"tsv", "-i", "."}, "annotation"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := NewRootCommand()
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			cmd.SetArgs(tc.args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
