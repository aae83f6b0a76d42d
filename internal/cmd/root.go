// Package cmd wires the seqrename command-line interface: one root command
// with subcommands for the fasta and genbank rename tools and the metadata
// TSV builder.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// NewRootCommand creates the root cobra command for seqrename.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seqrename",
		Short: "Disambiguate sequence-annotation records by embedding filenames",
		Long: `seqrename makes record identifiers inside trees of sequence-annotation
files globally unique by injecting each file's name into its records.

Before touching anything it validates that every file name (stem) in the
tree is unique; on collision it reports every offender and exits without
modifying a single file.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewFastaCommand())
	cmd.AddCommand(NewGenBankCommand())
	cmd.AddCommand(NewTSVCommand())

	return cmd
}
