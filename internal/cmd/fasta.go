package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jorgecnavarro/seqrename/internal/config"
	"github.com/jorgecnavarro/seqrename/internal/engine"
	"github.com/jorgecnavarro/seqrename/internal/logger"
	"github.com/jorgecnavarro/seqrename/internal/rewrite"
)

// NewFastaCommand creates the fasta subcommand.
func NewFastaCommand() *cobra.Command {
	var (
		inputFolder  string
		outputFolder string
		marker       string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "fasta",
		Short: "Insert filenames into fasta headers",
		Long: `Renames all fasta headers beginning with the marker token (default
"contig") by inserting the filename in front.

The input folder is searched recursively for .fasta files. Without an
output folder, files are modified in place; with one, the input's folder
structure is re-created underneath it (existing results are replaced).

Examples:
  seqrename fasta -i ./genomes --verbose
  seqrename fasta -i ./genomes -o ./renamed
  seqrename fasta -i ./genomes --marker scaffold`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfigFromDir(".")
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if marker != "" {
				cfg.FastaMarker = marker
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := logger.NewConsoleLogger(os.Stdout, cfg.LogLevel)

			report, err := engine.Run(engine.Options{
				InputRoot:  inputFolder,
				OutputRoot: outputFolder,
				Extensions: cfg.FastaExtensions,
				Rewriter:   rewrite.NewFastaRewriter(cfg.FastaMarker),
				Verbose:    verbose,
				Logger:     log,
			})
			if err != nil {
				return err
			}

			log.Success("Processed %d fasta files (%d modified)", report.Processed, report.Modified)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFolder, "inputfolder", "i", "",
		"Base folder with files, searched recursively for .fasta files")
	cmd.Flags().StringVarP(&outputFolder, "outputfolder", "o", "",
		"Base output directory; if given, creates a copy instead of modifying in place")
	cmd.Flags().BoolVar(&verbose, "verbose", false,
		"Print every filename that was written")
	cmd.Flags().StringVar(&marker, "marker", "",
		"Header token identifying records to rename (default from config: contig)")
	_ = cmd.MarkFlagRequired("inputfolder")

	return cmd
}
