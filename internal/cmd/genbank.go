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

// NewGenBankCommand creates the genbank subcommand.
func NewGenBankCommand() *cobra.Command {
	var (
		inputFolder  string
		outputFolder string
		verbose      bool
		updateDate   bool
	)

	cmd := &cobra.Command{
		Use:   "genbank",
		Short: "Insert filenames into GenBank metadata",
		Long: `Renames generic GenBank metadata (LOCUS, ACCESSION, VERSION) by
inserting the filename in front of each value.

The input folder is searched recursively for GenBank (.gb, .gbk, .gbff)
files. Without an output folder, files are modified in place; with one,
the input's folder structure is re-created underneath it (existing
results are replaced). Values already carrying the filename prefix are
left untouched.

Examples:
  seqrename genbank -i ./regions -o ./renamed --verbose
  seqrename genbank -i ./regions --update_date`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfigFromDir(".")
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := logger.NewConsoleLogger(os.Stdout, cfg.LogLevel)

			report, err := engine.Run(engine.Options{
				InputRoot:  inputFolder,
				OutputRoot: outputFolder,
				Extensions: cfg.GenBankExtensions,
				Rewriter:   rewrite.NewGenBankRewriter(updateDate),
				Verbose:    verbose,
				Logger:     log,
			})
			if err != nil {
				return err
			}

			log.Success("Processed %d GenBank files (%d modified)", report.Processed, report.Modified)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFolder, "inputfolder", "i", "",
		"Base folder with files, searched recursively for GenBank (.gb, .gbk, .gbff) files")
	cmd.Flags().StringVarP(&outputFolder, "outputfolder", "o", "",
		"Base output directory; if given, creates a copy instead of modifying in place")
	cmd.Flags().BoolVar(&verbose, "verbose", false,
		"Print every filename that was written")
	cmd.Flags().BoolVar(&updateDate, "update_date", false,
		"Update the date in GenBank headers to today")
	_ = cmd.MarkFlagRequired("inputfolder")

	return cmd
}
