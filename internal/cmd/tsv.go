package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jorgecnavarro/seqrename/internal/config"
	"github.com/jorgecnavarro/seqrename/internal/logger"
	"github.com/jorgecnavarro/seqrename/internal/tsvreport"
)

// NewTSVCommand creates the tsv subcommand.
func NewTSVCommand() *cobra.Command {
	var (
		inputFolder string
		tsvName     string
		annotation  string
		value       string
		include     []string
	)

	cmd := &cobra.Command{
		Use:   "tsv",
		Short: "Build a metadata TSV labelling GenBank region files",
		Long: `Helps creating a metadata tsv file. The first column is the name
(without extension) of a .gbk file; the second column is a user-defined
annotation.

Example:
  seqrename tsv -i ./inputdata/lichen -t annotation_niche_lichen.tsv -a Niche -v Lichen

produces a file that looks like:
  Region<TAB>Niche
  genomeregion1<TAB>Lichen`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfigFromDir(".")
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			// The default include filter comes from config unless the flag
			// was given; --include with no values means include everything.
			if !cmd.Flags().Changed("include") {
				include = cfg.TSVInclude
			}

			log := logger.NewConsoleLogger(os.Stdout, cfg.LogLevel)

			count, err := tsvreport.Write(tsvreport.Options{
				InputFolder: inputFolder,
				TSVPath:     tsvName,
				Annotation:  annotation,
				Value:       value,
				Include:     include,
			})
			if err != nil {
				return err
			}

			if count == 0 {
				log.Warn("No gbk files were found in the input folder")
			} else {
				log.Info("Found %d gbk files", count)
			}
			log.Success("Wrote %s", tsvName)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFolder, "inputfolder", "i", "",
		"Folder with region .gbk files")
	cmd.Flags().StringVarP(&tsvName, "tsv_name", "t", "./region_annotations.tsv",
		"Path to the output tsv file; intermediate folders are created if necessary")
	cmd.Flags().StringVarP(&annotation, "annotation", "a", "",
		"The title of the annotation (e.g. \"Reference set\")")
	cmd.Flags().StringVarP(&value, "value", "v", "",
		"The value of the annotation for the second column (e.g. MIBiG, Literature)")
	cmd.Flags().StringSliceVar(&include, "include", nil,
		"Substrings a file name must contain to be included (default: region)")
	_ = cmd.MarkFlagRequired("inputfolder")
	_ = cmd.MarkFlagRequired("annotation")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}
