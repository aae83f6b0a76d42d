// Package config loads seqrename configuration from .seqrename/config.yaml,
// merging file values over defaults. CLI flags override both.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable defaults shared by the subcommands. Everything
// here has a sensible built-in value; the config file is optional.
type Config struct {
	// LogLevel sets logging verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// FastaMarker is the header token that identifies records to rename.
	FastaMarker string `yaml:"fasta_marker"`

	// FastaExtensions lists the file suffixes the fasta command scans for.
	FastaExtensions []string `yaml:"fasta_extensions"`

	// GenBankExtensions lists the file suffixes the genbank command scans for.
	GenBankExtensions []string `yaml:"genbank_extensions"`

	// TSVInclude is the default substring filter of the tsv command.
	TSVInclude []string `yaml:"tsv_include"`
}

// DefaultConfig returns the built-in defaults, matching the extensions and
// marker token the upstream annotation pipelines produce.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:          "info",
		FastaMarker:       "contig",
		FastaExtensions:   []string{".fasta"},
		GenBankExtensions: []string{".gb", ".gbk", ".gbff"},
		TSVInclude:        []string{"region"},
	}
}

// LoadConfig reads configuration from path. A missing file is not an error
// and yields the defaults; a malformed file is an error. File values
// override defaults field by field, so a partial config file is fine.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.FastaMarker != "" {
		cfg.FastaMarker = fileCfg.FastaMarker
	}
	if len(fileCfg.FastaExtensions) > 0 {
		cfg.FastaExtensions = fileCfg.FastaExtensions
	}
	if len(fileCfg.GenBankExtensions) > 0 {
		cfg.GenBankExtensions = fileCfg.GenBankExtensions
	}
	if fileCfg.TSVInclude != nil {
		cfg.TSVInclude = fileCfg.TSVInclude
	}

	return cfg, nil
}

// LoadConfigFromDir loads .seqrename/config.yaml from dir, falling back to
// defaults when absent.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, ".seqrename", "config.yaml"))
}

// Validate checks the configuration for values the commands cannot work
// with.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q, must be one of: debug, info, warn, error", c.LogLevel)
	}

	if c.FastaMarker == "" {
		return fmt.Errorf("fasta_marker cannot be empty")
	}
	if len(c.FastaExtensions) == 0 {
		return fmt.Errorf("fasta_extensions cannot be empty")
	}
	if len(c.GenBankExtensions) == 0 {
		return fmt.Errorf("genbank_extensions cannot be empty")
	}
	for _, ext := range append(append([]string{}, c.FastaExtensions...), c.GenBankExtensions...) {
		if len(ext) < 2 || ext[0] != '.' {
			return fmt.Errorf("invalid extension %q, must start with a dot", ext)
		}
	}
	return nil
}
