// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"

	"pazy/internal/version"
)

// Options holds all CLI flags for the acquisition tool.
type Options struct {
	OutputDir  string
	LogFile    string
	ConfigFile string

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: acquire enzyme records and sequences from the PAZy wiki

Scrapes the polymer index, parses each polymer's enzyme table, resolves
accessions against UniProt/GenBank/MGnify and writes PAZy_metadata.tsv plus
PAZy_sequences.fasta into the output directory.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.OutputDir, "output", ".", "output directory for the metadata table and sequence collection [.]")
	fs.StringVar(&opt.LogFile, "log", "", "duplicate log output to this file [off]")
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML run profile (URLs, retries, courtesy delays) [defaults]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	return opt, nil
}
