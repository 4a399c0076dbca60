// internal/xrefcli/options.go
package xrefcli

import (
	"errors"
	"flag"
	"fmt"

	"pazy/internal/version"
)

// Options holds all CLI flags for the cross-reference tool.
type Options struct {
	Reference string
	Query     string
	Output    string

	VerifyExact  bool
	NoDuplicates bool
	Header       bool // true unless --no-header

	Version bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: cross-reference acquired sequences against a reference collection

Hash-indexes the reference FASTA (MD5 of the uppercased sequence) and reports
every query sequence sharing a hash with a reference entry. Distinct
sequences can collide under MD5; pass --verify-exact to reject collisions at
the cost of keeping reference sequences in memory.

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

	fs.StringVar(&opt.Reference, "reference", "", "reference FASTA file, e.g. PlasticDB ('-' for stdin, .gz ok) [*]")
	fs.StringVar(&opt.Query, "query", "", "query FASTA file, e.g. PAZy_sequences.fasta [*]")
	fs.StringVar(&opt.Output, "output", "-", "output TSV path ('-' for stdout) [-]")

	fs.BoolVar(&opt.VerifyExact, "verify-exact", false, "verify exact sequence equality, not just hash equality (more memory) [false]")
	fs.BoolVar(&opt.NoDuplicates, "no-duplicates", false, "keep only the first reference entry per unique sequence [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress the header line [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	opt.Header = !noHeader
	if opt.Version {
		return opt, nil
	}

	if opt.Reference == "" {
		return opt, errors.New("--reference is required")
	}
	if opt.Query == "" {
		return opt, errors.New("--query is required")
	}
	if opt.Reference == "-" && opt.Query == "-" {
		return opt, errors.New("--reference and --query cannot both read stdin")
	}
	return opt, nil
}
