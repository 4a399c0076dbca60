// internal/xrefapp/app.go
package xrefapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"pazy-core/xref"
	"pazy/internal/logx"
	"pazy/internal/version"
	"pazy/internal/writers"
	"pazy/internal/xrefcli"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := xrefcli.NewFlagSet("pazy-xref")
	fs.SetOutput(io.Discard)

	opts, err := xrefcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "pazy-xref version %s\n", version.Version)
		return 0
	}

	log, closeLog, err := logx.New(stderr, "")
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	defer closeLog()

	idx, bst, err := xref.Build(parent, opts.Reference, xref.Options{
		VerifyExact:  opts.VerifyExact,
		NoDuplicates: opts.NoDuplicates,
	}, log)
	if err != nil {
		log.Errorf("index %s: %v", opts.Reference, err)
		return 1
	}

	out := stdout
	if opts.Output != "-" {
		f, err := os.Create(opts.Output)
		if err != nil {
			log.Errorf("create %s: %v", opts.Output, err)
			return 1
		}
		defer func() { _ = f.Close() }()
		out = f
	}
	outw := bufio.NewWriter(out)

	if opts.Header {
		if err := writers.WriteXrefHeader(outw); err != nil {
			log.Errorf("write %s: %v", opts.Output, err)
			return 1
		}
	}

	mst, err := xref.Match(parent, opts.Query, idx, func(r xref.Row) error {
		return writers.WriteXrefRow(outw, r)
	}, log)
	if err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		log.Errorf("match %s: %v", opts.Query, err)
		return 1
	}

	if err := outw.Flush(); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		log.Errorf("write %s: %v", opts.Output, err)
		return 1
	}

	if opts.NoDuplicates {
		log.Infof("indexed %d reference sequences (%d duplicates removed)", bst.Records, bst.Duplicates)
	} else {
		log.Infof("indexed %d reference sequences", bst.Records)
	}
	log.Infof("%d cross-references written to %s", mst.Matches, opts.Output)
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
