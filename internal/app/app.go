// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"pazy-core/fetch"
	"pazy-core/harvest"
	"pazy-core/seqdb"
	"pazy-core/wiki"
	"pazy/internal/cli"
	"pazy/internal/config"
	"pazy/internal/logx"
	"pazy/internal/version"
	"pazy/internal/writers"
)

// Output file names inside --output; consumed verbatim by pazy-xref users.
const (
	MetadataFile  = "PAZy_metadata.tsv"
	SequencesFile = "PAZy_sequences.fasta"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("pazy")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(stdout, "pazy version %s\n", version.Version)
		return 0
	}

	log, closeLog, err := logx.New(stderr, opts.LogFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	defer closeLog()

	cfg := config.Default()
	if opts.ConfigFile != "" {
		if cfg, err = config.Load(opts.ConfigFile); err != nil {
			log.Errorf("%v", err)
			return 1
		}
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		log.Errorf("create output directory: %v", err)
		return 1
	}

	client := fetch.New(fetch.Config{Timeout: cfg.Timeout(), InsecureTLS: cfg.InsecureTLS}, log)
	resolver := seqdb.New(client, cfg.FetchPolicy(), log)
	h, err := harvest.New(harvest.Config{
		BaseURL:       cfg.BaseURL,
		LandingURL:    cfg.Landing(),
		LandingPolicy: cfg.LandingPolicy(),
		PagePolicy:    cfg.PagePolicy(),
		Delays:        cfg.Delays(),
	}, client, resolver, log)
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}

	metaPath := filepath.Join(opts.OutputDir, MetadataFile)
	fastaPath := filepath.Join(opts.OutputDir, SequencesFile)
	metaFile, err := os.Create(metaPath)
	if err != nil {
		log.Errorf("create %s: %v", metaPath, err)
		return 1
	}
	defer func() { _ = metaFile.Close() }()
	fastaFile, err := os.Create(fastaPath)
	if err != nil {
		log.Errorf("create %s: %v", fastaPath, err)
		return 1
	}
	defer func() { _ = fastaFile.Close() }()

	metaBuf := bufio.NewWriter(metaFile)
	fastaBuf := bufio.NewWriter(fastaFile)
	meta := writers.NewMetadata(metaBuf)
	if err := meta.WriteHeader(); err != nil {
		log.Errorf("write %s: %v", metaPath, err)
		return 1
	}

	log.Infof("starting PAZy database scraping")
	st, err := h.Run(parent, func(rec wiki.Record, internalID int, block string) error {
		if err := meta.WriteRow(internalID, rec); err != nil {
			return err
		}
		return writers.WriteFastaBlock(fastaBuf, block)
	})
	if err != nil {
		// Output I/O and cancellation are the only fatal paths; everything
		// network-shaped already degraded to logged omissions.
		log.Errorf("run aborted: %v", err)
		return 1
	}

	if err := metaBuf.Flush(); err != nil {
		log.Errorf("write %s: %v", metaPath, err)
		return 1
	}
	if err := fastaBuf.Flush(); err != nil {
		log.Errorf("write %s: %v", fastaPath, err)
		return 1
	}

	log.Infof("scraping complete: %d polymers, %d enzyme entries, %d sequences resolved", st.Polymers, st.Enzymes, st.Resolved)
	log.Infof("metadata saved to %s and sequences to %s", metaPath, fastaPath)
	log.Infof("%d PAZy entries without matching sequence were found", st.Missing)
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
