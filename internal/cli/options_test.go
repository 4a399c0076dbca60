package cli

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("pazy")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestDefaults(t *testing.T) {
	opt, err := parse(t)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.OutputDir != "." || opt.LogFile != "" || opt.ConfigFile != "" {
		t.Errorf("defaults = %+v", opt)
	}
}

func TestFlags(t *testing.T) {
	opt, err := parse(t, "--output", "out", "--log", "run.log", "--config", "pazy.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opt.OutputDir != "out" || opt.LogFile != "run.log" || opt.ConfigFile != "pazy.yaml" {
		t.Errorf("parsed = %+v", opt)
	}
}

func TestHelp(t *testing.T) {
	if _, err := parse(t, "-h"); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
}

func TestVersionShorthand(t *testing.T) {
	opt, err := parse(t, "-v")
	if err != nil || !opt.Version {
		t.Fatalf("opt=%+v err=%v", opt, err)
	}
}
