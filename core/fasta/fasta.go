// core/fasta/fasta.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one parsed FASTA entry.
type Record struct {
	ID   string // first whitespace-delimited token of the header
	Desc string // full header line without the leading '>'
	Seq  []byte
}

// StreamCtx parses FASTA from r and emits one Record per entry, in file order.
// Sequences are never held beyond the record being emitted.
//
// It is cancelable: returning promptly when ctx is Done, even mid-record.
// emit may return a non-nil error (e.g. ctx.Err()) to stop early.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		desc string
		seq  = make([]byte, 0, 1<<20)
		open bool
	)

	flush := func() error {
		if !open {
			return nil
		}
		return emit(Record{
			ID:   headerID(desc),
			Desc: desc,
			Seq:  append([]byte(nil), seq...),
		})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			desc = string(bytes.TrimSpace(line[1:]))
			seq = seq[:0]
			open = true
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// StreamPathCtx opens path (plain, gzip, or "-" for stdin) and streams its
// records through emit.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return StreamCtx(ctx, rc, emit)
}

func headerID(hdr string) string {
	for i := 0; i < len(hdr); i++ {
		if hdr[i] == ' ' || hdr[i] == '\t' {
			return hdr[:i]
		}
	}
	return hdr
}
