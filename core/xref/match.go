// core/xref/match.go
package xref

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"pazy-core/fasta"
)

// Row is one confirmed (query, reference) match.
type Row struct {
	QueryID   string
	QueryDesc string
	RefID     string
	RefDesc   string
	Length    int
}

// MatchStats summarizes one matching pass.
type MatchStats struct {
	Queries int
	Matches int
}

const matchProgressEvery = 1000

// Match streams the query collection at path against idx and emits one Row
// per surviving bucket entry, in bucket order. When the index retains raw
// sequences, entries whose sequence differs from the query (a hash collision)
// are skipped; otherwise hash equality alone decides. Queries whose hash is
// absent produce zero rows.
func Match(ctx context.Context, path string, idx *Index, emit func(Row) error, log logrus.FieldLogger) (MatchStats, error) {
	var st MatchStats

	log.Infof("processing query file: %s", path)
	start := time.Now()
	err := fasta.StreamPathCtx(ctx, path, func(r fasta.Record) error {
		st.Queries++
		if st.Queries%matchProgressEvery == 0 {
			elapsed := time.Since(start).Seconds()
			log.Infof("processed %d query sequences, found %d matches... (%.2f seqs/sec)",
				st.Queries, st.Matches, float64(st.Queries)/elapsed)
		}
		seq := strings.ToUpper(string(r.Seq))
		for _, e := range idx.buckets[hashSeq(seq)] {
			if idx.verify && e.Seq != seq {
				continue
			}
			if err := emit(Row{
				QueryID:   r.ID,
				QueryDesc: r.Desc,
				RefID:     e.ID,
				RefDesc:   e.Desc,
				Length:    e.Length,
			}); err != nil {
				return err
			}
			st.Matches++
		}
		return nil
	})
	if err != nil {
		return st, err
	}

	log.Infof("completed processing %d query sequences in %.2f seconds", st.Queries, time.Since(start).Seconds())
	log.Infof("found %d matches", st.Matches)
	return st, nil
}
