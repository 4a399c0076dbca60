// core/xref/index.go
package xref

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"pazy-core/fasta"
)

// Entry is one reference record filed under its sequence hash.
type Entry struct {
	ID     string
	Desc   string
	Length int
	Seq    string // retained only when the index was built for exact verification
}

// Options selects the index variant at construction time.
type Options struct {
	VerifyExact  bool // keep raw sequences so lookups can reject hash collisions
	NoDuplicates bool // keep only the first entry per hash value
}

// Index maps the MD5 of an uppercased sequence to the reference entries
// sharing it. Distinct sequences may collide under MD5; that risk is accepted
// unless the index retains sequences for exact verification. Read-only after
// Build.
type Index struct {
	buckets map[string][]Entry
	verify  bool
}

// BuildStats summarizes one index build.
type BuildStats struct {
	Records    int
	Duplicates int
}

const buildProgressEvery = 10000

// Build streams the reference collection at path into a hash index. Only the
// index itself is held in memory; records are visited one at a time.
func Build(ctx context.Context, path string, opt Options, log logrus.FieldLogger) (*Index, BuildStats, error) {
	idx := &Index{buckets: make(map[string][]Entry), verify: opt.VerifyExact}
	var st BuildStats

	log.Infof("processing reference file: %s", path)
	start := time.Now()
	err := fasta.StreamPathCtx(ctx, path, func(r fasta.Record) error {
		st.Records++
		if st.Records%buildProgressEvery == 0 {
			elapsed := time.Since(start).Seconds()
			log.Infof("processed %d reference sequences... (%.2f seqs/sec)", st.Records, float64(st.Records)/elapsed)
		}
		seq := strings.ToUpper(string(r.Seq))
		key := hashSeq(seq)
		if opt.NoDuplicates {
			if _, seen := idx.buckets[key]; seen {
				st.Duplicates++
				return nil
			}
		}
		e := Entry{ID: r.ID, Desc: r.Desc, Length: len(seq)}
		if opt.VerifyExact {
			e.Seq = seq
		}
		idx.buckets[key] = append(idx.buckets[key], e)
		return nil
	})
	if err != nil {
		return nil, st, err
	}

	log.Infof("completed processing %d reference sequences in %.2f seconds", st.Records, time.Since(start).Seconds())
	log.Infof("number of unique sequence hashes: %d", len(idx.buckets))
	if opt.NoDuplicates {
		log.Infof("removed %d duplicate sequences", st.Duplicates)
	}
	return idx, st, nil
}

// Len reports the number of unique sequence hashes.
func (x *Index) Len() int { return len(x.buckets) }

func hashSeq(upper string) string {
	sum := md5.Sum([]byte(upper))
	return hex.EncodeToString(sum[:])
}
